package ports

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// ArticleRepository defines persistence operations for articles. Both the
// in-memory and the MongoDB implementations must satisfy it with identical
// semantics: List is ordered newest publishedAt first, lookups that miss
// return domain.ErrArticleNotFound, and Delete on an absent id is a no-op.
type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	Insert(ctx context.Context, a *domain.Article) error
	// Update replaces the stored record matching a.ID in place.
	Update(ctx context.Context, a *domain.Article) error
	Delete(ctx context.Context, id string) error
}
