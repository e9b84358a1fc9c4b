package ports

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// CreateArticleInput carries all data needed to create a new article.
// Slug may be empty: the service derives it from the title. Author may be
// empty: the service assigns the site default.
type CreateArticleInput struct {
	Title    string
	Slug     string
	Excerpt  string
	Content  string
	Image    string
	Category string
	Author   string
	Featured bool
}

// UpdateArticleInput carries a partial update. Nil fields keep their stored
// value; id and publishedAt are server-managed and cannot be overwritten.
type UpdateArticleInput struct {
	Title    *string
	Slug     *string
	Excerpt  *string
	Content  *string
	Image    *string
	Category *string
	Author   *string
	Featured *bool
}

// ArticleService defines use-case operations for articles.
type ArticleService interface {
	// List returns all articles, newest publishedAt first.
	List(ctx context.Context) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, input UpdateArticleInput) error
	// Delete succeeds as a no-op when id is absent.
	Delete(ctx context.Context, id string) error
}
