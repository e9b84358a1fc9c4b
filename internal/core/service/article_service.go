package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
	"github.com/tuyulonline77-star/anlocid/internal/pkg/slug"
)

// ArticleService implements article use cases on top of whichever
// repository backend was injected at startup.
type ArticleService struct {
	repo   ports.ArticleRepository
	logger zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, logger: logger}
}

func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.repo.List(ctx)
}

func (s *ArticleService) GetBySlug(ctx context.Context, articleSlug string) (*domain.Article, error) {
	return s.repo.FindBySlug(ctx, articleSlug)
}

// Create stores a new article. Server-assigned fields: a fresh id, the
// publication timestamp, the default author when none is given, and a slug
// derived from the title when the editor left it empty.
func (s *ArticleService) Create(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
	article := &domain.Article{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		Image:       input.Image,
		Category:    input.Category,
		Author:      input.Author,
		PublishedAt: time.Now().UTC(),
		Featured:    input.Featured,
	}
	if article.Slug == "" {
		article.Slug = slug.Make(article.Title)
	}
	if article.Author == "" {
		article.Author = domain.DefaultAuthor
	}

	if err := s.repo.Insert(ctx, article); err != nil {
		s.logger.Error().Err(err).Str("slug", article.Slug).Msg("failed to create article")
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.logger.Info().Str("id", article.ID).Str("slug", article.Slug).Msg("article created")
	return article, nil
}

// Update applies a partial update to an existing article. Only fields
// present in the input replace stored values; id and publishedAt are
// server-managed and never change.
func (s *ArticleService) Update(ctx context.Context, id string, input ports.UpdateArticleInput) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Slug != nil {
		article.Slug = *input.Slug
	}
	if input.Excerpt != nil {
		article.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.Image != nil {
		article.Image = *input.Image
	}
	if input.Category != nil {
		article.Category = *input.Category
	}
	if input.Author != nil {
		article.Author = *input.Author
	}
	if input.Featured != nil {
		article.Featured = *input.Featured
	}

	if err := s.repo.Update(ctx, article); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update article")
		return fmt.Errorf("update article: %w", err)
	}

	s.logger.Info().Str("id", id).Msg("article updated")
	return nil
}

// Delete removes an article; deleting an id that does not exist succeeds.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to delete article")
		return fmt.Errorf("delete article: %w", err)
	}
	s.logger.Info().Str("id", id).Msg("article deleted")
	return nil
}
