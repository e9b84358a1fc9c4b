package memory

import (
	"context"
	"sort"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// articleRepo implements ports.ArticleRepository over the shared store.
// New articles are prepended, matching the site's original listing
// behavior, and List additionally orders by publishedAt descending.
type articleRepo struct {
	s *Store
}

func (r *articleRepo) List(ctx context.Context) ([]domain.Article, error) {
	_ = ctx
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Article, len(r.s.articles))
	copy(out, r.s.articles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out, nil
}

// FindBySlug returns the article with the given slug. Slugs are not
// unique; when several articles share one, the most recently published
// match wins, same as the MongoDB backend.
func (r *articleRepo) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	_ = ctx
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *domain.Article
	for i := range r.s.articles {
		a := &r.s.articles[i]
		if a.Slug != slug {
			continue
		}
		if found == nil || a.PublishedAt.After(found.PublishedAt) {
			found = a
		}
	}
	if found == nil {
		return nil, domain.ErrArticleNotFound
	}
	clone := *found
	return &clone, nil
}

func (r *articleRepo) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	_ = ctx
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.articles {
		if a.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (r *articleRepo) Insert(ctx context.Context, a *domain.Article) error {
	_ = ctx
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.articles = append([]domain.Article{*a}, r.s.articles...)
	return nil
}

func (r *articleRepo) Update(ctx context.Context, a *domain.Article) error {
	_ = ctx
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.articles {
		if r.s.articles[i].ID == a.ID {
			r.s.articles[i] = *a
			return nil
		}
	}
	return domain.ErrArticleNotFound
}

func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_ = ctx
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.articles {
		if r.s.articles[i].ID == id {
			r.s.articles = append(r.s.articles[:i], r.s.articles[i+1:]...)
			return nil
		}
	}
	return nil // absent id is a no-op
}
