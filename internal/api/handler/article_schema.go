package handler

// createArticleRequest mirrors the editor form. Slug and author are
// optional: the service derives the slug from the title and fills in the
// default author.
type createArticleRequest struct {
	Title    string `json:"title"    validate:"required"`
	Slug     string `json:"slug"     validate:"omitempty,slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"  validate:"required"`
	Image    string `json:"image"`
	Category string `json:"category" validate:"required,article_category"`
	Author   string `json:"author"`
	Featured bool   `json:"featured"`
}

// updateArticleRequest carries a partial update: nil fields keep their
// stored values. Server-managed fields (id, publishedAt) are not
// representable here and therefore cannot be overwritten.
type updateArticleRequest struct {
	Title    *string `json:"title"`
	Slug     *string `json:"slug"     validate:"omitempty,slug"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Image    *string `json:"image"`
	Category *string `json:"category" validate:"omitempty,article_category"`
	Author   *string `json:"author"`
	Featured *bool   `json:"featured"`
}
