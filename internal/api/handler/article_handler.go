package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tuyulonline77-star/anlocid/internal/api/metrics"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

// ArticleHandler handles HTTP requests for blog articles.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /api/articles.
//
// @Summary      List articles, newest first
// @Tags         articles
// @Produce      json
// @Success      200  {array}   domain.Article
// @Failure      500  {object}  errorResponse
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// GetBySlug handles GET /api/articles/:slug.
//
// @Summary      Get an article by slug
// @Tags         articles
// @Produce      json
// @Param        slug  path      string  true  "Article slug"
// @Success      200   {object}  domain.Article
// @Failure      404   {object}  errorResponse
// @Router       /articles/{slug} [get]
func (h *ArticleHandler) GetBySlug(c echo.Context) error {
	article, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Create handles POST /api/articles.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article fields"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.service.Create(c.Request().Context(), ports.CreateArticleInput{
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Image:    req.Image,
		Category: req.Category,
		Author:   req.Author,
		Featured: req.Featured,
	})
	if err != nil {
		return err
	}

	metrics.ArticlesWrittenTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, createdResponse{Success: true, ID: article.ID})
}

// Update handles PUT /api/articles/:id. The body may be partial: absent
// fields keep their stored values.
//
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Article id"
// @Param        body  body      updateArticleRequest  true  "Fields to change"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateArticleInput{
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Image:    req.Image,
		Category: req.Category,
		Author:   req.Author,
		Featured: req.Featured,
	})
	if err != nil {
		return err
	}

	metrics.ArticlesWrittenTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/articles/:id. Deleting an absent id succeeds.
//
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Article id"
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ArticlesWrittenTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
