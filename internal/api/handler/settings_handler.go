package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

// SettingsHandler handles HTTP requests for the singleton site settings.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /api/settings. An unprovisioned store yields the
// deterministic defaults, never an error.
//
// @Summary      Get site settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.SiteSettings
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Save handles PUT /api/settings — upsert of the singleton row.
//
// @Summary      Save site settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveSettingsRequest  true  "Settings"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /settings [put]
func (h *SettingsHandler) Save(c echo.Context) error {
	var req saveSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Save(c.Request().Context(), &domain.SiteSettings{
		HeroTitle:    req.HeroTitle,
		HeroSubtitle: req.HeroSubtitle,
		HeroImage:    req.HeroImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// saveSettingsRequest mirrors the admin settings form.
type saveSettingsRequest struct {
	HeroTitle    string `json:"heroTitle"    validate:"required"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroImage    string `json:"heroImage"`
}
