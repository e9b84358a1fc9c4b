package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tuyulonline77-star/anlocid/internal/api/metrics"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20 // 10 MiB

// UploadHandler stores uploaded images and serves them back.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/upload (multipart, field "file").
//
// @Summary      Upload an image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}

	url, err := h.service.Store(c.Request().Context(), fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType), data)
	if err != nil {
		return err
	}

	metrics.UploadsTotal.Inc()
	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}

// Serve handles GET /uploads/:key — the public URL of stored images.
//
// @Summary      Serve an uploaded image
// @Tags         upload
// @Produce      octet-stream
// @Param        key  path  string  true  "Object key"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /uploads/{key} [get]
func (h *UploadHandler) Serve(c echo.Context) error {
	rc, contentType, err := h.service.Open(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	defer rc.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Stream(http.StatusOK, contentType, rc)
}

type uploadResponse struct {
	URL string `json:"url"`
}
