package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

type stubUploadService struct {
	storeFn func(ctx context.Context, fileName, contentType string, data []byte) (string, error)
	openFn  func(ctx context.Context, key string) (io.ReadCloser, string, error)
}

func (s *stubUploadService) Store(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	return s.storeFn(ctx, fileName, contentType, data)
}

func (s *stubUploadService) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.openFn(ctx, key)
}

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	e := echo.New()
	stub := &stubUploadService{
		storeFn: func(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
			if fileName != "hero.jpg" {
				t.Fatalf("unexpected file name: %s", fileName)
			}
			if !bytes.Equal(data, []byte("jpegdata")) {
				t.Fatalf("unexpected payload: %q", data)
			}
			return "/uploads/1724900000000-hero.jpg", nil
		},
	}
	handler := NewUploadHandler(stub)

	body, contentType := multipartUpload(t, "file", "hero.jpg", []byte("jpegdata"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.URL != "/uploads/1724900000000-hero.jpg" {
		t.Fatalf("unexpected url: %s", resp.URL)
	}
}

func TestUploadHandler_Upload_NoFile(t *testing.T) {
	e := echo.New()
	handler := NewUploadHandler(&stubUploadService{})

	body, contentType := multipartUpload(t, "attachment", "hero.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Upload(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUploadHandler_Upload_NotConfigured(t *testing.T) {
	e := echo.New()
	stub := &stubUploadService{
		storeFn: func(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
			return "", ports.ErrStorageNotConfigured
		},
	}
	handler := NewUploadHandler(stub)

	body, contentType := multipartUpload(t, "file", "hero.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Upload(c)
	if !errors.Is(err, ports.ErrStorageNotConfigured) {
		t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
	}
}

func TestUploadHandler_Serve(t *testing.T) {
	e := echo.New()
	stub := &stubUploadService{
		openFn: func(ctx context.Context, key string) (io.ReadCloser, string, error) {
			if key != "1724900000000-hero.jpg" {
				t.Fatalf("unexpected key: %s", key)
			}
			return io.NopCloser(strings.NewReader("jpegdata")), "image/jpeg", nil
		},
	}
	handler := NewUploadHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/uploads/1724900000000-hero.jpg", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("1724900000000-hero.jpg")

	if err := handler.Serve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", got)
	}
	if rec.Body.String() != "jpegdata" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestUploadHandler_Serve_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubUploadService{
		openFn: func(ctx context.Context, key string) (io.ReadCloser, string, error) {
			return nil, "", ports.ErrBlobNotFound
		},
	}
	handler := NewUploadHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/uploads/ghost.jpg", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("ghost.jpg")

	err := handler.Serve(c)
	if !errors.Is(err, ports.ErrBlobNotFound) {
		t.Fatalf("expected ErrBlobNotFound, got %v", err)
	}
}
