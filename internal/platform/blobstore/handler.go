package blobstore

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

// UploadHandler provides Echo HTTP handlers for admin image uploads and the
// public /uploads file serving route.
type UploadHandler struct {
	store   Store
	tickets *TicketStore
	baseURL string
	maxSize int64
	// directMaxSize bounds the ticketed direct-upload path, which exists
	// for files too large for the normal multipart limit.
	directMaxSize int64
}

// NewUploadHandler creates an UploadHandler. baseURL is the externally
// visible prefix for uploaded file URLs, e.g. "http://localhost:8000".
func NewUploadHandler(store Store, tickets *TicketStore, baseURL string, maxSize, directMaxSize int64) *UploadHandler {
	return &UploadHandler{
		store:         store,
		tickets:       tickets,
		baseURL:       strings.TrimRight(baseURL, "/"),
		maxSize:       maxSize,
		directMaxSize: directMaxSize,
	}
}

// RegisterAdminRoutes mounts the authenticated upload routes.
func (h *UploadHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/upload", h.handleUpload)
	g.DELETE("/upload", h.handleDelete)
	g.POST("/upload/ticket", h.handleIssueTicket)
	g.PUT("/upload/direct/:token", h.handleDirectUpload)
}

// RegisterPublicRoutes mounts the unauthenticated file serving route.
func (h *UploadHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/uploads/:id", h.handleServe)
}

// PublicURL returns the URL the website uses to load a stored object.
func (h *UploadHandler) PublicURL(id string) string {
	return fmt.Sprintf("%s/uploads/%s", h.baseURL, id)
}

// objectIDFromURL extracts the object ID from a URL produced by PublicURL.
func (h *UploadHandler) objectIDFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	dir, id := path.Split(path.Clean(u.Path))
	if id == "" || !strings.HasSuffix(dir, "/uploads/") {
		return "", fmt.Errorf("url does not reference an uploaded file")
	}
	return id, nil
}

func (h *UploadHandler) handleUpload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to open uploaded file"})
	}
	defer src.Close()

	meta := ObjectMeta{
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Preset:      c.FormValue("preset"),
	}

	result, err := h.store.Save(c.Request().Context(), meta, src, h.maxSize)
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"url": h.PublicURL(result.ID)})
}

func (h *UploadHandler) handleDelete(c echo.Context) error {
	raw := c.QueryParam("url")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url query parameter is required"})
	}

	id, err := h.objectIDFromURL(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

type ticketRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Preset      string `json:"preset"`
}

func (h *UploadHandler) handleIssueTicket(c echo.Context) error {
	var req ticketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	t, err := h.tickets.Issue(req.FileName, req.ContentType, req.Preset)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFileName):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, ErrInvalidContentType):
			return c.JSON(http.StatusUnsupportedMediaType, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"token":      t.Token,
		"upload_url": fmt.Sprintf("%s/api/v1/upload/direct/%s", h.baseURL, t.Token),
		"expires_at": t.ExpiresAt,
	})
}

func (h *UploadHandler) handleDirectUpload(c echo.Context) error {
	t, err := h.tickets.Redeem(c.Param("token"))
	if err != nil {
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	}

	meta := ObjectMeta{
		FileName:    t.FileName,
		ContentType: t.ContentType,
		Preset:      t.Preset,
	}

	result, err := h.store.Save(c.Request().Context(), meta, c.Request().Body, h.directMaxSize)
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"url": h.PublicURL(result.ID)})
}

func (h *UploadHandler) handleServe(c echo.Context) error {
	rc, meta, err := h.store.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer rc.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Stream(http.StatusOK, meta.ContentType, rc)
}

func (h *UploadHandler) saveError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrMissingFileName):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrInvalidContentType):
		return c.JSON(http.StatusUnsupportedMediaType, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
