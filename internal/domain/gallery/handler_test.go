package gallery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func TestCreateHandler_Success(t *testing.T) {
	h, e := newTestHandler()
	body := `{"title":"New Lobby","image_url":"http://cdn/lobby.jpg","category":"facility","active":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateHandler_MissingImage(t *testing.T) {
	h, e := newTestHandler()
	body := `{"title":"New Lobby"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestPublicHandler_CategoryFilter(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(context.Background(), &Item{Title: "Lobby", ImageURL: "u", Category: "facility", Active: true})
	h.svc.Create(context.Background(), &Item{Title: "Open House", ImageURL: "u", Category: "event", Active: true})
	h.svc.Create(context.Background(), &Item{Title: "Old Ward", ImageURL: "u", Category: "facility", Active: false})

	req := httptest.NewRequest(http.MethodGet, "/?category=facility", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Public(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []Item
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 || items[0].Title != "Lobby" {
		t.Fatalf("expected only the active facility item, got %d items", len(items))
	}
}

func TestDeleteHandler_IDInQueryString(t *testing.T) {
	h, e := newTestHandler()
	it := &Item{Title: "Lobby", ImageURL: "u"}
	h.svc.Create(context.Background(), it)

	req := httptest.NewRequest(http.MethodDelete, "/?id="+it.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestListHandler_IncludesInactive(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(context.Background(), &Item{Title: "Lobby", ImageURL: "u", Active: true})
	h.svc.Create(context.Background(), &Item{Title: "Old Ward", ImageURL: "u", Active: false})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Total int `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 2 {
		t.Errorf("expected admin list to include inactive rows, total 2, got %d", resp.Total)
	}
}

func TestSetActiveHandler_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("00000000-0000-0000-0000-000000000001")
	if err := h.SetActive(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
