package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func TestCreateHeroSlideHandler_Success(t *testing.T) {
	h, e := newTestHandler()
	body := `{"image_url":"http://cdn/banner.png","title":"Welcome","active":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.CreateHeroSlide(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateHeroSlideHandler_MissingImage(t *testing.T) {
	h, e := newTestHandler()
	body := `{"title":"Welcome"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.CreateHeroSlide(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestPublicPopupsHandler_WindowFiltered(t *testing.T) {
	h, e := newTestHandler()
	past := time.Now().Add(-48 * time.Hour)
	pastEnd := time.Now().Add(-24 * time.Hour)
	h.svc.CreatePopup(context.Background(), &Popup{Title: "Expired", Content: "c", Active: true, StartDate: &past, EndDate: &pastEnd})
	h.svc.CreatePopup(context.Background(), &Popup{Title: "Current", Content: "c", Active: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.PublicPopups(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []Popup
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 || items[0].Title != "Current" {
		t.Fatalf("expected only the current popup, got %d items", len(items))
	}
}

func TestPublicNoticeHandler_IncrementsViews(t *testing.T) {
	h, e := newTestHandler()
	n := &Notice{Title: "Hours change", Content: "New hours", Active: true}
	h.svc.CreateNotice(context.Background(), n)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(n.ID.String())
	if err := h.PublicNotice(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got Notice
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ViewCount != 1 {
		t.Errorf("expected view count 1, got %d", got.ViewCount)
	}
}

func TestPublicNoticeHandler_InactiveHidden(t *testing.T) {
	h, e := newTestHandler()
	n := &Notice{Title: "Draft", Content: "c", Active: false}
	h.svc.CreateNotice(context.Background(), n)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(n.ID.String())
	if err := h.PublicNotice(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteNoticeHandler_IDInQueryString(t *testing.T) {
	h, e := newTestHandler()
	n := &Notice{Title: "Old notice", Content: "c"}
	h.svc.CreateNotice(context.Background(), n)

	req := httptest.NewRequest(http.MethodDelete, "/?id="+n.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.DeleteNotice(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestDeletePopupHandler_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodDelete, "/?id="+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.DeletePopup(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSetPopupActiveHandler_ExplicitValue(t *testing.T) {
	h, e := newTestHandler()
	p := &Popup{Title: "Event", Content: "c", Active: false}
	h.svc.CreatePopup(context.Background(), p)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"active":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	if err := h.SetPopupActive(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Popup
	json.Unmarshal(rec.Body.Bytes(), &got)
	if !got.Active {
		t.Error("expected popup to be activated")
	}
}

func TestListNoticesHandler_CategoryFilter(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateNotice(context.Background(), &Notice{Title: "A", Content: "c", Category: "facility"})
	h.svc.CreateNotice(context.Background(), &Notice{Title: "B", Content: "c", Category: "staff"})

	req := httptest.NewRequest(http.MethodGet, "/?category=staff", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListNotices(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var result struct {
		Data  []Notice `json:"data"`
		Total int      `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &result)
	if result.Total != 1 || result.Data[0].Title != "B" {
		t.Errorf("unexpected filter result: total=%d", result.Total)
	}
}

func TestUpdateHealthInfoHandler_NotFound(t *testing.T) {
	h, e := newTestHandler()
	body := `{"title":"Flu","summary":"s","body":"b"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	if err := h.UpdateHealthInfo(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
