package siteinfo

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

func TestGetContactInfoHandler_NullWhenUnset(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.GetContactInfo(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Errorf("expected null body when record is unset, got %q", rec.Body.String())
	}
}

func TestSaveContactInfoHandler_Upserts(t *testing.T) {
	h, e := newTestHandler()
	body := `{"phone":"02-1234-5678","address":"12 Main St"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.SaveContactInfo(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h.GetContactInfo(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got ContactInfo
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Phone != "02-1234-5678" {
		t.Errorf("expected saved phone, got %s", got.Phone)
	}
}

func TestSaveContactInfoHandler_MissingPhone(t *testing.T) {
	h, e := newTestHandler()
	body := `{"address":"12 Main St"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.SaveContactInfo(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSaveFooterInfoHandler_SecondSaveOverwrites(t *testing.T) {
	h, e := newTestHandler()
	h.svc.SaveFooterInfo(context.Background(), &FooterInfo{HospitalName: "Old Name"})

	body := `{"hospital_name":"City Hospital"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.SaveFooterInfo(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := h.svc.GetFooterInfo(context.Background())
	if err != nil {
		t.Fatalf("GetFooterInfo failed: %v", err)
	}
	if got.HospitalName != "City Hospital" {
		t.Errorf("expected overwrite, got %s", got.HospitalName)
	}
}

func TestGetClinicHoursHandler(t *testing.T) {
	h, e := newTestHandler()
	h.svc.SaveClinicHours(context.Background(), &ClinicHours{WeekdayHours: "09:00-18:00"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.GetClinicHours(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got ClinicHours
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.WeekdayHours != "09:00-18:00" {
		t.Errorf("expected saved hours, got %s", got.WeekdayHours)
	}
}
