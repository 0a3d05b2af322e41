package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testMaxSize = 1 << 20

func seedImage(t *testing.T, store Store, fileName, contentType, content string) *ObjectMeta {
	t.Helper()
	meta := ObjectMeta{
		FileName:    fileName,
		ContentType: contentType,
	}
	result, err := store.Save(context.Background(), meta, strings.NewReader(content), testMaxSize)
	if err != nil {
		t.Fatalf("seedImage: %v", err)
	}
	return result
}

// ---------------------------------------------------------------------------
// Store tests
// ---------------------------------------------------------------------------

func TestMemoryStore_Save(t *testing.T) {
	store := NewMemoryStore()
	content := "fake-png-bytes"

	meta := ObjectMeta{
		FileName:    "banner.png",
		ContentType: "image/png",
		Preset:      "hero",
	}

	result, err := store.Save(context.Background(), meta, strings.NewReader(content), testMaxSize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID == "" {
		t.Error("expected non-empty ID")
	}
	if result.Size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), result.Size)
	}
	if result.Preset != "hero" {
		t.Errorf("expected preset hero, got %s", result.Preset)
	}
	if result.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestMemoryStore_Save_SHA256Hash(t *testing.T) {
	store := NewMemoryStore()
	content := "deterministic-bytes"

	result := seedImage(t, store, "photo.jpg", "image/jpeg", content)

	want := fmt.Sprintf("%x", sha256.Sum256([]byte(content)))
	if result.Hash != want {
		t.Errorf("expected hash %s, got %s", want, result.Hash)
	}
}

func TestMemoryStore_Save_RejectsContentType(t *testing.T) {
	store := NewMemoryStore()

	meta := ObjectMeta{FileName: "report.pdf", ContentType: "application/pdf"}
	_, err := store.Save(context.Background(), meta, strings.NewReader("x"), testMaxSize)
	if err == nil {
		t.Fatal("expected error for disallowed content type")
	}
	if !strings.Contains(err.Error(), "not allowed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMemoryStore_Save_FileTooLarge(t *testing.T) {
	store := NewMemoryStore()

	meta := ObjectMeta{FileName: "big.png", ContentType: "image/png"}
	_, err := store.Save(context.Background(), meta, strings.NewReader(strings.Repeat("a", 100)), 50)
	if err != ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestMemoryStore_Save_MissingFileName(t *testing.T) {
	store := NewMemoryStore()

	meta := ObjectMeta{ContentType: "image/png"}
	_, err := store.Save(context.Background(), meta, strings.NewReader("x"), testMaxSize)
	if err != ErrMissingFileName {
		t.Fatalf("expected ErrMissingFileName, got %v", err)
	}
}

func TestMemoryStore_Open(t *testing.T) {
	store := NewMemoryStore()
	content := "gif-bytes"
	saved := seedImage(t, store, "anim.gif", "image/gif", content)

	rc, meta, err := store.Open(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if string(got) != content {
		t.Errorf("expected content %q, got %q", content, got)
	}
	if meta.ContentType != "image/gif" {
		t.Errorf("expected content type image/gif, got %s", meta.ContentType)
	}
}

func TestMemoryStore_OpenNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, _, err := store.Open(context.Background(), "nonexistent")
	if err != ErrObjectNotFound {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	saved := seedImage(t, store, "temp.webp", "image/webp", "webp-bytes")

	if err := store.Delete(context.Background(), saved.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := store.Open(context.Background(), saved.ID); err != ErrObjectNotFound {
		t.Errorf("expected ErrObjectNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_DeleteNotFound(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Delete(context.Background(), "nonexistent"); err != ErrObjectNotFound {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	const goroutines = 20

	var wg sync.WaitGroup
	ids := make([]string, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			meta := ObjectMeta{
				FileName:    fmt.Sprintf("img-%d.png", i),
				ContentType: "image/png",
			}
			result, err := store.Save(context.Background(), meta, strings.NewReader("bytes"), testMaxSize)
			if err != nil {
				t.Errorf("save %d: %v", i, err)
				return
			}
			ids[i] = result.ID
		}(i)
	}
	wg.Wait()

	for i, id := range ids {
		if id == "" {
			continue
		}
		rc, _, err := store.Open(context.Background(), id)
		if err != nil {
			t.Errorf("open %d: %v", i, err)
			continue
		}
		rc.Close()
	}
}

func TestFSStore_SaveOpenDelete(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	content := "jpeg-bytes"

	saved := seedImage(t, store, "doctor.jpg", "image/jpeg", content)
	if saved.Size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), saved.Size)
	}

	rc, meta, err := store.Open(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got, _ := io.ReadAll(rc)
	rc.Close()
	if string(got) != content {
		t.Errorf("expected content %q, got %q", content, got)
	}
	if meta.FileName != "doctor.jpg" {
		t.Errorf("expected file name doctor.jpg, got %s", meta.FileName)
	}

	if err := store.Delete(context.Background(), saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := store.Open(context.Background(), saved.ID); err != ErrObjectNotFound {
		t.Errorf("expected ErrObjectNotFound after delete, got %v", err)
	}
}

func TestFSStore_DeleteNotFound(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	if err := store.Delete(context.Background(), "nonexistent"); err != ErrObjectNotFound {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestFSStore_RejectsNonUUIDID(t *testing.T) {
	base := t.TempDir()
	store, err := NewFSStore(filepath.Join(base, "uploads"))
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}

	// Files outside the upload root must stay unreachable even if an id
	// containing path separators makes it past the router.
	secret := filepath.Join(base, "secret")
	if err := os.WriteFile(secret, []byte("keep-out"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := os.WriteFile(secret+".json", []byte(`{"id":"secret"}`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	for _, id := range []string{"../secret", "..", "secret/../secret", ""} {
		if _, _, err := store.Open(context.Background(), id); err != ErrObjectNotFound {
			t.Errorf("open %q: expected ErrObjectNotFound, got %v", id, err)
		}
		if err := store.Delete(context.Background(), id); err != ErrObjectNotFound {
			t.Errorf("delete %q: expected ErrObjectNotFound, got %v", id, err)
		}
	}

	if _, err := os.Stat(secret); err != nil {
		t.Fatalf("outside-root file should be untouched: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Ticket tests
// ---------------------------------------------------------------------------

func TestTicketStore_IssueAndRedeem(t *testing.T) {
	ts := NewTicketStore(time.Minute)

	ticket, err := ts.Issue("large.png", "image/png", "gallery")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if ticket.Token == "" {
		t.Fatal("expected non-empty token")
	}

	redeemed, err := ts.Redeem(ticket.Token)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if redeemed.FileName != "large.png" || redeemed.Preset != "gallery" {
		t.Errorf("unexpected ticket contents: %+v", redeemed)
	}
}

func TestTicketStore_RedeemIsSingleUse(t *testing.T) {
	ts := NewTicketStore(time.Minute)

	ticket, err := ts.Issue("once.png", "image/png", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := ts.Redeem(ticket.Token); err != nil {
		t.Fatalf("first redeem: %v", err)
	}
	if _, err := ts.Redeem(ticket.Token); err != ErrTicketInvalid {
		t.Errorf("expected ErrTicketInvalid on second redeem, got %v", err)
	}
}

func TestTicketStore_RedeemExpired(t *testing.T) {
	ts := NewTicketStore(time.Minute)
	now := time.Now()
	ts.now = func() time.Time { return now }

	ticket, err := ts.Issue("stale.png", "image/png", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	ts.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, err := ts.Redeem(ticket.Token); err != ErrTicketInvalid {
		t.Errorf("expected ErrTicketInvalid for expired ticket, got %v", err)
	}
}

func TestTicketStore_IssueRejectsContentType(t *testing.T) {
	ts := NewTicketStore(time.Minute)

	if _, err := ts.Issue("malware.exe", "application/x-msdownload", ""); err == nil {
		t.Fatal("expected error for disallowed content type")
	}
}

// ---------------------------------------------------------------------------
// Handler tests
// ---------------------------------------------------------------------------

func newTestHandler() (*UploadHandler, Store, *echo.Echo) {
	store := NewMemoryStore()
	handler := NewUploadHandler(store, NewTicketStore(time.Minute), "http://localhost:8000", testMaxSize, 4*testMaxSize)
	e := echo.New()
	admin := e.Group("/api/v1")
	handler.RegisterAdminRoutes(admin)
	handler.RegisterPublicRoutes(e.Group(""))
	return handler, store, e
}

func multipartImage(t *testing.T, fileName, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	hdr.Set("Content-Type", contentType)
	part, err := writer.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte(content))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	_, _, e := newTestHandler()

	body, contentType := multipartImage(t, "slide.png", "image/png", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var result map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("error unmarshaling response: %v", err)
	}
	if !strings.HasPrefix(result["url"], "http://localhost:8000/uploads/") {
		t.Errorf("unexpected url: %s", result["url"])
	}
}

func TestUploadHandler_Upload_RejectsNonImage(t *testing.T) {
	_, _, e := newTestHandler()

	body, contentType := multipartImage(t, "doc.pdf", "application/pdf", "pdf-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected status 415, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUploadHandler_Upload_MissingFile(t *testing.T) {
	_, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestUploadHandler_DeleteByURL(t *testing.T) {
	handler, store, e := newTestHandler()
	saved := seedImage(t, store, "old.jpg", "image/jpeg", "jpeg-bytes")

	target := "/api/v1/upload?url=" + handler.PublicURL(saved.ID)
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, _, err := store.Open(context.Background(), saved.ID); err != ErrObjectNotFound {
		t.Errorf("expected object to be removed, got %v", err)
	}
}

func TestUploadHandler_DeleteByURL_NotFound(t *testing.T) {
	_, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/upload?url=http://localhost:8000/uploads/missing", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestUploadHandler_DeleteByURL_MissingParam(t *testing.T) {
	_, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/upload", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestUploadHandler_Serve(t *testing.T) {
	_, store, e := newTestHandler()
	saved := seedImage(t, store, "logo.png", "image/png", "logo-bytes")

	req := httptest.NewRequest(http.MethodGet, "/uploads/"+saved.ID, nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "logo-bytes" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected content type image/png, got %s", ct)
	}
}

func TestUploadHandler_DirectUploadFlow(t *testing.T) {
	_, _, e := newTestHandler()

	// Issue a ticket.
	ticketBody, _ := json.Marshal(map[string]string{
		"file_name":    "huge.png",
		"content_type": "image/png",
		"preset":       "gallery",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/ticket", bytes.NewReader(ticketBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for ticket, got %d: %s", rec.Code, rec.Body.String())
	}

	var issued map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &issued); err != nil {
		t.Fatalf("unmarshal ticket: %v", err)
	}
	token, _ := issued["token"].(string)
	if token == "" {
		t.Fatal("expected token in ticket response")
	}

	// Redeem it with a direct PUT.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/upload/direct/"+token, strings.NewReader("huge-png-bytes"))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for direct upload, got %d: %s", rec.Code, rec.Body.String())
	}

	// A second redeem of the same token must fail.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/upload/direct/"+token, strings.NewReader("again"))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status 403 on token reuse, got %d", rec.Code)
	}
}
