// Package blobstore stores uploaded site images and hands their public URLs
// back to the admin editors. It defines the Store interface, an in-memory
// implementation for development and tests, a filesystem implementation for
// production, and Echo handlers for multipart upload, delete-by-URL, and the
// direct-upload path used for large files.
package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrInvalidContentType = errors.New("content type is not allowed")
	ErrMissingFileName    = errors.New("file name is required")
)

// AllowedContentTypes lists the image MIME types the editors may upload.
var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ObjectMeta describes a stored image.
type ObjectMeta struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Preset      string    `json:"preset,omitempty"`
	Hash        string    `json:"hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store defines the contract for image storage backends.
type Store interface {
	Save(ctx context.Context, meta ObjectMeta, content io.Reader, maxSize int64) (*ObjectMeta, error)
	Open(ctx context.Context, id string) (io.ReadCloser, *ObjectMeta, error)
	Delete(ctx context.Context, id string) error
}

// ValidateContentType rejects MIME types outside the allowed image set.
func ValidateContentType(contentType string) error {
	// Strip any parameters (e.g. "image/jpeg; charset=binary").
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if !AllowedContentTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("%w: %s", ErrInvalidContentType, contentType)
	}
	return nil
}

// readAll reads content up to maxSize bytes and errors once exceeded.
func readAll(content io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(content, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

type storedObject struct {
	meta    ObjectMeta
	content []byte
}

// MemoryStore is a thread-safe, in-memory Store for testing and development.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]*storedObject
}

// NewMemoryStore returns a ready-to-use MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]*storedObject)}
}

// Save validates inputs, reads the content, computes a SHA-256 hash, and
// stores the object in memory.
func (s *MemoryStore) Save(_ context.Context, meta ObjectMeta, content io.Reader, maxSize int64) (*ObjectMeta, error) {
	if meta.FileName == "" {
		return nil, ErrMissingFileName
	}
	if err := ValidateContentType(meta.ContentType); err != nil {
		return nil, err
	}

	data, err := readAll(content, maxSize)
	if err != nil {
		return nil, err
	}

	h := sha256.Sum256(data)
	meta.ID = uuid.New().String()
	meta.Size = int64(len(data))
	meta.Hash = fmt.Sprintf("%x", h)
	meta.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.objects[meta.ID] = &storedObject{meta: meta, content: data}
	s.mu.Unlock()

	out := meta // copy
	return &out, nil
}

// Open returns an io.ReadCloser over the object content and its metadata.
func (s *MemoryStore) Open(_ context.Context, id string) (io.ReadCloser, *ObjectMeta, error) {
	s.mu.RLock()
	obj, ok := s.objects[id]
	s.mu.RUnlock()

	if !ok {
		return nil, nil, ErrObjectNotFound
	}

	meta := obj.meta // copy
	return io.NopCloser(bytes.NewReader(obj.content)), &meta, nil
}

// Delete removes an object by ID.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[id]; !ok {
		return ErrObjectNotFound
	}
	delete(s.objects, id)
	return nil
}
