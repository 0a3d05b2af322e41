package blobstore

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FSStore persists objects on the local filesystem. Each object is a pair of
// files under the root directory: <id> with the raw bytes and <id>.json with
// the metadata.
type FSStore struct {
	root string
}

// NewFSStore creates the root directory if needed and returns the store.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &FSStore{root: root}, nil
}

func (s *FSStore) dataPath(id string) string { return filepath.Join(s.root, id) }
func (s *FSStore) metaPath(id string) string { return filepath.Join(s.root, id+".json") }

// validID reports whether id is a bare UUID. Save only ever assigns UUIDs,
// so anything else (path separators, "..", empty strings) can never name a
// stored object and must not reach the filesystem.
func validID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.String() == id
}

// Save validates inputs, writes the content and metadata to disk, and
// returns the stored metadata.
func (s *FSStore) Save(_ context.Context, meta ObjectMeta, content io.Reader, maxSize int64) (*ObjectMeta, error) {
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

	if err := os.WriteFile(s.dataPath(meta.ID), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing object: %w", err)
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		os.Remove(s.dataPath(meta.ID))
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	if err := os.WriteFile(s.metaPath(meta.ID), metaJSON, 0o644); err != nil {
		os.Remove(s.dataPath(meta.ID))
		return nil, fmt.Errorf("writing metadata: %w", err)
	}

	out := meta
	return &out, nil
}

// Open streams the object content from disk.
func (s *FSStore) Open(_ context.Context, id string) (io.ReadCloser, *ObjectMeta, error) {
	if !validID(id) {
		return nil, nil, ErrObjectNotFound
	}
	metaJSON, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrObjectNotFound
		}
		return nil, nil, fmt.Errorf("reading metadata: %w", err)
	}
	var meta ObjectMeta
	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		return nil, nil, fmt.Errorf("decoding metadata: %w", err)
	}

	f, err := os.Open(s.dataPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrObjectNotFound
		}
		return nil, nil, fmt.Errorf("opening object: %w", err)
	}
	return f, &meta, nil
}

// Delete removes the object and its metadata from disk.
func (s *FSStore) Delete(_ context.Context, id string) error {
	if !validID(id) {
		return ErrObjectNotFound
	}
	if _, err := os.Stat(s.metaPath(id)); os.IsNotExist(err) {
		return ErrObjectNotFound
	}
	if err := os.Remove(s.dataPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing object: %w", err)
	}
	if err := os.Remove(s.metaPath(id)); err != nil {
		return fmt.Errorf("removing metadata: %w", err)
	}
	return nil
}
