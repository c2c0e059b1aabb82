package storage

import (
	"io"
	"time"
)

// FileInfo describes one stored export file.
type FileInfo struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
	URL       string    `json:"url"`
}

// BlobStore holds exported report files. The filesystem implementation
// covers single-node deployments; a bucket-backed one can replace it without
// touching callers.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error)
	Get(key string) (io.ReadCloser, error)
	List(prefix string) ([]FileInfo, error)
	Delete(key string) error
	URL(key string) (string, error)
}
