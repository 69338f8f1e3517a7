package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

var (
	ErrNotFound   = errors.New("object not found")
	ErrInvalidKey = errors.New("invalid object key")
)

// PublicPrefix is the URL path prefix under which stored covers are served.
// The repository persists paths of the form "uploads/<filename>" regardless of
// which backend holds the bytes.
const PublicPrefix = "uploads"

type Stat struct {
	Size         int64
	ContentType  string
	LastModified time.Time
}

// ImageStore persists cover images. Save returns the public relative path for
// the stored file; Delete is best-effort for missing files but surfaces real
// I/O failures; Open streams a stored file back for serving.
type ImageStore interface {
	Save(ctx context.Context, r io.Reader, size int64, filename string) (string, error)
	Delete(ctx context.Context, path string) error
	Open(ctx context.Context, filename string) (io.ReadCloser, Stat, error)
}

// SafeFilename rejects names that could escape the storage root.
func SafeFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidKey
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return "", ErrInvalidKey
	}
	return name, nil
}

// PublicPath builds the stored path for a filename ("uploads/<filename>").
func PublicPath(filename string) string {
	return PublicPrefix + "/" + filename
}

func contentTypeForExt(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	}
	return "application/octet-stream"
}
