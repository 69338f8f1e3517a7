package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore keeps cover images on the local filesystem under a fixed root
// directory. This is the default backend.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(ctx context.Context, r io.Reader, size int64, filename string) (string, error) {
	name, err := SafeFilename(filename)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		// Clean up the partial file; the caller treats this as fatal anyway.
		os.Remove(filepath.Join(s.root, name))
		return "", fmt.Errorf("write image file: %w", err)
	}

	return PublicPath(name), nil
}

// Delete removes the file referenced by a stored path ("uploads/<filename>").
// A missing file is not an error; any other failure is.
func (s *DiskStore) Delete(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	name, err := SafeFilename(filepath.Base(path))
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.root, name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete image file: %w", err)
	}
	return nil
}

func (s *DiskStore) Open(ctx context.Context, filename string) (io.ReadCloser, Stat, error) {
	name, err := SafeFilename(filename)
	if err != nil {
		return nil, Stat{}, ErrNotFound
	}

	f, err := os.Open(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Stat{}, ErrNotFound
		}
		return nil, Stat{}, fmt.Errorf("open image file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Stat{}, fmt.Errorf("stat image file: %w", err)
	}

	return f, Stat{
		Size:         info.Size(),
		ContentType:  contentTypeForExt(name),
		LastModified: info.ModTime(),
	}, nil
}
