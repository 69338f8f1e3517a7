package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

func LoadS3ConfigFromEnv() (S3Config, error) {
	cfg := S3Config{
		Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		Region:    strings.TrimSpace(os.Getenv("S3_REGION")),
		Bucket:    strings.TrimSpace(os.Getenv("S3_BUCKET")),
		AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
	}
	useSSL := strings.TrimSpace(os.Getenv("S3_USE_SSL"))
	if useSSL == "" {
		cfg.UseSSL = false
	} else {
		b, err := strconv.ParseBool(useSSL)
		if err != nil {
			return S3Config{}, fmt.Errorf("invalid S3_USE_SSL: %w", err)
		}
		cfg.UseSSL = b
	}

	if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return S3Config{}, errors.New("missing required S3 env: S3_ENDPOINT, S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY")
	}
	// Region can be empty for MinIO.
	return cfg, nil
}

// S3Store keeps cover images in an S3/MinIO bucket under the "covers/" prefix.
// Selected with STORAGE_BACKEND=s3; satisfies the same contract as DiskStore,
// so stored paths in the database stay "uploads/<filename>" either way.
type S3Store struct {
	client *minio.Client
	bucket string
}

const s3KeyPrefix = "covers/"

func NewS3Store(cfg S3Config) (*S3Store, error) {
	cl, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &S3Store{client: cl, bucket: cfg.Bucket}, nil
}

func (s *S3Store) Save(ctx context.Context, r io.Reader, size int64, filename string) (string, error) {
	name, err := SafeFilename(filename)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, s.bucket, s3KeyPrefix+name, r, size, minio.PutObjectOptions{
		ContentType: contentTypeForExt(name),
	})
	if err != nil {
		return "", fmt.Errorf("put cover object: %w", err)
	}

	return PublicPath(name), nil
}

func (s *S3Store) Delete(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	name, err := SafeFilename(baseName(path))
	if err != nil {
		return err
	}
	// RemoveObject is a no-op for missing keys, matching the disk backend.
	if err := s.client.RemoveObject(ctx, s.bucket, s3KeyPrefix+name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove cover object: %w", err)
	}
	return nil
}

func (s *S3Store) Open(ctx context.Context, filename string) (io.ReadCloser, Stat, error) {
	name, err := SafeFilename(filename)
	if err != nil {
		return nil, Stat{}, ErrNotFound
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s3KeyPrefix+name, minio.GetObjectOptions{})
	if err != nil {
		return nil, Stat{}, fmt.Errorf("get cover object: %w", err)
	}

	st, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && (resp.StatusCode == 404 || resp.Code == "NoSuchKey") {
			return nil, Stat{}, ErrNotFound
		}
		return nil, Stat{}, fmt.Errorf("stat cover object: %w", err)
	}

	return obj, Stat{
		Size:         st.Size,
		ContentType:  st.ContentType,
		LastModified: st.LastModified,
	}, nil
}

func baseName(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
