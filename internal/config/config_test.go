package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("UPLOADS_DIR", "")
	t.Setenv("BODY_LIMIT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StorageBackend != "disk" {
		t.Errorf("StorageBackend = %q, want disk", cfg.StorageBackend)
	}
	if cfg.UploadsDir != "static/uploads" {
		t.Errorf("UploadsDir = %q, want static/uploads", cfg.UploadsDir)
	}
	if cfg.BodyLimit != 8*1024*1024 {
		t.Errorf("BodyLimit = %d, want 8MB", cfg.BodyLimit)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty (cache disabled)", cfg.RedisAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("BODY_LIMIT", "1024")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" || cfg.StorageBackend != "s3" || cfg.BodyLimit != 1024 || cfg.RedisDB != 3 {
		t.Errorf("Load overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "ftp")
	if _, err := Load(); err == nil {
		t.Errorf("Load accepted invalid STORAGE_BACKEND")
	}

	t.Setenv("STORAGE_BACKEND", "disk")
	t.Setenv("BODY_LIMIT", "lots")
	if _, err := Load(); err == nil {
		t.Errorf("Load accepted invalid BODY_LIMIT")
	}
}
