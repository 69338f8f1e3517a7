package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zekeriya15/BookShelf-API/internal/httpx"
	"github.com/zekeriya15/BookShelf-API/internal/storage"
)

// MediaHandler serves stored cover images from whichever backend is active.
type MediaHandler struct {
	images storage.ImageStore
}

func NewMediaHandler(images storage.ImageStore) *MediaHandler {
	return &MediaHandler{images: images}
}

func (h *MediaHandler) GetUpload(c *fiber.Ctx) error {
	filename := c.Params("filename")

	f, st, err := h.images.Open(c.Context(), filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return httpx.NotFound(c, "Not found")
		}
		return httpx.Internal(c, "Failed to read image file")
	}

	if st.ContentType != "" {
		c.Set(fiber.HeaderContentType, st.ContentType)
	}
	if !st.LastModified.IsZero() {
		c.Set(fiber.HeaderLastModified, st.LastModified.UTC().Format(time.RFC1123))
	}

	if st.Size > 0 {
		return c.SendStream(f, int(st.Size))
	}
	return c.SendStream(f)
}
