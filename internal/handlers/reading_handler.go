package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/zekeriya15/BookShelf-API/internal/httpx"
	"github.com/zekeriya15/BookShelf-API/internal/models"
	"github.com/zekeriya15/BookShelf-API/internal/service"
	"github.com/zekeriya15/BookShelf-API/internal/validation"
)

// maxFieldLen caps the free-text form fields.
const maxFieldLen = 255

type ReadingHandler struct {
	readingService *service.ReadingService
	publicBaseURL  string
}

func NewReadingHandler(readingService *service.ReadingService, publicBaseURL string) *ReadingHandler {
	return &ReadingHandler{
		readingService: readingService,
		publicBaseURL:  strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
	}
}

func (h *ReadingHandler) baseURL(c *fiber.Ctx) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	// Fallback: infer from request.
	return strings.TrimRight(c.BaseURL(), "/")
}

// List returns the caller's readings, newest first. A missing identity yields
// an empty array rather than a 401; ?is_deleted=true|false narrows the result.
func (h *ReadingHandler) List(c *fiber.Ctx) error {
	responses := make([]models.ReadingResponse, 0)

	identity, err := httpx.LocalIdentity(c)
	if err != nil {
		return c.JSON(responses)
	}

	var isDeleted *bool
	switch c.Query("is_deleted") {
	case "true":
		v := true
		isDeleted = &v
	case "false":
		v := false
		isDeleted = &v
	}

	readings, err := h.readingService.List(identity, isDeleted)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	base := h.baseURL(c)
	for i := range readings {
		responses = append(responses, readings[i].ToResponse(base))
	}

	return c.JSON(responses)
}

func (h *ReadingHandler) Get(c *fiber.Ctx) error {
	identity, err := httpx.LocalIdentity(c)
	if err != nil {
		return httpx.Unauthorized(c, "You need to login first")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return httpx.NotFound(c, "Reading not found")
	}

	reading, err := h.readingService.Get(uint(id), identity)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(reading.ToResponse(h.baseURL(c)))
}

// Create adds a reading from a multipart form (title, author, genre, pages,
// optional image file).
func (h *ReadingHandler) Create(c *fiber.Ctx) error {
	identity, err := httpx.LocalIdentity(c)
	if err != nil {
		return httpx.Unauthorized(c, "You need to login first")
	}

	pages, _ := validation.FormInt(c.FormValue("pages"))
	input := service.CreateReadingInput{
		Title:  validation.TrimAndLimit(c.FormValue("title"), maxFieldLen),
		Author: validation.TrimAndLimit(c.FormValue("author"), maxFieldLen),
		Genre:  validation.TrimAndLimit(c.FormValue("genre"), maxFieldLen),
		Pages:  pages,
	}

	upload, closeFn, err := formImage(c)
	if err != nil {
		return httpx.BadRequest(c, "Invalid image upload")
	}
	if closeFn != nil {
		defer closeFn()
	}
	input.Image = upload

	reading, err := h.readingService.Create(c.Context(), identity, input)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"id":     reading.ID,
	})
}

// Update applies any provided multipart fields (title, author, genre, pages,
// currentPage, image) to the caller's reading.
func (h *ReadingHandler) Update(c *fiber.Ctx) error {
	identity, err := httpx.LocalIdentity(c)
	if err != nil {
		return httpx.Unauthorized(c, "You need to login first")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return httpx.NotFound(c, "Reading not found")
	}

	// Malformed numeric fields are treated as absent, like the form decoding
	// has always behaved.
	pages, _ := validation.FormInt(c.FormValue("pages"))
	currentPage, _ := validation.FormInt(c.FormValue("currentPage"))
	input := service.UpdateReadingInput{
		Title:       validation.TrimAndLimit(c.FormValue("title"), maxFieldLen),
		Author:      validation.TrimAndLimit(c.FormValue("author"), maxFieldLen),
		Genre:       validation.TrimAndLimit(c.FormValue("genre"), maxFieldLen),
		Pages:       pages,
		CurrentPage: currentPage,
	}

	upload, closeFn, err := formImage(c)
	if err != nil {
		return httpx.BadRequest(c, "Invalid image upload")
	}
	if closeFn != nil {
		defer closeFn()
	}
	input.Image = upload

	if err := h.readingService.Update(c.Context(), uint(id), identity, input); err != nil {
		return h.mapServiceError(c, err)
	}

	return httpx.Success(c, "Reading updated")
}

// RemoveImage clears the cover image from a reading.
func (h *ReadingHandler) RemoveImage(c *fiber.Ctx) error {
	identity, err := httpx.LocalIdentity(c)
	if err != nil {
		return httpx.Unauthorized(c, "You need to login first")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return httpx.NotFound(c, "Reading not found")
	}

	if err := h.readingService.RemoveImage(c.Context(), uint(id), identity); err != nil {
		return h.mapServiceError(c, err)
	}

	return httpx.Success(c, "Image removed")
}

type setDeletedRequest struct {
	IsDeleted *bool `json:"isDeleted"`
}

// SetDeleted moves a reading into or out of the trash.
func (h *ReadingHandler) SetDeleted(c *fiber.Ctx) error {
	identity, err := httpx.LocalIdentity(c)
	if err != nil {
		return httpx.Unauthorized(c, "You need to login first")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return httpx.NotFound(c, "Reading not found")
	}

	// Body errors fold into a nil isDeleted; the ownership gate must report
	// before the missing-field error does.
	var req setDeletedRequest
	_ = c.BodyParser(&req)

	if err := h.readingService.SetDeleted(uint(id), identity, req.IsDeleted); err != nil {
		return h.mapServiceError(c, err)
	}

	return httpx.Success(c, "isDeleted status updated")
}

// Delete destroys a reading and its cover image.
func (h *ReadingHandler) Delete(c *fiber.Ctx) error {
	identity, err := httpx.LocalIdentity(c)
	if err != nil {
		return httpx.Unauthorized(c, "You need to login first")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return httpx.NotFound(c, "Reading not found")
	}

	if err := h.readingService.Delete(c.Context(), uint(id), identity); err != nil {
		return h.mapServiceError(c, err)
	}

	return httpx.Success(c, "Reading deleted")
}

// PurgeTrash destroys all of the caller's soft-deleted readings.
func (h *ReadingHandler) PurgeTrash(c *fiber.Ctx) error {
	identity, err := httpx.LocalIdentity(c)
	if err != nil {
		return httpx.Unauthorized(c, "You need to login first")
	}

	if err := h.readingService.PurgeTrash(c.Context(), identity); err != nil {
		return h.mapServiceError(c, err)
	}

	return httpx.Success(c, "Deleted all Readings in trash")
}

func (h *ReadingHandler) mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return httpx.NotFound(c, "Reading not found")
	case errors.Is(err, service.ErrForbidden):
		return httpx.Forbidden(c, "Forbidden: You don't have access to this resource")
	case errors.Is(err, service.ErrMissingFields):
		return httpx.BadRequest(c, "Missing fields")
	// A missing isDeleted field has always been reported as a 404.
	case errors.Is(err, service.ErrMissingIsDeleted):
		return httpx.NotFound(c, "Missing isDeleted field")
	case errors.Is(err, service.ErrInvalidImageType):
		return httpx.BadRequest(c, "Invalid image format (only JPG, JPEG, PNG allowed)")
	case errors.Is(err, service.ErrStorage):
		return httpx.Internal(c, "Failed to store or delete image file")
	default:
		return httpx.Internal(c, "Internal server error")
	}
}

// formImage extracts the optional "image" multipart part. A part with an
// empty filename counts as no upload.
func formImage(c *fiber.Ctx) (*service.ImageUpload, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil || fileHeader.Filename == "" {
		return nil, nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	return &service.ImageUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   f,
	}, func() { _ = f.Close() }, nil
}
