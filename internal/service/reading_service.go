package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/zekeriya15/BookShelf-API/internal/cache"
	"github.com/zekeriya15/BookShelf-API/internal/models"
	"github.com/zekeriya15/BookShelf-API/internal/repository"
	"github.com/zekeriya15/BookShelf-API/internal/storage"
	"github.com/zekeriya15/BookShelf-API/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("reading not found")
	ErrForbidden        = errors.New("forbidden")
	ErrMissingFields    = errors.New("missing fields")
	ErrMissingIsDeleted = errors.New("missing isDeleted field")
	ErrInvalidImageType = errors.New("invalid image format (only JPG, JPEG, PNG allowed)")
	ErrStorage          = errors.New("storage failure")
)

// ImageUpload carries an uploaded cover image into the service.
type ImageUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type CreateReadingInput struct {
	Title  string
	Author string
	Genre  string
	Pages  *int
	Image  *ImageUpload
}

type UpdateReadingInput struct {
	Title       string
	Author      string
	Genre       string
	Pages       *int
	CurrentPage *int
	Image       *ImageUpload
}

type ReadingService struct {
	readingRepo  repository.ReadingRepositoryInterface
	images       storage.ImageStore
	readingCache *cache.ReadingCache
}

func NewReadingService(readingRepo repository.ReadingRepositoryInterface, images storage.ImageStore, readingCache *cache.ReadingCache) *ReadingService {
	return &ReadingService{readingRepo: readingRepo, images: images, readingCache: readingCache}
}

// authorize is the single access gate for every per-resource operation:
// load by id, then owner-or-admin. Get, update, image removal, soft-delete
// toggling and hard delete all go through here; they must never diverge.
func (s *ReadingService) authorize(id uint, identity string) (*models.Reading, error) {
	reading, ok := s.readingCache.GetReading(id)
	if !ok {
		var err error
		reading, err = s.readingRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		_ = s.readingCache.SetReading(reading)
	}

	if reading.OwnerEmail == identity || identity == models.AdminIdentity {
		return reading, nil
	}

	return nil, ErrForbidden
}

// List returns the caller's readings newest-modified first. The admin identity
// sees every owner's rows; isDeleted is a tri-state filter (nil = all).
func (s *ReadingService) List(identity string, isDeleted *bool) ([]models.Reading, error) {
	owner := identity
	if identity == models.AdminIdentity {
		owner = ""
	}
	return s.readingRepo.List(owner, isDeleted)
}

func (s *ReadingService) Get(id uint, identity string) (*models.Reading, error) {
	return s.authorize(id, identity)
}

func (s *ReadingService) Create(ctx context.Context, identity string, input CreateReadingInput) (*models.Reading, error) {
	if input.Title == "" || input.Author == "" || input.Genre == "" || input.Pages == nil || *input.Pages <= 0 {
		return nil, ErrMissingFields
	}

	imagePath := ""
	if input.Image != nil {
		path, err := s.saveImage(ctx, identity, input.Image)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	reading := &models.Reading{
		OwnerEmail:   identity,
		ImagePath:    imagePath,
		Title:        input.Title,
		Author:       input.Author,
		Genre:        input.Genre,
		Pages:        *input.Pages,
		CurrentPage:  0,
		DateModified: time.Now(),
		IsDeleted:    false,
	}

	if err := s.readingRepo.Create(reading); err != nil {
		return nil, err
	}

	return reading, nil
}

func (s *ReadingService) Update(ctx context.Context, id uint, identity string, input UpdateReadingInput) error {
	reading, err := s.authorize(id, identity)
	if err != nil {
		return err
	}

	// Reject a bad image before touching anything, so a validation failure
	// never partially applies the mutation.
	if input.Image != nil {
		if _, ok := validation.ImageExt(input.Image.Filename); !ok {
			return ErrInvalidImageType
		}
	}

	if input.Title != "" {
		reading.Title = input.Title
	}
	if input.Author != "" {
		reading.Author = input.Author
	}
	if input.Genre != "" {
		reading.Genre = input.Genre
	}
	if input.Pages != nil {
		reading.Pages = *input.Pages
	}
	if input.CurrentPage != nil {
		reading.CurrentPage = *input.CurrentPage
	}

	if input.Image != nil {
		// Replace the old file first; file ops and the row commit are two
		// independent steps with no two-phase guarantee.
		if reading.ImagePath != "" {
			if err := s.images.Delete(ctx, reading.ImagePath); err != nil {
				return fmt.Errorf("%w: %v", ErrStorage, err)
			}
		}
		path, err := s.saveImage(ctx, identity, input.Image)
		if err != nil {
			return err
		}
		reading.ImagePath = path
	}

	reading.DateModified = time.Now()
	if err := s.readingRepo.Update(reading); err != nil {
		return err
	}
	_ = s.readingCache.InvalidateReading(id)

	return nil
}

// RemoveImage deletes the stored cover file and clears the reference.
func (s *ReadingService) RemoveImage(ctx context.Context, id uint, identity string) error {
	reading, err := s.authorize(id, identity)
	if err != nil {
		return err
	}

	if reading.ImagePath != "" {
		if err := s.images.Delete(ctx, reading.ImagePath); err != nil {
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}

	reading.ImagePath = ""
	reading.DateModified = time.Now()
	if err := s.readingRepo.Update(reading); err != nil {
		return err
	}
	_ = s.readingCache.InvalidateReading(id)

	return nil
}

// SetDeleted toggles the soft-delete flag. The row and its image stay intact.
// isDeleted is nil when the request body omitted the field; the ownership gate
// runs before that is reported.
func (s *ReadingService) SetDeleted(id uint, identity string, isDeleted *bool) error {
	reading, err := s.authorize(id, identity)
	if err != nil {
		return err
	}

	if isDeleted == nil {
		return ErrMissingIsDeleted
	}

	reading.IsDeleted = *isDeleted
	reading.DateModified = time.Now()
	if err := s.readingRepo.Update(reading); err != nil {
		return err
	}
	_ = s.readingCache.InvalidateReading(id)

	return nil
}

// Delete destroys the row, deleting the cover file first (best-effort for a
// missing file, fatal for any other storage error).
func (s *ReadingService) Delete(ctx context.Context, id uint, identity string) error {
	reading, err := s.authorize(id, identity)
	if err != nil {
		return err
	}

	if reading.ImagePath != "" {
		if err := s.images.Delete(ctx, reading.ImagePath); err != nil {
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}

	if err := s.readingRepo.Delete(id); err != nil {
		return err
	}
	_ = s.readingCache.InvalidateReading(id)

	return nil
}

// PurgeTrash destroys all of the caller's soft-deleted readings. Rows are
// deleted one at a time; a failure mid-loop leaves earlier deletions in place.
func (s *ReadingService) PurgeTrash(ctx context.Context, identity string) error {
	trashed := true
	readings, err := s.readingRepo.List(identity, &trashed)
	if err != nil {
		return err
	}

	for i := range readings {
		reading := &readings[i]
		if reading.ImagePath != "" {
			if err := s.images.Delete(ctx, reading.ImagePath); err != nil {
				return fmt.Errorf("%w: %v", ErrStorage, err)
			}
		}
		if err := s.readingRepo.Delete(reading.ID); err != nil {
			return err
		}
		_ = s.readingCache.InvalidateReading(reading.ID)
	}

	return nil
}

// saveImage validates the upload and stores it under the caller's next
// count-based index. The index reuses the current row count, so a delete
// followed by a create can produce the same filename and overwrite the old
// file. That matches the historical naming scheme.
func (s *ReadingService) saveImage(ctx context.Context, identity string, img *ImageUpload) (string, error) {
	ext, ok := validation.ImageExt(img.Filename)
	if !ok {
		return "", ErrInvalidImageType
	}

	index, err := s.readingRepo.CountByOwner(identity)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%d.%s", validation.LocalPart(identity), index, ext)
	path, err := s.images.Save(ctx, img.Reader, img.Size, filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return path, nil
}
