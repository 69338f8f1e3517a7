package repository

import (
	"github.com/zekeriya15/BookShelf-API/internal/models"
)

// ReadingRepositoryInterface defines the contract for reading repository
// operations. List takes owner == "" to mean "all owners" (the admin view) and
// a tri-state isDeleted filter (nil = no filter).
type ReadingRepositoryInterface interface {
	Create(reading *models.Reading) error
	FindByID(id uint) (*models.Reading, error)
	List(owner string, isDeleted *bool) ([]models.Reading, error)
	CountByOwner(owner string) (int64, error)
	Update(reading *models.Reading) error
	Delete(id uint) error
}
