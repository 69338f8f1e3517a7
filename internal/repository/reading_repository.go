package repository

import (
	"github.com/zekeriya15/BookShelf-API/internal/models"
	"gorm.io/gorm"
)

type ReadingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

func (r *ReadingRepository) Create(reading *models.Reading) error {
	return r.db.Create(reading).Error
}

func (r *ReadingRepository) FindByID(id uint) (*models.Reading, error) {
	var reading models.Reading
	err := r.db.First(&reading, id).Error
	return &reading, err
}

// List returns readings newest-modified first. An empty owner skips the
// ownership filter entirely (admin view); a nil isDeleted skips that filter.
func (r *ReadingRepository) List(owner string, isDeleted *bool) ([]models.Reading, error) {
	var readings []models.Reading

	query := r.db.Model(&models.Reading{})
	if owner != "" {
		query = query.Where("owner_email = ?", owner)
	}
	if isDeleted != nil {
		query = query.Where("is_deleted = ?", *isDeleted)
	}

	err := query.Order("date_modified DESC").Find(&readings).Error
	return readings, err
}

func (r *ReadingRepository) CountByOwner(owner string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Reading{}).Where("owner_email = ?", owner).Count(&count).Error
	return count, err
}

func (r *ReadingRepository) Update(reading *models.Reading) error {
	return r.db.Save(reading).Error
}

func (r *ReadingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Reading{}, id).Error
}
