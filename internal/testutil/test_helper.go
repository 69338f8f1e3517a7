package testutil

import (
	"testing"
	"time"

	"github.com/zekeriya15/BookShelf-API/internal/models"
	"gorm.io/gorm"
)

// TestHelper provides utility functions for tests
type TestHelper struct {
	t *testing.T
}

func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// CreateTestReading creates a test reading with default values. An id of 0 is
// left for the repository to assign.
func (h *TestHelper) CreateTestReading(id uint, owner, title string) *models.Reading {
	if owner == "" {
		owner = "test@example.com"
	}
	if title == "" {
		title = "Test Reading"
	}

	return &models.Reading{
		ID:           id,
		OwnerEmail:   owner,
		Title:        title,
		Author:       "Test Author",
		Genre:        "Fiction",
		Pages:        300,
		CurrentPage:  0,
		DateModified: time.Now(),
		IsDeleted:    false,
	}
}

// AssertError checks if an error occurred when it should (or shouldn't)
func (h *TestHelper) AssertError(err error, shouldErr bool, testName string) {
	if (err != nil) != shouldErr {
		if shouldErr {
			h.t.Errorf("%s: expected error but got nil", testName)
		} else {
			h.t.Errorf("%s: unexpected error: %v", testName, err)
		}
	}
}

// GetRecordNotFoundError returns the error the repository yields for a
// missing row
func GetRecordNotFoundError() error {
	return gorm.ErrRecordNotFound
}
