package models

import (
	"strings"
	"time"
)

// AdminIdentity is the reserved identity value that bypasses ownership
// filtering. It is never a valid email, so it cannot collide with a real user.
const AdminIdentity = "__admin__"

type Reading struct {
	ID uint `gorm:"primarykey" json:"id"`

	OwnerEmail   string    `gorm:"not null;index" json:"-"`
	ImagePath    string    `json:"-"`
	Title        string    `gorm:"not null" json:"title"`
	Author       string    `gorm:"not null" json:"author"`
	Genre        string    `gorm:"not null" json:"genre"`
	Pages        int       `gorm:"not null" json:"pages"`
	CurrentPage  int       `gorm:"not null;default:0" json:"current_page"`
	DateModified time.Time `gorm:"not null;index" json:"date_modified"`
	IsDeleted    bool      `gorm:"not null;default:false" json:"is_deleted"`
}

type ReadingResponse struct {
	ID           uint    `json:"id"`
	ImageURL     *string `json:"imageUrl"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	Genre        string  `json:"genre"`
	Pages        int     `json:"pages"`
	CurrentPage  int     `json:"currentPage"`
	DateModified string  `json:"dateModified"`
	IsDeleted    bool    `json:"isDeleted"`
}

// ToResponse serializes the reading for API output. baseURL is the public base
// URL of the service (no trailing slash); the cover URL is absolute or null.
func (r *Reading) ToResponse(baseURL string) ReadingResponse {
	var imageURL *string
	if r.ImagePath != "" {
		u := strings.TrimRight(baseURL, "/") + "/" + r.ImagePath
		imageURL = &u
	}

	return ReadingResponse{
		ID:           r.ID,
		ImageURL:     imageURL,
		Title:        r.Title,
		Author:       r.Author,
		Genre:        r.Genre,
		Pages:        r.Pages,
		CurrentPage:  r.CurrentPage,
		DateModified: r.DateModified.Format(time.RFC3339),
		IsDeleted:    r.IsDeleted,
	}
}
