package model

import "time"

// Image section tags.  Sections drive which management grid an image appears
// in and which profile association it can be attached to.
const (
	ImageSectionHero      = "hero"
	ImageSectionAbout     = "about"
	ImageSectionPortfolio = "portfolio"
	ImageSectionGeneral   = "general"
)

// Image mirrors the `images` table.  URL points at the object in storage;
// StoragePath keeps the bucket-relative key so the object can be removed
// when the row is deleted or the file replaced.
type Image struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	URL         string    `json:"url"`
	AltText     *string   `json:"alt_text"`
	Section     string    `json:"section"`
	StoragePath *string   `json:"storage_path"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
