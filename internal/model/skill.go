package model

import "time"

// Skill mirrors the `skills` table.  Category is a free-text grouping key:
// the public site groups skills by literal string equality, so two skills
// belong to the same group only when their category strings match exactly.
type Skill struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Level      int       `json:"level"` // proficiency 0-100
	IconURL    *string   `json:"icon_url"`
	Color      string    `json:"color"` // hex color used by the skill badge
	SortOrder  int       `json:"sort_order"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SkillCategory mirrors the `skill_categories` table.  It normalizes the
// category names offered in the admin UI's select box.  It is intentionally
// not a foreign key target: Skill.Category stays free text.
type SkillCategory struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
