package model

import "time"

// Project publication states.  Only published projects are visible on the
// public site; drafts show up exclusively in the authenticated admin views.
const (
	ProjectStatusPublished = "published"
	ProjectStatusDraft     = "draft"
)

// Project mirrors the `projects` table.  TechStack is stored as a JSON array
// in a TEXT column and decoded by the repository; tags keep their insertion
// order.
type Project struct {
	ID               uint64    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	ImageURL         *string   `json:"image_url"`
	DemoURL          *string   `json:"demo_url"`
	RepoURL          *string   `json:"repo_url"`
	TechStack        []string  `json:"tech_stack"`
	Status           string    `json:"status"` // published | draft
	IsFeatured       bool      `json:"is_featured"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
