package model

import "time"

// Profile represents the site owner's identity record as stored in the
// `profiles` table.  The table tolerates multiple rows; readers always pick
// the most recently updated one.  Optional columns map to pointers so that
// absent values serialize as null rather than empty strings.
//
// HeroImageID and AboutImageID reference rows in the `images` table.  The
// resolved records are attached to HeroImage/AboutImage by the repository;
// they are not columns themselves.
type Profile struct {
	ID              uint64    `json:"id"`
	FullName        string    `json:"full_name"`
	Title           string    `json:"title"`
	Bio             string    `json:"bio"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Location        *string   `json:"location"`
	AvatarURL       *string   `json:"avatar_url"`
	LinkedinURL     *string   `json:"linkedin_url"`
	GithubURL       *string   `json:"github_url"`
	TwitterURL      *string   `json:"twitter_url"`
	WebsiteURL      *string   `json:"website_url"`
	ResumeURL       *string   `json:"resume_url"`
	HeroTitle       *string   `json:"hero_title"`
	HeroSubtitle    *string   `json:"hero_subtitle"`
	HeroDescription *string   `json:"hero_description"`
	HeroImageID     *uint64   `json:"hero_image_id"`
	AboutImageID    *uint64   `json:"about_image_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	HeroImage  *Image `json:"hero_image"`  // resolved association, nil when unset
	AboutImage *Image `json:"about_image"` // resolved association, nil when unset
}
