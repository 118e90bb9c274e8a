// This file defines the profile repository. The `profiles` table is
// singleton-ish: the application tolerates multiple rows and always works
// against the most recently updated one. A profile optionally references two
// rows in `images` (hero and about); Get resolves both associations and
// returns a fully populated record so callers never deal with bare ids.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

// ProfileRepo encapsulates all database queries related to profiles.
type ProfileRepo struct {
	db *sql.DB

	// joinUnsupported flips to 1 after the first failed attempt at the
	// joined select, after which Get resolves images with independent
	// lookups. Both paths produce identical shapes; callers cannot tell
	// which one ran.
	joinUnsupported atomic.Bool
}

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

const profileColumns = `id, full_name, title, bio, email, phone, location, avatar_url,
	linkedin_url, github_url, twitter_url, website_url, resume_url,
	hero_title, hero_subtitle, hero_description, hero_image_id, about_image_id,
	created_at, updated_at`

// ProfileDraft carries the writable columns for create/update. Pointer
// fields left nil clear the column.
type ProfileDraft struct {
	FullName        string
	Title           string
	Bio             string
	Email           string
	Phone           *string
	Location        *string
	AvatarURL       *string
	LinkedinURL     *string
	GithubURL       *string
	TwitterURL      *string
	WebsiteURL      *string
	ResumeURL       *string
	HeroTitle       *string
	HeroSubtitle    *string
	HeroDescription *string
}

// Get returns the most recently updated profile with both image
// associations resolved, or (nil, nil) when no profile exists. A missing
// profile is a valid state, not an error.
func (r *ProfileRepo) Get(ctx context.Context) (*model.Profile, error) {
	if !r.joinUnsupported.Load() {
		p, err := r.getJoined(ctx)
		switch {
		case err == nil:
			return p, nil
		case errors.Is(err, sql.ErrNoRows):
			return nil, nil
		default:
			// Joined select failed for a non-row reason; remember and
			// fall through to the multi-query path.
			r.joinUnsupported.Store(true)
		}
	}
	return r.getSplit(ctx)
}

// getJoined resolves the profile and both images in a single round trip.
func (r *ProfileRepo) getJoined(ctx context.Context) (*model.Profile, error) {
	const q = `SELECT p.id, p.full_name, p.title, p.bio, p.email, p.phone, p.location, p.avatar_url,
	       p.linkedin_url, p.github_url, p.twitter_url, p.website_url, p.resume_url,
	       p.hero_title, p.hero_subtitle, p.hero_description, p.hero_image_id, p.about_image_id,
	       p.created_at, p.updated_at,
	       hi.id, hi.name, hi.description, hi.url, hi.alt_text, hi.section, hi.storage_path, hi.is_active, hi.sort_order, hi.created_at, hi.updated_at,
	       ai.id, ai.name, ai.description, ai.url, ai.alt_text, ai.section, ai.storage_path, ai.is_active, ai.sort_order, ai.created_at, ai.updated_at
	FROM profiles p
	LEFT JOIN images hi ON hi.id = p.hero_image_id
	LEFT JOIN images ai ON ai.id = p.about_image_id
	ORDER BY p.updated_at DESC
	LIMIT 1`

	var (
		p    model.Profile
		hero nullableImage
		abt  nullableImage
	)
	dest := append(profileDest(&p), hero.dest()...)
	dest = append(dest, abt.dest()...)
	if err := r.db.QueryRowContext(ctx, q).Scan(dest...); err != nil {
		return nil, err
	}
	p.HeroImage = hero.toImage()
	p.AboutImage = abt.toImage()
	return &p, nil
}

// getSplit resolves the profile first, then each referenced image with an
// independent lookup. Used when the joined select is unavailable.
func (r *ProfileRepo) getSplit(ctx context.Context) (*model.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles ORDER BY updated_at DESC LIMIT 1`
	var p model.Profile
	if err := r.db.QueryRowContext(ctx, q).Scan(profileDest(&p)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if p.HeroImageID != nil {
		img, err := r.lookupImage(ctx, *p.HeroImageID)
		if err != nil {
			return nil, err
		}
		p.HeroImage = img
	}
	if p.AboutImageID != nil {
		img, err := r.lookupImage(ctx, *p.AboutImageID)
		if err != nil {
			return nil, err
		}
		p.AboutImage = img
	}
	return &p, nil
}

func (r *ProfileRepo) lookupImage(ctx context.Context, id uint64) (*model.Image, error) {
	const q = `SELECT id, name, description, url, alt_text, section, storage_path, is_active, sort_order, created_at, updated_at
	FROM images WHERE id = ?`
	var img model.Image
	err := r.db.QueryRowContext(ctx, q, id).Scan(&img.ID, &img.Name, &img.Description, &img.URL,
		&img.AltText, &img.Section, &img.StoragePath, &img.IsActive, &img.SortOrder,
		&img.CreatedAt, &img.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Dangling reference; treat the association as unset.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// Upsert updates the most recently updated profile with the draft, creating
// a profile when none exists. It is idempotent with respect to a missing
// profile and returns the persisted record with associations resolved.
func (r *ProfileRepo) Upsert(ctx context.Context, d ProfileDraft) (*model.Profile, error) {
	var id uint64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM profiles ORDER BY updated_at DESC LIMIT 1`).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO profiles (full_name, title, bio, email, phone, location, avatar_url,
			 linkedin_url, github_url, twitter_url, website_url, resume_url,
			 hero_title, hero_subtitle, hero_description)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			d.FullName, d.Title, d.Bio, d.Email, d.Phone, d.Location, d.AvatarURL,
			d.LinkedinURL, d.GithubURL, d.TwitterURL, d.WebsiteURL, d.ResumeURL,
			d.HeroTitle, d.HeroSubtitle, d.HeroDescription)
		if err != nil {
			return nil, err
		}
		if _, err := res.LastInsertId(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if _, err := r.db.ExecContext(ctx,
			`UPDATE profiles SET full_name=?, title=?, bio=?, email=?, phone=?, location=?, avatar_url=?,
			 linkedin_url=?, github_url=?, twitter_url=?, website_url=?, resume_url=?,
			 hero_title=?, hero_subtitle=?, hero_description=?, updated_at=CURRENT_TIMESTAMP
			 WHERE id=?`,
			d.FullName, d.Title, d.Bio, d.Email, d.Phone, d.Location, d.AvatarURL,
			d.LinkedinURL, d.GithubURL, d.TwitterURL, d.WebsiteURL, d.ResumeURL,
			d.HeroTitle, d.HeroSubtitle, d.HeroDescription, id); err != nil {
			return nil, err
		}
	}
	return r.Get(ctx)
}

// ImageRef describes one image-association field of a partial update. Set
// reports whether the caller provided the field at all; a provided nil ID
// clears the association. An unset field leaves the column untouched.
type ImageRef struct {
	ID  *uint64
	Set bool
}

// SetImages updates only the provided hero/about image associations of the
// current profile. Unlike Upsert it requires an existing profile and returns
// ErrNoProfile otherwise.
func (r *ProfileRepo) SetImages(ctx context.Context, hero, about ImageRef) (*model.Profile, error) {
	var id uint64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM profiles ORDER BY updated_at DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}
	switch {
	case hero.Set && about.Set:
		_, err = r.db.ExecContext(ctx,
			`UPDATE profiles SET hero_image_id=?, about_image_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
			hero.ID, about.ID, id)
	case hero.Set:
		_, err = r.db.ExecContext(ctx,
			`UPDATE profiles SET hero_image_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
			hero.ID, id)
	case about.Set:
		_, err = r.db.ExecContext(ctx,
			`UPDATE profiles SET about_image_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
			about.ID, id)
	}
	if err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

// profileDest builds the scan destinations for profileColumns in order.
func profileDest(p *model.Profile) []any {
	return []any{
		&p.ID, &p.FullName, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location, &p.AvatarURL,
		&p.LinkedinURL, &p.GithubURL, &p.TwitterURL, &p.WebsiteURL, &p.ResumeURL,
		&p.HeroTitle, &p.HeroSubtitle, &p.HeroDescription, &p.HeroImageID, &p.AboutImageID,
		&p.CreatedAt, &p.UpdatedAt,
	}
}

// nullableImage scans a LEFT JOINed images row that may be entirely NULL.
type nullableImage struct {
	id          sql.NullInt64
	name        sql.NullString
	description sql.NullString
	url         sql.NullString
	altText     sql.NullString
	section     sql.NullString
	storagePath sql.NullString
	isActive    sql.NullBool
	sortOrder   sql.NullInt64
	createdAt   sql.NullTime
	updatedAt   sql.NullTime
}

func (n *nullableImage) dest() []any {
	return []any{&n.id, &n.name, &n.description, &n.url, &n.altText, &n.section,
		&n.storagePath, &n.isActive, &n.sortOrder, &n.createdAt, &n.updatedAt}
}

func (n *nullableImage) toImage() *model.Image {
	if !n.id.Valid {
		return nil
	}
	img := &model.Image{
		ID:        uint64(n.id.Int64),
		Name:      n.name.String,
		URL:       n.url.String,
		Section:   n.section.String,
		IsActive:  n.isActive.Bool,
		SortOrder: int(n.sortOrder.Int64),
		CreatedAt: n.createdAt.Time,
		UpdatedAt: n.updatedAt.Time,
	}
	if n.description.Valid {
		img.Description = &n.description.String
	}
	if n.altText.Valid {
		img.AltText = &n.altText.String
	}
	if n.storagePath.Valid {
		img.StoragePath = &n.storagePath.String
	}
	return img
}
