// This file defines the image repository. Images are referenced by id from
// the profile's hero/about associations and tagged with the site section they
// belong to.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

// ImageRepo encapsulates all database queries related to images.
type ImageRepo struct {
	db *sql.DB
}

func NewImageRepo(db *sql.DB) *ImageRepo { return &ImageRepo{db: db} }

const imageColumns = `id, name, description, url, alt_text, section, storage_path, is_active, sort_order, created_at, updated_at`

func scanImage(row interface{ Scan(...any) error }, img *model.Image) error {
	return row.Scan(&img.ID, &img.Name, &img.Description, &img.URL, &img.AltText,
		&img.Section, &img.StoragePath, &img.IsActive, &img.SortOrder,
		&img.CreatedAt, &img.UpdatedAt)
}

// List returns images ordered by sort_order ascending, optionally filtered
// to a single section. An empty section returns everything.
func (r *ImageRepo) List(ctx context.Context, section string) ([]*model.Image, error) {
	q := `SELECT ` + imageColumns + ` FROM images`
	var args []any
	if section != "" {
		q += ` WHERE section = ?`
		args = append(args, section)
	}
	q += ` ORDER BY sort_order, id`
	return r.queryImages(ctx, q, args...)
}

// ListAll returns every image ordered by section, then sort_order. Used by
// the admin image management grid.
func (r *ImageRepo) ListAll(ctx context.Context) ([]*model.Image, error) {
	q := `SELECT ` + imageColumns + ` FROM images ORDER BY section, sort_order, id`
	return r.queryImages(ctx, q)
}

func (r *ImageRepo) queryImages(ctx context.Context, q string, args ...any) ([]*model.Image, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Image
	for rows.Next() {
		img := new(model.Image)
		if err := scanImage(rows, img); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single image; ErrNotFound when absent.
func (r *ImageRepo) GetByID(ctx context.Context, id uint64) (*model.Image, error) {
	q := `SELECT ` + imageColumns + ` FROM images WHERE id = ?`
	var img model.Image
	if err := scanImage(r.db.QueryRowContext(ctx, q, id), &img); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

// Create inserts an image and returns the persisted record.
func (r *ImageRepo) Create(ctx context.Context, img *model.Image) (*model.Image, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO images (name, description, url, alt_text, section, storage_path, is_active, sort_order)
		 VALUES (?,?,?,?,?,?,?,?)`,
		img.Name, img.Description, img.URL, img.AltText, img.Section,
		img.StoragePath, img.IsActive, img.SortOrder)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update overwrites the writable columns of an image and returns the
// persisted record.
func (r *ImageRepo) Update(ctx context.Context, id uint64, img *model.Image) (*model.Image, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE images SET name=?, description=?, url=?, alt_text=?, section=?, storage_path=?,
		 is_active=?, sort_order=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		img.Name, img.Description, img.URL, img.AltText, img.Section,
		img.StoragePath, img.IsActive, img.SortOrder, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes an image row. Profile associations pointing at the row are
// cleared so the profile never carries a dangling reference. ErrNotFound when
// the row does not exist.
func (r *ImageRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx,
		`UPDATE profiles SET hero_image_id=NULL WHERE hero_image_id=?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE profiles SET about_image_id=NULL WHERE about_image_id=?`, id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM images WHERE id=?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNotFound
		return err
	}
	return nil
}
