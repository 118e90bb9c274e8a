// This file defines repositories for skills and skill categories. Skills are
// always listed in explicit sort_order so the public grid is deterministic.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

// SkillRepo encapsulates all database queries related to skills.
type SkillRepo struct {
	db *sql.DB
}

func NewSkillRepo(db *sql.DB) *SkillRepo { return &SkillRepo{db: db} }

const skillColumns = `id, name, category, level, icon_url, color, sort_order, is_featured, created_at, updated_at`

func scanSkill(row interface{ Scan(...any) error }, s *model.Skill) error {
	return row.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.IconURL, &s.Color,
		&s.SortOrder, &s.IsFeatured, &s.CreatedAt, &s.UpdatedAt)
}

// List returns all skills ordered by sort_order ascending.
func (r *SkillRepo) List(ctx context.Context) ([]*model.Skill, error) {
	q := `SELECT ` + skillColumns + ` FROM skills ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Skill
	for rows.Next() {
		s := new(model.Skill)
		if err := scanSkill(rows, s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single skill; returns ErrNotFound when absent.
func (r *SkillRepo) GetByID(ctx context.Context, id uint64) (*model.Skill, error) {
	q := `SELECT ` + skillColumns + ` FROM skills WHERE id = ?`
	var s model.Skill
	if err := scanSkill(r.db.QueryRowContext(ctx, q, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a skill and returns the persisted record.
func (r *SkillRepo) Create(ctx context.Context, s *model.Skill) (*model.Skill, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO skills (name, category, level, icon_url, color, sort_order, is_featured)
		 VALUES (?,?,?,?,?,?,?)`,
		s.Name, s.Category, s.Level, s.IconURL, s.Color, s.SortOrder, s.IsFeatured)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update overwrites the writable columns of a skill and returns the
// persisted record. ErrNotFound when no row was affected.
func (r *SkillRepo) Update(ctx context.Context, id uint64, s *model.Skill) (*model.Skill, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE skills SET name=?, category=?, level=?, icon_url=?, color=?, sort_order=?, is_featured=?,
		 updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		s.Name, s.Category, s.Level, s.IconURL, s.Color, s.SortOrder, s.IsFeatured, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// An update that changes nothing also reports zero rows on MySQL,
		// so confirm existence before reporting not found.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// SetFeatured toggles only the is_featured flag.
func (r *SkillRepo) SetFeatured(ctx context.Context, id uint64, featured bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE skills SET is_featured=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, featured, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a skill. ErrNotFound when the row does not exist.
func (r *SkillRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SkillCategoryRepo manages the optional normalization table behind the
// category select box. It is independent of skills.category (no foreign key).
type SkillCategoryRepo struct {
	db *sql.DB
}

func NewSkillCategoryRepo(db *sql.DB) *SkillCategoryRepo { return &SkillCategoryRepo{db: db} }

const skillCategoryColumns = `id, name, sort_order, is_active, created_at, updated_at`

// ListActive returns active categories ordered by sort_order ascending.
func (r *SkillCategoryRepo) ListActive(ctx context.Context) ([]*model.SkillCategory, error) {
	q := `SELECT ` + skillCategoryColumns + ` FROM skill_categories WHERE is_active = TRUE ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SkillCategory
	for rows.Next() {
		c := new(model.SkillCategory)
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single category; ErrNotFound when absent.
func (r *SkillCategoryRepo) GetByID(ctx context.Context, id uint64) (*model.SkillCategory, error) {
	q := `SELECT ` + skillCategoryColumns + ` FROM skill_categories WHERE id = ?`
	var c model.SkillCategory
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a category and returns the persisted record.
func (r *SkillCategoryRepo) Create(ctx context.Context, c *model.SkillCategory) (*model.SkillCategory, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO skill_categories (name, sort_order, is_active) VALUES (?,?,?)`,
		c.Name, c.SortOrder, c.IsActive)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update overwrites a category's writable columns.
func (r *SkillCategoryRepo) Update(ctx context.Context, id uint64, c *model.SkillCategory) (*model.SkillCategory, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE skill_categories SET name=?, sort_order=?, is_active=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		c.Name, c.SortOrder, c.IsActive, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a category. ErrNotFound when the row does not exist.
func (r *SkillCategoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skill_categories WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
