// This file defines the project repository. The tech_stack column holds a
// JSON array of free-text tags; it is encoded on write and decoded on read so
// the rest of the application only ever sees []string with preserved order.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

// ProjectRepo encapsulates all database queries related to projects.
type ProjectRepo struct {
	db *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{db: db} }

const projectColumns = `id, title, description, short_description, image_url, demo_url, repo_url,
	tech_stack, status, is_featured, sort_order, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }, p *model.Project) error {
	var stack []byte
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ShortDescription,
		&p.ImageURL, &p.DemoURL, &p.RepoURL, &stack, &p.Status, &p.IsFeatured,
		&p.SortOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	if len(stack) > 0 {
		if err := json.Unmarshal(stack, &p.TechStack); err != nil {
			return err
		}
	}
	return nil
}

func encodeStack(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

// List returns projects ordered by sort_order ascending. By default only
// published projects are returned; includeUnpublished widens the select to
// drafts for the authenticated admin views.
func (r *ProjectRepo) List(ctx context.Context, includeUnpublished bool) ([]*model.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects`
	var args []any
	if !includeUnpublished {
		q += ` WHERE status = ?`
		args = append(args, model.ProjectStatusPublished)
	}
	q += ` ORDER BY sort_order, id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Project
	for rows.Next() {
		p := new(model.Project)
		if err := scanProject(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single project regardless of status; ErrNotFound when absent.
func (r *ProjectRepo) GetByID(ctx context.Context, id uint64) (*model.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	var p model.Project
	if err := scanProject(r.db.QueryRowContext(ctx, q, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a project and returns the persisted record.
func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	stack, err := encodeStack(p.TechStack)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (title, description, short_description, image_url, demo_url, repo_url,
		 tech_stack, status, is_featured, sort_order)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.Title, p.Description, p.ShortDescription, p.ImageURL, p.DemoURL, p.RepoURL,
		stack, p.Status, p.IsFeatured, p.SortOrder)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update overwrites the writable columns of a project and returns the
// persisted record.
func (r *ProjectRepo) Update(ctx context.Context, id uint64, p *model.Project) (*model.Project, error) {
	stack, err := encodeStack(p.TechStack)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE projects SET title=?, description=?, short_description=?, image_url=?, demo_url=?, repo_url=?,
		 tech_stack=?, status=?, is_featured=?, sort_order=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		p.Title, p.Description, p.ShortDescription, p.ImageURL, p.DemoURL, p.RepoURL,
		stack, p.Status, p.IsFeatured, p.SortOrder, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// SetStatus flips only the publication status (published|draft).
func (r *ProjectRepo) SetStatus(ctx context.Context, id uint64, status string) (*model.Project, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, status, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a project. ErrNotFound when the row does not exist.
func (r *ProjectRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
