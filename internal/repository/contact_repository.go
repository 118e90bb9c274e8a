// This file defines the contact repository. Contacts are the only entity
// created by unauthenticated requests (the public contact form); the admin
// reads, marks and deletes them.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

// ContactRepo encapsulates all database queries related to inbound messages.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

const contactColumns = `id, name, email, subject, message, ip_address, user_agent, is_read, created_at`

func scanContact(row interface{ Scan(...any) error }, m *model.Contact) error {
	return row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.IPAddress, &m.UserAgent, &m.IsRead, &m.CreatedAt)
}

// List returns all messages, newest first.
func (r *ContactRepo) List(ctx context.Context) ([]*model.Contact, error) {
	q := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Contact
	for rows.Next() {
		m := new(model.Contact)
		if err := scanContact(rows, m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single message; ErrNotFound when absent.
func (r *ContactRepo) GetByID(ctx context.Context, id uint64) (*model.Contact, error) {
	q := `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`
	var m model.Contact
	if err := scanContact(r.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a new message (is_read defaults to false) and returns the
// persisted record.
func (r *ContactRepo) Create(ctx context.Context, m *model.Contact) (*model.Contact, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (name, email, subject, message, ip_address, user_agent)
		 VALUES (?,?,?,?,?,?)`,
		m.Name, m.Email, m.Subject, m.Message, m.IPAddress, m.UserAgent)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// SetRead flips the read flag and returns the persisted record.
func (r *ContactRepo) SetRead(ctx context.Context, id uint64, read bool) (*model.Contact, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET is_read=? WHERE id=?`, read, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a message. ErrNotFound when the row does not exist.
func (r *ContactRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
