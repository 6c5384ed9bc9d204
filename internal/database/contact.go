package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/google/uuid"
)

// SaveContactMessage stores a contact form submission. A blank ID or zero
// CreatedAt is filled in and returned.
func (d *Database) SaveContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO contact_messages (id, name, email, message, created_at) VALUES (?, ?, ?, ?, ?)",
			msg.ID, msg.Name, msg.Email, msg.Message, msg.CreatedAt)
		return wrapErr(EntityContact, "save", 0, err)
	})
	return msg, err
}

// LatestContactMessage returns the most recent submission.
func (d *Database) LatestContactMessage(ctx context.Context) (models.ContactMessage, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.ContactMessage, error) {
		var msg models.ContactMessage
		err := d.DB.QueryRowContext(ctx,
			"SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC, rowid DESC LIMIT 1").
			Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt)
		if isNoRows(err) {
			return msg, wrapErr(EntityContact, "latest", 0, ErrNotFound)
		}
		return msg, wrapErr(EntityContact, "latest", 0, err)
	})
}

// ListContactMessages returns submissions, newest first.
func (d *Database) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.ContactMessage, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC, rowid DESC")
		if err != nil {
			return nil, wrapErr(EntityContact, "list", 0, err)
		}
		defer rows.Close()

		var out []models.ContactMessage
		for rows.Next() {
			var msg models.ContactMessage
			if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
				return nil, wrapErr(EntityContact, "list", 0, err)
			}
			out = append(out, msg)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityContact, "list", 0, err)
		}
		return out, nil
	})
}
