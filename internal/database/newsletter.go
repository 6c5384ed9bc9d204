package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/greenbite/internal/models"
)

// Subscribe records an email for the newsletter. Subscribing again keeps
// the original sign-up time.
func (d *Database) Subscribe(ctx context.Context, email string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO newsletter_subscriptions (email, subscribed_at) VALUES (?, ?) ON CONFLICT(email) DO NOTHING",
			email, time.Now().UTC())
		return wrapErr(EntitySubscription, "subscribe", 0, err)
	})
}

func (d *Database) Unsubscribe(ctx context.Context, email string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM newsletter_subscriptions WHERE email = ?", email)
		if err != nil {
			return wrapErr(EntitySubscription, "unsubscribe", 0, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapErr(EntitySubscription, "unsubscribe", 0, ErrNotFound)
		}
		return nil
	})
}

func (d *Database) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Subscription, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT email, subscribed_at FROM newsletter_subscriptions ORDER BY subscribed_at ASC, email ASC")
		if err != nil {
			return nil, wrapErr(EntitySubscription, "list", 0, err)
		}
		defer rows.Close()

		var out []models.Subscription
		for rows.Next() {
			var s models.Subscription
			if err := rows.Scan(&s.Email, &s.SubscribedAt); err != nil {
				return nil, wrapErr(EntitySubscription, "list", 0, err)
			}
			out = append(out, s)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntitySubscription, "list", 0, err)
		}
		return out, nil
	})
}
