package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/greenbite/internal/models"
)

// RecordMeditation stores a completed meditation session.
func (d *Database) RecordMeditation(ctx context.Context, minutes int) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO meditation_sessions (minutes, completed_at) VALUES (?, ?)", minutes, time.Now().UTC())
		return wrapErr(EntityMeditation, "record", 0, err)
	})
}

// CountMeditations returns how many sessions have been completed.
func (d *Database) CountMeditations(ctx context.Context) (int, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int, error) {
		var n int
		err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM meditation_sessions").Scan(&n)
		return n, wrapErr(EntityMeditation, "count", 0, err)
	})
}

// LogWorkout records an exercise countdown that reached zero.
func (d *Database) LogWorkout(ctx context.Context, exercise string, seconds int) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO workout_log (exercise, seconds, completed_at) VALUES (?, ?, ?)", exercise, seconds, time.Now().UTC())
		return wrapErr(EntityWorkoutLog, "record", 0, err)
	})
}

// RecentWorkouts returns up to limit log entries, newest first.
func (d *Database) RecentWorkouts(ctx context.Context, limit int) ([]models.WorkoutLogEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.WorkoutLogEntry, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT id, exercise, seconds, completed_at FROM workout_log ORDER BY completed_at DESC, id DESC LIMIT ?", limit)
		if err != nil {
			return nil, wrapErr(EntityWorkoutLog, "list", 0, err)
		}
		defer rows.Close()

		var out []models.WorkoutLogEntry
		for rows.Next() {
			var e models.WorkoutLogEntry
			if err := rows.Scan(&e.ID, &e.Exercise, &e.Seconds, &e.CompletedAt); err != nil {
				return nil, wrapErr(EntityWorkoutLog, "list", 0, err)
			}
			out = append(out, e)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityWorkoutLog, "list", 0, err)
		}
		return out, nil
	})
}
