package database

import (
	"context"

	"github.com/akyairhashvil/greenbite/internal/models"
)

// SettingsRepository persists small key/value UI preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// FormRepository stores contact and newsletter submissions.
type FormRepository interface {
	SaveContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
	LatestContactMessage(ctx context.Context) (models.ContactMessage, error)
	Subscribe(ctx context.Context, email string) error
}

// ActivityRepository stores completed meditation and workout runs.
type ActivityRepository interface {
	RecordMeditation(ctx context.Context, minutes int) error
	CountMeditations(ctx context.Context) (int, error)
	LogWorkout(ctx context.Context, exercise string, seconds int) error
	RecentWorkouts(ctx context.Context, limit int) ([]models.WorkoutLogEntry, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	FormRepository
	ActivityRepository
}

var _ Repository = (*Database)(nil)
