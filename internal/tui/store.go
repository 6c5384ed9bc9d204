package tui

import (
	"context"

	"github.com/akyairhashvil/greenbite/internal/database"
	"github.com/akyairhashvil/greenbite/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui

// Store defines the persistence methods the TUI requires.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	SaveContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
	Subscribe(ctx context.Context, email string) error

	RecordMeditation(ctx context.Context, minutes int) error
	CountMeditations(ctx context.Context) (int, error)
	LogWorkout(ctx context.Context, exercise string, seconds int) error
}

var _ Store = (*database.Database)(nil)
