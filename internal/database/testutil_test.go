package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/akyairhashvil/greenbite/internal/models"
)

type TestDataBuilder struct {
	t   *testing.T
	ctx context.Context
	db  *Database
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithContactMessages(n int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < n; i++ {
		msg := models.ContactMessage{
			Name:    fmt.Sprintf("Person %d", i+1),
			Email:   fmt.Sprintf("p%d@example.com", i+1),
			Message: "Hello",
		}
		if _, err := b.db.SaveContactMessage(b.ctx, msg); err != nil {
			b.t.Fatalf("SaveContactMessage failed: %v", err)
		}
	}
	return b
}

func (b *TestDataBuilder) WithSubscribers(emails ...string) *TestDataBuilder {
	b.t.Helper()
	for _, e := range emails {
		if err := b.db.Subscribe(b.ctx, e); err != nil {
			b.t.Fatalf("Subscribe failed: %v", err)
		}
	}
	return b
}

func (b *TestDataBuilder) WithMeditations(n int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < n; i++ {
		if err := b.db.RecordMeditation(b.ctx, 5); err != nil {
			b.t.Fatalf("RecordMeditation failed: %v", err)
		}
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}
