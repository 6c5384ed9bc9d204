// Package forms validates and stores the contact and newsletter forms.
package forms

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/models"
)

var (
	ErrMissingFields = errors.New("please fill all fields")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrTooLong       = errors.New("field too long")
)

// Confirmation texts shown after a submission.
const (
	ContactMissingText = "Please fill all fields."
	ContactThanksText  = "Thanks! We'll reply soon."
	SubscribedText     = "Subscribed!"
)

// Store is the persistence the forms need.
type Store interface {
	SaveContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
	Subscribe(ctx context.Context, email string) error
}

// Contact is the raw contact form.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// Normalize trims every field.
func (c Contact) Normalize() Contact {
	return Contact{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Message: strings.TrimSpace(c.Message),
	}
}

// Validate checks a normalized form. Any non-empty email is accepted; only
// the newsletter parses addresses.
func (c Contact) Validate() error {
	if c.Name == "" || c.Email == "" || c.Message == "" {
		return ErrMissingFields
	}
	if len(c.Name) > config.MaxNameLength || len(c.Email) > config.MaxEmailLength || len(c.Message) > config.MaxMessageLength {
		return ErrTooLong
	}
	return nil
}

// SubmitContact validates and stores the form. On success the saved message
// (with its generated id) is returned.
func SubmitContact(ctx context.Context, store Store, form Contact) (models.ContactMessage, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return models.ContactMessage{}, err
	}
	saved, err := store.SaveContactMessage(ctx, models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}
	return saved, nil
}

// Subscribe stores a newsletter email. A blank email is ignored and reports
// subscribed=false with no error.
func Subscribe(ctx context.Context, store Store, email string) (subscribed bool, err error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, nil
	}
	if len(email) > config.MaxEmailLength || !ValidEmail(email) {
		return false, ErrInvalidEmail
	}
	if err := store.Subscribe(ctx, strings.ToLower(email)); err != nil {
		return false, fmt.Errorf("subscribe: %w", err)
	}
	return true, nil
}

// ValidEmail accepts a bare address such as name@example.com.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && at < len(s)-1
}

// ContactStatus maps a SubmitContact error to the text shown under the form.
func ContactStatus(err error) string {
	switch {
	case err == nil:
		return ContactThanksText
	case errors.Is(err, ErrMissingFields):
		return ContactMissingText
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email."
	case errors.Is(err, ErrTooLong):
		return "That's a bit long, please shorten it."
	default:
		return "Could not save your message."
	}
}
