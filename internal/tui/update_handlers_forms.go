package tui

import (
	"errors"

	"github.com/akyairhashvil/greenbite/internal/forms"
	"github.com/akyairhashvil/greenbite/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoStore = errors.New("storage unavailable")

func (m MainModel) submitNewsletter() (MainModel, tea.Cmd) {
	if m.store == nil {
		m.err = errNoStore
		return m, nil
	}
	subscribed, err := forms.Subscribe(m.ctx, m.store, m.newsletter.Value())
	switch {
	case errors.Is(err, forms.ErrInvalidEmail):
		m.Message = "Please enter a valid email."
		return m, nil
	case err != nil:
		util.LogError("newsletter", err)
		m.err = err
		return m, nil
	}
	m.stopEditing()
	if subscribed {
		m.newsletter.Reset()
		m.Message = forms.SubscribedText
	}
	return m, nil
}

// submitContact stores the form. The fields are kept on validation errors
// and cleared on success.
func (m MainModel) submitContact() (MainModel, tea.Cmd) {
	if m.store == nil {
		m.err = errNoStore
		return m, nil
	}
	_, err := forms.SubmitContact(m.ctx, m.store, forms.Contact{
		Name:    m.contactInputs[contactName].Value(),
		Email:   m.contactInputs[contactEmail].Value(),
		Message: m.contactInputs[contactMessage].Value(),
	})
	m.Message = forms.ContactStatus(err)
	if err != nil {
		util.LogError("contact form", err)
		return m, nil
	}
	m.stopEditing()
	for i := range m.contactInputs {
		m.contactInputs[i].Reset()
	}
	return m, nil
}
