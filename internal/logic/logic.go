// Package logic runs one line of user input end to end: parse, execute,
// publish the view, persist, then carry out side effects the command asked
// for.
package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/commands"
	"wedding-planner/internal/models"
	"wedding-planner/internal/parser"
	"wedding-planner/internal/planner"
	"wedding-planner/internal/storage"
	"wedding-planner/internal/whatsapp"
)

var ErrInvitationsDisabled = errors.New("WhatsApp is not enabled, start with --whatsapp to send invitations")

// Inviter delivers an invitation to a guest.
type Inviter interface {
	SendInvitation(ctx context.Context, guest models.Person, w models.Wedding) error
}

// Confirmer acknowledges an RSVP reply to the guest who sent it.
type Confirmer interface {
	Confirm(ctx context.Context, guest models.Person, w models.Wedding) error
}

// Exporter writes the address book somewhere and returns where.
type Exporter interface {
	Export(path string, ab addressbook.ReadOnly) (string, error)
}

type Option func(*Manager)

func WithInviter(i Inviter) Option { return func(m *Manager) { m.inviter = i } }

func WithConfirmer(c Confirmer) Option { return func(m *Manager) { m.confirmer = c } }

// WithCountryCode is used to match local phone numbers against the
// international numbers replies arrive from.
func WithCountryCode(code string) Option { return func(m *Manager) { m.countryCode = code } }

// Manager is not safe for concurrent use; one goroutine owns it.
type Manager struct {
	model       planner.Model
	parser      *parser.Parser
	storage     storage.Storage
	exporter    Exporter
	inviter     Inviter
	confirmer   Confirmer
	countryCode string
	log         zerolog.Logger
}

func New(model planner.Model, p *parser.Parser, store storage.Storage, exporter Exporter, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		model:    model,
		parser:   p,
		storage:  store,
		exporter: exporter,
		log:      log.With().Str("component", "logic").Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Model() planner.Model { return m.model }

// Execute runs one line of input. When saving fails the result is still
// returned together with the error: the change stays in memory.
func (m *Manager) Execute(ctx context.Context, text string) (commands.Result, error) {
	m.log.Info().Str("input", text).Msg("User command")

	cmd, err := m.parser.ParseCommand(text)
	if err != nil {
		return commands.Result{}, err
	}

	res, err := cmd.Execute(m.model)
	m.model.Commit()
	if err != nil {
		return commands.Result{}, err
	}

	if err := m.storage.Save(ctx, m.model.AddressBook()); err != nil {
		m.log.Error().Err(err).Str("path", m.storage.Path()).Msg("Failed to save address book")
		return res, fmt.Errorf("failed to save address book: %w", err)
	}

	if res.Invite != nil {
		if err := m.invite(ctx, *res.Invite); err != nil {
			return res, err
		}
		res.Feedback = fmt.Sprintf("Invitation sent to %s (%s)", res.Invite.Guest.Name, res.Invite.Guest.Phone)
	}

	if res.Export != nil {
		path, err := m.exporter.Export(res.Export.Path, m.model.AddressBook())
		if err != nil {
			return res, fmt.Errorf("failed to export: %w", err)
		}
		res.Feedback = fmt.Sprintf("Seating plan exported to %s", path)
	}
	return res, nil
}

func (m *Manager) invite(ctx context.Context, inv commands.Invitation) error {
	if m.inviter == nil {
		return ErrInvitationsDisabled
	}
	if err := m.inviter.SendInvitation(ctx, inv.Guest, inv.Wedding); err != nil {
		return fmt.Errorf("failed to send invitation: %w", err)
	}
	return nil
}

// ApplyRsvpReply records status for the person whose phone number matches
// phone, then confirms to the guest when a current wedding is set.
func (m *Manager) ApplyRsvpReply(ctx context.Context, phone string, status models.RsvpStatus) (models.Person, error) {
	target, ok := m.personByPhone(phone)
	if !ok {
		return models.Person{}, fmt.Errorf("%w: no person with phone %s", addressbook.ErrPersonNotFound, phone)
	}

	edited := target
	edited.Rsvp = status
	if err := m.model.SetPerson(target, edited); err != nil {
		return models.Person{}, fmt.Errorf("failed to update RSVP: %w", err)
	}
	m.model.Commit()
	m.log.Info().Str("name", edited.Name).Str("rsvp", string(status)).Msg("RSVP updated from reply")

	if err := m.storage.Save(ctx, m.model.AddressBook()); err != nil {
		return edited, fmt.Errorf("failed to save address book: %w", err)
	}

	w, ok := m.model.CurrentWedding()
	if m.confirmer == nil || !ok {
		return edited, nil
	}
	if err := m.confirmer.Confirm(ctx, edited, w); err != nil {
		return edited, err
	}
	return edited, nil
}

func (m *Manager) personByPhone(phone string) (models.Person, bool) {
	if p, ok := m.model.FindPersonByPhone(phone); ok {
		return p, true
	}
	want := whatsapp.NormalizePhoneNumber(phone, m.countryCode)
	for _, p := range m.model.AddressBook().Persons() {
		if p.Phone != "" && m.samePhone(p.Phone, want) {
			return p, true
		}
	}
	return models.Person{}, false
}

// samePhone also accepts a stored local number written without its trunk 0.
func (m *Manager) samePhone(stored, want string) bool {
	s := whatsapp.NormalizePhoneNumber(stored, m.countryCode)
	return s == want || (m.countryCode != "" && m.countryCode+s == want)
}
