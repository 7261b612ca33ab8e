package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"go.mau.fi/whatsmeow/types/events"

	"wedding-planner/internal/models"
	"wedding-planner/internal/whatsapp"
)

var ErrReplyQueueFull = errors.New("rsvp reply queue is full")

// Reply is an RSVP answer received from a phone number. It still has to be
// matched to a person by whoever owns the model.
type Reply struct {
	Phone  string
	Status models.RsvpStatus
	Text   string
}

// Sender sends a text message to a phone number.
type Sender interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
}

type RSVPHandler struct {
	sender  Sender
	replies chan<- Reply
	log     zerolog.Logger
}

// NewRSVPHandler creates a new RSVP handler that queues classified replies
// on replies.
func NewRSVPHandler(sender Sender, replies chan<- Reply, log zerolog.Logger) *RSVPHandler {
	return &RSVPHandler{
		sender:  sender,
		replies: replies,
		log:     log.With().Str("component", "rsvp").Logger(),
	}
}

// HandleMessage processes incoming WhatsApp messages for RSVP responses
func (h *RSVPHandler) HandleMessage(msg *events.Message) error {
	if msg.Message == nil {
		return nil
	}

	text := msg.Message.GetConversation()
	if text == "" {
		text = msg.Message.GetExtendedTextMessage().GetText()
	}
	if text == "" {
		return nil
	}

	phone := whatsapp.SenderPhone(msg)
	status, ok := ClassifyReply(text)
	if !ok {
		h.log.Debug().Str("phone", phone).Msg("Ignoring message without an RSVP answer")
		return nil
	}
	return h.Queue(Reply{Phone: phone, Status: status, Text: text})
}

// Queue hands a reply to the writer without blocking the event loop.
func (h *RSVPHandler) Queue(r Reply) error {
	select {
	case h.replies <- r:
		h.log.Info().Str("phone", r.Phone).Str("rsvp", string(r.Status)).Msg("RSVP reply received")
		return nil
	default:
		return fmt.Errorf("%w: dropping reply from %s", ErrReplyQueueFull, r.Phone)
	}
}

// Confirm thanks the guest for their answer.
func (h *RSVPHandler) Confirm(ctx context.Context, guest models.Person, w models.Wedding) error {
	var msg string
	switch guest.Rsvp {
	case models.RsvpYes:
		msg = fmt.Sprintf(
			"🎉 Wonderful! We're so excited to celebrate with you, %s!\n\n"+
				"We've confirmed your attendance for %s", guest.Name, w.Name)
		if w.Date != "" {
			msg += " on " + w.Date
		}
		msg += ".\n\nSee you there! 💕"
	case models.RsvpNo:
		msg = fmt.Sprintf(
			"Thank you for letting us know, %s. We're sorry you won't be able to join us for %s.\n\n"+
				"We'll miss you! 💕", guest.Name, w.Name)
	default:
		return nil
	}

	if err := h.sender.SendMessage(ctx, guest.Phone, msg); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}
	return nil
}

var (
	declinePhrases = []string{"not coming", "can't come", "cannot come", "won't come", "can't make it", "not attending", "❌"}
	acceptPhrases  = []string{"will come", "will be there", "we'll be there", "i'll be there", "see you there", "✅"}
	acceptWords    = []string{"yes", "yep", "yeah", "accept", "accepting", "attending", "coming"}
	declineWords   = []string{"no", "nope", "decline", "declining"}
)

// ClassifyReply reads an RSVP answer out of free text. A reply carrying both
// an acceptance and a decline is ambiguous and yields false.
func ClassifyReply(text string) (models.RsvpStatus, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.ReplaceAll(text, "\u2019", "'")
	if text == "" {
		return "", false
	}

	declined := containsAny(text, declinePhrases...)
	// "not coming" must not count as "coming".
	rest := text
	for _, phrase := range declinePhrases {
		rest = strings.ReplaceAll(rest, phrase, " ")
	}
	words := strings.FieldsFunc(rest, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	declined = declined || hasAnyWord(words, declineWords...)
	accepted := containsAny(rest, acceptPhrases...) || hasAnyWord(words, acceptWords...)

	switch {
	case accepted && declined:
		return "", false
	case accepted:
		return models.RsvpYes, true
	case declined:
		return models.RsvpNo, true
	}
	return "", false
}

// containsAny checks if the text contains any of the given keywords
func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func hasAnyWord(words []string, keywords ...string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if w == k {
				return true
			}
		}
	}
	return false
}
