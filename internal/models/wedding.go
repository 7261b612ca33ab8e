package models

import "strings"

// Wedding is an event that tables and invitations are planned against.
// Only Name takes part in identity.
type Wedding struct {
	Name  string `json:"name"`
	Date  string `json:"date,omitempty"`
	Venue string `json:"venue,omitempty"`
}

const MessageWeddingNameConstraints = "Wedding names should not be blank"

func IsValidWeddingName(s string) bool { return strings.TrimSpace(s) != "" }

func (w Wedding) IsSameWedding(other Wedding) bool {
	return w.Name == other.Name
}

func (w Wedding) String() string {
	var b strings.Builder
	b.WriteString(w.Name)
	if w.Date != "" {
		b.WriteString("; Date: " + w.Date)
	}
	if w.Venue != "" {
		b.WriteString("; Venue: " + w.Venue)
	}
	return b.String()
}
