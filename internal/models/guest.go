package models

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Person represents a contact who may be invited to, and seated at, a wedding
type Person struct {
	Name    string             `json:"name"`
	Phone   string             `json:"phone"`
	Email   string             `json:"email"`
	Address string             `json:"address"`
	Rsvp    RsvpStatus         `json:"rsvp"`
	Diet    DietaryRestriction `json:"diet"`
	Tags    []string           `json:"tags,omitempty"`
}

// RsvpStatus represents the attendance confirmation status
type RsvpStatus string

const (
	RsvpYes     RsvpStatus = "YES"
	RsvpNo      RsvpStatus = "NO"
	RsvpPending RsvpStatus = "PENDING"
)

// RsvpStatuses lists every status in display order.
var RsvpStatuses = []RsvpStatus{RsvpYes, RsvpNo, RsvpPending}

// ParseRsvpStatus accepts any casing of YES, NO or PENDING.
func ParseRsvpStatus(s string) (RsvpStatus, error) {
	status := RsvpStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(RsvpStatuses, status) {
		return "", fmt.Errorf("rsvp status should be one of YES, NO or PENDING, got %q", s)
	}
	return status, nil
}

const (
	MessageNameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessagePhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	MessageEmailConstraints   = "Emails should be of the format local-part@domain"
	MessageAddressConstraints = "Addresses can take any values, and it should not be blank"
	MessageTagConstraints     = "Tags names should be alphanumeric"
)

var (
	nameRegex  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegex = regexp.MustCompile(`^\d{3,}$`)
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9+_.-]*[A-Za-z0-9])?@([A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?\.)*[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?$`)
	tagRegex   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

func IsValidName(s string) bool { return nameRegex.MatchString(s) }

func IsValidPhone(s string) bool { return phoneRegex.MatchString(s) }

// IsValidEmail also requires the last domain label to be at least two characters.
func IsValidEmail(s string) bool {
	if !emailRegex.MatchString(s) {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	labels := strings.Split(domain, ".")
	return len(labels[len(labels)-1]) >= 2
}

func IsValidAddress(s string) bool { return strings.TrimSpace(s) != "" }

func IsValidTag(s string) bool { return tagRegex.MatchString(s) }

// NormalizeTags returns the tags sorted and deduplicated.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

// Validate checks every field of the person.
func (p Person) Validate() error {
	switch {
	case !IsValidName(p.Name):
		return fmt.Errorf("invalid name %q: %s", p.Name, MessageNameConstraints)
	case !IsValidPhone(p.Phone):
		return fmt.Errorf("invalid phone %q: %s", p.Phone, MessagePhoneConstraints)
	case !IsValidEmail(p.Email):
		return fmt.Errorf("invalid email %q: %s", p.Email, MessageEmailConstraints)
	case !IsValidAddress(p.Address):
		return fmt.Errorf("invalid address: %s", MessageAddressConstraints)
	}
	if _, err := ParseRsvpStatus(string(p.Rsvp)); err != nil {
		return err
	}
	if _, err := ParseDietaryRestriction(string(p.Diet)); err != nil {
		return err
	}
	for _, tag := range p.Tags {
		if !IsValidTag(tag) {
			return fmt.Errorf("invalid tag %q: %s", tag, MessageTagConstraints)
		}
	}
	return nil
}

// IsSamePerson reports whether both persons share an identity. Names are
// compared exactly; this is weaker than Equal.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name == other.Name
}

// Equal reports whether every field matches.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Address == other.Address &&
		p.Rsvp == other.Rsvp &&
		p.Diet == other.Diet &&
		slices.Equal(NormalizeTags(p.Tags), NormalizeTags(other.Tags))
}

func (p Person) String() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; RSVP: %s; Diet: %s; Tags: %v",
		p.Name, p.Phone, p.Email, p.Address, p.Rsvp, p.Diet, p.Tags)
}
