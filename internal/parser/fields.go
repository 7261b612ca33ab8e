package parser

import (
	"strconv"
	"strings"

	"wedding-planner/internal/models"
)

// ParseIndex parses a 1-based index.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, invalidValue(MessageInvalidIndex)
	}
	return n, nil
}

func ParseName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if !models.IsValidName(name) {
		return "", invalidValue(models.MessageNameConstraints)
	}
	return name, nil
}

func ParsePhone(s string) (string, error) {
	phone := strings.TrimSpace(s)
	if !models.IsValidPhone(phone) {
		return "", invalidValue(models.MessagePhoneConstraints)
	}
	return phone, nil
}

func ParseEmail(s string) (string, error) {
	email := strings.TrimSpace(s)
	if !models.IsValidEmail(email) {
		return "", invalidValue(models.MessageEmailConstraints)
	}
	return email, nil
}

func ParseAddress(s string) (string, error) {
	address := strings.TrimSpace(s)
	if !models.IsValidAddress(address) {
		return "", invalidValue(models.MessageAddressConstraints)
	}
	return address, nil
}

func ParseRsvp(s string) (models.RsvpStatus, error) {
	status, err := models.ParseRsvpStatus(s)
	if err != nil {
		return "", invalidValue(err.Error())
	}
	return status, nil
}

func ParseDiet(s string) (models.DietaryRestriction, error) {
	diet, err := models.ParseDietaryRestriction(s)
	if err != nil {
		return "", invalidValue(err.Error())
	}
	return diet, nil
}

func ParseTags(values []string) ([]string, error) {
	tags := make([]string, 0, len(values))
	for _, v := range values {
		tag := strings.TrimSpace(v)
		if !models.IsValidTag(tag) {
			return nil, invalidValue(models.MessageTagConstraints)
		}
		tags = append(tags, tag)
	}
	return models.NormalizeTags(tags), nil
}

func ParseTableID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, invalidValue(models.MessageTableIDConstraints)
	}
	return id, nil
}

func ParseCapacity(s string) (int, error) {
	capacity, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || capacity <= 0 {
		return 0, invalidValue(models.MessageCapacityConstraints)
	}
	return capacity, nil
}

func ParseWeddingName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if !models.IsValidWeddingName(name) {
		return "", invalidValue(models.MessageWeddingNameConstraints)
	}
	return name, nil
}

// requireFields tokenizes args and checks that every required prefix is
// present, that there is no preamble and that single-valued prefixes appear
// once. Failures report usage.
func requireFields(args, usage string, required []Prefix, optional ...Prefix) (ArgumentMultimap, error) {
	all := append(append([]Prefix{}, required...), optional...)
	m := Tokenize(args, all...)
	for _, p := range required {
		if !m.Has(p) {
			return m, invalidFormat(usage)
		}
	}
	if m.Preamble() != "" {
		return m, invalidFormat(usage)
	}
	single := make([]Prefix, 0, len(all))
	for _, p := range all {
		if p != PrefixTag {
			single = append(single, p)
		}
	}
	if err := m.VerifyNoDuplicatePrefixesFor(single...); err != nil {
		return m, err
	}
	return m, nil
}
