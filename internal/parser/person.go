package parser

import (
	"strings"

	"wedding-planner/internal/commands"
	"wedding-planner/internal/models"
)

func parseAdd(args string) (commands.Command, error) {
	m, err := requireFields(args, commands.AddUsage,
		[]Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress},
		PrefixRsvp, PrefixDiet, PrefixTag)
	if err != nil {
		return nil, err
	}
	person, err := personFrom(m, models.RsvpPending, models.DietNone)
	if err != nil {
		return nil, err
	}
	return commands.AddCommand{Person: person}, nil
}

func parseAddGuest(args string) (commands.Command, error) {
	m, err := requireFields(args, commands.AddGuestUsage,
		[]Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRsvp, PrefixDiet},
		PrefixTag)
	if err != nil {
		return nil, err
	}
	person, err := personFrom(m, "", "")
	if err != nil {
		return nil, err
	}
	return commands.AddCommand{Person: person}, nil
}

// personFrom builds a person from tokenized fields. RSVP and diet fall back
// to the given defaults when absent.
func personFrom(m ArgumentMultimap, rsvp models.RsvpStatus, diet models.DietaryRestriction) (models.Person, error) {
	var p models.Person
	var err error

	name, _ := m.Value(PrefixName)
	if p.Name, err = ParseName(name); err != nil {
		return p, err
	}
	phone, _ := m.Value(PrefixPhone)
	if p.Phone, err = ParsePhone(phone); err != nil {
		return p, err
	}
	email, _ := m.Value(PrefixEmail)
	if p.Email, err = ParseEmail(email); err != nil {
		return p, err
	}
	address, _ := m.Value(PrefixAddress)
	if p.Address, err = ParseAddress(address); err != nil {
		return p, err
	}

	p.Rsvp = rsvp
	if v, ok := m.Value(PrefixRsvp); ok {
		if p.Rsvp, err = ParseRsvp(v); err != nil {
			return p, err
		}
	}
	p.Diet = diet
	if v, ok := m.Value(PrefixDiet); ok {
		if p.Diet, err = ParseDiet(v); err != nil {
			return p, err
		}
	}
	if p.Tags, err = ParseTags(m.AllValues(PrefixTag)); err != nil {
		return p, err
	}
	return p, nil
}

func parseEdit(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRsvp, PrefixDiet, PrefixTag)

	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.EditUsage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRsvp, PrefixDiet); err != nil {
		return nil, err
	}

	var d commands.EditPersonDescriptor
	if v, ok := m.Value(PrefixName); ok {
		name, err := ParseName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if v, ok := m.Value(PrefixPhone); ok {
		phone, err := ParsePhone(v)
		if err != nil {
			return nil, err
		}
		d.Phone = &phone
	}
	if v, ok := m.Value(PrefixEmail); ok {
		email, err := ParseEmail(v)
		if err != nil {
			return nil, err
		}
		d.Email = &email
	}
	if v, ok := m.Value(PrefixAddress); ok {
		address, err := ParseAddress(v)
		if err != nil {
			return nil, err
		}
		d.Address = &address
	}
	if v, ok := m.Value(PrefixRsvp); ok {
		rsvp, err := ParseRsvp(v)
		if err != nil {
			return nil, err
		}
		d.Rsvp = &rsvp
	}
	if v, ok := m.Value(PrefixDiet); ok {
		diet, err := ParseDiet(v)
		if err != nil {
			return nil, err
		}
		d.Diet = &diet
	}
	if m.Has(PrefixTag) {
		tags, err := parseTagsForEdit(m.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return nil, invalidValue(MessageNotEdited)
	}
	return commands.EditCommand{Index: index, Edit: d}, nil
}

// parseTagsForEdit reads a lone empty "t/" as clearing all tags.
func parseTagsForEdit(values []string) ([]string, error) {
	if len(values) == 1 && strings.TrimSpace(values[0]) == "" {
		return []string{}, nil
	}
	return ParseTags(values)
}

func parseDelete(args string) (commands.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(commands.DeleteUsage)
	}
	return commands.DeleteCommand{Index: index}, nil
}

func parseDeleteGuest(args string) (commands.Command, error) {
	m, err := requireFields(args, commands.DeleteGuestUsage, []Prefix{PrefixName})
	if err != nil {
		return nil, err
	}
	name, err := ParseName(mustValue(m, PrefixName))
	if err != nil {
		return nil, err
	}
	return commands.DeleteGuestCommand{Name: name}, nil
}

func parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.FindUsage)
	}
	return commands.FindCommand{Predicate: models.NameContainsKeywords{Keywords: keywords}}, nil
}

func parseFilter(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixRsvp, PrefixDiet)
	if m.Preamble() != "" || (!m.Has(PrefixRsvp) && !m.Has(PrefixDiet)) {
		return nil, invalidFormat(commands.FilterUsage)
	}
	if m.VerifyNoDuplicatePrefixesFor(PrefixRsvp, PrefixDiet) != nil {
		return nil, invalidFormat(commands.FilterUsage)
	}

	var c commands.FilterPersonsCommand
	if v, ok := m.Value(PrefixRsvp); ok {
		rsvp, err := ParseRsvp(v)
		if err != nil {
			return nil, err
		}
		c.Rsvp = &models.RsvpFilter{Status: rsvp}
	}
	if v, ok := m.Value(PrefixDiet); ok {
		diet, err := ParseDiet(v)
		if err != nil {
			return nil, err
		}
		c.Diet = &models.DietaryRestrictionFilter{Restriction: diet}
	}
	return c, nil
}

func parseSeeRsvpList(args string) (commands.Command, error) {
	m, err := requireFields(args, commands.SeeRsvpListUsage, nil, PrefixRsvp)
	if err != nil {
		return nil, err
	}
	var c commands.SeeRsvpListCommand
	if v, ok := m.Value(PrefixRsvp); ok {
		rsvp, err := ParseRsvp(v)
		if err != nil {
			return nil, err
		}
		c.Status = &rsvp
	}
	return c, nil
}

func mustValue(m ArgumentMultimap, p Prefix) string {
	v, _ := m.Value(p)
	return v
}
