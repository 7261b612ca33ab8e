package parser

import (
	"strings"

	"wedding-planner/internal/commands"
	"wedding-planner/internal/models"
)

func parseCreateWedding(args string) (commands.Command, error) {
	m, err := requireFields(args, commands.CreateWeddingUsage, []Prefix{PrefixName}, PrefixDate, PrefixVenue)
	if err != nil {
		return nil, err
	}
	name, err := ParseWeddingName(mustValue(m, PrefixName))
	if err != nil {
		return nil, err
	}
	return commands.CreateWeddingCommand{Wedding: models.Wedding{
		Name:  name,
		Date:  mustValue(m, PrefixDate),
		Venue: mustValue(m, PrefixVenue),
	}}, nil
}

// parseSetWedding takes the whole remainder as the wedding name.
func parseSetWedding(args string) (commands.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(commands.SetWeddingUsage)
	}
	name, err := ParseWeddingName(args)
	if err != nil {
		return nil, err
	}
	return commands.SetWeddingCommand{Name: name}, nil
}

func parseDeleteWedding(args string) (commands.Command, error) {
	return commands.DeleteWeddingCommand{Name: strings.TrimSpace(args)}, nil
}

func parseInvite(args string) (commands.Command, error) {
	m, err := requireFields(args, commands.InviteUsage, []Prefix{PrefixName})
	if err != nil {
		return nil, err
	}
	name, err := ParseName(mustValue(m, PrefixName))
	if err != nil {
		return nil, err
	}
	return commands.InviteCommand{Name: name}, nil
}

func parseExport(args string) (commands.Command, error) {
	m, err := requireFields(args, commands.ExportUsage, nil, PrefixFile)
	if err != nil {
		return nil, err
	}
	path, ok := m.Value(PrefixFile)
	if ok && path == "" {
		return nil, invalidFormat(commands.ExportUsage)
	}
	return commands.ExportCommand{Path: path}, nil
}
