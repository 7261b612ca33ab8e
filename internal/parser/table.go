package parser

import (
	"strings"

	"wedding-planner/internal/commands"
)

func parseAddTable(args string) (commands.Command, error) {
	m, err := requireFields(args, commands.AddTableUsage, []Prefix{PrefixTableID, PrefixCapacity})
	if err != nil {
		return nil, err
	}
	id, err := ParseTableID(mustValue(m, PrefixTableID))
	if err != nil {
		return nil, err
	}
	capacity, err := ParseCapacity(mustValue(m, PrefixCapacity))
	if err != nil {
		return nil, err
	}
	return commands.AddTableCommand{TableID: id, Capacity: capacity}, nil
}

// parseTableIDOnly reads a lone tid/ field.
func parseTableIDOnly(args, usage string) (int, error) {
	m, err := requireFields(args, usage, []Prefix{PrefixTableID})
	if err != nil {
		return 0, err
	}
	return ParseTableID(mustValue(m, PrefixTableID))
}

func parseDeleteTable(args string) (commands.Command, error) {
	id, err := parseTableIDOnly(args, commands.DeleteTableUsage)
	if err != nil {
		return nil, err
	}
	return commands.DeleteTableCommand{TableID: id}, nil
}

func parseFindTable(args string) (commands.Command, error) {
	id, err := parseTableIDOnly(args, commands.FindTableUsage)
	if err != nil {
		return nil, err
	}
	return commands.FindTableCommand{TableID: id}, nil
}

func parseGetAllTables(args string) (commands.Command, error) {
	if strings.TrimSpace(args) != "" {
		return nil, &Error{Kind: KindUnexpectedArguments, Message: commands.GetAllTablesUsage}
	}
	return commands.GetAllTablesCommand{}, nil
}

// parseGuestAtTable reads the n/ and tid/ pair shared by the seating commands.
func parseGuestAtTable(args, usage string) (string, int, error) {
	m, err := requireFields(args, usage, []Prefix{PrefixName, PrefixTableID})
	if err != nil {
		return "", 0, err
	}
	name, err := ParseName(mustValue(m, PrefixName))
	if err != nil {
		return "", 0, err
	}
	id, err := ParseTableID(mustValue(m, PrefixTableID))
	if err != nil {
		return "", 0, err
	}
	return name, id, nil
}

func parseAddGuestToTable(args string) (commands.Command, error) {
	name, id, err := parseGuestAtTable(args, commands.AddGuestToTableUsage)
	if err != nil {
		return nil, err
	}
	return commands.AddGuestToTableCommand{Name: name, TableID: id}, nil
}

func parseDeleteGuestFromTable(args string) (commands.Command, error) {
	name, id, err := parseGuestAtTable(args, commands.DeleteGuestFromTableUsage)
	if err != nil {
		return nil, err
	}
	return commands.DeleteGuestFromTableCommand{Name: name, TableID: id}, nil
}
