// Package parser turns a line of user input into a command.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"wedding-planner/internal/commands"
)

// basicCommandFormat separates the command word from its arguments. The
// arguments keep their leading whitespace.
var basicCommandFormat = regexp.MustCompile(`^(?P<word>\S+)(?P<arguments>.*)$`)

// Parser maps input lines to commands. It holds no state besides its logger.
type Parser struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Parser {
	return &Parser{log: log.With().Str("component", "parser").Logger()}
}

// ParseCommand parses one line of user input. The command word must match
// exactly; there is no abbreviation.
func (p *Parser) ParseCommand(input string) (commands.Command, error) {
	match := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return nil, invalidFormat(commands.HelpUsage)
	}
	word, arguments := match[1], match[2]

	p.log.Debug().Str("command_word", word).Str("arguments", arguments).Msg("Parsing command")

	switch word {
	case commands.WeddingOverviewWord:
		return noArguments(word, arguments, commands.WeddingOverviewUsage, commands.WeddingOverviewCommand{})
	case commands.ClearWord:
		return noArguments(word, arguments, commands.ClearUsage, commands.ClearCommand{})
	case commands.ListWord:
		return noArguments(word, arguments, commands.ListUsage, commands.ListCommand{})
	case commands.ExitWord:
		return noArguments(word, arguments, commands.ExitUsage, commands.ExitCommand{})
	case commands.HelpWord:
		return noArguments(word, arguments, commands.HelpUsage, commands.HelpCommand{})

	case commands.SetWeddingWord:
		return parseSetWedding(arguments)
	case commands.DeleteWeddingWord:
		return parseDeleteWedding(arguments)
	case commands.CreateWeddingWord:
		return parseCreateWedding(arguments)

	case commands.AddWord:
		return parseAdd(arguments)
	case commands.AddGuestWord:
		return parseAddGuest(arguments)
	case commands.EditWord:
		return parseEdit(arguments)
	case commands.DeleteWord:
		return parseDelete(arguments)
	case commands.DeleteGuestWord:
		return parseDeleteGuest(arguments)
	case commands.FindWord:
		return parseFind(arguments)
	case commands.FilterWord:
		return parseFilter(arguments)
	case commands.SeeRsvpListWord:
		return parseSeeRsvpList(arguments)

	case commands.AddTableWord:
		return parseAddTable(arguments)
	case commands.DeleteTableWord:
		return parseDeleteTable(arguments)
	case commands.FindTableWord:
		return parseFindTable(arguments)
	case commands.GetAllTablesWord:
		return parseGetAllTables(arguments)
	case commands.AddGuestToTableWord:
		return parseAddGuestToTable(arguments)
	case commands.DeleteGuestFromTableWord:
		return parseDeleteGuestFromTable(arguments)

	case commands.InviteWord:
		return parseInvite(arguments)
	case commands.ExportWord:
		return parseExport(arguments)

	default:
		p.log.Trace().Str("input", input).Msg("This user input caused a parse error")
		return nil, &Error{Kind: KindUnknownCommand, Message: MessageUnknownCommand}
	}
}

// noArguments returns cmd if arguments is empty.
func noArguments(word, arguments, usage string, cmd commands.Command) (commands.Command, error) {
	if arguments != "" {
		return nil, &Error{
			Kind:    KindUnexpectedArguments,
			Message: fmt.Sprintf("%s takes no arguments\n%s", word, usage),
		}
	}
	return cmd, nil
}
