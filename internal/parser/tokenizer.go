package parser

import (
	"slices"
	"strings"
)

// Prefix marks the start of a field, e.g. "n/".
type Prefix string

const (
	PrefixName     Prefix = "n/"
	PrefixPhone    Prefix = "p/"
	PrefixEmail    Prefix = "e/"
	PrefixAddress  Prefix = "a/"
	PrefixRsvp     Prefix = "r/"
	PrefixDiet     Prefix = "d/"
	PrefixTag      Prefix = "t/"
	PrefixTableID  Prefix = "tid/"
	PrefixCapacity Prefix = "c/"
	PrefixDate     Prefix = "dt/"
	PrefixVenue    Prefix = "v/"
	PrefixFile     Prefix = "f/"
)

// ArgumentMultimap maps prefixes to the values that followed them, in input
// order. Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for prefix.
func (m ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	vs := m.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (m ArgumentMultimap) AllValues(prefix Prefix) []string {
	return slices.Clone(m.values[prefix])
}

func (m ArgumentMultimap) Has(prefix Prefix) bool {
	return len(m.values[prefix]) > 0
}

func (m ArgumentMultimap) Preamble() string { return m.preamble }

// VerifyNoDuplicatePrefixesFor fails if any of prefixes was given twice.
func (m ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) > 0 {
		return invalidValue(MessageDuplicateFields + strings.Join(dups, " "))
	}
	return nil
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// follows whitespace, so args is expected to start with a space as it does
// when taken verbatim after the command word.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	slices.SortFunc(positions, func(a, b prefixPosition) int { return a.start - b.start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPrefixPositions(args string, prefix Prefix) []prefixPosition {
	var out []prefixPosition
	from := 0
	for {
		i := indexAfterWhitespace(args[from:], string(prefix))
		if i < 0 {
			return out
		}
		out = append(out, prefixPosition{prefix: prefix, start: from + i})
		from += i + len(prefix)
	}
}

// indexAfterWhitespace finds the first occurrence of sub that is preceded by
// a whitespace character.
func indexAfterWhitespace(s, sub string) int {
	offset := 0
	for {
		i := strings.Index(s[offset:], sub)
		if i < 0 {
			return -1
		}
		at := offset + i
		if at > 0 && isSpace(s[at-1]) {
			return at
		}
		offset = at + 1
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
