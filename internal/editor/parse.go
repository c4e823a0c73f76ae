package editor

import (
	"fmt"
	"strings"
)

// Parser turns a raw input line into a command and its argument.
type Parser struct {
	aliases map[string]Command
}

// NewParser builds a parser that also accepts the given alias words. Each
// alias must name a known token.
func NewParser(aliases map[string]string) (*Parser, error) {
	p := &Parser{aliases: make(map[string]Command, len(aliases))}
	for word, token := range aliases {
		cmd, ok := Lookup(token)
		if !ok {
			return nil, fmt.Errorf("alias %q: %w: %q", word, ErrUnknownCommand, token)
		}
		if cmd.TakesText() {
			return nil, fmt.Errorf("alias %q: %q takes text and cannot be aliased", word, token)
		}
		p.aliases[word] = cmd
	}
	return p, nil
}

var defaultParser = &Parser{}

// ParseInput parses raw with no aliases.
func ParseInput(raw string) (Command, string, error) {
	return defaultParser.Parse(raw)
}

// Parse recognizes "i<text>" and "a<text>" (text is everything after the
// first rune, spaces included) and otherwise an exact token or alias.
func (p *Parser) Parse(raw string) (Command, string, error) {
	word := strings.TrimSpace(raw)
	if cmd, ok := p.aliases[word]; ok {
		return cmd, "", nil
	}
	if len(raw) > 1 && (raw[0] == 'i' || raw[0] == 'a') {
		cmd, _ := Lookup(raw[:1])
		return cmd, raw[1:], nil
	}
	cmd, ok := Lookup(word)
	if !ok {
		return CmdNone, "", fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}
	if cmd.TakesText() {
		return CmdNone, "", fmt.Errorf("%w: %q", ErrMissingArgument, word)
	}
	return cmd, "", nil
}
