// Package lexer turns source text into the marker tokens of a rule table.
package lexer

import (
	"errors"
	"fmt"

	"github.com/JeffThomas/lexx-go/lexx"
	"github.com/JeffThomas/lexx-go/matchers"

	"mixfix"
)

var ErrUnknownToken = errors.New("unknown token")

// Error reports text no marker matches.
type Error struct {
	Text   string
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not match token '%s' at %d, %d", e.Text, e.Line, e.Column)
}

func (e *Error) Unwrap() error {
	return ErrUnknownToken
}

// New builds a lexer that recognises whitespace and every marker in rules.
func New(rules *mixfix.RuleTable) *lexx.Lexx {
	return lexx.NewLexx([]matchers.LexxMatcherInitialize{
		matchers.StartWhitespaceMatcher,
		matchers.ConfigOperatorMatcher(rules.Markers()),
	})
}

// Tokenize splits input into markers, dropping whitespace.
func Tokenize(input string, rules *mixfix.RuleTable) ([]string, error) {
	l := New(rules)
	l.SetStringInput(input)

	tokens := make([]string, 0)
	for {
		t, err := l.GetNextToken()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, &Error{
				Text:   string(l.State.CurrentText),
				Line:   l.State.Line,
				Column: l.State.Column,
			}
		}
		switch {
		case t.Type == matchers.SYSTEM && t.Value == "EOF":
			return tokens, nil
		case t.Type == matchers.WHITESPACE:
			continue
		}
		tokens = append(tokens, t.Value)
	}
}
