package mixfix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mixfix"
)

func arithmetic(extra mixfix.FixityTable, rules ...mixfix.Rule) *mixfix.ParseEnvironment {
	rt := mixfix.MustRuleTable(append([]mixfix.Rule{
		mixfix.NewRule("+"),
		mixfix.NewRule("-"),
		mixfix.NewRule("*"),
		mixfix.NewRule("/"),
		mixfix.NewRule("(", ")"),
		mixfix.NewRule("x"),
	}, rules...)...)
	pe := mixfix.NewParseEnvironment(rt, mixfix.FixityTable{
		"+": mixfix.InfixOp(1, 2),
		"-": mixfix.InfixOp(1, 2),
		"*": mixfix.InfixOp(3, 4),
		"/": mixfix.InfixOp(3, 4),
		"x": mixfix.NonfixOp(),
		"(": mixfix.NonfixOp(),
	})
	for head, f := range extra {
		pe.AddFixity(head, f)
	}
	return pe
}

func tokens(s string) []string {
	return strings.Fields(s)
}

func parse(t *testing.T, pe *mixfix.ParseEnvironment, input string) *mixfix.Application {
	t.Helper()
	app, err := mixfix.Parse(pe, tokens(input))
	require.NoError(t, err)
	return app
}
