package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixfix"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	rules := mixfix.MustRuleTable(
		mixfix.NewRule("+"),
		mixfix.NewRule("*"),
		mixfix.NewRule("(", ")"),
		mixfix.NewRule("x"),
	)

	tokens, err := Tokenize("x + x * ( x + x )", rules)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "+", "x", "*", "(", "x", "+", "x", ")"}, tokens)

	tokens, err = Tokenize("", rules)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeFeedsParser(t *testing.T) {
	t.Parallel()

	rules := mixfix.MustRuleTable(
		mixfix.NewRule("+"),
		mixfix.NewRule("x"),
	)
	pe := mixfix.NewParseEnvironment(rules, mixfix.FixityTable{
		"+": mixfix.InfixOp(1, 2),
		"x": mixfix.NonfixOp(),
	})

	tokens, err := Tokenize("x + x + x", rules)
	require.NoError(t, err)
	app, err := mixfix.Parse(pe, tokens)
	require.NoError(t, err)
	assert.Equal(t, "(_+_ (_+_ (x) (x)) (x))", app.String())
}

func TestTokenizeUnknownText(t *testing.T) {
	t.Parallel()

	rules := mixfix.MustRuleTable(mixfix.NewRule("x"))
	tokens, err := Tokenize("x 7", rules)
	require.Error(t, err)
	assert.Nil(t, tokens)
}
