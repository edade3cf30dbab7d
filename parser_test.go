package mixfix_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixfix"
)

func TestParse_Precedence(t *testing.T) {
	t.Parallel()

	app := parse(t, arithmetic(nil), "x + x + x * x + ( x + x ) * x")
	assert.Equal(t, "(_+_ (_+_ (_+_ (x) (x)) (_*_ (x) (x))) (_*_ ((_) (_+_ (x) (x))) (x)))", app.String())
	assert.Equal(t, "((x + x) + (x * x)) + (( x + x ) * x)", app.Expression())
}

func TestParse_Table(t *testing.T) {
	t.Parallel()

	testdata := []struct {
		input    string
		expected string
	}{
		{"x", "(x)"},
		{"( x )", "((_) (x))"},
		{"x - x - x", "(_-_ (_-_ (x) (x)) (x))"},
		{"x - x * x / x", "(_-_ (x) (_/_ (_*_ (x) (x)) (x)))"},
		{"( x - x ) * x", "(_*_ ((_) (_-_ (x) (x))) (x))"},
		{"x * ( x - ( x ) )", "(_*_ (x) ((_) (_-_ (x) ((_) (x)))))"},
	}
	pe := arithmetic(nil)
	for _, data := range testdata {
		data := data
		t.Run(data.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, data.expected, parse(t, pe, data.input).String())
		})
	}
}

func TestParse_PrefixPower(t *testing.T) {
	t.Parallel()

	testdata := []struct {
		power    mixfix.BindingPower
		input    string
		expected string
	}{
		{2, "~ x + x", "(_+_ (_~ (x)) (x))"},
		{0, "~ x + x", "(_~ (_+_ (x) (x)))"},
		{4, "~ x * x", "(_*_ (_~ (x)) (x))"},
		{3, "~ x * x", "(_~ (_*_ (x) (x)))"},
		{3, "~ x * x + x", "(_+_ (_~ (_*_ (x) (x))) (x))"},
		{2, "x * ~ x + x", "(_+_ (_*_ (x) (_~ (x))) (x))"},
		{0, "x * ~ x + x", "(_*_ (x) (_~ (_+_ (x) (x))))"},
		{2, "~ ~ x", "(_~ (_~ (x)))"},
	}
	for _, data := range testdata {
		data := data
		t.Run(data.input, func(t *testing.T) {
			t.Parallel()
			pe := arithmetic(mixfix.FixityTable{"~": mixfix.PrefixOp(data.power)}, mixfix.NewRule("~"))
			assert.Equal(t, data.expected, parse(t, pe, data.input).String())
		})
	}
}

func TestParse_PostfixPower(t *testing.T) {
	t.Parallel()

	testdata := []struct {
		power    mixfix.BindingPower
		input    string
		expected string
	}{
		{5, "x + x !", "(_+_ (x) (!_ (x)))"},
		{0, "x + x !", "(!_ (_+_ (x) (x)))"},
		{5, "x ! !", "(!_ (!_ (x)))"},
		{3, "x * x !", "(!_ (_*_ (x) (x)))"},
		{4, "x * x !", "(_*_ (x) (!_ (x)))"},
	}
	for _, data := range testdata {
		data := data
		t.Run(data.input, func(t *testing.T) {
			t.Parallel()
			pe := arithmetic(mixfix.FixityTable{"!": mixfix.PostfixOp(data.power)}, mixfix.NewRule("!"))
			assert.Equal(t, data.expected, parse(t, pe, data.input).String())
		})
	}
}

func TestParse_Mixfix(t *testing.T) {
	t.Parallel()

	pe := arithmetic(mixfix.FixityTable{
		"if": mixfix.PrefixOp(0),
		"[":  mixfix.PostfixOp(9),
		"?":  mixfix.InfixOp(1, 0),
		"{":  mixfix.NonfixOp(),
	},
		mixfix.NewRule("if", "then", "else"),
		mixfix.NewRule("[", "]"),
		mixfix.NewRule("?", ":"),
		mixfix.NewRule("{", "}"),
	)

	testdata := []struct {
		input    string
		expected string
		expr     string
	}{
		{
			"if x then x else x + x",
			"(_if_then_else (x) (x) (_+_ (x) (x)))",
			"if x then x else (x + x)",
		},
		{
			"x [ x + x ] * x",
			"(_*_ ([_]_ (x) (_+_ (x) (x))) (x))",
			"(x [ x + x ]) * x",
		},
		{
			"x ? x + x : x",
			"(_?_:_ (x) (_+_ (x) (x)) (x))",
			"x ? x + x : x",
		},
		{
			"x + x ? x : x ? x : x",
			"(_?_:_ (_+_ (x) (x)) (x) (_?_:_ (x) (x) (x)))",
			"(x + x) ? x : (x ? x : x)",
		},
		{
			"{ x - x } * x",
			"(_*_ ({_} (_-_ (x) (x))) (x))",
			"{ x - x } * x",
		},
		{
			"if { x } then x [ x ] else x",
			"(_if_then_else ({_} (x)) ([_]_ (x) (x)) (x))",
			"if { x } then x [ x ] else x",
		},
	}
	for _, data := range testdata {
		data := data
		t.Run(data.input, func(t *testing.T) {
			t.Parallel()
			app := parse(t, pe, data.input)
			assert.Equal(t, data.expected, app.String())
			assert.Equal(t, data.expr, app.Expression())
		})
	}
}

func TestParseExpression_Remaining(t *testing.T) {
	t.Parallel()

	pe := arithmetic(nil)
	forest, err := mixfix.GroupTokens(pe, tokens("x + x * x"))
	require.NoError(t, err)

	app, rest, err := mixfix.ParseExpression(pe, forest, 2)
	require.NoError(t, err)
	assert.Equal(t, "(x)", app.String())
	require.Len(t, rest, 4)
	assert.Equal(t, "+", rest[0].Head)

	app, rest, err = mixfix.ParseExpression(pe, rest[1:], 2)
	require.NoError(t, err)
	assert.Equal(t, "(_*_ (x) (x))", app.String())
	assert.Empty(t, rest)

	app, rest, err = mixfix.ParseExpression(pe, forest, 0)
	require.NoError(t, err)
	assert.Equal(t, "(_+_ (x) (_*_ (x) (x)))", app.String())
	assert.Empty(t, rest)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testdata := []struct {
		input   string
		kind    error
		token   string
		message string
	}{
		{"", mixfix.ErrEmptyExpression, "", "expression expected, found nothing"},
		{"( )", mixfix.ErrEmptyExpression, "", "expression expected, found nothing"},
		{"x +", mixfix.ErrEmptyExpression, "", "expression expected, found nothing"},
		{"+ x", mixfix.ErrMisplacedOperator, "+", "expected prefix or nonfix operator, found infix operator '_+_'"},
		{"x * * x", mixfix.ErrMisplacedOperator, "*", "expected prefix or nonfix operator, found infix operator '_*_'"},
		{"x x", mixfix.ErrMisplacedOperator, "x", "expected infix or postfix operator, found nonfix operator 'x'"},
		{"( x ( x ) )", mixfix.ErrMisplacedOperator, "(", "expected infix or postfix operator, found nonfix operator '(_)'"},
		{"y", mixfix.ErrUnknownOperator, "y", "precedence for 'y' not found"},
		{"x + y", mixfix.ErrUnknownOperator, "y", "precedence for 'y' not found"},
		{"x % x", mixfix.ErrUnknownOperator, "%", "precedence for '%' not found"},
		{"( x + x", mixfix.ErrUnmatchedContinuation, ")", "expected ')', found end of input"},
	}
	pe := arithmetic(nil, mixfix.NewRule("y"), mixfix.NewRule("%"))
	for _, data := range testdata {
		data := data
		t.Run(data.input, func(t *testing.T) {
			t.Parallel()
			app, err := mixfix.Parse(pe, tokens(data.input))
			require.Error(t, err)
			assert.Nil(t, app)
			assert.True(t, errors.Is(err, data.kind), "unexpected error kind: %v", err)
			assert.Equal(t, data.message, err.Error())
			assert.False(t, mixfix.IsInternal(err))

			var perr *mixfix.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, data.token, perr.Token)
		})
	}
}

func TestParse_FirstErrorWins(t *testing.T) {
	t.Parallel()

	pe := arithmetic(nil, mixfix.NewRule("y"), mixfix.NewRule("z"))
	_, err := mixfix.Parse(pe, tokens("( y ) + z"))
	require.Error(t, err)
	assert.Equal(t, "precedence for 'y' not found", err.Error())
}

func TestParse_Concurrent(t *testing.T) {
	t.Parallel()

	pe := arithmetic(nil)
	expected := parse(t, pe, "x + x + x * x + ( x + x ) * x").String()

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			app, err := mixfix.Parse(pe, tokens("x + x + x * x + ( x + x ) * x"))
			if err == nil {
				results[i] = app.String()
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}

func TestParse_LogsSteps(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	pe := arithmetic(nil)
	pe.SetLogger(logger)

	parse(t, pe, "x + x")

	var processing []logrus.Fields
	for _, e := range hook.AllEntries() {
		if e.Message == "processing groups" {
			processing = append(processing, e.Data)
		}
	}
	require.Len(t, processing, 2)
	assert.Equal(t, []string{"x", "_+_", "x"}, processing[0]["groups"])
	assert.Equal(t, mixfix.BindingPower(2), processing[1]["min"])
}

func TestParse_StructLiteralEnvironment(t *testing.T) {
	t.Parallel()

	pe := &mixfix.ParseEnvironment{
		Rules: mixfix.MustRuleTable(mixfix.NewRule("+"), mixfix.NewRule("(", ")"), mixfix.NewRule("x")),
	}
	pe.AddFixity("+", mixfix.InfixOp(1, 2))
	pe.AddFixity("(", mixfix.NonfixOp())
	pe.AddFixity("x", mixfix.NonfixOp())

	app, err := mixfix.Parse(pe, tokens("( x + x ) + x"))
	require.NoError(t, err)
	assert.Equal(t, "(_+_ ((_) (_+_ (x) (x))) (x))", app.String())
}

func TestParse_LongChain(t *testing.T) {
	t.Parallel()

	const operands = 20000
	in := make([]string, 0, 2*operands)
	for i := 0; i < operands; i++ {
		if i > 0 {
			in = append(in, "+")
		}
		in = append(in, "x")
	}

	logger, hook := logtest.NewNullLogger()
	pe := arithmetic(nil)
	pe.SetLogger(logger)

	app, err := mixfix.Parse(pe, in)
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())

	depth := 0
	for ; len(app.Args) == 2; app = app.Args[0] {
		depth++
	}
	assert.Equal(t, operands-1, depth)
	assert.Equal(t, "x", app.Operator)
}
