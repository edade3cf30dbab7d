package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixfix"
	"mixfix/internal/config"
	"mixfix/lexer"
)

func getCmdParse(c *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and print its application tree",
		Long: `Parse an expression and print its application tree.

The expression is taken from the arguments, or from stdin when there are none.`,
		Example: `  mixfix parse "x + x * x"
  mixfix parse --format expr "x + x + x * x + ( x + x ) * x"
  echo "x * ( x - x )" | mixfix parse -g arith.yaml`,
		RunE: func(_ *cobra.Command, args []string) error {
			pe, err := c.environment()
			if err != nil {
				return err
			}
			input, err := c.readInput(args)
			if err != nil {
				return err
			}
			tokens, err := lexer.Tokenize(input, pe.Rules)
			if err != nil {
				return err
			}
			c.gs.logger.WithField("tokens", tokens).Debug("input tokenized")

			app, err := mixfix.Parse(pe, tokens)
			if err != nil {
				return err
			}
			out := app.String()
			if c.conf.Format == config.FormatExpression {
				out = app.Expression()
			}
			_, err = fmt.Fprintln(c.gs.stdout, out)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", config.FormatTree, "output `format`: tree or expr")
	return cmd
}
