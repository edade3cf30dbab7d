package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mixfix"
	"mixfix/lexer"
)

func getCmdGroups(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "groups [expression]",
		Short: "Show how an expression is split into syntax groups",
		Long: `Show how an expression is split into syntax groups, without resolving
precedence. Each inner forest is listed under the marker that closes it.`,
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
			forest, err := mixfix.GroupTokens(pe, tokens)
			if err != nil {
				return err
			}
			return printForest(c.gs.stdout, pe, forest, 0)
		},
	}
}

func printForest(w io.Writer, pe *mixfix.ParseEnvironment, forest mixfix.Forest, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, g := range forest {
		f, ok := pe.Fixities[g.Head]
		if !ok {
			f = mixfix.NonfixOp()
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, mixfix.ShowName(g, f)); err != nil {
			return err
		}
		for i, part := range g.Parts {
			if _, err := fmt.Fprintf(w, "%s  [%s]\n", indent, part); err != nil {
				return err
			}
			if err := printForest(w, pe, g.Inner[i], depth+2); err != nil {
				return err
			}
		}
	}
	return nil
}
