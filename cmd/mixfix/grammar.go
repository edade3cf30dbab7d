package main

import (
	"github.com/spf13/cobra"

	"mixfix/grammar"
)

func getCmdGrammar(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the active grammar as YAML",
		Long: `Print the active grammar as YAML. Without --grammar this is the built-in
arithmetic grammar, which makes a starting point for your own.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := c.loadGrammar()
			if err != nil {
				return err
			}
			return grammar.Encode(c.gs.stdout, g)
		},
	}
}
