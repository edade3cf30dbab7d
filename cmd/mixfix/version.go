package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func getCmdVersion(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(c.gs.stdout, "mixfix v%s\n", version)
			return err
		},
	}
}
