package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mixfix"
	"mixfix/grammar"
	"mixfix/internal/config"
)

const (
	exitInputError    = 1
	exitUsageError    = 2
	exitInternalError = 70
)

// usageError marks problems with flags, environment or grammar files rather
// than with the parsed expression.
type usageError struct {
	error
}

func (e usageError) Unwrap() error {
	return e.error
}

func exitCode(err error) int {
	var ue usageError
	switch {
	case mixfix.IsInternal(err):
		return exitInternalError
	case errors.As(err, &ue):
		return exitUsageError
	default:
		return exitInputError
	}
}

type rootCommand struct {
	gs   *globalState
	conf config.Config
	cmd  *cobra.Command
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{
		gs:   gs,
		conf: config.Default(),
	}
	c.cmd = &cobra.Command{
		Use:               "mixfix",
		Short:             "parse expressions with user-defined mixfix operators",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetIn(gs.stdin)
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())
	c.cmd.AddCommand(
		getCmdParse(c),
		getCmdGroups(c),
		getCmdGrammar(c),
		getCmdVersion(c),
	)
	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringP("grammar", "g", "", "grammar `file` to use instead of the built-in arithmetic grammar")
	flags.StringP("log-level", "l", "info", "log level: panic, fatal, error, warn, info, debug or trace")
	flags.Bool("no-color", false, "disable colored output")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	conf, err := config.FromEnv(c.gs.env)
	if err != nil {
		return usageError{err}
	}

	flags := cmd.Flags()
	if flags.Changed("grammar") {
		conf.Grammar, _ = flags.GetString("grammar")
	}
	if flags.Changed("log-level") {
		conf.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("no-color") {
		conf.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		conf.Format, _ = flags.GetString("format")
	}
	if err := conf.Validate(); err != nil {
		return usageError{err}
	}

	c.conf = conf
	c.gs.logger.SetLevel(conf.Level())
	c.gs.logger.WithField("config", fmt.Sprintf("%+v", conf)).Debug("configuration loaded")
	return nil
}

func (c *rootCommand) loadGrammar() (*grammar.Grammar, error) {
	if c.conf.Grammar == "" {
		return grammar.Default(), nil
	}
	g, err := grammar.Load(c.gs.fs, c.conf.Grammar)
	if err != nil {
		return nil, usageError{err}
	}
	if missing := g.MissingFixities(); len(missing) > 0 {
		c.gs.logger.WithField("heads", missing).Warn("some rules have no fixity and cannot be parsed")
	}
	return g, nil
}

func (c *rootCommand) environment() (*mixfix.ParseEnvironment, error) {
	g, err := c.loadGrammar()
	if err != nil {
		return nil, err
	}
	pe := g.Environment()
	pe.SetLogger(c.gs.logger)
	return pe, nil
}

// readInput joins the arguments, or reads stdin when there are none.
func (c *rootCommand) readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(c.gs.stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (gs *globalState) execute(args []string) int {
	c := newRootCommand(gs)
	c.cmd.SetArgs(args)
	err := c.cmd.Execute()
	if err == nil {
		return 0
	}
	_, _ = fmt.Fprintln(gs.stderr, gs.errorColor(c.conf.NoColor).Sprintf("error: %s", err))
	return exitCode(err)
}
