package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// globalState is everything the commands touch outside the process, so tests
// can swap it out.
type globalState struct {
	fs     afero.Fs
	env    map[string]string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	stderrTTY bool
	logger    *logrus.Logger
}

func newGlobalState() *globalState {
	stderrTTY := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return &globalState{
		fs:        afero.NewOsFs(),
		env:       buildEnvMap(os.Environ()),
		stdin:     os.Stdin,
		stdout:    colorable.NewColorableStdout(),
		stderr:    colorable.NewColorableStderr(),
		stderrTTY: stderrTTY,
		logger: &logrus.Logger{
			Out:       os.Stderr,
			Formatter: new(logrus.TextFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
	}
}

func buildEnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}

// errorColor is red on a terminal and plain otherwise.
func (gs *globalState) errorColor(noColor bool) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if noColor || !gs.stderrTTY {
		c.DisableColor()
	}
	return c
}
