package mixfix

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ParseEnvironment carries the tables a parse runs against. It is read-only
// while parsing, so one environment can serve concurrent parses.
type ParseEnvironment struct {
	Rules    *RuleTable
	Fixities FixityTable
	Logger   logrus.FieldLogger
}

func (pe *ParseEnvironment) AddFixity(head string, f Fixity) {
	if pe.Fixities == nil {
		pe.Fixities = make(FixityTable)
	}
	pe.Fixities[head] = f
}

func (pe *ParseEnvironment) SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		logger = discardLogger()
	}
	pe.Logger = logger
}

// tracing reports whether debug entries would be written, so callers can skip
// building their fields. A nil Logger never traces.
func (pe *ParseEnvironment) tracing() bool {
	switch l := pe.Logger.(type) {
	case nil:
		return false
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger == nil || l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}

func (pe *ParseEnvironment) fixity(head string) (Fixity, error) {
	f, ok := pe.Fixities[head]
	if !ok {
		return Fixity{}, unknownOperatorError(head)
	}
	return f, nil
}

func NewParseEnvironment(rules *RuleTable, fixities FixityTable) *ParseEnvironment {
	if fixities == nil {
		fixities = make(FixityTable)
	}
	return &ParseEnvironment{
		Rules:    rules,
		Fixities: fixities,
		Logger:   discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
