package mixfix

import "github.com/sirupsen/logrus"

type groupStream []*Group

func (gs *groupStream) peek() (*Group, bool) {
	if len(*gs) == 0 {
		return nil, false
	}
	return (*gs)[0], true
}

func (gs *groupStream) next() (*Group, bool) {
	g, ok := gs.peek()
	if ok {
		*gs = (*gs)[1:]
	}
	return g, ok
}

// Parse groups tokens and resolves the resulting forest into one tree.
func Parse(pe *ParseEnvironment, tokens []string) (*Application, error) {
	forest, err := GroupTokens(pe, tokens)
	if err != nil {
		return nil, err
	}
	return ParseForest(pe, forest)
}

// ParseExpression parses one expression from the front of groups, stopping at
// the first operator that binds less tightly than min. It returns the groups
// it did not consume.
func ParseExpression(pe *ParseEnvironment, groups []*Group, min BindingPower) (*Application, []*Group, error) {
	gs := groupStream(groups)
	app, err := parseElement(pe, &gs, min)
	if err != nil {
		return nil, nil, err
	}
	return app, []*Group(gs), nil
}

// ParseForest parses a whole forest as one self-contained expression.
func ParseForest(pe *ParseEnvironment, forest Forest) (*Application, error) {
	gs := groupStream(forest)
	app, err := parseElement(pe, &gs, POWER_NONE)
	if err != nil {
		return nil, err
	}

	rest, ok := gs.peek()
	if !ok {
		return app, nil
	}
	f, err := pe.fixity(rest.Head)
	if err != nil {
		return nil, err
	}
	if f.Kind == Nonfix || f.Kind == Prefix {
		return nil, missingOperatorError(rest, f)
	}
	// consistency check: at POWER_NONE every postfix and infix group binds
	return nil, unconsumedGroupsError(rest, len(gs))
}

// parseElement is the precedence climbing loop over gs.
func parseElement(pe *ParseEnvironment, gs *groupStream, min BindingPower) (*Application, error) {
	if pe.tracing() {
		pe.Logger.WithFields(logrus.Fields{"groups": showNames(pe, *gs), "min": min}).Debug("processing groups")
	}

	group, ok := gs.next()
	if !ok {
		return nil, emptyExpressionError()
	}
	f, err := pe.fixity(group.Head)
	if err != nil {
		return nil, err
	}
	prefixP := matchPrefixParslet(f)
	if prefixP == nil {
		return nil, missingLeftOperandError(group, f)
	}
	left, err := prefixP(pe, gs, group, f)
	if err != nil {
		return nil, err
	}

	for {
		group, ok := gs.peek()
		if !ok {
			return left, nil
		}
		f, err := pe.fixity(group.Head)
		if err != nil {
			return nil, err
		}
		if pe.tracing() {
			pe.Logger.WithFields(logrus.Fields{"lhs": left.Name(), "op": ShowName(group, f)}).Debug("operator")
		}

		infixP := matchInfixParslet(f, min)
		if infixP == nil {
			return left, nil
		}
		gs.next()
		left, err = infixP(pe, gs, group, f, left)
		if err != nil {
			return nil, err
		}
	}
}
