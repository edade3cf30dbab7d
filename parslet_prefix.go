package mixfix

// prefixParslet builds the left-hand side from the first group of an
// expression.
type prefixParslet func(pe *ParseEnvironment, gs *groupStream, g *Group, f Fixity) (*Application, error)

// matchPrefixParslet returns nil for fixities that need a left operand.
func matchPrefixParslet(f Fixity) prefixParslet {
	switch f.Kind {
	case Nonfix:
		return parseNonfix
	case Prefix:
		return parsePrefix
	}
	return nil
}

func parseNonfix(pe *ParseEnvironment, _ *groupStream, g *Group, f Fixity) (*Application, error) {
	args, err := parseInner(pe, g)
	if err != nil {
		return nil, err
	}
	return newApplication(g, f, args), nil
}

func parsePrefix(pe *ParseEnvironment, gs *groupStream, g *Group, f Fixity) (*Application, error) {
	args, err := parseInner(pe, g)
	if err != nil {
		return nil, err
	}
	right, err := parseElement(pe, gs, f.Right)
	if err != nil {
		return nil, err
	}
	return newApplication(g, f, append(args, right)), nil
}
