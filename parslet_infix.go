package mixfix

// infixParslet extends an already parsed left operand.
type infixParslet func(pe *ParseEnvironment, gs *groupStream, g *Group, f Fixity, left *Application) (*Application, error)

// matchInfixParslet returns nil when f does not continue an expression parsed
// at min: it is not postfix or infix, or it binds more loosely than min.
func matchInfixParslet(f Fixity, min BindingPower) infixParslet {
	switch f.Kind {
	case Postfix:
		if f.Left < min {
			return nil
		}
		return parsePostfix
	case Infix:
		if f.Left < min {
			return nil
		}
		return parseInfix
	}
	return nil
}

func parsePostfix(pe *ParseEnvironment, _ *groupStream, g *Group, f Fixity, left *Application) (*Application, error) {
	args, err := parseInner(pe, g)
	if err != nil {
		return nil, err
	}
	return newApplication(g, f, append([]*Application{left}, args...)), nil
}

func parseInfix(pe *ParseEnvironment, gs *groupStream, g *Group, f Fixity, left *Application) (*Application, error) {
	args, err := parseInner(pe, g)
	if err != nil {
		return nil, err
	}
	right, err := parseElement(pe, gs, f.Right)
	if err != nil {
		return nil, err
	}
	args = append([]*Application{left}, args...)
	return newApplication(g, f, append(args, right)), nil
}
