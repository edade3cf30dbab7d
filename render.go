package mixfix

import "strings"

// showName renders a head marker and its continuation markers with an
// underscore for every operand slot: `_+_`, `(_)`, `if_then_else_`.
func showName(head string, parts []string, f Fixity) string {
	var sb strings.Builder
	if f.HasPrefixSlot() {
		sb.WriteByte('_')
	}
	sb.WriteString(head)
	for _, part := range parts {
		sb.WriteByte('_')
		sb.WriteString(part)
	}
	if f.HasPostfixSlot() {
		sb.WriteByte('_')
	}
	return sb.String()
}

// ShowName is the display name of g under fixity f.
func ShowName(g *Group, f Fixity) string {
	return showName(g.Head, g.Parts, f)
}

// Name is the display name of the operator, e.g. `_*_` or `(_)`.
func (a *Application) Name() string {
	return showName(a.Operator, a.Parts, a.Fixity)
}

// String renders the tree in prefix form: `(_+_ (x) (x))`.
func (a *Application) String() string {
	var sb strings.Builder
	a.write(&sb)
	return sb.String()
}

func (a *Application) write(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(a.Name())
	for _, arg := range a.Args {
		sb.WriteByte(' ')
		arg.write(sb)
	}
	sb.WriteByte(')')
}

// Expression renders the tree back in mixfix notation. Operators that take
// operands from the stream are parenthesised when nested; bracketed operands
// are left as written.
func (a *Application) Expression() string {
	return a.expression(false)
}

func (a *Application) expression(nested bool) string {
	args := a.Args
	words := make([]string, 0, 2*len(a.Parts)+3)
	if (a.Fixity.Kind == Postfix || a.Fixity.Kind == Infix) && len(args) > 0 {
		words = append(words, args[0].expression(true))
		args = args[1:]
	}
	words = append(words, a.Operator)
	for _, part := range a.Parts {
		if len(args) > 0 {
			words = append(words, args[0].expression(false))
			args = args[1:]
		}
		words = append(words, part)
	}
	for _, arg := range args {
		words = append(words, arg.expression(true))
	}
	s := strings.Join(words, " ")
	if nested && a.Fixity.Kind != Nonfix {
		return "(" + s + ")"
	}
	return s
}

func showNames(pe *ParseEnvironment, groups []*Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		f, ok := pe.Fixities[g.Head]
		if !ok {
			f = NonfixOp()
		}
		names[i] = ShowName(g, f)
	}
	return names
}
