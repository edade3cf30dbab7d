package mixfix

// Group is one recognised instance of a Rule. Inner[i] holds the groups found
// between the previous marker and Parts[i].
type Group struct {
	Head  string
	Parts []string
	Inner []Forest
}

// Forest is an ordered sequence of sibling groups.
type Forest []*Group

func (g *Group) IsLeaf() bool {
	return len(g.Parts) == 0
}

// Flatten returns the markers of the forest in the order they were consumed.
func (f Forest) Flatten() []string {
	tokens := make([]string, 0, len(f))
	for _, g := range f {
		tokens = g.appendTokens(tokens)
	}
	return tokens
}

func (g *Group) appendTokens(tokens []string) []string {
	tokens = append(tokens, g.Head)
	for i, part := range g.Parts {
		for _, inner := range g.Inner[i] {
			tokens = inner.appendTokens(tokens)
		}
		tokens = append(tokens, part)
	}
	return tokens
}

// Application is an operator applied to its arguments. Arguments from inner
// forests sit between the stream operands: the left operand first, the right
// operand last.
type Application struct {
	Operator string
	Fixity   Fixity
	Parts    []string
	Args     []*Application
}

func newApplication(g *Group, f Fixity, args []*Application) *Application {
	return &Application{
		Operator: g.Head,
		Fixity:   f,
		Parts:    append([]string(nil), g.Parts...),
		Args:     args,
	}
}
