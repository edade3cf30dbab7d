package mixfix

// parseInner resolves each inner forest of g on its own at the lowest power.
// The continuation markers already delimit them, so ambient precedence never
// reaches inside.
func parseInner(pe *ParseEnvironment, g *Group) ([]*Application, error) {
	args := make([]*Application, 0, len(g.Inner)+2)
	for _, forest := range g.Inner {
		arg, err := ParseForest(pe, forest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}
