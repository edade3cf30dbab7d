package mixfix

import "github.com/sirupsen/logrus"

type tokenStream []string

func (ts *tokenStream) peek() (string, bool) {
	if len(*ts) == 0 {
		return "", false
	}
	return (*ts)[0], true
}

func (ts *tokenStream) next() (string, bool) {
	t, ok := ts.peek()
	if ok {
		*ts = (*ts)[1:]
	}
	return t, ok
}

// GroupTokens splits tokens into a forest of groups using pe.Rules. All
// tokens must be consumed.
func GroupTokens(pe *ParseEnvironment, tokens []string) (Forest, error) {
	ts := tokenStream(tokens)
	return groupUntil(pe, &ts, "", false)
}

// groupUntil collects groups until the input runs out or, when hasEnd is set,
// until the next token is end. The end token is left for the caller.
func groupUntil(pe *ParseEnvironment, ts *tokenStream, end string, hasEnd bool) (Forest, error) {
	if pe.tracing() {
		pe.Logger.WithFields(logrus.Fields{"tokens": []string(*ts), "end": end}).Debug("grouping")
	}

	var forest Forest
	for {
		t, ok := ts.peek()
		if !ok {
			return forest, nil
		}

		rule, found := pe.Rules.Lookup(t)
		if !found {
			if hasEnd && t == end {
				return forest, nil
			}
			return nil, unknownGroupStartError(t)
		}
		ts.next()

		g := &Group{
			Head:  rule.Head(),
			Parts: append([]string(nil), rule.Parts()...),
			Inner: make([]Forest, 0, len(rule.Parts())),
		}
		for _, part := range rule.Parts() {
			inner, err := groupUntil(pe, ts, part, true)
			if err != nil {
				return nil, err
			}
			found, ok := ts.next()
			if !ok {
				return nil, unexpectedEndError(part)
			}
			// consistency check: groupUntil only stops early on part itself
			if found != part {
				return nil, unexpectedTokenError(part, found)
			}
			g.Inner = append(g.Inner, inner)
		}
		forest = append(forest, g)
	}
}
