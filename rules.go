package mixfix

// Rule is a mixfix syntax rule: a head marker followed by the continuation
// markers that must close it, in order. A rule with only a head is atomic.
type Rule []string

func NewRule(head string, parts ...string) Rule {
	return append(Rule{head}, parts...)
}

func (r Rule) Head() string {
	return r[0]
}

func (r Rule) Parts() []string {
	return r[1:]
}

// RuleTable holds rules in declaration order, indexed by head marker.
type RuleTable struct {
	rules []Rule
	heads map[string]int
}

// NewRuleTable copies rules into a table. Rules without markers and rules
// sharing a head marker are rejected with ErrAmbiguousRule.
func NewRuleTable(rules ...Rule) (*RuleTable, error) {
	rt := &RuleTable{
		rules: make([]Rule, 0, len(rules)),
		heads: make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		if len(r) == 0 {
			return nil, emptyRuleError()
		}
		if _, ok := rt.heads[r.Head()]; ok {
			return nil, duplicateRuleError(r.Head())
		}
		rt.heads[r.Head()] = len(rt.rules)
		rt.rules = append(rt.rules, append(Rule(nil), r...))
	}
	return rt, nil
}

// MustRuleTable is NewRuleTable for tables known to be valid.
func MustRuleTable(rules ...Rule) *RuleTable {
	rt, err := NewRuleTable(rules...)
	if err != nil {
		panic(err)
	}
	return rt
}

func (rt *RuleTable) Lookup(head string) (Rule, bool) {
	i, ok := rt.heads[head]
	if !ok {
		return nil, false
	}
	return rt.rules[i], true
}

func (rt *RuleTable) Len() int {
	return len(rt.rules)
}

func (rt *RuleTable) Rules() []Rule {
	result := make([]Rule, len(rt.rules))
	for i, r := range rt.rules {
		result[i] = append(Rule(nil), r...)
	}
	return result
}

// Markers lists every distinct head and continuation marker in table order.
func (rt *RuleTable) Markers() []string {
	seen := make(map[string]bool)
	markers := make([]string, 0, len(rt.rules))
	for _, r := range rt.rules {
		for _, m := range r {
			if !seen[m] {
				seen[m] = true
				markers = append(markers, m)
			}
		}
	}
	return markers
}
