// Package grammar loads rule and fixity tables from YAML documents.
//
// A grammar file looks like this:
//
//	rules:
//	  - ["(", ")"]
//	  - ["if", "then", "else"]
//	  - ["x"]
//	fixities:
//	  "+": {kind: infix, left: 1, right: 2}
//	  "if": {kind: prefix, right: 1}
//	  "x": {kind: nonfix}
package grammar

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"mixfix"
)

// Grammar is a validated rule table with its fixities.
type Grammar struct {
	Rules    *mixfix.RuleTable
	Fixities mixfix.FixityTable
}

type fixityDoc struct {
	Kind  string `yaml:"kind"`
	Left  uint   `yaml:"left,omitempty"`
	Right uint   `yaml:"right,omitempty"`
}

type grammarDoc struct {
	Rules    [][]string           `yaml:"rules"`
	Fixities map[string]fixityDoc `yaml:"fixities"`
}

// Decode reads a grammar document from r.
func Decode(r io.Reader) (*Grammar, error) {
	var doc grammarDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("grammar is empty")
		}
		return nil, fmt.Errorf("could not decode grammar: %w", err)
	}

	rules := make([]mixfix.Rule, 0, len(doc.Rules))
	for _, r := range doc.Rules {
		rules = append(rules, mixfix.Rule(r))
	}
	rt, err := mixfix.NewRuleTable(rules...)
	if err != nil {
		return nil, err
	}

	fixities := make(mixfix.FixityTable, len(doc.Fixities))
	for head, fd := range doc.Fixities {
		kind, err := mixfix.ParseFixityKind(fd.Kind)
		if err != nil {
			return nil, fmt.Errorf("fixity of '%s': %w", head, err)
		}
		fixities[head] = mixfix.Fixity{
			Kind:  kind,
			Left:  mixfix.BindingPower(fd.Left),
			Right: mixfix.BindingPower(fd.Right),
		}
	}
	return &Grammar{Rules: rt, Fixities: fixities}, nil
}

// Load reads the grammar file at path from fs.
func Load(fs afero.Fs, path string) (*Grammar, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	g, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Encode writes g in the format Decode reads.
func Encode(w io.Writer, g *Grammar) error {
	doc := grammarDoc{Fixities: make(map[string]fixityDoc, len(g.Fixities))}
	for _, r := range g.Rules.Rules() {
		doc.Rules = append(doc.Rules, []string(r))
	}
	for head, f := range g.Fixities {
		doc.Fixities[head] = fixityDoc{Kind: f.Kind.String(), Left: uint(f.Left), Right: uint(f.Right)}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// MissingFixities lists rule heads without a fixity entry, sorted.
func (g *Grammar) MissingFixities() []string {
	var missing []string
	for _, r := range g.Rules.Rules() {
		if _, ok := g.Fixities[r.Head()]; !ok {
			missing = append(missing, r.Head())
		}
	}
	sort.Strings(missing)
	return missing
}

// Environment returns a parse environment over copies of the grammar's tables.
func (g *Grammar) Environment() *mixfix.ParseEnvironment {
	fixities := make(mixfix.FixityTable, len(g.Fixities))
	for head, f := range g.Fixities {
		fixities[head] = f
	}
	return mixfix.NewParseEnvironment(g.Rules, fixities)
}

// Default is the arithmetic grammar: `+` and `-` at (1, 2), `*` and `/` at
// (3, 4), parentheses and the atom `x`.
func Default() *Grammar {
	return &Grammar{
		Rules: mixfix.MustRuleTable(
			mixfix.NewRule("+"),
			mixfix.NewRule("-"),
			mixfix.NewRule("*"),
			mixfix.NewRule("/"),
			mixfix.NewRule("(", ")"),
			mixfix.NewRule("x"),
		),
		Fixities: mixfix.FixityTable{
			"+": mixfix.InfixOp(1, 2),
			"-": mixfix.InfixOp(1, 2),
			"*": mixfix.InfixOp(3, 4),
			"/": mixfix.InfixOp(3, 4),
			"x": mixfix.NonfixOp(),
			"(": mixfix.NonfixOp(),
		},
	}
}
