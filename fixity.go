package mixfix

import (
	"fmt"
	"strings"
)

// FixityKind says where an operator takes operands from the surrounding stream.
type FixityKind int

const (
	Nonfix FixityKind = iota
	Prefix
	Postfix
	Infix
)

func (k FixityKind) String() string {
	switch k {
	case Nonfix:
		return "nonfix"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	case Infix:
		return "infix"
	}
	return fmt.Sprintf("FixityKind(%d)", int(k))
}

// ParseFixityKind is the inverse of FixityKind.String, ignoring case.
func ParseFixityKind(s string) (FixityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nonfix", "":
		return Nonfix, nil
	case "prefix":
		return Prefix, nil
	case "postfix":
		return Postfix, nil
	case "infix":
		return Infix, nil
	}
	return Nonfix, fmt.Errorf("unknown fixity kind '%s'", s)
}

// Fixity is a FixityKind with its binding powers. Left is only meaningful for
// Postfix and Infix, Right only for Prefix and Infix.
type Fixity struct {
	Kind  FixityKind
	Left  BindingPower
	Right BindingPower
}

func NonfixOp() Fixity {
	return Fixity{Kind: Nonfix}
}

func PrefixOp(right BindingPower) Fixity {
	return Fixity{Kind: Prefix, Right: right}
}

func PostfixOp(left BindingPower) Fixity {
	return Fixity{Kind: Postfix, Left: left}
}

func InfixOp(left, right BindingPower) Fixity {
	return Fixity{Kind: Infix, Left: left, Right: right}
}

// LeftAssoc is an infix fixity at level that groups a - b - c as (a - b) - c.
func LeftAssoc(level BindingPower) Fixity {
	return InfixOp(level, level+1)
}

// RightAssoc is an infix fixity at level that groups a ^ b ^ c as a ^ (b ^ c).
func RightAssoc(level BindingPower) Fixity {
	return InfixOp(level+1, level)
}

// HasPrefixSlot reports whether the display name starts with an underscore.
func (f Fixity) HasPrefixSlot() bool {
	return f.Kind == Infix || f.Kind == Prefix
}

// HasPostfixSlot reports whether the display name ends with an underscore.
func (f Fixity) HasPostfixSlot() bool {
	return f.Kind == Infix || f.Kind == Postfix
}

func (f Fixity) String() string {
	switch f.Kind {
	case Prefix:
		return fmt.Sprintf("prefix(%d)", f.Right)
	case Postfix:
		return fmt.Sprintf("postfix(%d)", f.Left)
	case Infix:
		return fmt.Sprintf("infix(%d, %d)", f.Left, f.Right)
	}
	return f.Kind.String()
}

// FixityTable maps a head marker to its fixity. It must not change while a
// parse is running.
type FixityTable map[string]Fixity
