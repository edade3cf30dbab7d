package mixfix

// BindingPower orders operators against each other. Higher binds tighter.
type BindingPower uint

// Named power levels for building fixity tables. Levels are spaced by two so
// that LeftAssoc and RightAssoc can use level+1 without colliding.
const (
	POWER_NONE        BindingPower = 0
	POWER_ASSIGNMENT  BindingPower = 1
	POWER_CONDITIONAL BindingPower = 3
	POWER_SUM         BindingPower = 5
	POWER_PRODUCT     BindingPower = 7
	POWER_EXPONENT    BindingPower = 9
	POWER_PREFIX      BindingPower = 11
	POWER_POSTFIX     BindingPower = 13
	POWER_CALL        BindingPower = 15
)
