package wardrobe

import "fmt"

// Field names a numeric slot of the ScoreState that rules can change.
type Field int

const (
	FieldCoat Field = iota
	FieldJacket
	FieldSweater
	FieldTShirt
	FieldFootwear
)

func (f Field) String() string {
	switch f {
	case FieldCoat, FieldJacket, FieldSweater, FieldTShirt:
		return Clothing(f).String()
	case FieldFootwear:
		return "footwear"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Op says whether an Effect accumulates onto a field or overrides it.
type Op int

const (
	OpAdd Op = iota
	OpSet
)

func (o Op) String() string {
	if o == OpSet {
		return "set"
	}
	return "add"
}

// Effect is a single tagged change to one numeric field.
type Effect struct {
	Field  Field
	Op     Op
	Amount float64
}

// Add accumulates amount onto f.
func Add(f Field, amount float64) Effect {
	return Effect{Field: f, Op: OpAdd, Amount: amount}
}

// Set overrides f with value regardless of what was accumulated before.
func Set(f Field, value float64) Effect {
	return Effect{Field: f, Op: OpSet, Amount: value}
}

func (e Effect) String() string {
	return fmt.Sprintf("%s %s %g", e.Op, e.Field, e.Amount)
}

// apply returns v changed by the effect.
func (e Effect) apply(v float64) float64 {
	if e.Op == OpSet {
		return e.Amount
	}
	return v + e.Amount
}
