package ast

import (
	"fmt"
	"math"
)

// Kind identifies the variant of a term or a type
type Kind uint8

// Kinds shared by terms and types
const (
	KindInvalid Kind = iota
	KindAtom
	KindPair
	KindUnit
	KindUniverse
)

var kindName = map[Kind]string{
	KindInvalid:  "invalid",
	KindAtom:     "atom",
	KindPair:     "pair",
	KindUnit:     "unit",
	KindUniverse: "universe",
}

func (k Kind) String() string {
	s, ok := kindName[k]
	if ok {
		return s
	}
	return kindName[KindInvalid]
}

// Level is the index of a universe.
type Level uint64

// Succ returns the next level up, or ErrUniverseOverflow if there is none.
func (l Level) Succ() (Level, error) {
	if l == math.MaxUint64 {
		return 0, fmt.Errorf("%w: U%d", ErrUniverseOverflow, uint64(l))
	}
	return l + 1, nil
}

// Type is the judged type of a term.
type Type interface {
	Kind() Kind
	Equal(Type) bool
	String() string

	isType()
}

// AtomType is the type of every atom.
type AtomType struct{}

// PairType is the type of a pair, made of the types of its components.
type PairType struct {
	Pair[Type]
}

// UnitType is the type of Unit.
type UnitType struct{}

// Universe is the type of types at a given level.
type Universe struct {
	Level Level
}

// NewPairType creates a pair type
func NewPairType(left, right Type) PairType {
	return PairType{Pair[Type]{Left: left, Right: right}}
}

func (AtomType) Kind() Kind { return KindAtom }
func (PairType) Kind() Kind { return KindPair }
func (UnitType) Kind() Kind { return KindUnit }
func (Universe) Kind() Kind { return KindUniverse }

func (AtomType) Equal(o Type) bool {
	_, ok := o.(AtomType)
	return ok
}

func (t PairType) Equal(o Type) bool {
	p, ok := o.(PairType)
	return ok && PairEqual(t.Pair, p.Pair)
}

func (UnitType) Equal(o Type) bool {
	_, ok := o.(UnitType)
	return ok
}

func (u Universe) Equal(o Type) bool {
	v, ok := o.(Universe)
	return ok && u.Level == v.Level
}

func (AtomType) String() string { return "Atom" }

func (t PairType) String() string {
	return fmt.Sprintf("(Pair %v %v)", t.Left, t.Right)
}

func (UnitType) String() string { return "Unit" }

func (u Universe) String() string {
	return fmt.Sprintf("U%d", uint64(u.Level))
}

func (AtomType) isType() {}
func (PairType) isType() {}
func (UnitType) isType() {}
func (Universe) isType() {}

// TypesEqual compares two types structurally. Two nil types are equal.
func TypesEqual(a, b Type) bool {
	return equalOrNil(a, b)
}
