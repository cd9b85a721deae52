package ast

import (
	"fmt"
)

// Cons appends Atom(name) to the end of a sequence-shaped term and returns
// the new term. The input is left untouched.
func Cons(t Term, name string) Term {
	return Group(append(Elements(t), Atom{Name: name}))
}

// Car returns the left component of a pair.
func Car(t Term) (Term, error) {
	p, ok := t.(PairTerm)
	if !ok {
		return nil, notAPair("car", t)
	}
	return p.Car(), nil
}

// Cdr returns the right component of a pair.
func Cdr(t Term) (Term, error) {
	p, ok := t.(PairTerm)
	if !ok {
		return nil, notAPair("cdr", t)
	}
	return p.Cdr(), nil
}

func notAPair(op string, t Term) error {
	if t == nil {
		return fmt.Errorf("%s: %w: nil", op, ErrNotAPair)
	}
	return fmt.Errorf("%s: %w: %v %v", op, ErrNotAPair, t.Kind(), t)
}

// TypeOf computes the type of a closed term:
//
//	Atom(_)        : Atom
//	Pair(l, r)     : (Pair type(l) type(r))
//	Unit           : Unit
//	TypeLiteral(n) : U(n+1)
//
// The only failure on a well-formed tree is a universe at the maximum level.
func TypeOf(t Term) (Type, error) {
	switch t := t.(type) {
	case Atom:
		return AtomType{}, nil
	case Unit:
		return UnitType{}, nil
	case TypeLiteral:
		level, err := t.Level.Succ()
		if err != nil {
			return nil, err
		}
		return Universe{Level: level}, nil
	case PairTerm:
		p, err := MapPair(t.Pair, TypeOf)
		if err != nil {
			return nil, err
		}
		return PairType{p}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownTerm, t)
}

// IsSameType reports whether both terms have structurally equal types. It is
// false when either type can't be computed.
func IsSameType(a, b Term) bool {
	ta, err := TypeOf(a)
	if err != nil {
		return false
	}
	tb, err := TypeOf(b)
	if err != nil {
		return false
	}
	return ta.Equal(tb)
}

// IsSame reports whether both terms have the same type and are structurally
// identical.
func IsSame(a, b Term) bool {
	return IsSameType(a, b) && Equal(a, b)
}

// Group builds the term of a parenthesized group from its elements: no
// elements is Unit, one element is the element itself, two elements are a
// single pair, and three or more are a Unit-terminated list.
func Group(elems []Term) Term {
	switch len(elems) {
	case 0:
		return Unit{}
	case 1:
		return elems[0]
	case 2:
		return NewPairTerm(elems[0], elems[1])
	}
	return List(elems)
}

// List builds a right-nested, Unit-terminated chain of pairs:
// List(a, b, c) is Pair(a, Pair(b, Pair(c, Unit))).
func List(elems []Term) Term {
	var acc Term = Unit{}
	for i := len(elems) - 1; i >= 0; i-- {
		acc = NewPairTerm(elems[i], acc)
	}
	return acc
}

// Elements returns the group elements t was built from, the inverse of
// Group. A Unit-terminated chain is read as a list only when it has three or
// more elements, since shorter groups never produce one.
func Elements(t Term) []Term {
	switch t := t.(type) {
	case Unit:
		return []Term{}
	case PairTerm:
		if elems, ok := listElements(t); ok && len(elems) > 2 {
			return elems
		}
		return []Term{t.Left, t.Right}
	}
	return []Term{t}
}

func listElements(t Term) ([]Term, bool) {
	elems := []Term{}
	for {
		switch cell := t.(type) {
		case Unit:
			return elems, true
		case PairTerm:
			elems = append(elems, cell.Left)
			t = cell.Right
		default:
			return nil, false
		}
	}
}
