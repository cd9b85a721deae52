package ast

// Term is a node of a closed, finite term tree.
type Term interface {
	Kind() Kind
	Equal(Term) bool
	String() string

	isTerm()
}

// Atom is an opaque named leaf.
type Atom struct {
	Name string
}

// PairTerm is a cons cell owning its two sub-terms.
type PairTerm struct {
	Pair[Term]
}

// Unit is the value of an empty group: ().
type Unit struct{}

// TypeLiteral is a universe term, the type of types at a given level.
type TypeLiteral struct {
	Level Level
}

// NewPairTerm creates a cons cell
func NewPairTerm(left, right Term) PairTerm {
	return PairTerm{Pair[Term]{Left: left, Right: right}}
}

func (Atom) Kind() Kind        { return KindAtom }
func (PairTerm) Kind() Kind    { return KindPair }
func (Unit) Kind() Kind        { return KindUnit }
func (TypeLiteral) Kind() Kind { return KindUniverse }

func (a Atom) Equal(o Term) bool {
	b, ok := o.(Atom)
	return ok && a.Name == b.Name
}

func (p PairTerm) Equal(o Term) bool {
	q, ok := o.(PairTerm)
	return ok && PairEqual(p.Pair, q.Pair)
}

func (Unit) Equal(o Term) bool {
	_, ok := o.(Unit)
	return ok
}

func (t TypeLiteral) Equal(o Term) bool {
	u, ok := o.(TypeLiteral)
	return ok && t.Level == u.Level
}

func (a Atom) String() string        { return string(Encode(a)) }
func (p PairTerm) String() string    { return string(Encode(p)) }
func (u Unit) String() string        { return string(Encode(u)) }
func (t TypeLiteral) String() string { return string(Encode(t)) }

func (Atom) isTerm()        {}
func (PairTerm) isTerm()    {}
func (Unit) isTerm()        {}
func (TypeLiteral) isTerm() {}

// Equal compares two terms structurally. Two nil terms are equal.
func Equal(a, b Term) bool {
	return equalOrNil(a, b)
}
