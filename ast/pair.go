package ast

// Pair is an ordered pair of values. It is shared by the term and the type
// grammars.
type Pair[T any] struct {
	Left  T
	Right T
}

// Car returns the left component of the pair
func (p Pair[T]) Car() T {
	return p.Left
}

// Cdr returns the right component of the pair
func (p Pair[T]) Cdr() T {
	return p.Right
}

// Equaler is implemented by values with structural equality.
type Equaler[T any] interface {
	Equal(T) bool
}

// PairEqual compares both components of two pairs.
func PairEqual[T Equaler[T]](a, b Pair[T]) bool {
	return equalOrNil(a.Left, b.Left) && equalOrNil(a.Right, b.Right)
}

func equalOrNil[T Equaler[T]](a, b T) bool {
	if any(a) == nil || any(b) == nil {
		return any(a) == nil && any(b) == nil
	}
	return a.Equal(b)
}

// MapPair applies fn to both components, left first, and stops at the first
// error.
func MapPair[T, U any](p Pair[T], fn func(T) (U, error)) (Pair[U], error) {
	left, err := fn(p.Left)
	if err != nil {
		return Pair[U]{}, err
	}
	right, err := fn(p.Right)
	if err != nil {
		return Pair[U]{}, err
	}
	return Pair[U]{Left: left, Right: right}, nil
}
