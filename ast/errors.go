package ast

import (
	"errors"
)

var (
	ErrNotAPair         = errors.New("not a pair")
	ErrUniverseOverflow = errors.New("universe level overflow")
	ErrUnknownTerm      = errors.New("unknown term")
)
