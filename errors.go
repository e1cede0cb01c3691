package plotgraph

import (
	"errors"
)

var (
	ErrKind    = errors.New("unsupported chart kind")
	ErrPalette = errors.New("unknown palette")
)
