package render

import "errors"

// ErrNilGrid indicates a nil *cave.Grid was passed to a renderer.
var ErrNilGrid = errors.New("render: grid is nil")
