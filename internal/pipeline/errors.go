package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, matched with errors.Is against the value returned
// by Render/InitializeRender.
var (
	ErrInvalidDimensions = errors.New("pipeline: invalid dimensions")
	ErrUninitialized     = errors.New("pipeline: uninitialized state")
	ErrInvalidRenderType = errors.New("pipeline: invalid render type")
	ErrOutOfRangeIndex   = errors.New("pipeline: index out of range")
	ErrOutOfMemory       = errors.New("pipeline: out of memory")
)

func errDimensions(w, h int) error {
	return fmt.Errorf("%w: W=%d H=%d", ErrInvalidDimensions, w, h)
}

func errRenderType(rt RenderType) error {
	return fmt.Errorf("%w: %d", ErrInvalidRenderType, rt)
}

func errIndex(i, numVertices int) error {
	return fmt.Errorf("%w: index %d, num_vertices %d", ErrOutOfRangeIndex, i, numVertices)
}
