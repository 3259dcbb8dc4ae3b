package bench

import "github.com/pkg/errors"

var (
	ErrNilFunc      = errors.New("case func must be set")
	ErrNoIterations = errors.New("iterations must be greater than 0")
	ErrNoSamples    = errors.New("samples must be greater than 0")
	ErrNoBaseline   = errors.New("group has no baseline result")
)
