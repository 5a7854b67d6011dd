package genetic

import "errors"

// Errors returned by the genetic and nn packages. They are always wrapped
// with context, so match them with errors.Is.
var (
	ErrInvalidConfig             = errors.New("invalid config")
	ErrInvalidDNA                = errors.New("invalid dna")
	ErrEmptyPopulation           = errors.New("empty population")
	ErrArityMismatch             = errors.New("arity mismatch")
	ErrDataExhausted             = errors.New("data exhausted")
	ErrUndefinedSelectionWeights = errors.New("undefined selection weights")
)
