package datasync

import (
	"math/rand"

	"github.com/google/uuid"
)

// Outcome decides whether a simulated sync of a data source succeeds.
type Outcome interface {
	Succeeded(dataSourceID uuid.UUID) bool
}

// WeightedOutcome succeeds with probability SuccessRate.
type WeightedOutcome struct {
	SuccessRate float64
}

func (o WeightedOutcome) Succeeded(uuid.UUID) bool {
	return rand.Float64() < o.SuccessRate
}

// ForcedOutcome always returns its own value.
type ForcedOutcome bool

func (o ForcedOutcome) Succeeded(uuid.UUID) bool {
	return bool(o)
}

// OutcomeFunc adapts a function to Outcome.
type OutcomeFunc func(dataSourceID uuid.UUID) bool

func (f OutcomeFunc) Succeeded(dataSourceID uuid.UUID) bool {
	return f(dataSourceID)
}
