// Package datasync tracks simulated data-source synchronisation runs.
//
// A Tracker follows one data source through a fixed number of progress
// steps. A BulkTracker walks a list of data sources one at a time. Each run
// is a goroutine owned by its tracker; cancelling the run stops every
// further state change.
package datasync

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrBusy         = errors.New("sync is in progress")
	ErrNotRetryable = errors.New("sync cannot be retried from its current state")
	ErrDisposed     = errors.New("sync tracker has been disposed")
)

// State is the state of a run or of a single item within a bulk run.
type State string

const (
	StateIdle      State = "idle"
	StatePending   State = "pending"
	StateSyncing   State = "syncing"
	StateSuccess   State = "success"
	StateError     State = "error"
	StateCompleted State = "completed"
)

const (
	DefaultSteps        = 10
	DefaultStepInterval = 300 * time.Millisecond
	DefaultItemDelay    = 500 * time.Millisecond
	DefaultSuccessRate  = 0.8
	DefaultRetention    = 10 * time.Minute
)

// Options configure a tracker. Zero values are replaced by defaults.
type Options struct {
	Steps        int
	StepInterval time.Duration
	ItemDelay    time.Duration
	Outcome      Outcome
	Log          *zerolog.Logger

	// Retention is how long a finished single-source run stays readable
	// before the manager drops it.
	Retention time.Duration
}

func (o Options) withDefaults() Options {
	if o.Steps <= 0 {
		o.Steps = DefaultSteps
	}
	if o.StepInterval <= 0 {
		o.StepInterval = DefaultStepInterval
	}
	if o.ItemDelay <= 0 {
		o.ItemDelay = DefaultItemDelay
	}
	if o.Retention <= 0 {
		o.Retention = DefaultRetention
	}
	if o.Outcome == nil {
		o.Outcome = WeightedOutcome{SuccessRate: DefaultSuccessRate}
	}
	if o.Log == nil {
		nop := zerolog.Nop()
		o.Log = &nop
	}
	return o
}

// Result is the terminal outcome for one data source.
type Result struct {
	DataSourceID uuid.UUID `json:"dataSourceId"`
	Succeeded    bool      `json:"succeeded"`
	FinishedAt   time.Time `json:"finishedAt"`
}

func percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return n * 100 / total
}
