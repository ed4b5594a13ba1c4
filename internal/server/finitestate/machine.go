// Package finitestate wraps go-fsm with the lifecycle states shared by the
// engine and the bootstrap runner.
//
// The bootstrap's "Starting" state is StatusBooting; "Running" is StatusRunning.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

const (
	StatusNew      = fsm.StatusNew
	StatusBooting  = fsm.StatusBooting
	StatusRunning  = fsm.StatusRunning
	StatusStopping = fsm.StatusStopping
	StatusStopped  = fsm.StatusStopped
	StatusError    = fsm.StatusError
	StatusUnknown  = fsm.StatusUnknown
)

// TypicalTransitions is a set of standard transitions for a finite state machine.
var TypicalTransitions = fsm.TypicalTransitions

// Machine is the subset of go-fsm used by the runnables in this module.
type Machine interface {
	// Transition moves to state or fails when the move is not allowed.
	Transition(state string) error

	// SetState forces the state, skipping transition rules.
	SetState(state string) error

	GetState() string

	// GetStateChan emits the current state and every later change until ctx is done.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a machine in StatusNew using TypicalTransitions.
func New(handler slog.Handler) (Machine, error) {
	machine, err := fsm.New(handler, StatusNew, TypicalTransitions)
	if err != nil {
		return nil, err
	}
	return machine, nil
}
