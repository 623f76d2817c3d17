package tinyfsm

import "errors"

// Sentinel errors returned by the builder and the machine. Callers
// match them with errors.Is; operations wrap them with the ids and
// names involved.
var (
	// ErrDuplicateStateID is returned by AddState when the id is
	// already registered. The prior entry is left unchanged.
	ErrDuplicateStateID = errors.New("duplicate state id")

	// ErrUnknownStateID is returned when an operation names a state id
	// that is not present in the machine's collection.
	ErrUnknownStateID = errors.New("unknown state id")

	// ErrNoStatesDefined is returned by Initialize (and Start) when the
	// machine has no states to run.
	ErrNoStatesDefined = errors.New("no states defined")

	// ErrNotStarted is returned by Next before Start has entered an
	// initial state.
	ErrNotStarted = errors.New("machine not started")

	// ErrInvalidTransition is returned when a transition is requested
	// to a target the current state does not permit, or when the
	// builder is asked to register a malformed edge.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidTimeout is returned by OnTimeout for a non-positive
	// duration.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrNoDefaultTransition is returned when Next is called without a
	// target, or a timeout fires, on a state with no default successor.
	ErrNoDefaultTransition = errors.New("no default transition")

	// ErrCallbackFailure wraps an error returned by an entry, exit or
	// timeout callback. The transition it was part of stays committed.
	ErrCallbackFailure = errors.New("callback failure")
)
