package tinyfsm

import (
	"fmt"
	"time"
)

// State is one named configuration of a StateMachine: an immutable id,
// a mutable human-readable name, optional entry/exit/timeout callbacks
// and the table of permitted successor states. States are created
// through StateMachine.AddState and owned by the machine's collection
// for its whole lifetime; the returned pointer stays valid until the
// machine is cleared.
//
// The configuration methods return the receiver so declarations chain:
//
//	boot.AllowNext(stateRun, true).
//		OnEnter(powerOn).
//		OnTimeout(bootFailed, 5*time.Second)
//
// Misuse of the chain (a self-loop default, a non-positive timeout)
// parks the first error on the state; check it with Err. A failing
// call does not modify the state.
type State struct {
	id   StateID
	name string

	onEnter   Callback
	onExit    Callback
	onTimeout Callback

	transitions transitionTable
	timeout     time.Duration
	final       bool

	err error // first builder misuse, sticky
}

func newState(id StateID, name string) *State {
	return &State{id: id, name: name, transitions: newTransitionTable()}
}

// AllowNext permits a transition from this state to target. The first
// registered target becomes the default successor; passing isDefault
// true makes target the default regardless of order, with the last
// such call winning. Registering the same target again is idempotent.
//
// A state cannot be its own default successor: self transitions are
// only ever an explicit Next(sameID) call, which is a no-op success.
func (s *State) AllowNext(target StateID, isDefault ...bool) *State {
	if s.err != nil {
		return s
	}
	if s.final {
		s.err = fmt.Errorf("%w: state %d (%s) is final", ErrInvalidTransition, s.id, s.name)
		return s
	}
	if target == s.id {
		s.err = fmt.Errorf("%w: state %d (%s) cannot be its own successor", ErrInvalidTransition, s.id, s.name)
		return s
	}
	s.transitions.add(target, len(isDefault) > 0 && isDefault[0])
	return s
}

// OnEnter binds the entry callback, replacing any previous binding.
func (s *State) OnEnter(cb Callback) *State {
	s.onEnter = cb
	return s
}

// OnExit binds the exit callback, replacing any previous binding.
func (s *State) OnExit(cb Callback) *State {
	s.onExit = cb
	return s
}

// OnTimeout binds the timeout callback and arms the dwell limit: once
// the machine has spent at least d in this state, Poll fires cb and
// takes the state's default transition. cb may be nil to arm the
// timeout alone. d must be positive.
func (s *State) OnTimeout(cb Callback, d time.Duration) *State {
	if s.err != nil {
		return s
	}
	if d <= 0 {
		s.err = fmt.Errorf("%w: state %d (%s): duration %v", ErrInvalidTimeout, s.id, s.name, d)
		return s
	}
	s.onTimeout = cb
	s.timeout = d
	return s
}

// Final marks this state terminal. A final state may not register
// outgoing transitions and the machine never leaves it.
func (s *State) Final() *State {
	if s.err != nil {
		return s
	}
	if len(s.transitions.targets) > 0 {
		s.err = fmt.Errorf("%w: state %d (%s) has successors, cannot be final", ErrInvalidTransition, s.id, s.name)
		return s
	}
	s.final = true
	return s
}

// ID returns the state's identifier.
func (s *State) ID() StateID { return s.id }

// Name returns the state's human-readable label.
func (s *State) Name() string { return s.name }

// SetName replaces the state's label.
func (s *State) SetName(name string) { s.name = name }

// IsFinal reports whether the state is terminal.
func (s *State) IsFinal() bool { return s.final }

// Timeout returns the dwell limit, zero when none is armed.
func (s *State) Timeout() time.Duration { return s.timeout }

// AllowedNext returns the permitted successor ids in registration
// order.
func (s *State) AllowedNext() []StateID { return s.transitions.list() }

// DefaultNext returns the default successor and whether one is set.
func (s *State) DefaultNext() (StateID, bool) { return s.transitions.defaultTarget() }

// Err reports the first configuration error recorded on this state,
// if any. Later chained calls after a failure are no-ops.
func (s *State) Err() error { return s.err }
