package tinyfsm

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// StateMachine owns a collection of states keyed by id and drives
// transitions between them. It is built for a cooperative,
// single-threaded control loop: every method must be called from one
// logical thread of control, no method blocks, and no internal
// goroutines or locks exist. Time enters the machine only through the
// injected clock and the now argument of Poll.
type StateMachine struct {
	states map[StateID]*State
	order  []StateID // insertion order; the first entry is the implicit initial state

	current  *State
	previous *State

	initialized bool
	enteredAt   time.Time

	clock  func() time.Time
	logger *slog.Logger
}

// Option is a functional option for configuring a StateMachine
type Option func(*StateMachine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) Option {
	return func(m *StateMachine) {
		m.logger = logger
	}
}

// WithClock sets the monotonic time source used to stamp state entry
// on Start and Next. Defaults to time.Now. Poll takes its reading as
// an argument and does not consult the clock.
func WithClock(clock func() time.Time) Option {
	return func(m *StateMachine) {
		m.clock = clock
	}
}

// New creates an empty state machine
func New(opts ...Option) *StateMachine {
	m := &StateMachine{
		states: make(map[StateID]*State),
		clock:  time.Now,
		logger: Logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddState constructs a state and inserts it into the collection. The
// returned pointer is owned by the machine and stays valid for the
// machine's lifetime. The first state added becomes the initial state
// unless Start is given another. Ids must be unique; a duplicate id
// fails and leaves the prior entry unchanged.
func (m *StateMachine) AddState(id StateID, name string) (*State, error) {
	if prior, ok := m.states[id]; ok {
		return nil, fmt.Errorf("%w: %d already registered as %q", ErrDuplicateStateID, id, prior.name)
	}
	s := newState(id, name)
	m.states[id] = s
	m.order = append(m.order, id)
	return s, nil
}

// Initialize prepares the machine for Start. It is idempotent: the
// first call clears any transient position, later calls do nothing.
func (m *StateMachine) Initialize() error {
	if m.initialized {
		return nil
	}
	if len(m.states) == 0 {
		return ErrNoStatesDefined
	}
	m.current = nil
	m.previous = nil
	m.enteredAt = time.Time{}
	m.initialized = true
	return nil
}

// Start enters the given initial state, or the first state added when
// none is given, stamping the entry time and firing the state's entry
// callback. Initialize is called first if needed.
//
// Calling Start on a running machine is an explicit reset: the prior
// current state's exit callback fires first and the previous-state
// record is cleared.
func (m *StateMachine) Start(initial ...StateID) error {
	if err := m.Initialize(); err != nil {
		return err
	}

	id := m.order[0]
	if len(initial) > 0 {
		id = initial[0]
	}
	target, ok := m.states[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStateID, id)
	}

	var exitErr error
	if m.current != nil {
		exitErr = m.fire(m.current.onExit, m.current, "exit")
	}

	m.previous = nil
	m.current = target
	m.enteredAt = m.clock()
	enterErr := m.fire(target.onEnter, target, "enter")

	m.logger.Debug("machine started", "state", target.id, "name", target.name)
	return errors.Join(exitErr, enterErr)
}

// Next transitions to target, or to the current state's default
// successor when no target is given. The target must be permitted by
// the current state's transition table; requesting the current state
// itself is a successful no-op that fires no callbacks and does not
// reset the dwell clock.
//
// A committed transition fires the old state's exit callback, records
// the previous state, updates the current state and entry time, then
// fires the new state's entry callback. Callback errors are reported
// wrapped in ErrCallbackFailure and never roll the transition back.
func (m *StateMachine) Next(target ...StateID) error {
	if m.current == nil {
		return ErrNotStarted
	}

	var id StateID
	if len(target) > 0 {
		id = target[0]
	} else {
		def, ok := m.current.transitions.defaultTarget()
		if !ok {
			return fmt.Errorf("%w: state %d (%s)", ErrNoDefaultTransition, m.current.id, m.current.name)
		}
		id = def
	}

	if id == m.current.id {
		return nil // self transition, nothing to do
	}
	if m.current.final {
		return fmt.Errorf("%w: state %d (%s) is final", ErrInvalidTransition, m.current.id, m.current.name)
	}
	if !m.current.transitions.allows(id) {
		return fmt.Errorf("%w: %d -> %d not permitted", ErrInvalidTransition, m.current.id, id)
	}
	next, ok := m.states[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStateID, id)
	}

	return m.transitionTo(next, m.clock())
}

// transitionTo commits the change of current state. Once it begins,
// callback failures are reported but the new position stands.
func (m *StateMachine) transitionTo(next *State, now time.Time) error {
	from := m.current

	exitErr := m.fire(from.onExit, from, "exit")

	m.previous = from
	m.current = next
	m.enteredAt = now

	enterErr := m.fire(next.onEnter, next, "enter")

	m.logger.Debug("transition", "from", from.id, "to", next.id)
	return errors.Join(exitErr, enterErr)
}

// fire runs a callback, mapping a failure to ErrCallbackFailure.
func (m *StateMachine) fire(cb Callback, s *State, phase string) error {
	if cb == nil {
		return nil
	}
	if err := cb(); err != nil {
		m.logger.Warn("callback failed", "phase", phase, "state", s.id, "name", s.name, "error", err)
		return fmt.Errorf("%w: %s callback of state %d (%s): %v", ErrCallbackFailure, phase, s.id, s.name, err)
	}
	return nil
}

// Current returns the id of the current state; ok is false before
// Start has entered one.
func (m *StateMachine) Current() (StateID, bool) {
	if m.current == nil {
		return 0, false
	}
	return m.current.id, true
}

// Previous returns the id of the state before the last committed
// transition; ok is false until one has occurred.
func (m *StateMachine) Previous() (StateID, bool) {
	if m.previous == nil {
		return 0, false
	}
	return m.previous.id, true
}

// CurrentState returns the current state, nil before Start.
func (m *StateMachine) CurrentState() *State { return m.current }

// Started reports whether the machine has entered a state.
func (m *StateMachine) Started() bool { return m.current != nil }

// State looks up a registered state by id.
func (m *StateMachine) State(id StateID) (*State, bool) {
	s, ok := m.states[id]
	return s, ok
}

// Len returns the number of registered states.
func (m *StateMachine) Len() int { return len(m.states) }

// Clear removes every state and returns the machine to its
// uninitialized idle condition. Pointers obtained from AddState are
// invalid afterwards.
func (m *StateMachine) Clear() {
	m.states = make(map[StateID]*State)
	m.order = nil
	m.current = nil
	m.previous = nil
	m.initialized = false
	m.enteredAt = time.Time{}
}
