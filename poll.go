package tinyfsm

import (
	"errors"
	"fmt"
	"time"
)

// Poll is the per-tick entry point for a cooperative main loop. It
// performs at most one timestamp comparison and one transition, never
// blocks, and reports whether a transition occurred.
//
// now is the caller's monotonic clock reading; Poll never reads a
// system clock. Before Start, or with no states registered at all,
// Poll is a no-op success.
//
// When the current state's dwell limit has elapsed, the state's
// timeout callback fires first, then the machine takes the state's
// default transition. A timed-out state with no default successor is
// a configuration error and is surfaced on every tick until the
// caller transitions away.
func (m *StateMachine) Poll(now time.Time) (bool, error) {
	if len(m.states) == 0 {
		return false, nil // nothing registered, machine idle
	}
	if !m.initialized {
		if err := m.Initialize(); err != nil {
			return false, err
		}
	}

	cur := m.current
	if cur == nil {
		return false, nil // idle until Start
	}
	if cur.timeout <= 0 || now.Sub(m.enteredAt) < cur.timeout {
		return false, nil
	}

	m.logger.Debug("state timed out", "state", cur.id, "name", cur.name, "dwell", now.Sub(m.enteredAt))

	tmoErr := m.fire(cur.onTimeout, cur, "timeout")

	def, ok := cur.transitions.defaultTarget()
	if !ok {
		err := fmt.Errorf("%w: state %d (%s) timed out", ErrNoDefaultTransition, cur.id, cur.name)
		return false, errors.Join(tmoErr, err)
	}
	next, ok := m.states[def]
	if !ok {
		err := fmt.Errorf("%w: %d", ErrUnknownStateID, def)
		return false, errors.Join(tmoErr, err)
	}

	return true, errors.Join(tmoErr, m.transitionTo(next, now))
}
