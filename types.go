package tinyfsm

import "log/slog"

// StateID is a caller-assigned identifier for a state, unique within
// one machine
type StateID int

// Callback is a zero-argument hook bound to state entry, exit or
// timeout. A non-nil error is reported to the caller of the operation
// that fired the hook; it never rolls back a committed transition.
type Callback func() error

// Logger is the default logger used when none is provided
var Logger = slog.Default()
