package tinyfsm

// transitionTable holds the outgoing edges of one state: the ordered
// set of permitted successor ids plus the distinguished default.
type transitionTable struct {
	targets    []StateID
	defaultIdx int // index into targets, -1 when no default is set
}

func newTransitionTable() transitionTable {
	return transitionTable{defaultIdx: -1}
}

// add registers target, keeping registration order. Re-adding a known
// target is a no-op apart from the default bookkeeping: the first
// registered target becomes the default, and any later call with
// isDefault true moves the default there (last such call wins).
func (t *transitionTable) add(target StateID, isDefault bool) {
	idx := t.index(target)
	if idx < 0 {
		t.targets = append(t.targets, target)
		idx = len(t.targets) - 1
	}
	if isDefault || t.defaultIdx < 0 {
		t.defaultIdx = idx
	}
}

func (t *transitionTable) index(target StateID) int {
	for i, id := range t.targets {
		if id == target {
			return i
		}
	}
	return -1
}

func (t *transitionTable) allows(target StateID) bool {
	return t.index(target) >= 0
}

func (t *transitionTable) defaultTarget() (StateID, bool) {
	if t.defaultIdx < 0 {
		return 0, false
	}
	return t.targets[t.defaultIdx], true
}

// list returns a copy of the targets in registration order.
func (t *transitionTable) list() []StateID {
	out := make([]StateID, len(t.targets))
	copy(out, t.targets)
	return out
}
