// Package tinyfsm implements a small polled finite state machine for
// cooperative, single-threaded control loops on embedded and IoT
// devices.
//
// A machine holds a fixed set of named states. Each state may bind
// entry, exit and timeout callbacks and declares which states it is
// allowed to transition to, with one successor distinguished as the
// default. The machine is driven explicitly: external events call
// Next, and the device's main loop calls Poll once per tick with the
// current monotonic time to let dwell timeouts fire. No goroutines,
// locks or internal clock reads are involved, so the engine is
// deterministic and fits a non-blocking loop budget.
//
// # Basic Usage
//
// Declare states and wire transitions:
//
//	m := tinyfsm.New()
//
//	boot, _ := m.AddState(stateBoot, "boot")
//	run, _ := m.AddState(stateRun, "run")
//	fault, _ := m.AddState(stateFault, "fault")
//
//	boot.AllowNext(stateRun).
//		AllowNext(stateFault).
//		OnTimeout(nil, 5*time.Second) // stuck in boot: take the default
//	run.AllowNext(stateFault).
//		OnEnter(func() error { return startSensors() })
//	fault.Final()
//
// Start the machine and drive it from the main loop:
//
//	if err := m.Start(); err != nil {
//		// ...
//	}
//	for {
//		if _, err := m.Poll(readMonotonic()); err != nil {
//			// ...
//		}
//		// other cooperative work, then call m.Next(...) on events
//	}
//
// # Graph Export
//
// DotGraph renders the declared states and transitions as a Graphviz
// digraph for external tooling; it has no effect on behavior.
package tinyfsm
