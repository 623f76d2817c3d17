package tinyfsm_test

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tinyfsm/tinyfsm"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Example: traffic light driven purely by dwell timeouts from a
// simulated main loop.
func Example_trafficLight() {
	const (
		stateRed tinyfsm.StateID = iota
		stateGreen
		stateYellow
	)

	now := time.Unix(0, 0)
	m := tinyfsm.New(
		tinyfsm.WithClock(func() time.Time { return now }),
		tinyfsm.WithLogger(quietLogger()),
	)

	red, _ := m.AddState(stateRed, "red")
	green, _ := m.AddState(stateGreen, "green")
	yellow, _ := m.AddState(stateYellow, "yellow")

	red.AllowNext(stateGreen).
		OnEnter(func() error { fmt.Println("RED - stop"); return nil }).
		OnTimeout(nil, 3*time.Second)
	green.AllowNext(stateYellow).
		OnEnter(func() error { fmt.Println("GREEN - go"); return nil }).
		OnTimeout(nil, 3*time.Second)
	yellow.AllowNext(stateRed).
		OnEnter(func() error { fmt.Println("YELLOW - caution"); return nil }).
		OnTimeout(nil, 1*time.Second)

	m.Start()

	// One simulated tick per second for eight seconds
	for i := 0; i < 8; i++ {
		now = now.Add(time.Second)
		m.Poll(now)
	}

	// Output:
	// RED - stop
	// GREEN - go
	// YELLOW - caution
	// RED - stop
}

// Example: sensor node duty cycle mixing explicit events with a sleep
// timeout that wakes the device for the next measurement.
func Example_sensorNode() {
	const (
		stateBoot tinyfsm.StateID = iota + 1
		stateReady
		stateMeasure
		stateSleep
		stateFault
	)

	now := time.Unix(0, 0)
	m := tinyfsm.New(
		tinyfsm.WithClock(func() time.Time { return now }),
		tinyfsm.WithLogger(quietLogger()),
	)

	boot, _ := m.AddState(stateBoot, "boot")
	ready, _ := m.AddState(stateReady, "ready")
	measure, _ := m.AddState(stateMeasure, "measure")
	sleep, _ := m.AddState(stateSleep, "sleep")
	fault, _ := m.AddState(stateFault, "fault")

	// Stuck boots fall through to fault on timeout
	boot.AllowNext(stateFault, true).
		AllowNext(stateReady).
		OnEnter(func() error { fmt.Println("booting"); return nil }).
		OnTimeout(func() error { fmt.Println("boot timed out"); return nil }, 5*time.Second)
	ready.AllowNext(stateMeasure).
		OnEnter(func() error { fmt.Println("radio up, ready"); return nil })
	measure.AllowNext(stateSleep).
		OnEnter(func() error { fmt.Println("taking measurement"); return nil })
	sleep.AllowNext(stateMeasure).
		OnEnter(func() error { fmt.Println("sleeping"); return nil }).
		OnTimeout(nil, 60*time.Second)
	fault.Final()

	m.Start()

	// Boot finishes before its deadline
	now = now.Add(2 * time.Second)
	m.Poll(now)
	m.Next(stateReady)

	// First duty cycle
	m.Next() // default: measure
	m.Next() // default: sleep

	// The sleep timeout wakes the node
	now = now.Add(61 * time.Second)
	m.Poll(now)

	cur := m.CurrentState()
	fmt.Printf("state: %s\n", cur.Name())

	// Output:
	// booting
	// radio up, ready
	// taking measurement
	// sleeping
	// taking measurement
	// state: measure
}
