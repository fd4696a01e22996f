package fsm

// Table is an immutable transition graph over enumerated states.
// S is the state type, E the trigger type, C the context passed to guards.
type Table[S comparable, E comparable, C any] struct {
	initial     S
	names       map[S]string
	order       []S
	transitions map[S][]Transition[S, E, C]
}

// Transition defines a link between states
type Transition[S comparable, E comparable, C any] struct {
	Target  S
	Trigger E
	Guard   GuardFunc[C] // nil = Always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[C any] func(ctx C) bool
