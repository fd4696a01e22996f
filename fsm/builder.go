package fsm

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned when a transition references an undeclared state
var ErrUnknownState = errors.New("unknown state")

// Builder assembles a Table; the first error sticks and is reported by Build
type Builder[S comparable, E comparable, C any] struct {
	table *Table[S, E, C]
	err   error
}

// NewBuilder starts a table whose initial state is initial
func NewBuilder[S comparable, E comparable, C any](initial S, name string) *Builder[S, E, C] {
	b := &Builder[S, E, C]{
		table: &Table[S, E, C]{
			initial:     initial,
			names:       make(map[S]string),
			transitions: make(map[S][]Transition[S, E, C]),
		},
	}
	return b.State(initial, name)
}

// State declares a state with a display name
func (b *Builder[S, E, C]) State(s S, name string) *Builder[S, E, C] {
	if _, ok := b.table.names[s]; ok {
		if b.err == nil {
			b.err = fmt.Errorf("state %q declared twice", name)
		}
		return b
	}
	b.table.names[s] = name
	b.table.order = append(b.table.order, s)
	return b
}

// On adds a transition from one declared state to another. Transitions
// from the same state are evaluated in the order they were added.
func (b *Builder[S, E, C]) On(from S, trigger E, to S, guard GuardFunc[C]) *Builder[S, E, C] {
	if b.err != nil {
		return b
	}
	if _, ok := b.table.names[from]; !ok {
		b.err = fmt.Errorf("%w: transition source %v", ErrUnknownState, from)
		return b
	}
	if _, ok := b.table.names[to]; !ok {
		b.err = fmt.Errorf("%w: transition target %v", ErrUnknownState, to)
		return b
	}
	b.table.transitions[from] = append(b.table.transitions[from], Transition[S, E, C]{
		Target:  to,
		Trigger: trigger,
		Guard:   guard,
	})
	return b
}

// Build returns the finished table
func (b *Builder[S, E, C]) Build() (*Table[S, E, C], error) {
	if b.err != nil {
		return nil, b.err
	}
	t := b.table
	b.table = nil
	return t, nil
}

// MustBuild is Build for package-level tables; it panics on error
func (b *Builder[S, E, C]) MustBuild() *Table[S, E, C] {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
