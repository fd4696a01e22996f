package terminal

import "sync"

// Guard holds a terminal in raw mode on the alternate screen. Release
// restores it exactly once, however many times it is called.
type Guard struct {
	term Terminal
	once sync.Once
}

// Enter initializes t and returns the guard that restores it
func Enter(t Terminal) (*Guard, error) {
	if err := t.Init(); err != nil {
		return nil, err
	}
	return &Guard{term: t}, nil
}

// Terminal returns the guarded terminal
func (g *Guard) Terminal() Terminal {
	return g.term
}

// Release restores the terminal. Safe to call multiple times and on nil.
func (g *Guard) Release() {
	if g == nil {
		return
	}
	g.once.Do(g.term.Fini)
}
