package fsm

// Initial returns the starting state
func (t *Table[S, E, C]) Initial() S {
	return t.initial
}

// Next returns the target of the first transition out of from that matches
// trigger and whose guard passes. It reports false, with from unchanged,
// when nothing matches.
func (t *Table[S, E, C]) Next(from S, trigger E, ctx C) (S, bool) {
	for _, tr := range t.transitions[from] {
		if tr.Trigger != trigger {
			continue
		}
		if tr.Guard == nil || tr.Guard(ctx) {
			return tr.Target, true
		}
	}
	return from, false
}

// Can reports whether trigger would move from
func (t *Table[S, E, C]) Can(from S, trigger E, ctx C) bool {
	_, ok := t.Next(from, trigger, ctx)
	return ok
}

// Triggers lists the triggers declared on from, in declaration order,
// without duplicates
func (t *Table[S, E, C]) Triggers(from S) []E {
	var out []E
	seen := make(map[E]bool)
	for _, tr := range t.transitions[from] {
		if !seen[tr.Trigger] {
			seen[tr.Trigger] = true
			out = append(out, tr.Trigger)
		}
	}
	return out
}

// Name returns the display name of s, or "" if undeclared
func (t *Table[S, E, C]) Name(s S) string {
	return t.names[s]
}

// States returns every declared state in declaration order
func (t *Table[S, E, C]) States() []S {
	out := make([]S, len(t.order))
	copy(out, t.order)
	return out
}
