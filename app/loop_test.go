package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// counter quits on q, counts +, rings on b
type counter struct {
	count   int
	updates int
}

func (c counter) Update(ev terminal.Event) (counter, Command) {
	c.updates++
	switch {
	case ev.IsRune('q'):
		return c, Terminate
	case ev.IsRune('+'):
		c.count++
	case ev.IsRune('b'):
		return c, Bell
	}
	return c, Continue
}

func (c counter) Render(area layout.Rect, buf *tui.Buffer) {
	buf.SetString(area.X, area.Y, fmt.Sprintf("count=%d", c.count), tui.Style{})
}

// metronome ticks and signals each render on a channel
type metronome struct {
	ticks    int
	last     time.Time
	rendered chan struct{}
}

func (m metronome) Update(ev terminal.Event) (metronome, Command) {
	if ev.IsRune('q') {
		return m, Terminate
	}
	return m, Continue
}

func (m metronome) Render(area layout.Rect, buf *tui.Buffer) {
	buf.SetString(area.X, area.Y, fmt.Sprintf("ticks=%d", m.ticks), tui.Style{})
	if m.rendered != nil {
		select {
		case m.rendered <- struct{}{}:
		default:
		}
	}
}

func (m metronome) Tick(now time.Time) metronome {
	m.ticks++
	m.last = now
	return m
}

func enteredSim(t *testing.T, w, h int) *terminal.Simulation {
	t.Helper()
	sim := terminal.NewSimulation(w, h)
	guard, err := terminal.Enter(sim)
	require.NoError(t, err)
	t.Cleanup(guard.Release)
	return sim
}

func TestStepDispatchesAndRenders(t *testing.T) {
	sim := enteredSim(t, 12, 2)
	loop, err := NewLoop(sim, counter{}, WithMouse(false))
	require.NoError(t, err)

	require.NoError(t, sim.Inject(terminal.RunePress('+')))
	done, err := loop.Step()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, loop.State().count)

	require.NoError(t, sim.Inject(terminal.RunePress('q')))
	done, err = loop.Step()
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, loop.Done())
	assert.Equal(t, "count=1     ", sim.Rows()[0])

	// A finished loop never polls again
	done, err = loop.Step()
	require.NoError(t, err)
	assert.True(t, done)
}

func TestQuitTerminatesWithinOneStep(t *testing.T) {
	sim := enteredSim(t, 10, 1)
	loop, err := NewLoop(sim, counter{})
	require.NoError(t, err)

	require.NoError(t, sim.Inject(terminal.RunePress('q')))
	require.NoError(t, sim.Inject(terminal.RunePress('+')))

	done, err := loop.Step()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 0, loop.State().count, "events after Terminate must not be dispatched")
}

func TestBellCommandRingsConfiguredBell(t *testing.T) {
	sim := enteredSim(t, 10, 1)
	rings := 0
	loop, err := NewLoop(sim, counter{}, WithBell(RingerFunc(func() { rings++ })))
	require.NoError(t, err)

	require.NoError(t, sim.Inject(terminal.RunePress('b')))
	done, err := loop.Step()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, rings)
}

func TestResizeIsNotForwarded(t *testing.T) {
	sim := enteredSim(t, 10, 2)
	loop, err := NewLoop(sim, counter{})
	require.NoError(t, err)

	require.NoError(t, sim.Resize(14, 3))
	_, err = loop.Step()
	require.NoError(t, err)
	assert.Equal(t, 0, loop.State().updates)

	require.NoError(t, sim.Inject(terminal.RunePress('q')))
	done, err := loop.Step()
	require.NoError(t, err)
	assert.True(t, done)

	w, h := loop.Buffer().Size()
	assert.Equal(t, 14, w)
	assert.Equal(t, 3, h)
}

// ruler records every area it is resized to
type ruler struct {
	counter
	areas []layout.Rect
}

func (r ruler) Update(ev terminal.Event) (ruler, Command) {
	var cmd Command
	r.counter, cmd = r.counter.Update(ev)
	return r, cmd
}

func (r ruler) Resize(area layout.Rect) ruler {
	r.areas = append(r.areas[:len(r.areas):len(r.areas)], area)
	return r
}

func TestSizedScreensLearnTheirArea(t *testing.T) {
	sim := enteredSim(t, 10, 2)
	loop, err := NewLoop(sim, ruler{}, WithMouse(false))
	require.NoError(t, err)

	require.NoError(t, loop.Draw())
	require.NoError(t, loop.Draw())
	assert.Equal(t, []layout.Rect{layout.NewRect(0, 0, 10, 2)}, loop.State().areas, "unchanged size is not reported twice")

	require.NoError(t, sim.Resize(14, 3))
	_, err = loop.Step()
	require.NoError(t, err)
	require.NoError(t, loop.Draw())

	assert.Equal(t, []layout.Rect{layout.NewRect(0, 0, 10, 2), layout.NewRect(0, 0, 14, 3)}, loop.State().areas)
	assert.Equal(t, 0, loop.State().updates)
}

func TestInputErrorsStopTheLoop(t *testing.T) {
	boom := errors.New("boom")
	cases := []struct {
		name string
		ev   terminal.Event
	}{
		{"error", terminal.Event{Type: terminal.EventError, Err: boom}},
		{"closed", terminal.Event{Type: terminal.EventClosed}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sim := enteredSim(t, 10, 1)
			loop, err := NewLoop(sim, counter{})
			require.NoError(t, err)

			require.NoError(t, sim.PostEvent(tc.ev))
			done, err := loop.Step()
			assert.False(t, done)
			require.ErrorIs(t, err, ErrInputSource)
			if tc.ev.Err != nil {
				assert.ErrorIs(t, err, boom)
			}
		})
	}
}

func TestFlushFailureIsRenderSurfaceError(t *testing.T) {
	sim := enteredSim(t, 10, 1)
	loop, err := NewLoop(sim, counter{})
	require.NoError(t, err)

	sim.Fini()
	_, err = loop.Step()
	require.ErrorIs(t, err, ErrRenderSurface)
	assert.ErrorIs(t, err, terminal.ErrNotInitialized)
}

func TestTickOnTimeout(t *testing.T) {
	sim := enteredSim(t, 10, 1)
	fake := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	loop, err := NewLoop(sim, metronome{},
		WithTickRate(time.Millisecond),
		WithClock(func() time.Time { return fake }),
	)
	require.NoError(t, err)

	for range 3 {
		done, err := loop.Step()
		require.NoError(t, err)
		require.False(t, done)
	}
	assert.Equal(t, 3, loop.State().ticks)
	assert.Equal(t, fake, loop.State().last)
}

func TestRunRestoresTerminalAndReturnsState(t *testing.T) {
	sim := terminal.NewSimulation(10, 1)
	rendered := make(chan struct{}, 1)

	type result struct {
		state metronome
		err   error
	}
	out := make(chan result, 1)
	go func() {
		s, err := Run(sim, metronome{rendered: rendered}, WithTickRate(5*time.Millisecond))
		out <- result{s, err}
	}()

	select {
	case <-rendered:
	case <-time.After(2 * time.Second):
		t.Fatal("loop never rendered")
	}
	require.NoError(t, sim.Inject(terminal.RunePress('q')))

	select {
	case r := <-out:
		require.NoError(t, r.err)
		assert.NotNil(t, r.state.rendered, "final state is returned")
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not terminate")
	}

	// The guard released the terminal
	require.ErrorIs(t, sim.Flush(make([]terminal.Cell, 10), 10, 1), terminal.ErrNotInitialized)
}

func TestRunFailsWhenTerminalCannotEnter(t *testing.T) {
	sim := terminal.NewSimulation(10, 1)
	require.NoError(t, sim.Init())
	sim.Fini()

	state, err := Run(sim, counter{count: 7})
	require.ErrorIs(t, err, ErrRenderSurface)
	assert.Equal(t, 7, state.count)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "Terminate", Terminate.String())
	assert.Equal(t, "Bell", Bell.String())
}
