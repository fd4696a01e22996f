package screens

import (
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/terminal"
)

func TestGauges(t *testing.T) {
	Convey("Given a fresh gauge screen", t, func() {
		g := NewGauges()
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		Convey("When it ticks before being started", func() {
			g = g.Tick(now)
			Convey("Then nothing advances", func() {
				So(g.columns, ShouldEqual, 0)
				So(g.progress3, ShouldEqual, 0.0)
				So(gaugeModes.Name(g.mode), ShouldEqual, "Running")
			})
		})

		Convey("When started and ticked three times", func() {
			g, _ = g.Update(key(terminal.KeySpace))
			for i := range 3 {
				g = g.Tick(now.Add(time.Duration(i) * 50 * time.Millisecond))
			}
			Convey("Then columns count ticks and ratio gauges start at 40", func() {
				So(gaugeModes.Name(g.mode), ShouldEqual, "Started")
				So(g.columns, ShouldEqual, 3)
				So(g.progress3, ShouldAlmostEqual, 40.2, 1e-9)
				So(g.progress4, ShouldAlmostEqual, 40.2, 1e-9)
			})

			Convey("And then paused", func() {
				g, _ = g.Update(key(terminal.KeyEnter))
				before := g
				g = g.Tick(now.Add(time.Second))
				Convey("Then ticks no longer advance", func() {
					So(gaugeModes.Name(g.mode), ShouldEqual, "Paused")
					So(g, ShouldResemble, before)
				})
			})
		})

		Convey("When rendered", func() {
			out := screenText(g, 80, 30)
			Convey("Then the header, all four gauges and the footer are drawn", func() {
				So(out, ShouldContainSubstring, "Gauge Example")
				So(out, ShouldContainSubstring, "Gauge with percentage")
				So(out, ShouldContainSubstring, "Gauge with ratio and custom label")
				So(out, ShouldContainSubstring, "Gauge with ratio (no unicode)")
				So(out, ShouldContainSubstring, "Gauge with ratio (unicode)")
				So(out, ShouldContainSubstring, "to Start/Pause")
			})
		})
	})
}

func TestManualGauge(t *testing.T) {
	Convey("Given a started manual gauge", t, func() {
		g, _ := NewManualGauge().Update(key(terminal.KeySpace))
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		Convey("When it ticks", func() {
			g = g.Tick(now)
			first := g.progress
			g = g.Tick(now)
			Convey("Then each step adds between 0.5 and 1", func() {
				So(first, ShouldBeBetweenOrEqual, 0.5, 1.0)
				So(g.progress-first, ShouldBeBetweenOrEqual, 0.5, 1.0)
			})

			Convey("And r is pressed", func() {
				g, _ = g.Update(char('r'))
				Convey("Then progress resets", func() {
					So(g.progress, ShouldEqual, 0.0)
				})
			})
		})

		Convey("When two gauges share a seed but tick at different times", func() {
			a := g.WithSeed(42)
			b := g.WithSeed(42)
			c := g.WithSeed(7)
			for i := range 5 {
				a = a.Tick(now.Add(time.Duration(i) * time.Second))
				b = b.Tick(now.Add(time.Duration(i) * time.Hour))
				c = c.Tick(now.Add(time.Duration(i) * time.Second))
			}
			Convey("Then they advance identically", func() {
				So(a.progress, ShouldEqual, b.progress)
				So(a.progress, ShouldBeBetweenOrEqual, 2.5, 5.0)
			})
			Convey("Then another seed takes other steps", func() {
				So(c.progress, ShouldNotEqual, a.progress)
			})
		})

		Convey("When ? opens the help popup", func() {
			g, _ = g.Update(char('?'))
			So(g.overlay, ShouldEqual, overlayHelp)
			So(screenText(g, 80, 30), ShouldContainSubstring, "Keyboard Shortcuts")

			Convey("Then quit keys are swallowed while it is open", func() {
				g2, c := g.Update(char('q'))
				So(c, ShouldEqual, app.Continue)
				So(g2.overlay, ShouldEqual, overlayHelp)
			})

			Convey("Then ? closes it", func() {
				g, _ = g.Update(char('?'))
				So(g.overlay, ShouldEqual, overlayNone)
			})

			Convey("Then Esc closes it without quitting", func() {
				g, c := g.Update(key(terminal.KeyEscape))
				So(c, ShouldEqual, app.Continue)
				So(g.overlay, ShouldEqual, overlayNone)
			})
		})

		Convey("When the quit confirmation is open", func() {
			g, _ = g.Update(key(terminal.KeyEscape))
			So(g.overlay, ShouldEqual, overlayConfirmQuit)
			So(screenText(g, 80, 30), ShouldContainSubstring, "Are you sure want to quit?")

			Convey("Then the popup sits in the vertical middle", func() {
				rows := frame(g, 80, 30)
				top, text := -1, -1
				for y, row := range rows {
					if top < 0 && strings.Contains(row, "Quit?") {
						top = y
					}
					if text < 0 && strings.Contains(row, "Are you sure want to quit?") {
						text = y
					}
				}
				So(top, ShouldEqual, (30-3)/2)
				So(text, ShouldEqual, top+1)
			})

			Convey("Then any other key cancels it", func() {
				g, c := g.Update(char('x'))
				So(c, ShouldEqual, app.Continue)
				So(g.overlay, ShouldEqual, overlayNone)
				So(gaugeModes.Name(g.mode), ShouldEqual, "Started")
			})
		})
	})
}

func TestSpinner(t *testing.T) {
	Convey("Given a spinner", t, func() {
		s := Spinner{}
		t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		Convey("When ticks arrive faster than the frame rate", func() {
			s = s.Tick(t0)
			s = s.Tick(t0.Add(50 * time.Millisecond))
			So(s.frame, ShouldEqual, 0)

			s = s.Tick(t0.Add(100 * time.Millisecond))
			Convey("Then it advances once per 100ms", func() {
				So(s.frame, ShouldEqual, 1)
				rows := frame(s, 10, 3)
				So(strings.TrimSpace(rows[0]), ShouldEqual, "1")
				So(rows[1], ShouldEndWith, "/")
			})
		})
	})
}

func TestSpinners(t *testing.T) {
	Convey("Given the multi spinner screen", t, func() {
		s := NewSpinners()
		So(s.Active(), ShouldEqual, 2)

		Convey("When a is pressed more often than there is room", func() {
			s, _ = feed(s, char('a'), char('a'), char('a'), char('a'))
			Convey("Then at most five spin", func() {
				So(s.Active(), ShouldEqual, maxSpinners)
			})

			Convey("And three seconds pass", func() {
				t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
				s = s.Tick(t0)
				s = s.Tick(t0.Add(time.Second))
				So(s.Active(), ShouldEqual, maxSpinners)

				s = s.Tick(t0.Add(spinLifetime))
				Convey("Then all expire and are counted", func() {
					So(s.Active(), ShouldEqual, 0)
					So(s.Completed(), ShouldEqual, maxSpinners)
					So(strings.TrimSpace(frame(s, 20, 4)[0]), ShouldEqual, "5")
				})
			})
		})
	})
}
