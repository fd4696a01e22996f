package screens

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/terminal"
)

func TestHello(t *testing.T) {
	Convey("Given the hello screen", t, func() {
		rows := frame(Hello{}, 20, 5)
		Convey("Then title, content and footer are placed by the frame layout", func() {
			So(rows[0], ShouldStartWith, "Title")
			So(rows[1], ShouldContainSubstring, "Content")
			So(rows[4], ShouldStartWith, "Footer")
		})

		Convey("When a non-key event arrives", func() {
			_, c := Hello{}.Update(terminal.MouseAt(terminal.MouseActionMoved, terminal.MouseBtnNone, 1, 1))
			So(c, ShouldEqual, app.Continue)
		})
	})
}

func TestWeather(t *testing.T) {
	Convey("Given a seeded barchart", t, func() {
		w := NewWeather(42)

		Convey("Then there are 24 temperatures in range, reproducible by seed", func() {
			So(len(w.Temperatures), ShouldEqual, hours)
			for _, v := range w.Temperatures {
				So(v, ShouldBeBetweenOrEqual, minTemp, maxTemp-1)
			}
			So(NewWeather(42).Temperatures, ShouldResemble, w.Temperatures)
		})

		Convey("Then colors run from yellow to red", func() {
			So(temperatureStyle(minTemp).Fg, ShouldResemble, tempCold)
			So(temperatureStyle(maxTemp).Fg, ShouldResemble, tempHot)
		})

		Convey("When rendered", func() {
			out := screenText(w, 80, 40)
			So(out, ShouldContainSubstring, "Barchart")
			So(out, ShouldContainSubstring, "Weather (Vertical)")
			So(out, ShouldContainSubstring, "Weather (Horizontal)")
			So(out, ShouldContainSubstring, "00:00")
		})
	})
}

func TestPopup(t *testing.T) {
	Convey("Given the popup screen", t, func() {
		p := Popup{}
		So(screenText(p, 60, 20), ShouldContainSubstring, "Press p to show the popup")

		Convey("When p is pressed", func() {
			p, _ = p.Update(char('p'))
			out := screenText(p, 60, 20)
			Convey("Then the popup is drawn and the hint changes", func() {
				So(p.Shown, ShouldBeTrue)
				So(out, ShouldContainSubstring, "Popup")
				So(out, ShouldContainSubstring, "Press p to close the popup")
			})

			Convey("And pressed again", func() {
				p, _ = p.Update(char('p'))
				So(p.Shown, ShouldBeFalse)
			})
		})
	})
}

func TestTabs(t *testing.T) {
	Convey("Given the tabs screen", t, func() {
		tabs := Tabs{}

		Convey("When moving left from the first tab", func() {
			tabs, _ = feed(tabs, char('h'), key(terminal.KeyLeft))
			So(tabs.Selected, ShouldEqual, Tab1)
		})

		Convey("When moving right past the last tab", func() {
			tabs, _ = feed(tabs, char('l'), char('l'), key(terminal.KeyRight), key(terminal.KeyRight), char('l'))
			So(tabs.Selected, ShouldEqual, Tab4)
		})

		Convey("When a digit is pressed", func() {
			tabs, _ = tabs.Update(char('3'))
			out := screenText(tabs, 80, 10)
			Convey("Then that tab is shown", func() {
				So(tabs.Selected, ShouldEqual, Tab3)
				So(out, ShouldContainSubstring, "Tabs Example")
				So(out, ShouldContainSubstring, "Tab 4")
				So(out, ShouldContainSubstring, "Here is the third tab!")
				So(out, ShouldContainSubstring, "◄ ► to change tab")
			})
		})
	})
}

func TestJSONEditor(t *testing.T) {
	Convey("Given an empty json editor", t, func() {
		e := JSONEditor{}

		Convey("When a pair is typed, switching fields with Tab", func() {
			evs := append([]terminal.Event{char('e')}, typed("name")...)
			evs = append(evs, key(terminal.KeyTab))
			evs = append(evs, typed("go q")...)
			e, _ = feed(e, evs[:len(evs)-1]...)
			So(e.Screen, ShouldEqual, EditorEditing)
			So(e.Editing, ShouldEqual, FieldValue)
			So(screenText(e, 80, 24), ShouldContainSubstring, "Editing Json Value")

			var c app.Command
			e, c = feed(e, evs[len(evs)-1], key(terminal.KeyEnter))
			Convey("Then Enter on the value commits it and rings", func() {
				So(c, ShouldEqual, app.Bell)
				So(e.Screen, ShouldEqual, EditorMain)
				So(e.Editing, ShouldEqual, FieldNone)
				So(e.Pairs, ShouldResemble, []Pair{{Key: "name", Value: "go q"}})
				So(screenText(e, 80, 24), ShouldContainSubstring, "name")
			})

			Convey("And the same key is entered again", func() {
				again := append([]terminal.Event{char('e')}, typed("name")...)
				again = append(again, key(terminal.KeyEnter))
				again = append(again, typed("tui")...)
				again = append(again, key(terminal.KeyEnter))
				e, _ = feed(e, again...)
				Convey("Then the value is replaced in place", func() {
					So(e.Pairs, ShouldResemble, []Pair{{Key: "name", Value: "tui"}})
				})
			})
		})

		Convey("When editing with backspace and cursor keys", func() {
			evs := append([]terminal.Event{char('e')}, typed("ac")...)
			evs = append(evs, key(terminal.KeyLeft), char('b'), key(terminal.KeyRight), char('d'), key(terminal.KeyBackspace))
			e, _ = feed(e, evs...)
			So(e.Key.Value(), ShouldEqual, "abc")
		})

		Convey("When editing is cancelled", func() {
			e, _ = feed(e, char('e'), char('x'), key(terminal.KeyEscape))
			So(e.Screen, ShouldEqual, EditorMain)
			So(e.Editing, ShouldEqual, FieldNone)
			So(e.Pairs, ShouldBeEmpty)
		})

		Convey("When q is pressed", func() {
			e, _ = e.Update(char('q'))
			So(e.Screen, ShouldEqual, EditorExiting)
			So(screenText(e, 80, 24), ShouldContainSubstring, "Would you like to output")

			Convey("Then Esc returns to the main view", func() {
				e, c := e.Update(key(terminal.KeyEscape))
				So(c, ShouldEqual, app.Continue)
				So(e.Screen, ShouldEqual, EditorMain)
			})

			Convey("Then y terminates and marks output", func() {
				e, c := e.Update(char('y'))
				So(c, ShouldEqual, app.Terminate)
				So(e.Print, ShouldBeTrue)
			})
		})
	})
}

func TestJSONOutput(t *testing.T) {
	Convey("Given committed pairs", t, func() {
		e := JSONEditor{Pairs: []Pair{{"b", "2"}, {"a", "1"}}}
		var out bytes.Buffer
		So(e.WriteJSON(&out), ShouldBeNil)
		Convey("Then they are written as one JSON object with sorted keys", func() {
			So(out.String(), ShouldEqual, "{\"a\":\"1\",\"b\":\"2\"}\n")
		})
	})
}

func TestMenu(t *testing.T) {
	Convey("Given the menu with nothing selected", t, func() {
		m := Menu{}
		So(screenText(m, 40, 10), ShouldContainSubstring, "Select an item")

		Convey("When Enter is pressed", func() {
			m, _ = m.Update(key(terminal.KeyEnter))
			So(m.Focus, ShouldEqual, FocusMenu)
		})

		Convey("When the first item is opened", func() {
			m, _ = feed(m, char('j'), key(terminal.KeyEnter))
			So(m.Focus, ShouldEqual, FocusTab1)
			So(frame(m, 20, 3)[0], ShouldStartWith, "Tab1")

			Convey("Then q goes back to the menu instead of quitting", func() {
				m, c := m.Update(char('q'))
				So(c, ShouldEqual, app.Continue)
				So(m.Focus, ShouldEqual, FocusMenu)
				i, _ := m.State.Selected()
				So(i, ShouldEqual, 0)
			})
		})

		Convey("When the second item is opened", func() {
			m, _ = feed(m, key(terminal.KeyDown), key(terminal.KeyDown), key(terminal.KeyEnter))
			So(m.Focus, ShouldEqual, FocusTab2)
			So(m.Focus.String(), ShouldEqual, "Tab2")
		})
	})
}
