package screens

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

const (
	hours   = 24
	minTemp = 50
	maxTemp = 90 // exclusive
)

var (
	tempCold = terminal.RGB{R: 255, G: 255}
	tempHot  = terminal.RGB{R: 255}
)

// Weather shows a day of hourly temperatures as two bar charts
type Weather struct {
	Temperatures []int
}

// NewWeather draws 24 temperatures in [50, 90) from seed
func NewWeather(seed uint64) Weather {
	r := rand.New(rand.NewPCG(seed, seed>>32|1))
	temps := make([]int, hours)
	for i := range temps {
		temps[i] = minTemp + r.IntN(maxTemp-minTemp)
	}
	return Weather{Temperatures: temps}
}

func (w Weather) Update(ev terminal.Event) (Weather, app.Command) {
	if ev.IsRune('q') {
		return w, app.Terminate
	}
	return w, app.Continue
}

func (w Weather) Render(area layout.Rect, buf *tui.Buffer) {
	title, vertical, horizontal := layout.Rows(layout.Fixed(1), layout.Fill(1), layout.Fill(1)).
		WithSpacing(1).
		Split3(area)

	centered(title, buf, "Barchart", bold)
	w.chart("Weather (Vertical)", layout.Vertical, 5, 1).Render(vertical, buf)
	w.chart("Weather (Horizontal)", layout.Horizontal, 1, 0).Render(horizontal, buf)
}

func (w Weather) chart(title string, dir layout.Direction, width, gap int) tui.BarChart {
	bars := make([]tui.Bar, len(w.Temperatures))
	for hour, t := range w.Temperatures {
		bars[hour] = tui.Bar{
			Label:     fmt.Sprintf("%02d:00", hour),
			Value:     t,
			TextValue: fmt.Sprintf("%3d°", t),
			Style:     temperatureStyle(t),
		}
	}
	block := tui.Block{Title: tui.NewLine(tui.Raw(title)).Centered()}
	return tui.BarChart{
		Block:     &block,
		Bars:      bars,
		Direction: dir,
		BarWidth:  width,
		BarGap:    gap,
	}
}

// temperatureStyle runs from yellow at 50 to red at 90
func temperatureStyle(t int) tui.Style {
	ratio := float64(t-minTemp) / float64(maxTemp-minTemp)
	return tui.DefaultStyle(tempCold.Blend(tempHot, ratio))
}

func runWeather(env Env) error {
	_, err := app.Run(env.Term, NewWeather(env.Seed), env.Options...)
	return err
}
