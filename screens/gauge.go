package screens

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/fsm"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

type gaugeMode uint8

const (
	gaugeRunning gaugeMode = iota
	gaugeStarted
	gaugePaused
	gaugeQuitting
)

type gaugeTrigger uint8

const (
	gaugeToggle gaugeTrigger = iota
	gaugeQuit
)

// gaugeModes is shared by both gauge screens. Running is the idle state
// before the first start.
var gaugeModes = fsm.NewBuilder[gaugeMode, gaugeTrigger, struct{}](gaugeRunning, "Running").
	State(gaugeStarted, "Started").
	State(gaugePaused, "Paused").
	State(gaugeQuitting, "Quitting").
	On(gaugeRunning, gaugeToggle, gaugeStarted, nil).
	On(gaugeStarted, gaugeToggle, gaugePaused, nil).
	On(gaugePaused, gaugeToggle, gaugeStarted, nil).
	On(gaugeRunning, gaugeQuit, gaugeQuitting, nil).
	On(gaugeStarted, gaugeQuit, gaugeQuitting, nil).
	On(gaugePaused, gaugeQuit, gaugeQuitting, nil).
	MustBuild()

const maxGaugeColumns = 1 << 14

// Gauges animates four progress bars measuring the same advance in
// different ways
type Gauges struct {
	mode gaugeMode
	// columns counts ticks; rendered as a fraction of the frame width
	columns   int
	progress3 float64
	progress4 float64
}

func NewGauges() Gauges {
	return Gauges{mode: gaugeModes.Initial()}
}

func (g Gauges) Update(ev terminal.Event) (Gauges, app.Command) {
	switch {
	case isQuit(ev):
		g.mode, _ = gaugeModes.Next(g.mode, gaugeQuit, struct{}{})
		return g, app.Terminate
	case isToggle(ev):
		g.mode, _ = gaugeModes.Next(g.mode, gaugeToggle, struct{}{})
	}
	return g, app.Continue
}

func (g Gauges) Tick(time.Time) Gauges {
	if g.mode != gaugeStarted {
		return g
	}
	g.columns = min(g.columns+1, maxGaugeColumns)
	g.progress3 = clampF(g.progress3+0.1, 40, 100)
	g.progress4 = clampF(g.progress4+0.1, 40, 100)
	return g
}

func (g Gauges) Render(area layout.Rect, buf *tui.Buffer) {
	cols := min(g.columns, area.Width)
	var ratio float64
	pct := 0
	if area.Width > 0 {
		pct = cols * 100 / area.Width
		ratio = float64(cols) / float64(area.Width)
	}
	renderGauges(area, buf, gaugeReadings{
		percent: pct,
		ratio:   ratio,
		plain:   g.progress3 / 100,
		unicode: g.progress4 / 100,
	}, gaugeFooter(false))
}

// ManualGauge advances by random steps and offers help and quit popups
type ManualGauge struct {
	mode     gaugeMode
	overlay  overlay
	progress float64
	ticks    uint64
	seed     uint64
}

type overlay uint8

const (
	overlayNone overlay = iota
	overlayHelp
	overlayConfirmQuit
)

type overlayTrigger uint8

const (
	overlayAskHelp overlayTrigger = iota
	overlayAskQuit
	overlayCancel
)

// overlays covers opening and closing the popups; confirming a quit is
// handled by gaugeModes
var overlays = fsm.NewBuilder[overlay, overlayTrigger, struct{}](overlayNone, "None").
	State(overlayHelp, "Help").
	State(overlayConfirmQuit, "ConfirmQuit").
	On(overlayNone, overlayAskHelp, overlayHelp, nil).
	On(overlayNone, overlayAskQuit, overlayConfirmQuit, nil).
	On(overlayHelp, overlayAskHelp, overlayNone, nil).
	On(overlayHelp, overlayCancel, overlayNone, nil).
	On(overlayConfirmQuit, overlayCancel, overlayNone, nil).
	MustBuild()

func NewManualGauge() ManualGauge {
	return ManualGauge{mode: gaugeModes.Initial(), overlay: overlays.Initial()}
}

// WithSeed fixes the sequence of random steps
func (g ManualGauge) WithSeed(seed uint64) ManualGauge {
	g.seed = seed
	return g
}

func (g ManualGauge) Update(ev terminal.Event) (ManualGauge, app.Command) {
	if !ev.Pressed() {
		return g, app.Continue
	}

	switch g.overlay {
	case overlayConfirmQuit:
		if ev.IsAnyRune('y', 'q') {
			g.mode, _ = gaugeModes.Next(g.mode, gaugeQuit, struct{}{})
			return g, app.Terminate
		}
		g.overlay, _ = overlays.Next(g.overlay, overlayCancel, struct{}{})
		return g, app.Continue

	case overlayHelp:
		switch {
		case ev.IsRune('?'):
			g.overlay, _ = overlays.Next(g.overlay, overlayAskHelp, struct{}{})
		case ev.IsKey(terminal.KeyEscape):
			g.overlay, _ = overlays.Next(g.overlay, overlayCancel, struct{}{})
		}
		return g, app.Continue
	}

	switch {
	case isQuit(ev):
		g.overlay, _ = overlays.Next(g.overlay, overlayAskQuit, struct{}{})
	case isToggle(ev):
		g.mode, _ = gaugeModes.Next(g.mode, gaugeToggle, struct{}{})
	case ev.IsRune('?'):
		g.overlay, _ = overlays.Next(g.overlay, overlayAskHelp, struct{}{})
	case ev.IsRune('r'):
		g.progress = 0
	}
	return g, app.Continue
}

// Tick adds a step in [0.5, 1) while started; the step depends only on the
// seed and the tick count
func (g ManualGauge) Tick(time.Time) ManualGauge {
	g.ticks++
	if g.mode != gaugeStarted {
		return g
	}
	r := rand.New(rand.NewPCG(g.seed, g.ticks))
	g.progress = clampF(g.progress+0.5+r.Float64()*0.5, 0, 100)
	return g
}

func (g ManualGauge) Render(area layout.Rect, buf *tui.Buffer) {
	ratio := g.progress / 100
	renderGauges(area, buf, gaugeReadings{
		percent: int(g.progress),
		ratio:   ratio,
		plain:   ratio,
		unicode: ratio,
	}, gaugeFooter(true))

	switch g.overlay {
	case overlayHelp:
		renderGaugeHelp(area, buf)
	case overlayConfirmQuit:
		renderQuitConfirm(area, buf)
	}
}

type gaugeReadings struct {
	percent int
	ratio   float64
	plain   float64
	unicode float64
}

func renderGauges(area layout.Rect, buf *tui.Buffer, v gaugeReadings, footer tui.Line) {
	header, body, foot := layout.Rows(layout.Fixed(2), layout.Min(0), layout.Fixed(1)).Split3(area)
	quarter := layout.Ratio(1, 4)
	rows := layout.Rows(quarter, quarter, quarter, quarter).Split(body)

	labelStyle := tui.DefaultStyle(slate200)
	centered(header, buf, "Gauge Example", labelStyle.Bold())
	tui.Paragraph{Text: []tui.Line{footer}, Style: labelStyle}.Render(foot, buf)

	tui.Gauge{
		Block:      gaugeBlock("Gauge with percentage"),
		GaugeStyle: tui.DefaultStyle(red800),
	}.Percent(v.percent).Render(rows[0], buf)

	tui.Gauge{
		Block:      gaugeBlock("Gauge with ratio and custom label"),
		GaugeStyle: tui.DefaultStyle(green800),
		Ratio:      v.ratio,
		Label:      fmt.Sprintf("%.1f/100", v.ratio*100),
	}.Render(rows[1], buf)

	tui.Gauge{
		Block:      gaugeBlock("Gauge with ratio (no unicode)"),
		GaugeStyle: tui.DefaultStyle(blue800),
		Ratio:      v.plain,
		Label:      fmt.Sprintf("%.1f%%", v.plain*100),
	}.Render(rows[2], buf)

	tui.Gauge{
		Block:      gaugeBlock("Gauge with ratio (unicode)"),
		GaugeStyle: tui.DefaultStyle(orange800),
		Ratio:      v.unicode,
		Label:      fmt.Sprintf("%.1f%%", v.unicode*100),
		UseUnicode: true,
	}.Render(rows[3], buf)
}

func gaugeBlock(title string) *tui.Block {
	return &tui.Block{
		Title:   tui.NewLine(tui.Raw(title)).Centered(),
		Padding: layout.Margin{Vertical: 1},
		Style:   tui.DefaultStyle(slate200),
	}
}

func gaugeFooter(manual bool) tui.Line {
	parts := []string{"Press ", "<Space>", " or ", "<Enter>", " to Start/Pause | Press ", "<Esc>", " or ", "<q>", " to Quit"}
	if manual {
		parts = append(parts, " | Press ", "<r>", " to reset progress | ", "<?>", " help")
	}
	return hint(parts...)
}

func renderGaugeHelp(area layout.Rect, buf *tui.Buffer) {
	box := popup(layout.CenteredIn(area, 40, 40), buf)

	key := tui.DefaultStyle(terminal.RGBDarkGray)
	desc := tui.DefaultStyle(terminal.RGBBlue).Bold()
	text := []tui.Line{
		{},
		tui.NewLine(tui.Styled("Keyboard Shortcuts", tui.DefaultStyle(terminal.RGBGreen))),
		{},
		tui.NewLine(tui.Styled("<Space> | <Enter> ", key), tui.Styled("Toggle Progress", desc)),
		{},
		tui.NewLine(tui.Styled("<Esc> | <q>       ", key), tui.Styled("Quit", desc)),
		{},
		tui.NewLine(tui.Styled("<r>               ", key), tui.Styled("Reset Progress", desc)),
	}
	block := tui.NewBlock().
		WithTitle(tui.NewLine(tui.Raw("Help")).Centered()).
		WithLine(tui.LineRounded).
		WithBorderStyle(tui.DefaultStyle(terminal.RGBRed))
	tui.Paragraph{Text: text, Block: &block, Alignment: tui.AlignCenter}.Render(box, buf)
}

func renderQuitConfirm(area layout.Rect, buf *tui.Buffer) {
	text := tui.NewLine(
		tui.Styled("Are you sure want to quit? ", bold),
		tui.Styled("y/n", tui.DefaultStyle(terminal.RGBGray)),
	)
	box := popup(layout.CenteredFixed(area, text.Width()+2, 3), buf)

	block := tui.NewBlock().
		Titled("Quit?").
		WithLine(tui.LineHeavy).
		WithBorderStyle(tui.DefaultStyle(terminal.RGBRed))
	tui.Paragraph{Text: []tui.Line{text}, Block: &block, Alignment: tui.AlignCenter, Wrap: true}.Render(box, buf)
}

func clampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func runGauges(env Env) error {
	_, err := app.Run(env.Term, NewGauges(), env.Options...)
	return err
}

func runManualGauge(env Env) error {
	_, err := app.Run(env.Term, NewManualGauge().WithSeed(env.Seed), env.Options...)
	return err
}
