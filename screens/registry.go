package screens

import (
	"errors"
	"fmt"
)

// ErrUnknownScreen is returned by Lookup for a name not in the registry
var ErrUnknownScreen = errors.New("unknown screen")

// Entry is one runnable example
type Entry struct {
	Name        string
	Description string
	Run         func(Env) error
}

var registry = []Entry{
	{"hello", "Title, content and footer; any key quits", runHello},
	{"gauge", "Four gauges advancing on a tick", runGauges},
	{"gauge-manual", "Gauges with random steps, help and quit popups", runManualGauge},
	{"spinner", "A single ASCII spinner", runSpinner},
	{"spinners", "Short-lived spinners, a adds one", runSpinners},
	{"barchart", "Hourly temperatures as vertical and horizontal bars", runWeather},
	{"list", "Todo list with selection and a detail pane", runTodo},
	{"popup", "Toggle a centered popup with p", runPopup},
	{"tabs", "Four colored tabs", runTabs},
	{"button", "Custom button widget with mouse support", runButtons},
	{"json", "Key/value editor that prints JSON on exit", runJSONEditor},
	{"menu", "Menu that opens two pages", runMenu},
}

// Registry returns every example in a stable order
func Registry() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds an example by name
func Lookup(name string) (Entry, error) {
	for _, e := range registry {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}
