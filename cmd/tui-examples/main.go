package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"

	"github.com/lixenwraith/tui-examples/terminal"
)

var (
	BuildVersion = "v0.0.0"
	BuildCommit  = "none"
	BuildDate    = "unknown"
)

func main() {
	// Panic Recovery: the screen may still be in raw mode
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mTUI-EXAMPLES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	root := newRootCmd()
	if err := fang.Execute(context.Background(), root,
		fang.WithVersion(BuildVersion),
		fang.WithCommit(BuildCommit),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
