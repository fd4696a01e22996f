package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/audio"
	"github.com/lixenwraith/tui-examples/config"
	"github.com/lixenwraith/tui-examples/screens"
	"github.com/lixenwraith/tui-examples/terminal"
)

type runFlags struct {
	noMouse bool
	seed    uint64
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Terminal UI examples on a constraint layout engine",
		Long: `Runs small full-screen examples: gauges, spinners, lists, tabs,
popups, a bar chart, a custom button and a JSON editor.`,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.Dir()+"/config.yaml)")

	root.AddCommand(newRunCmd(&configPath), newListCmd(), newVersionCmd())
	return root
}

func newRunCmd(configPath *string) *cobra.Command {
	var flags runFlags
	loader := config.NewLoader()

	cmd := &cobra.Command{
		Use:     "run <example>",
		Short:   "Run one example full screen",
		Example: "  tui-examples run gauge --tick-rate 100ms",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return exampleNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExample(cmd, loader, *configPath, args[0], flags)
		},
	}

	f := cmd.Flags()
	f.Duration("tick-rate", app.DefaultTickRate, "interval between ticks")
	f.Bool("sound", false, "ring the bell through the speaker")
	f.Bool("debug", false, "write a debug log under the XDG state dir")
	f.BoolVar(&flags.noMouse, "no-mouse", false, "disable mouse reporting")
	f.Uint64Var(&flags.seed, "seed", 0, "seed for random content (default: time based)")

	// Flags only override config when set
	for key, name := range map[string]string{
		"tick_rate":     "tick-rate",
		"audio.enabled": "sound",
		"log.debug":     "debug",
	} {
		if err := loader.BindPFlag(key, f.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func runExample(cmd *cobra.Command, loader *config.Loader, configPath, name string, flags runFlags) error {
	entry, err := screens.Lookup(name)
	if err != nil {
		return err
	}

	cfg, err := loader.Read(configPath)
	if err != nil {
		return err
	}
	if flags.noMouse {
		cfg.Mouse = false
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	logger, logFile, err := setupLogging(cfg.Log.Debug, logPath, cfg.LogLevel())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Debug("config loaded", "file", loader.Path(), "tick_rate", cfg.TickRate, "mouse", cfg.Mouse)

	player, err := audio.New(cfg.AudioCue())
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer player.Close()

	term, err := terminal.New()
	if err != nil {
		return err
	}

	seed := flags.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	opts := []app.Option{
		app.WithTickRate(cfg.TickRate),
		app.WithMouse(cfg.Mouse),
		app.WithLogger(logger),
	}
	// Without a speaker the loop falls back to the terminal bell
	if _, silent := player.(audio.Silent); !silent {
		opts = append(opts, app.WithBell(player))
	}

	env := screens.Env{
		Term:    term,
		Options: opts,
		Out:     cmd.OutOrStdout(),
		Seed:    seed,
	}

	logger.Info("starting example", "name", entry.Name, "seed", seed)
	if err := entry.Run(env); err != nil {
		logger.Error("example failed", "name", entry.Name, "err", err)
		return fmt.Errorf("%s: %w", entry.Name, err)
	}
	logger.Info("example finished", "name", entry.Name)
	return nil
}

func exampleNames() []string {
	entries := screens.Registry()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), examplesTable(screens.Registry()))
			return err
		},
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func examplesTable(entries []screens.Entry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("NAME", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		})
	for _, e := range entries {
		t.Row(e.Name, e.Description)
	}
	return t.String()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", config.AppName, BuildVersion)
	fmt.Fprintf(w, "commit: %s\n", BuildCommit)
	fmt.Fprintf(w, "built:  %s\n", BuildDate)
	fmt.Fprintf(w, "go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
