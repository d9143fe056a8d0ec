package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/logger"
	"github.com/akyairhashvil/dialtimer/internal/output"
	"github.com/akyairhashvil/dialtimer/internal/tui"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui  *output.UI
	cfg config.Config

	cfgFile string
	verbose bool
)

// isTerminal is replaceable in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Dial countdown timers for the terminal",
	Long: `dialtimer keeps a list of named countdown timers. Drag the dial with
the mouse to set a duration, click to start or pause, double click to reset.

Without a subcommand it opens the interactive dial when attached to a
terminal and prints the timer list otherwise.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal() {
			return listRun(cmd.Context())
		}
		return tuiRun(cmd.Context())
	},
}

// Execute is the main entry point called from main.go.
func Execute(v, c, d string) {
	tui.AppVersion, tui.GitCommit, tui.BuildTime = v, c, d
	rootCmd.Version = v

	err := rootCmd.ExecuteContext(context.Background())
	_ = logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/dialtimer/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func initConfig() {
	ui = output.New()
	ui.Verbose = verbose

	loaded, err := config.Load(cfgFile)
	if err != nil {
		ui.Warning("%v; using defaults", err)
		loaded = config.Default()
	}
	cfg = loaded
	logger.SetLevel(cfg.LogLevel)
	if verbose {
		logger.SetLevel("debug")
	}
}

func tuiRun(ctx context.Context) error {
	a, err := openApp(ctx, cfg, appOptions{audio: cfg.Audio.Enabled, tui: true})
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(tui.NewModel(a.eng, a.events, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
