package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/dialtimer/internal/report"
)

var (
	exportDir    string
	exportStdout bool
	exportNow    = time.Now
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a PDF sheet of all timers",
	Long: `Write a printable PDF listing every timer with its duration, remaining
time and flags. By default the file goes to the documents directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportRun(cmd.Context())
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "o", "", "Output directory (default ~/Documents/DIALTIMER)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write the PDF to stdout")
	rootCmd.AddCommand(exportCmd)
}

func exportRun(ctx context.Context) error {
	a, err := openApp(ctx, cfg, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	timers := a.eng.Timers()
	selected := a.eng.SelectedIndex()
	if exportStdout {
		return report.WriteTimerSheet(os.Stdout, timers, selected, exportNow())
	}
	path, err := report.ExportTimerSheet(exportDir, timers, selected, exportNow())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	ui.Success("PDF written to %s", path)
	return nil
}
