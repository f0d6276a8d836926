package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/physcalc/internal/calculator"
	"github.com/san-kum/physcalc/internal/config"
	"github.com/san-kum/physcalc/internal/history"
	"github.com/san-kum/physcalc/internal/library"
	"github.com/san-kum/physcalc/internal/sweep"
	"github.com/san-kum/physcalc/internal/tui"
)

var (
	configFile string
	dataDir    string
	noHistory  bool
	verbose    bool

	// solve and plot
	sets      []string
	preset    string
	solveFor  string
	vary      string
	varyFrom  float64
	varyTo    float64
	steps     int
	plotWidth int

	// history
	historyLimit int
	exportPath   string

	// serve
	addr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "physcalc",
		Short:         "physics equation reference and calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			calc, closeStore := openCalculator(cfg)
			defer closeStore()
			return tui.Run(calc, cfg.TUI.AltScreen)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath(), "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record calculations")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	chaptersCmd := &cobra.Command{
		Use:   "chapters",
		Short: "list chapters",
		Args:  cobra.NoArgs,
		RunE:  listChapters,
	}

	showCmd := &cobra.Command{
		Use:   "show [chapter] [equation]",
		Short: "show a chapter, or one equation in detail",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  showChapter,
	}

	solveCmd := &cobra.Command{
		Use:   "solve [chapter] [equation]",
		Short: "solve an equation for its one blank variable",
		Long: "Give every variable but one with --set symbol=value (parameter names work too).\n" +
			"With --preset, values come from a worked example and --for picks the variable to solve for.",
		Args: cobra.ExactArgs(2),
		RunE: solveEquation,
	}
	solveCmd.Flags().StringArrayVar(&sets, "set", nil, "given value as symbol=value (repeatable)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "start from a worked example")
	solveCmd.Flags().StringVar(&solveFor, "for", "", "variable to solve for when using --preset")

	plotCmd := &cobra.Command{
		Use:   "plot [chapter] [equation]",
		Short: "plot the blank variable while one given value sweeps a range",
		Args:  cobra.ExactArgs(2),
		RunE:  plotEquation,
	}
	plotCmd.Flags().StringArrayVar(&sets, "set", nil, "fixed value as symbol=value (repeatable)")
	plotCmd.Flags().StringVar(&vary, "vary", "", "variable to sweep")
	plotCmd.Flags().Float64Var(&varyFrom, "from", 0, "start of the sweep")
	plotCmd.Flags().Float64Var(&varyTo, "to", 1, "end of the sweep")
	plotCmd.Flags().IntVar(&steps, "steps", sweep.DefaultSteps, "number of points")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.MarkFlagRequired("vary")

	convertCmd := &cobra.Command{
		Use:   "convert [quantity] [value] [from] [to]",
		Short: "convert a value between units",
		Args:  cobra.ExactArgs(4),
		RunE:  convertUnits,
	}

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "list convertible quantities and units",
		Args:  cobra.NoArgs,
		RunE:  listUnits,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "recorded calculations",
		Args:  cobra.NoArgs,
		RunE:  listHistory,
	}
	historyCmd.PersistentFlags().IntVar(&historyLimit, "limit", 0, "number of records (default from config)")

	historyListCmd := &cobra.Command{
		Use:   "list",
		Short: "list recent calculations",
		Args:  cobra.NoArgs,
		RunE:  listHistory,
	}
	historyShowCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show one calculation",
		Args:  cobra.ExactArgs(1),
		RunE:  showHistory,
	}
	historyExportCmd := &cobra.Command{
		Use:   "export",
		Short: "export calculations to CSV",
		Args:  cobra.NoArgs,
		RunE:  exportHistory,
	}
	historyExportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "output file (default stdout)")
	historyClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "delete all recorded calculations",
		Args:  cobra.NoArgs,
		RunE:  clearHistory,
	}
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyExportCmd, historyClearCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	presetsCmd := &cobra.Command{
		Use:   "presets [solver]",
		Short: "list worked examples, for every solver or one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode (default)",
		Args:  cobra.NoArgs,
		RunE:  rootCmd.RunE,
	}

	rootCmd.AddCommand(chaptersCmd, showCmd, solveCmd, plotCmd, convertCmd, unitsCmd, historyCmd, serveCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configFile, err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if noHistory {
		cfg.History.Enabled = false
	}
	return cfg, nil
}

// openCalculator builds a calculator that records into the configured
// history store. A store that fails to open is logged and skipped.
func openCalculator(cfg *config.Config) (*calculator.Calculator, func() error) {
	lib := library.New()
	if !cfg.History.Enabled {
		return calculator.New(lib, nil, slog.Default()), func() error { return nil }
	}

	store, err := history.Open(cfg)
	if err != nil {
		slog.Warn("history disabled", "backend", cfg.History.Backend, "error", err)
		return calculator.New(lib, nil, slog.Default()), func() error { return nil }
	}
	return calculator.New(lib, store, slog.Default()), store.Close
}

func openHistory() (history.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}
