package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "xrv",
		Short: "Read and inspect XRV files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cfg, verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newDumpCmd(cfg))
	rootCmd.AddCommand(newLocateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cfg *config, verbose bool) {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case cfg.LogLevel != "":
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			level = slog.LevelWarn
		}
	}

	noColor := !isatty.IsTerminal(os.Stderr.Fd())
	if cfg.Color != nil && !*cfg.Color {
		noColor = true
	}

	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	}))
	slog.SetDefault(logger)
}
