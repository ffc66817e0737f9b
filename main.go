package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"figma-px/internal/cli"
	"figma-px/internal/config"
	"figma-px/ui"
)

func main() {
	// No arguments = use GUI
	if cli.IsGUI(os.Args) {
		if err := runGUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// CLI mode
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewCommand(cli.NewEnv(os.Stdout)).Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGUI() error {
	cfg, err := config.Load(os.Getenv("FIGMA_PX_CONFIG"))
	if err != nil {
		return fmt.Errorf("unable to prepare configuration: %w", err)
	}
	log, closeLog, err := cfg.Logging.Prepare()
	if err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	defer closeLog()

	log.Debug("Starting GUI", zap.String("history_dir", cfg.History.Dir))

	a := app.NewWithID("com.figma-px.gui")
	mw := ui.BuildMainWindow(a, cfg, log)
	mw.Window.ShowAndRun()
	return nil
}
