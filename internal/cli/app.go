package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"figma-px/internal/clip"
	"figma-px/internal/config"
	"figma-px/internal/convert"
	"figma-px/internal/format"
)

// AppName is the program name used in help and logs.
const AppName = "figma-px"

// IsGUI reports whether the program should start the graphical interface:
// no arguments were given.
func IsGUI(args []string) bool {
	return len(args) < 2
}

// NewEnv returns an environment writing to out with the system clipboard and
// a terminal prompter. Configuration and logger are set up by the command's
// Before hook.
func NewEnv(out io.Writer) *Env {
	return &Env{
		Out:      out,
		Prompter: NewSurveyPrompter(),
		Now:      time.Now,
	}
}

// NewCommand builds the command line interface around env.
func NewCommand(env *Env) *cli.Command {
	return &cli.Command{
		Name:            AppName,
		Usage:           "convert percent-based letter spacing and line height to pixels",
		HideHelpCommand: true,
		Writer:          env.Out,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, env.initialize(cmd.String("config"), cmd.Bool("debug"))
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			return env.destroy()
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "print debug messages to the console"},
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Converts a relative value to pixels",
				ArgsUsage: " ",
				Flags: append(conversionFlags(),
					&cli.StringFlag{Name: "percent", Aliases: []string{"p"}, Usage: "relative value in `PERCENT` of the font size"},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					rc, err := env.runnerConfig(cmd)
					if err != nil {
						return err
					}
					rc.Percent = cmd.String("percent")
					conv, err := ConvertRunner(env, rc)
					if err != nil {
						return err
					}
					PrintResult(env.Out, conv, rc.Verbose)
					return nil
				},
			},
			{
				Name:   "prompt",
				Usage:  "Asks for the values interactively and converts them",
				Flags:  conversionFlags(),
				Action: env.runPrompt,
			},
			{
				Name:  "history",
				Usage: "Lists the conversions recorded by the command line",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "last", Aliases: []string{"n"}, Usage: "show only the last `N` conversions (default from configuration)"},
					&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "show every recorded conversion"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					n := env.Cfg.History.Limit
					if cmd.IsSet("last") {
						n = int(cmd.Int("last"))
					}
					if cmd.Bool("all") {
						n = 0
					}
					return PrintHistory(env.Out, HistoryLogPath(env.Cfg), n)
				},
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					data := config.DefaultData()
					if !cmd.Bool("default") {
						var err error
						if data, err = config.Dump(env.Cfg); err != nil {
							return err
						}
					}
					if _, err := env.Out.Write(data); err != nil {
						return fmt.Errorf("unable to write configuration: %w", err)
					}
					return nil
				},
			},
		},
	}
}

func conversionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "size", Aliases: []string{"s"}, Usage: "font size in `PX` (default from configuration)"},
		&cli.StringFlag{Name: "metric", Aliases: []string{"m"}, Usage: "`METRIC` being converted: letter-spacing or line-height"},
		&cli.BoolFlag{Name: "copy", Usage: "copy the result to the clipboard"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "append the conversion to CSV `FILE`"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print all conversion details"},
	}
}

func (env *Env) runnerConfig(cmd *cli.Command) (RunnerConfig, error) {
	rc := RunnerConfig{
		BaseSize:  format.Number(env.Cfg.Defaults.BaseSizePx),
		Metric:    env.Cfg.Metric(),
		Copy:      cmd.Bool("copy"),
		OutputCSV: cmd.String("output"),
		Verbose:   cmd.Bool("verbose"),
	}
	if cmd.IsSet("size") {
		rc.BaseSize = cmd.String("size")
	}
	if cmd.IsSet("metric") {
		m, err := convert.ParseMetric(cmd.String("metric"))
		if err != nil {
			return rc, err
		}
		rc.Metric = m
	}
	return rc, nil
}

func (env *Env) runPrompt(ctx context.Context, cmd *cli.Command) error {
	rc, err := env.runnerConfig(cmd)
	if err != nil {
		return err
	}
	// copying is the point of the interactive mode
	rc.Copy = true

	for {
		if rc, err = PromptForm(ctx, env.Prompter, rc); err != nil {
			return err
		}
		conv, err := ConvertRunner(env, rc)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "%s (copied)\n", format.FormatConversion(conv))

		again, err := env.Prompter.Confirm(ctx, "Convert another value?", true)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (env *Env) initialize(configFile string, debug bool) error {
	var err error
	if env.Cfg == nil {
		if env.Cfg, err = config.Load(configFile); err != nil {
			return fmt.Errorf("unable to prepare configuration: %w", err)
		}
	}
	if debug {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if env.Log == nil {
		if env.Log, env.closeLog, err = env.Cfg.Logging.Prepare(); err != nil {
			return fmt.Errorf("unable to prepare logs: %w", err)
		}
	}
	if env.Clipboard == nil {
		env.Clipboard = clip.NewSystem(env.Log)
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	if env.Out == nil {
		env.Out = os.Stdout
	}

	env.Log.Debug("Program started", zap.Strings("args", os.Args))
	if configFile == "" {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return nil
}

func (env *Env) destroy() (err error) {
	if env.Log != nil {
		env.Log.Debug("Program ended")
		// syncing console writers fails on some terminals, ignore it
		_ = env.Log.Sync()
	}
	if env.closeLog != nil {
		err = multierr.Append(err, env.closeLog())
		env.closeLog = nil
	}
	return err
}
