package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"figma-px/internal/clip"
	"figma-px/internal/config"
	"figma-px/internal/convert"
	"figma-px/internal/export"
	"figma-px/internal/format"
	"figma-px/internal/model"
)

// Env carries what every command needs. It is filled in before the command
// action runs.
type Env struct {
	Cfg       *config.Config
	Log       *zap.Logger
	Out       io.Writer
	Clipboard clip.Writer
	Prompter  Prompter
	Now       func() time.Time

	closeLog func() error
}

// RunnerConfig holds the options of a single conversion.
type RunnerConfig struct {
	BaseSize  string // raw input; empty or invalid counts as 0
	Percent   string
	Metric    convert.Metric
	Copy      bool
	OutputCSV string
	Verbose   bool
}

// ConvertRunner performs a conversion the same way the GUI form does: the
// raw inputs go through convert.Form and the submission is copied.
func ConvertRunner(env *Env, cfg RunnerConfig) (*model.Conversion, error) {
	fields := []struct{ name, raw string }{
		{"size", cfg.BaseSize},
		{"percent", cfg.Percent},
	}
	for _, f := range fields {
		if err := convert.ValidateNumber(f.raw); err != nil {
			env.Log.Warn("Invalid number, using 0", zap.String("field", f.name), zap.Error(err))
		}
	}

	form := convert.NewForm()
	form.SetBaseSize(cfg.BaseSize)
	form.SetPercent(cfg.Percent)
	sub := form.Submit()

	now := env.Now()
	conv := model.NewConversion(now, "CLI", cfg.Metric, sub)
	conv.ID = export.NextConversionID(now)

	if cfg.Copy {
		if a, ok := env.Clipboard.(availability); ok && !a.Available() {
			env.Log.Warn("No clipboard utility found, the value is not copied")
		}
		env.Clipboard.SetContent(sub.ClipboardText())
	}

	env.Log.Debug("Converted",
		zap.String("metric", cfg.Metric.String()),
		zap.Float64("size", sub.Inputs.BaseSizePx),
		zap.Float64("percent", sub.Inputs.Percent),
		zap.String("result", conv.Pixels()),
		zap.Bool("copied", cfg.Copy))

	if err := appendHistory(env, conv); err != nil {
		env.Log.Warn("Unable to record conversion history", zap.Error(err))
	}

	if cfg.OutputCSV != "" {
		if err := export.EnsureDir(cfg.OutputCSV); err != nil {
			return &conv, fmt.Errorf("create output directory: %w", err)
		}
		if err := export.WriteCSV(cfg.OutputCSV, []model.Conversion{conv}); err != nil {
			return &conv, fmt.Errorf("save CSV: %w", err)
		}
		env.Log.Info("Conversion saved", zap.String("file", cfg.OutputCSV))
	}

	return &conv, nil
}

// availability is implemented by clipboard writers that can tell whether
// the system supports them.
type availability interface {
	Available() bool
}

var _ availability = (*clip.System)(nil)

// HistoryLogPath returns the CSV file every CLI conversion is appended to.
func HistoryLogPath(cfg *config.Config) string {
	return export.BuildLogPath(filepath.Join(cfg.History.Dir, "conversions"), "_log", ".csv")
}

func appendHistory(env *Env, conv model.Conversion) error {
	path := HistoryLogPath(env.Cfg)
	if err := export.EnsureDir(path); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	return export.WriteCSV(path, []model.Conversion{conv})
}

// PrintHistory prints the last n conversions of the history log, all of them
// when n is not positive.
func PrintHistory(out io.Writer, path string, n int) error {
	conversions, err := export.ReadCSV(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(conversions) == 0) {
		fmt.Fprintln(out, "No conversions recorded yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if n > 0 && len(conversions) > n {
		conversions = conversions[len(conversions)-n:]
	}

	fmt.Fprintln(out, format.FormatHistoryHeader())
	for i := range conversions {
		fmt.Fprintln(out, format.FormatHistoryRow(&conversions[i]))
	}
	return nil
}

// PrintResult writes a conversion to out. Verbose output uses the block
// format, otherwise only the pixel value is printed so the output can be
// piped.
func PrintResult(out io.Writer, c *model.Conversion, verbose bool) {
	if verbose {
		fmt.Fprintln(out, format.FormatResult(c))
		return
	}
	fmt.Fprintln(out, c.Pixels())
}
