package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"figma-px/internal/convert"
)

// ErrAborted is returned when the user interrupts an interactive prompt.
var ErrAborted = errors.New("prompt aborted")

// InputConfig configures a single text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Prompter asks the user for input. It is an interface so the interactive
// command can be tested without a terminal.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, message string, def bool) (bool, error)
}

type surveyPrompter struct{}

// NewSurveyPrompter returns a Prompter backed by the terminal.
func NewSurveyPrompter() Prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// PromptForm asks for the font size and the relative value, offering the
// values from defaults.
func PromptForm(ctx context.Context, p Prompter, defaults RunnerConfig) (RunnerConfig, error) {
	cfg := defaults

	size, err := p.Input(ctx, InputConfig{
		Message:   "Font size in px",
		Default:   defaults.BaseSize,
		Validator: convert.ValidateNumber,
	})
	if err != nil {
		return cfg, fmt.Errorf("font size: %w", err)
	}
	cfg.BaseSize = size

	percent, err := p.Input(ctx, InputConfig{
		Message:   fmt.Sprintf("%s in percent", defaults.Metric.Label()),
		Default:   defaults.Percent,
		Help:      "Relative value as shown by the design tool, e.g. -2 or 150",
		Validator: convert.ValidateNumber,
	})
	if err != nil {
		return cfg, fmt.Errorf("percent: %w", err)
	}
	cfg.Percent = percent

	return cfg, nil
}
