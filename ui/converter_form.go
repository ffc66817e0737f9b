package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"figma-px/internal/clip"
	"figma-px/internal/convert"
	"figma-px/internal/export"
	"figma-px/internal/feedback"
	"figma-px/internal/format"
	"figma-px/internal/model"
)

// FormDeps holds the collaborators of a ConverterForm. Zero values are
// replaced with working defaults, except Clipboard which is required.
type FormDeps struct {
	Clipboard clip.Writer
	Scheduler feedback.Scheduler
	Log       *zap.Logger
	Now       func() time.Time
	OnCopied  func(model.Conversion)
}

// ConverterForm is the conversion form: two numeric entries, the derived
// pixel value and the Copy button.
type ConverterForm struct {
	form     *convert.Form
	flag     *feedback.Flag
	metric   convert.Metric
	deps     FormDeps
	log      *zap.Logger
	onCopied func(model.Conversion)

	metricSelect *widget.Select
	sizeEntry    *widget.Entry
	percentEntry *widget.Entry
	resultEntry  *readOnlyEntry
	copyBtn      *StyledButton

	sizeItem    *widget.FormItem
	percentItem *widget.FormItem
	resultLabel *widget.Label
	inputs      *widget.Form

	container *fyne.Container
}

// NewConverterForm creates the form with empty inputs.
func NewConverterForm(deps FormDeps) *ConverterForm {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Scheduler == nil {
		deps.Scheduler = feedback.TimeScheduler{}
	}

	cf := &ConverterForm{
		form:     convert.NewForm(),
		deps:     deps,
		log:      deps.Log,
		onCopied: deps.OnCopied,
	}
	cf.flag = feedback.New(cf.onFeedback, feedback.WithScheduler(deps.Scheduler))

	labels := make([]string, len(convert.Metrics))
	for i, m := range convert.Metrics {
		labels[i] = m.Label()
	}
	cf.metricSelect = widget.NewSelect(labels, cf.onMetricSelected)

	cf.sizeEntry = widget.NewEntry()
	cf.sizeEntry.SetPlaceHolder("16")
	cf.sizeEntry.Validator = numberValidator("font size")
	cf.sizeEntry.OnChanged = cf.form.SetBaseSize
	cf.sizeEntry.OnSubmitted = func(string) { cf.Submit() }

	cf.percentEntry = widget.NewEntry()
	cf.percentEntry.SetPlaceHolder("-2")
	cf.percentEntry.Validator = numberValidator("percent")
	cf.percentEntry.OnChanged = cf.form.SetPercent
	cf.percentEntry.OnSubmitted = func(string) { cf.Submit() }

	cf.resultEntry = newReadOnlyEntry()
	cf.copyBtn = NewStyledButton(feedback.LabelIdle, cf.Submit, CopyIdleColor, CopyLabelColor)

	cf.sizeItem = widget.NewFormItem("", container.NewBorder(nil, nil, nil, widget.NewLabel("px"), cf.sizeEntry))
	cf.percentItem = widget.NewFormItem("", container.NewBorder(nil, nil, nil, widget.NewLabel("%"), cf.percentEntry))
	cf.inputs = widget.NewForm(
		widget.NewFormItem("Metric", cf.metricSelect),
		cf.sizeItem,
		cf.percentItem,
	)

	cf.resultLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	result := container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewLabel("px"), cf.copyBtn),
		cf.resultEntry,
	)

	cf.container = container.NewVBox(
		cf.inputs,
		widget.NewSeparator(),
		cf.resultLabel,
		result,
	)

	// the derived field follows every input change
	cf.form.OnChange(cf.resultEntry.SetText)
	cf.metricSelect.SetSelected(convert.LetterSpacing.Label())

	return cf
}

// Container returns the form's Fyne container.
func (cf *ConverterForm) Container() *fyne.Container {
	return cf.container
}

// Submit recomputes the value, copies it with the px suffix and shows the
// Copied feedback for two seconds.
func (cf *ConverterForm) Submit() {
	sub := cf.form.Submit()
	text := sub.ClipboardText()
	cf.deps.Clipboard.SetContent(text)
	cf.flag.Trigger()

	now := cf.deps.Now()
	conv := model.NewConversion(now, "GUI", cf.metric, sub)
	conv.ID = export.NextConversionID(now)
	cf.log.Debug("Copied", zap.String("conversion", format.FormatConversion(&conv)))

	if cf.onCopied != nil {
		cf.onCopied(conv)
	}
}

// Derived returns the value currently shown in the result field.
func (cf *ConverterForm) Derived() string {
	return cf.form.Derived()
}

// CopyLabel returns the current Copy button text.
func (cf *ConverterForm) CopyLabel() string {
	return cf.copyBtn.Text
}

// Metric returns the selected metric.
func (cf *ConverterForm) Metric() convert.Metric {
	return cf.metric
}

// SetInputs replaces the entry texts, as if typed by the user.
func (cf *ConverterForm) SetInputs(baseSize, percent string) {
	cf.sizeEntry.SetText(baseSize)
	cf.percentEntry.SetText(percent)
}

// SetMetric selects the metric.
func (cf *ConverterForm) SetMetric(m convert.Metric) {
	cf.metricSelect.SetSelected(m.Label())
}

// LoadPreferences restores the last inputs from persistent preferences,
// falling back to the given defaults.
func (cf *ConverterForm) LoadPreferences(prefs fyne.Preferences, defSize float64, defMetric convert.Metric) {
	size := prefs.StringWithFallback(prefBaseSize, format.Number(defSize))
	percent := prefs.String(prefPercent)
	cf.SetInputs(size, percent)

	metric := defMetric
	if v := prefs.String(prefMetric); v != "" {
		if m, err := convert.ParseMetric(v); err == nil {
			metric = m
		}
	}
	cf.SetMetric(metric)
}

// SavePreferences persists the current inputs.
func (cf *ConverterForm) SavePreferences(prefs fyne.Preferences) {
	size, percent := cf.form.Raw()
	prefs.SetString(prefBaseSize, size)
	prefs.SetString(prefPercent, percent)
	prefs.SetString(prefMetric, cf.metric.String())
}

func (cf *ConverterForm) onMetricSelected(label string) {
	for _, m := range convert.Metrics {
		if m.Label() == label {
			cf.metric = m
		}
	}
	cf.sizeItem.Text = "Font size"
	cf.percentItem.Text = cf.metric.Label()
	cf.inputs.Refresh()
	cf.resultLabel.SetText(cf.metric.Label() + " in px")
}

// onFeedback runs on the UI goroutine for a copy and on a timer goroutine
// for the reset.
func (cf *ConverterForm) onFeedback(s feedback.State) {
	fyne.Do(func() {
		cf.copyBtn.SetText(feedback.LabelFor(s))
		if s == feedback.Copied {
			cf.copyBtn.SetColors(CopiedColor, CopiedTextColor)
		} else {
			cf.copyBtn.ResetColors()
		}
	})
}
