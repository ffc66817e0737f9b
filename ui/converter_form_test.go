package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"figma-px/internal/clip"
	"figma-px/internal/convert"
	"figma-px/internal/model"
)

// pendingScheduler keeps scheduled resets until the test fires them.
type pendingScheduler struct {
	delays []time.Duration
	funcs  []func()
}

func (p *pendingScheduler) AfterFunc(d time.Duration, f func()) {
	p.delays = append(p.delays, d)
	p.funcs = append(p.funcs, f)
}

func (p *pendingScheduler) fireNext() {
	f := p.funcs[0]
	p.funcs = p.funcs[1:]
	f()
}

func newTestForm(t *testing.T) (*ConverterForm, *clip.Memory, *pendingScheduler, *[]model.Conversion) {
	t.Helper()
	test.NewTempApp(t)

	mem := &clip.Memory{}
	sched := &pendingScheduler{}
	var copied []model.Conversion
	cf := NewConverterForm(FormDeps{
		Clipboard: mem,
		Scheduler: sched,
		Now:       func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) },
		OnCopied:  func(c model.Conversion) { copied = append(copied, c) },
	})
	return cf, mem, sched, &copied
}

func TestConverterForm_Initial(t *testing.T) {
	cf, _, _, _ := newTestForm(t)

	if got := cf.resultEntry.Text; got != "0.0" {
		t.Errorf("result = %q, want 0.0", got)
	}
	if got := cf.CopyLabel(); got != "Copy" {
		t.Errorf("button label = %q, want Copy", got)
	}
	if cf.Metric() != convert.LetterSpacing {
		t.Errorf("Metric() = %v, want letter-spacing", cf.Metric())
	}
}

func TestConverterForm_UpdatesWhileTyping(t *testing.T) {
	cf, mem, _, _ := newTestForm(t)

	test.Type(cf.sizeEntry, "16")
	if got := cf.resultEntry.Text; got != "0.0" {
		t.Errorf("result with empty percent = %q, want 0.0", got)
	}

	test.Type(cf.percentEntry, "150")
	if got := cf.resultEntry.Text; got != "24.0" {
		t.Errorf("result = %q, want 24.0", got)
	}

	cf.percentEntry.SetText("-10")
	cf.sizeEntry.SetText("20")
	if got := cf.resultEntry.Text; got != "-2.0" {
		t.Errorf("result = %q, want -2.0", got)
	}

	if mem.Writes() != 0 {
		t.Error("typing must not touch the clipboard")
	}
}

func TestConverterForm_InvalidInputShowsZero(t *testing.T) {
	cf, _, _, _ := newTestForm(t)

	cf.SetInputs("abc", "150")
	if got := cf.resultEntry.Text; got != "0.0" {
		t.Errorf("result = %q, want 0.0", got)
	}
	if err := cf.sizeEntry.Validate(); err == nil {
		t.Error("size entry should report invalid input")
	}
}

func TestConverterForm_CopyFeedback(t *testing.T) {
	cf, mem, sched, copied := newTestForm(t)
	cf.SetInputs("12", "33.3")

	cf.copyBtn.OnTapped()

	if got := mem.Content(); got != "4.0px" {
		t.Errorf("clipboard = %q, want 4.0px", got)
	}
	if got := cf.CopyLabel(); got != "Copied" {
		t.Errorf("label after copy = %q, want Copied", got)
	}
	if bg, _ := cf.copyBtn.Colors(); bg != CopiedColor {
		t.Errorf("button color = %v, want success color", bg)
	}
	if len(sched.delays) != 1 || sched.delays[0] != 2*time.Second {
		t.Fatalf("scheduled resets = %v, want one after 2s", sched.delays)
	}

	sched.fireNext()

	if got := cf.CopyLabel(); got != "Copy" {
		t.Errorf("label after reset = %q, want Copy", got)
	}
	if bg, _ := cf.copyBtn.Colors(); bg != CopyIdleColor {
		t.Errorf("button color after reset = %v, want idle color", bg)
	}

	if len(*copied) != 1 {
		t.Fatalf("OnCopied called %d times, want 1", len(*copied))
	}
	c := (*copied)[0]
	if c.Value != "4.0" || c.Mode != "GUI" || c.BaseSizePx != 12 || c.Percent != 33.3 {
		t.Errorf("unexpected conversion: %+v", c)
	}
}

func TestConverterForm_EachCopySchedulesReset(t *testing.T) {
	cf, mem, sched, _ := newTestForm(t)
	cf.SetInputs("16", "150")

	cf.Submit()
	cf.Submit()

	if mem.Writes() != 2 {
		t.Errorf("clipboard writes = %d, want 2", mem.Writes())
	}
	if len(sched.funcs) != 2 {
		t.Fatalf("pending resets = %d, want 2", len(sched.funcs))
	}

	// the first reset is not cancelled by the second copy
	sched.fireNext()
	if got := cf.CopyLabel(); got != "Copy" {
		t.Errorf("label after first reset = %q, want Copy", got)
	}
}

func TestConverterForm_SubmitOnEnter(t *testing.T) {
	cf, mem, _, _ := newTestForm(t)
	cf.SetInputs("18", "120")

	cf.percentEntry.OnSubmitted(cf.percentEntry.Text)

	if got := mem.Content(); got != "21.6px" {
		t.Errorf("clipboard = %q, want 21.6px", got)
	}
}

func TestConverterForm_Metric(t *testing.T) {
	cf, _, _, copied := newTestForm(t)

	cf.SetMetric(convert.LineHeight)
	if cf.Metric() != convert.LineHeight {
		t.Fatalf("Metric() = %v, want line-height", cf.Metric())
	}
	if cf.percentItem.Text != "Line height" {
		t.Errorf("percent label = %q, want Line height", cf.percentItem.Text)
	}
	if cf.resultLabel.Text != "Line height in px" {
		t.Errorf("result label = %q, want Line height in px", cf.resultLabel.Text)
	}

	cf.Submit()
	if (*copied)[0].Metric != convert.LineHeight {
		t.Errorf("copied metric = %v, want line-height", (*copied)[0].Metric)
	}
}

func TestConverterForm_Preferences(t *testing.T) {
	a := test.NewTempApp(t)
	prefs := a.Preferences()

	cf := NewConverterForm(FormDeps{Clipboard: &clip.Memory{}})
	cf.LoadPreferences(prefs, 16, convert.LetterSpacing)
	if got := cf.sizeEntry.Text; got != "16" {
		t.Errorf("size from defaults = %q, want 16", got)
	}

	cf.SetInputs("14", "-2")
	cf.SetMetric(convert.LineHeight)
	cf.SavePreferences(prefs)

	restored := NewConverterForm(FormDeps{Clipboard: &clip.Memory{}})
	restored.LoadPreferences(prefs, 16, convert.LetterSpacing)

	if restored.sizeEntry.Text != "14" || restored.percentEntry.Text != "-2" {
		t.Errorf("restored inputs = %q, %q; want 14, -2", restored.sizeEntry.Text, restored.percentEntry.Text)
	}
	if restored.Metric() != convert.LineHeight {
		t.Errorf("restored metric = %v, want line-height", restored.Metric())
	}
	if restored.Derived() != "-0.3" {
		t.Errorf("restored result = %q, want -0.3", restored.Derived())
	}
}
