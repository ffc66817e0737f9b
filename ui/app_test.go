package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"go.uber.org/zap"

	"figma-px/internal/config"
)

func TestBuildMainWindow(t *testing.T) {
	a := test.NewTempApp(t)
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg.History.Dir = t.TempDir()

	mw := BuildMainWindow(a, cfg, zap.NewNop())
	defer mw.Window.Close()

	// size comes from the configuration defaults
	if got := mw.Form.sizeEntry.Text; got != "16" {
		t.Errorf("size = %q, want 16", got)
	}

	mw.Form.SetInputs("16", "150")
	if got := mw.Form.Derived(); got != "24.0" {
		t.Errorf("Derived() = %q, want 24.0", got)
	}

	mw.Form.Submit()

	if got := a.Clipboard().Content(); got != "24.0px" {
		t.Errorf("clipboard = %q, want 24.0px", got)
	}
	if n := len(mw.History.Conversions()); n != 1 {
		t.Errorf("history entries = %d, want 1", n)
	}
}
