package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Window dimensions
const (
	WindowWidth  = 720
	WindowHeight = 420
)

// Copy button colors: primary while idle, success while the value is
// reported as copied.
var (
	CopyIdleColor   = color.NRGBA{R: 87, G: 13, B: 248, A: 255}
	CopiedColor     = color.NRGBA{R: 54, G: 211, B: 153, A: 255}
	CopyLabelColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	CopiedTextColor = color.NRGBA{R: 0, G: 50, B: 29, A: 255}
)

// Preference keys
const (
	prefBaseSize = "form.base_size"
	prefPercent  = "form.percent"
	prefMetric   = "form.metric"
	prefLastDir  = "export.last_dir"
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
