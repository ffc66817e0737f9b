package model

import (
	"time"

	"figma-px/internal/convert"
)

// Conversion records a single submitted conversion.
type Conversion struct {
	ID         string // e.g. "20261019-101500-01"; empty = not set
	Timestamp  time.Time
	Mode       string // "CLI" or "GUI"
	Metric     convert.Metric
	BaseSizePx float64
	Percent    float64
	Value      string // formatted pixel value without unit, e.g. "24.0"
}

// NewConversion builds a record from a form submission.
func NewConversion(ts time.Time, mode string, metric convert.Metric, sub convert.Submission) Conversion {
	return Conversion{
		Timestamp:  ts,
		Mode:       mode,
		Metric:     metric,
		BaseSizePx: sub.Inputs.BaseSizePx,
		Percent:    sub.Inputs.Percent,
		Value:      sub.Value,
	}
}

// Pixels returns the converted value with its unit.
func (c *Conversion) Pixels() string {
	return convert.WithUnit(c.Value)
}
