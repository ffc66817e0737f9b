package convert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Metric names the typography value being converted. The formula is the same
// for every metric; it only changes labels.
type Metric int

const (
	LetterSpacing Metric = iota
	LineHeight
)

// Metrics lists all known metrics in display order.
var Metrics = []Metric{LetterSpacing, LineHeight}

// String returns the command line name of the metric.
func (m Metric) String() string {
	switch m {
	case LineHeight:
		return "line-height"
	default:
		return "letter-spacing"
	}
}

// Label returns the human readable name of the metric.
func (m Metric) Label() string {
	switch m {
	case LineHeight:
		return "Line height"
	default:
		return "Letter spacing"
	}
}

// ParseMetric accepts either the command line name or the label of a metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "letter-spacing", "letter spacing", "ls":
		return LetterSpacing, nil
	case "line-height", "line height", "lh":
		return LineHeight, nil
	}
	return LetterSpacing, fmt.Errorf("unknown metric %q (use letter-spacing or line-height)", s)
}

// PercentToPx converts a value given in percent of the base font size into
// pixels, rounded half away from zero to one fractional digit. Non-finite
// inputs count as zero, so the function is total.
func PercentToPx(percent, baseSize float64) string {
	p := toDecimal(percent)
	b := toDecimal(baseSize)
	return p.Shift(-2).Mul(b).StringFixed(1)
}

// WithUnit appends the pixel unit to a converted value.
func WithUnit(value string) string {
	return value + "px"
}

// numberPattern is the accepted shape of a form field: optional sign, digits
// and at most one decimal separator. Exponents, hex and digit grouping are
// rejected.
var numberPattern = regexp.MustCompile(`^[+-]?(\d+([.,]\d*)?|[.,]\d+)$`)

// ParseNumber reads a numeric form field. Empty, malformed and non-finite
// input yields zero.
func ParseNumber(s string) float64 {
	v, err := parseNumber(s)
	if err != nil {
		return 0
	}
	return v
}

// ValidateNumber reports whether s is acceptable numeric input. Empty input
// is valid and counts as zero.
func ValidateNumber(s string) error {
	_, err := parseNumber(s)
	return err
}

// parseNumber accepts "," as the decimal separator when it is the only
// separator, so "12,5" and "12.5" are the same value.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !numberPattern.MatchString(s) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
