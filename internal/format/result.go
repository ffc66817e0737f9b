package format

import (
	"fmt"
	"strconv"
	"strings"

	"figma-px/internal/model"
)

// Number renders an input value without trailing zeros.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatConversion produces a one-line summary, e.g. "150% of 16px = 24.0px".
func FormatConversion(c *model.Conversion) string {
	return fmt.Sprintf("%s%% of %spx = %s", Number(c.Percent), Number(c.BaseSizePx), c.Pixels())
}

// FormatResult produces a human-readable block for a conversion.
func FormatResult(c *model.Conversion) string {
	var b strings.Builder

	b.WriteString("=== Conversion ===\n")
	if !c.Timestamp.IsZero() {
		b.WriteString(fmt.Sprintf("Timestamp:   %s\n", c.Timestamp.Format("2006-01-02 15:04:05")))
	}
	if c.ID != "" {
		b.WriteString(fmt.Sprintf("ID:          %s\n", c.ID))
	}
	b.WriteString(fmt.Sprintf("Metric:      %s\n", c.Metric.Label()))
	b.WriteString(fmt.Sprintf("Font size:   %s px\n", Number(c.BaseSizePx)))
	b.WriteString(fmt.Sprintf("Relative:    %s %%\n", Number(c.Percent)))
	b.WriteString(fmt.Sprintf("Result:      %s\n", c.Pixels()))
	b.WriteString("==================")

	return b.String()
}

// FormatHistoryHeader returns a header line for history listings.
func FormatHistoryHeader() string {
	return fmt.Sprintf("%-19s  %-14s %10s %10s %10s", "Time", "Metric", "Size", "Percent", "Result")
}

// FormatHistoryRow produces a single history line aligned with FormatHistoryHeader.
func FormatHistoryRow(c *model.Conversion) string {
	return fmt.Sprintf("%-19s  %-14s %10s %10s %10s",
		c.Timestamp.Format("2006-01-02 15:04:05"),
		c.Metric.String(),
		Number(c.BaseSizePx)+"px",
		Number(c.Percent)+"%",
		c.Pixels())
}
