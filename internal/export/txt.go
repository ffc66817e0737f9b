package export

import (
	"fmt"
	"os"
	"strings"

	"figma-px/internal/format"
	"figma-px/internal/model"
)

// WriteTXT writes conversions to a text file using formatted output.
func WriteTXT(path string, conversions []model.Conversion) error {
	var b strings.Builder
	for i, c := range conversions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(format.FormatResult(&c))
	}
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
