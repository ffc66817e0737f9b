package ui

import (
	"fmt"

	"figma-px/internal/convert"
)

// numberValidator marks an entry invalid while its text is not a number.
// The form still treats such input as zero.
func numberValidator(fieldName string) func(string) error {
	return func(s string) error {
		if err := convert.ValidateNumber(s); err != nil {
			return fmt.Errorf("%s must be a number", fieldName)
		}
		return nil
	}
}
