// Package types contains common types used across the application
package types

import (
	"fmt"
	"strings"
)

// Style selects the tone of a generated match narration.
type Style string

// Supported narration styles.
const (
	StyleFormal      Style = "Formal"
	StyleHumoristico Style = "Humorístico"
	StyleTecnico     Style = "Técnico"
)

// Styles lists every supported style in a stable order.
func Styles() []Style {
	return []Style{StyleFormal, StyleHumoristico, StyleTecnico}
}

// ParseStyle resolves s to a Style. Matching ignores case and surrounding
// whitespace; an empty string is rejected so callers apply their own default.
func ParseStyle(s string) (Style, error) {
	needle := strings.TrimSpace(s)
	for _, st := range Styles() {
		if strings.EqualFold(needle, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown narration style %q", ErrValidation, s)
}
