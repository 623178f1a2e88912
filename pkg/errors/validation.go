package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// hexColor matches #rgb, #rgba, #rrggbb and #rrggbbaa.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// namedColor matches CSS identifiers such as "rebeccapurple" or
// "transparent". The list of real CSS color names is long and versioned, so
// the check is intentionally syntactic: a misspelled name degrades to an
// invalid-but-harmless style downstream, while injection-prone characters
// are rejected here.
var namedColor = regexp.MustCompile(`^[a-zA-Z][a-zA-Z-]{0,63}$`)

// ValidateColor validates a CSS color string at the dataset boundary.
// Accepted forms are hex colors and plain identifiers. Functional notations
// (rgb(), hsl()) are rejected; datasets use hex or named colors.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if hexColor.MatchString(color) || namedColor.MatchString(color) {
		return nil
	}
	return New(ErrCodeInvalidColor, "invalid color %q (use hex or a CSS color name)", color)
}

// ValidateItemName validates an item's legend label.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateItemName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "item name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "item name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item name %q contains control characters", strings.ToValidUTF8(name, "?"))
		}
	}
	return nil
}

// ValidateValue rejects non-finite item values at the dataset boundary.
// Inside the chart core values are unchecked; only file input enforces this,
// so a NaN in a dataset file is a load error rather than a silent degenerate
// render.
func ValidateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "item value must be finite, got %v", v)
	}
	return nil
}
