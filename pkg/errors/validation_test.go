package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"short hex", "#abc", false},
		{"hex with alpha", "#abcd", false},
		{"full hex", "#20293e", false},
		{"full hex with alpha", "#20293eff", false},
		{"named", "tomato", false},
		{"named with dash", "x-unknown-name", false},
		{"transparent", "transparent", false},
		{"empty", "", true},
		{"bad hex length", "#abcde", true},
		{"bad hex chars", "#zzzzzz", true},
		{"functional notation", "rgb(1,2,3)", true},
		{"injection", `red" onmouseover="x`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) code = %q", tt.color, GetCode(err))
			}
		})
	}
}

func TestValidateItemName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "CPU", false},
		{"unicode", "Grüße 漢字", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"control char", "a\x00b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 42.5, false},
		{"negative accepted", -1, false},
		{"nan", math.NaN(), true},
		{"positive inf", math.Inf(1), true},
		{"negative inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValue(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
		})
	}
}
