package styles

import (
	"strconv"
	"strings"
)

// Decl is a single CSS declaration: one property/value pair.
type Decl struct {
	Prop  string
	Value string
}

// Theme colors. The widget supports exactly two themes: dark and light.
const (
	DarkBackground = "#20293e"
	DarkText       = "#ffffff"
	LightText      = "#000000"
)

// Card returns the outer container declarations: layout plus theme colors.
// Dark cards get a dark background and white text; light cards are
// transparent with black text.
func Card(dark bool) []Decl {
	decls := []Decl{
		{"display", "flex"},
		{"flex-direction", "column"},
		{"border-radius", "0.5rem"},
		{"padding", "1rem"},
	}
	if dark {
		return append(decls,
			Decl{"background-color", DarkBackground},
			Decl{"color", DarkText},
		)
	}
	return append(decls,
		Decl{"background-color", "transparent"},
		Decl{"color", LightText},
	)
}

// CardBody returns the inner wrapper declarations.
func CardBody() []Decl {
	return []Decl{
		{"display", "flex"},
		{"flex-direction", "column"},
		{"gap", "1rem"},
	}
}

// CardTitle returns the title paragraph declarations.
func CardTitle(dark bool) []Decl {
	decls := []Decl{
		{"margin", "0"},
		{"font-size", "1.25rem"},
		{"font-weight", "600"},
	}
	if dark {
		return append(decls, Decl{"color", DarkText})
	}
	return append(decls, Decl{"color", LightText})
}

// Progress returns the bar-segment row declarations.
func Progress() []Decl {
	return []Decl{
		{"display", "flex"},
		{"flex-direction", "row"},
		{"align-items", "center"},
		{"width", "100%"},
		{"height", "2rem"},
	}
}

// ProgressItem returns the declarations for a single bar segment.
//
// The segment is a flex box sized to widthPct percent of the bar, filled
// with color. The first item gets rounded leading corners and the last item
// rounded trailing corners; first wins if both flags are somehow set. When
// the segment is activated or hovered its value text becomes visible (white,
// enlarged) and the segment is scaled vertically 1.25x; otherwise the text
// is transparent and the segment unscaled.
//
// widthPct must be finite and non-negative; the caller derives it from
// chart.SegmentWidths, which guarantees that.
func ProgressItem(activated, hovered, first, last bool, color string, widthPct float64) []Decl {
	decls := []Decl{
		{"display", "flex"},
		{"align-items", "center"},
		{"justify-content", "center"},
		{"width", Percent(widthPct)},
		{"height", "100%"},
		{"background-color", color},
		{"transition", "transform 0.2s ease, color 0.2s ease"},
	}

	if first {
		decls = append(decls,
			Decl{"border-top-left-radius", "0.25rem"},
			Decl{"border-bottom-left-radius", "0.25rem"},
		)
	} else if last {
		decls = append(decls,
			Decl{"border-top-right-radius", "0.25rem"},
			Decl{"border-bottom-right-radius", "0.25rem"},
		)
	}

	if activated || hovered {
		return append(decls,
			Decl{"color", "#ffffff"},
			Decl{"font-size", "0.875rem"},
			Decl{"transform", "scaleY(1.25)"},
		)
	}
	// Idle segments keep their value in the layout but invisible, at a
	// smaller size than the emphasized state grows it to.
	return append(decls,
		Decl{"color", "transparent"},
		Decl{"font-size", "0.75rem"},
	)
}

// Legend returns the legend row declarations.
func Legend() []Decl {
	return []Decl{
		{"display", "flex"},
		{"flex-wrap", "wrap"},
		{"gap", "0.75rem"},
	}
}

// LegendItem returns the declarations for one legend entry.
func LegendItem() []Decl {
	return []Decl{
		{"display", "flex"},
		{"align-items", "center"},
	}
}

// LegendItemButton returns the declarations for the clickable legend
// control.
func LegendItemButton() []Decl {
	return []Decl{
		{"display", "flex"},
		{"align-items", "center"},
		{"gap", "0.375rem"},
		{"background", "none"},
		{"border", "none"},
		{"padding", "0"},
		{"cursor", "pointer"},
	}
}

// LegendItemDot returns the declarations for the colored legend dot.
func LegendItemDot(color string) []Decl {
	return []Decl{
		{"width", "0.625rem"},
		{"height", "0.625rem"},
		{"border-radius", "50%"},
		{"background-color", color},
	}
}

// LegendItemName returns the declarations for the legend label text.
func LegendItemName(dark bool) []Decl {
	decls := []Decl{
		{"font-size", "0.875rem"},
	}
	if dark {
		return append(decls, Decl{"color", DarkText})
	}
	return append(decls, Decl{"color", LightText})
}

// Percent formats a width percentage for a CSS value, trimming trailing
// zeros ("30%" rather than "30.000000%").
func Percent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// Inline converts an ordered declaration list into the inline style
// attribute representation ("prop: value; prop: value").
func Inline(decls []Decl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Prop + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}
