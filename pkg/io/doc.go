// Package io provides import and export for chart datasets.
//
// # Overview
//
// Datasets are the host-facing file representation of [chart.Data]: a title,
// an ordered item list, and the dark/light flag. Two encodings are
// supported: JSON (import and export) and TOML (import only; TOML is the
// hand-written format, JSON the interchange one).
//
// # JSON Format
//
//	{
//	  "title": "Traffic share",
//	  "dark": true,
//	  "items": [
//	    {"name": "Search", "value": 62, "color": "#4285f4"},
//	    {"name": "Direct", "value": 28, "color": "#34a853"},
//	    {"name": "Other", "value": 10, "color": "#fbbc04"}
//	  ]
//	}
//
// # TOML Format
//
//	title = "Traffic share"
//	dark = true
//
//	[[items]]
//	name = "Search"
//	value = 62.0
//	color = "#4285f4"
//
// # Validation
//
// Import validates what the chart core deliberately does not: item names
// must be non-empty printable text, colors must be syntactically plausible
// CSS, and values must be finite. Negative and zero values pass — the chart
// accepts them and renders degenerately — but NaN and Inf are file errors.
// Validation failures carry codes from [pkg/errors].
//
// Item order in the file is preserved exactly; it determines segment order
// and first/last corner rounding.
//
// # Stable keys
//
// Items may carry an optional "key" for stable interaction identity across
// reorders. AssignKeys fills in missing keys with generated UUIDs.
//
// [chart.Data]: github.com/ribbonchart/ribbon/pkg/chart.Data
// [pkg/errors]: github.com/ribbonchart/ribbon/pkg/errors
package io
