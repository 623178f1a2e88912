// Package pkg provides the core libraries for ribbon chart rendering.
//
// # Overview
//
// Ribbon renders a dataset as a horizontal proportional bar chart with an
// interactive legend: hovering a segment or legend entry highlights it, and
// clicking a legend entry toggles a persistent activation. The pkg directory
// is organized into three main areas:
//
//  1. [chart] - Domain logic (dataset model, interaction reducer, styling, renderers)
//  2. [io] - Dataset import/export (JSON, TOML, key assignment)
//  3. [pipeline] - Orchestration (load → validate → render) shared by all entry points
//
// # Architecture
//
// The typical data flow through ribbon:
//
//	Dataset file (JSON/TOML)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [chart] package (model + interaction state)
//	         ↓
//	    [chart/sink] or [chart/tui] (render)
//	         ↓
//	    HTML/ANSI/JSON output
//
// # Quick Start
//
// Load a dataset and render an interactive HTML fragment:
//
//	import (
//	    "github.com/ribbonchart/ribbon/pkg/chart"
//	    "github.com/ribbonchart/ribbon/pkg/chart/sink"
//	    chartio "github.com/ribbonchart/ribbon/pkg/io"
//	)
//
//	// 1. Load the dataset
//	data, _ := chartio.Import("usage.json")
//
//	// 2. Build the interaction model
//	m := chart.New(data)
//
//	// 3. Apply interactions (optional; the HTML script does this live)
//	m = chart.Update(chart.ToggleItemMsg{ID: m.Data.ItemID(0)}, m)
//
//	// 4. Render
//	page := sink.RenderHTML(m, sink.WithStandalone())
//
// # Main Packages
//
// [chart] - Dataset types and the pure interaction reducer. Update applies
// hover, leave, and toggle messages without mutating inputs, so every render
// is a function of (data, activated, hovered).
//
// [chart/styles] - The styling table shared by renderers: card, bar segment,
// and legend styles as CSS declaration lists, with activation and hover
// emphasis applied per segment.
//
// [chart/sink] - HTML rendering. Emits a self-contained fragment (or full
// document) whose embedded script drives hover and click interaction in the
// browser.
//
// [chart/tui] - Terminal rendering as a Bubble Tea component with mouse and
// keyboard interaction.
//
// [io] - Dataset decoding from JSON and TOML, validation, JSON export, and
// UUID key assignment for stable item identity.
//
// [pipeline] - Renders a validated dataset to one or more artifact formats
// (html, ansi, json). Used by the CLI render command and the preview server.
//
// [cache] - File-based cache for rendered artifacts keyed by dataset hash
// and render options.
//
// [errors] - Structured errors with machine-readable codes and input
// validation helpers.
//
// [observability] - Optional instrumentation hooks for render, cache, and
// serve events.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/chart/...    # Specific package
//	go test -run Example       # Examples only
//
// [chart]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/chart
// [chart/styles]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/chart/styles
// [chart/sink]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/chart/sink
// [chart/tui]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/chart/tui
// [io]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/cache
// [errors]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/errors
// [observability]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/ribbonchart/ribbon/pkg/buildinfo
package pkg
