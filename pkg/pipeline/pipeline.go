// Package pipeline turns a dataset into rendered chart artifacts.
//
// This is the shared load → render path used by the CLI and the preview
// server. Centralizing it keeps format handling and defaults identical
// across entry points.
//
// # Usage
//
//	opts := pipeline.Options{Formats: []string{pipeline.FormatHTML}}
//	artifacts, err := pipeline.Render(ctx, data, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := artifacts[pipeline.FormatHTML]
package pipeline

import (
	"bytes"
	"context"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/ribbonchart/ribbon/pkg/chart"
	"github.com/ribbonchart/ribbon/pkg/chart/sink"
	"github.com/ribbonchart/ribbon/pkg/chart/tui"
	"github.com/ribbonchart/ribbon/pkg/errors"
	"github.com/ribbonchart/ribbon/pkg/io"
	"github.com/ribbonchart/ribbon/pkg/observability"
)

// Format constants for output formats.
const (
	// FormatHTML is the interactive HTML rendering.
	FormatHTML = "html"
	// FormatANSI is a one-shot snapshot of the terminal component.
	FormatANSI = "ansi"
	// FormatJSON is the normalized dataset re-export.
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatANSI: true,
	FormatJSON: true,
}

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatHTML

// DefaultANSIWidth is the terminal width assumed for one-shot ANSI
// rendering, where no real terminal provides a size.
const DefaultANSIWidth = 80

// Options configures a pipeline run.
type Options struct {
	// Formats lists the artifacts to produce. Empty means DefaultFormat.
	Formats []string

	// Dark overrides the dataset's theme flag when set.
	Dark *bool

	// Standalone wraps HTML output in a complete document.
	Standalone bool

	// Logger receives progress output. Nil disables logging.
	Logger *charmlog.Logger
}

// ValidateFormat checks a single output format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (valid: html, ansi, json)", format)
	}
	return nil
}

// ValidateFormats checks a format list. An empty list is valid and means
// the default format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format flag into a list, defaulting
// to DefaultFormat for an empty flag.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{DefaultFormat}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			formats = append(formats, p)
		}
	}
	if len(formats) == 0 {
		return []string{DefaultFormat}
	}
	return formats
}

// Render produces one artifact per requested format from the dataset.
// The dataset is validated first; Options.Dark, when set, overrides the
// dataset's theme flag for every artifact.
//
// Render is synchronous and fast; ctx is consulted only between formats so
// a cancelled CLI run stops early.
func Render(ctx context.Context, data chart.Data, opts Options) (map[string][]byte, error) {
	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	if err := io.Validate(data); err != nil {
		return nil, err
	}

	if opts.Dark != nil {
		data.Dark = *opts.Dark
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, formats)
	artifacts, err := renderFormats(ctx, data, formats, opts)
	observability.Render().OnRenderComplete(ctx, formats, time.Since(start), err)
	return artifacts, err
}

// renderFormats produces the artifact bytes for each format in order.
func renderFormats(ctx context.Context, data chart.Data, formats []string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var out []byte
		switch format {
		case FormatHTML:
			sinkOpts := []sink.Option{}
			if opts.Standalone {
				sinkOpts = append(sinkOpts, sink.WithStandalone())
			}
			out = sink.RenderHTML(chart.New(data), sinkOpts...)
		case FormatANSI:
			m := tui.New(chart.New(data))
			m.Width = DefaultANSIWidth
			out = []byte(m.View() + "\n")
		case FormatJSON:
			var buf bytes.Buffer
			if err := io.WriteJSON(data, &buf); err != nil {
				return nil, err
			}
			out = buf.Bytes()
		}

		artifacts[format] = out
		if opts.Logger != nil {
			opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(out))
		}
	}
	return artifacts, nil
}
