package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ribbonchart/ribbon/pkg/cache"
	"github.com/ribbonchart/ribbon/pkg/chart"
	chartio "github.com/ribbonchart/ribbon/pkg/io"
	"github.com/ribbonchart/ribbon/pkg/observability"
	"github.com/ribbonchart/ribbon/pkg/pipeline"
)

// cacheTTL bounds how long cached artifacts stay valid.
const cacheTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: "html", "ansi", "json"
	dark       bool     // force the dark theme
	light      bool     // force the light theme
	standalone bool     // wrap HTML in a complete document
	stableKeys bool     // assign UUID keys before rendering
	noCache    bool     // bypass the artifact cache
}

// newRenderCmd creates the render command for generating chart artifacts.
// It reads a dataset file (JSON or TOML, chosen by extension) and writes one
// output file per requested format.
//
// Default settings:
//   - format: html (interactive fragment with hover/click script)
//   - theme: whatever the dataset declares
//   - output: derived from the input file name
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a dataset to HTML, ANSI, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = pipeline.ParseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), ansi, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "force the dark theme")
	cmd.Flags().BoolVar(&opts.light, "light", false, "force the light theme")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "wrap HTML output in a complete document")
	cmd.Flags().BoolVar(&opts.stableKeys, "stable-keys", false, "assign UUID keys to items before rendering")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render artifact cache")

	return cmd
}

// formatExtensions maps output formats to file extensions.
var formatExtensions = map[string]string{
	pipeline.FormatHTML: ".html",
	pipeline.FormatANSI: ".txt",
	pipeline.FormatJSON: ".json",
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output ends in a known format extension, that extension is stripped.
// This is used when generating multiple files (e.g., usage.html, usage.txt).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	for _, known := range formatExtensions {
		if ext == known {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// themeOverride translates the --dark/--light flag pair into a pipeline
// override. Both unset means the dataset's own theme wins.
func themeOverride(opts *renderOpts) (*bool, error) {
	if opts.dark && opts.light {
		return nil, fmt.Errorf("--dark and --light are mutually exclusive")
	}
	if opts.dark {
		dark := true
		return &dark, nil
	}
	if opts.light {
		dark := false
		return &dark, nil
	}
	return nil, nil
}

// runRender loads the dataset from input and renders it to the requested formats.
// Artifacts for unchanged datasets come from the cache unless --no-cache or
// --stable-keys is set; stable keys are freshly minted UUIDs, so those
// artifacts are never reproducible.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Rendering %s", input)

	if _, err := themeOverride(opts); err != nil {
		return err
	}

	data, err := chartio.Import(input)
	if err != nil {
		return err
	}
	printStats(len(data.Items), chart.Total(data.Items))

	if opts.stableKeys {
		if data, err = chartio.AssignKeys(data); err != nil {
			return err
		}
	}

	artifacts, err := renderArtifacts(ctx, data, opts, logger)
	if err != nil {
		return err
	}

	if len(opts.formats) == 1 {
		format := opts.formats[0]
		path := opts.output
		if path == "" {
			path = basePath("", input) + formatExtensions[format]
		}
		if err := writeArtifact(path, artifacts[format]); err != nil {
			return err
		}
	} else {
		base := basePath(opts.output, input)
		for _, format := range opts.formats {
			path := base + formatExtensions[format]
			if err := writeArtifact(path, artifacts[format]); err != nil {
				return err
			}
		}
	}

	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(opts.formats)))
	return nil
}

// artifactCache opens the file-backed cache, degrading to NullCache when
// caching is disabled or the cache directory is unavailable.
func artifactCache(opts *renderOpts, logger *charmlog.Logger) cache.Cache {
	if opts.noCache || opts.stableKeys {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		logger.Debug("cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Debug("cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return c
}

// renderArtifacts returns one artifact per requested format, consulting the
// cache before rendering. Only formats that miss are rendered.
func renderArtifacts(ctx context.Context, data chart.Data, opts *renderOpts, logger *charmlog.Logger) (map[string][]byte, error) {
	c := artifactCache(opts, logger)
	defer c.Close()

	// Key on the normalized dataset so JSON and TOML sources that decode to
	// the same data share entries.
	var buf bytes.Buffer
	if err := chartio.WriteJSON(data, &buf); err != nil {
		return nil, err
	}
	datasetHash := cache.Hash(buf.Bytes())
	keyer := cache.NewDefaultKeyer()
	keyOpts := func(format string) cache.ArtifactKeyOpts {
		return cache.ArtifactKeyOpts{
			Format:     format,
			Dark:       opts.dark,
			Light:      opts.light,
			Standalone: opts.standalone,
		}
	}

	artifacts := make(map[string][]byte, len(opts.formats))
	var missing []string
	for _, format := range opts.formats {
		out, hit, err := c.Get(ctx, keyer.ArtifactKey(datasetHash, keyOpts(format)))
		if err != nil {
			return nil, err
		}
		if hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			logger.Debug("cache hit", "format", format)
			artifacts[format] = out
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, nil
	}

	dark, err := themeOverride(opts)
	if err != nil {
		return nil, err
	}
	rendered, err := pipeline.Render(ctx, data, pipeline.Options{
		Formats:    missing,
		Dark:       dark,
		Standalone: opts.standalone,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	for format, out := range rendered {
		artifacts[format] = out
		key := keyer.ArtifactKey(datasetHash, keyOpts(format))
		if err := c.Set(ctx, key, out, cacheTTL); err != nil {
			logger.Debug("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(out))
	}
	return artifacts, nil
}

// writeArtifact writes data to path, or to stdout when path is "-".
func writeArtifact(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printFile(path)
	return nil
}
