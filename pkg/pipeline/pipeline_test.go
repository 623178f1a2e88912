package pipeline

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/ribbonchart/ribbon/pkg/chart"
	"github.com/ribbonchart/ribbon/pkg/errors"
)

func sampleData() chart.Data {
	return chart.Data{
		Title: "Traffic",
		Items: []chart.Item{
			{Name: "One", Value: 30, Color: "#ff595e"},
			{Name: "Two", Value: 50, Color: "#1982c4"},
			{Name: "Three", Value: 20, Color: "#8ac926"},
		},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"html", false},
		{"ansi", false},
		{"json", false},
		{"svg", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("code = %q", errors.GetCode(err))
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"empty is valid", nil, false},
		{"single", []string{"html"}, false},
		{"multiple", []string{"html", "ansi", "json"}, false},
		{"mixed valid invalid", []string{"html", "pdf"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to html", "", []string{"html"}},
		{"single format", "ansi", []string{"ansi"}},
		{"multiple formats", "html,ansi,json", []string{"html", "ansi", "json"}},
		{"spaces trimmed", " html , json ", []string{"html", "json"}},
		{"only commas", ",,", []string{"html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderProducesRequestedArtifacts(t *testing.T) {
	artifacts, err := Render(context.Background(), sampleData(), Options{
		Formats: []string{FormatHTML, FormatANSI, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(artifacts) != 3 {
		t.Fatalf("artifacts = %d, want 3", len(artifacts))
	}

	if !strings.Contains(string(artifacts[FormatHTML]), "ribbon-segment") {
		t.Error("html artifact missing segments")
	}
	if !strings.Contains(string(artifacts[FormatANSI]), "One") {
		t.Error("ansi artifact missing legend")
	}
	if !strings.Contains(string(artifacts[FormatJSON]), `"title": "Traffic"`) {
		t.Error("json artifact missing dataset")
	}
}

func TestRenderDefaultsToHTML(t *testing.T) {
	artifacts, err := Render(context.Background(), sampleData(), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, ok := artifacts[FormatHTML]; !ok || len(artifacts) != 1 {
		t.Errorf("artifacts = %v, want html only", artifacts)
	}
}

func TestRenderDarkOverride(t *testing.T) {
	dark := true
	artifacts, err := Render(context.Background(), sampleData(), Options{
		Formats: []string{FormatJSON},
		Dark:    &dark,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatJSON]), `"dark": true`) {
		t.Error("dark override not applied")
	}
}

func TestRenderRejectsInvalidDataset(t *testing.T) {
	bad := chart.Data{Items: []chart.Item{{Name: "", Value: 1, Color: "#111"}}}
	_, err := Render(context.Background(), bad, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidDataset) {
		t.Errorf("error = %v, want INVALID_DATASET", err)
	}
}

func TestRenderRejectsInvalidFormat(t *testing.T) {
	_, err := Render(context.Background(), sampleData(), Options{Formats: []string{"pdf"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, sampleData(), Options{}); err == nil {
		t.Error("expected context error")
	}
}

func TestRenderStandalone(t *testing.T) {
	artifacts, err := Render(context.Background(), sampleData(), Options{
		Formats:    []string{FormatHTML},
		Standalone: true,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatHTML]), "<!DOCTYPE html>") {
		t.Error("standalone html missing document wrapper")
	}
}
