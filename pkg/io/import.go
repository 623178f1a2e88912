package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ribbonchart/ribbon/pkg/chart"
	"github.com/ribbonchart/ribbon/pkg/errors"
)

// ReadJSON decodes a JSON dataset from r.
//
// The input must be an object with an "items" array; "title" and "dark" are
// optional. Each item needs "name", "value" and "color"; "key" is optional.
// Item order is preserved.
//
// ReadJSON returns an error if the JSON is malformed or if any item fails
// validation (empty or unprintable name, implausible color, non-finite
// value). The returned data is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (chart.Data, error) {
	var data chart.Data
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return chart.Data{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode JSON dataset")
	}
	if err := Validate(data); err != nil {
		return chart.Data{}, err
	}
	return data, nil
}

// ReadTOML decodes a TOML dataset from r. Format and validation match
// [ReadJSON].
func ReadTOML(r io.Reader) (chart.Data, error) {
	var data chart.Data
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return chart.Data{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode TOML dataset")
	}
	if err := Validate(data); err != nil {
		return chart.Data{}, err
	}
	return data, nil
}

// Import reads a dataset file at path, picking the decoder from the file
// extension: .toml for TOML, .json or no extension for JSON. Any other
// extension is rejected rather than guessed at.
func Import(path string) (chart.Data, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".json", "":
	default:
		return chart.Data{}, errors.New(errors.ErrCodeUnsupported, "unsupported dataset extension %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return chart.Data{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open dataset %s", path)
	}
	defer f.Close()

	if ext == ".toml" {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

// Validate checks a dataset's items. An empty item list is valid: it renders
// as a bare card with no segments.
func Validate(data chart.Data) error {
	for i, it := range data.Items {
		if err := errors.ValidateItemName(it.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "item %d", i)
		}
		if err := errors.ValidateColor(it.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "item %d (%s)", i, it.Name)
		}
		if err := errors.ValidateValue(it.Value); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "item %d (%s)", i, it.Name)
		}
	}
	return nil
}

// dedupe guard for AssignKeys: a key supplied twice would alias two items'
// interaction state.
func duplicateKey(items []chart.Item) (string, bool) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.Key == "" {
			continue
		}
		if _, ok := seen[it.Key]; ok {
			return it.Key, true
		}
		seen[it.Key] = struct{}{}
	}
	return "", false
}

func errDuplicateKey(key string) error {
	return errors.New(errors.ErrCodeInvalidDataset, "duplicate item key %q", key)
}
