package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/ribbonchart/ribbon/pkg/chart"
	"github.com/ribbonchart/ribbon/pkg/errors"
)

// WriteJSON encodes a dataset as indented JSON and writes it to w.
// The output round-trips through [ReadJSON]: titles, the dark flag, item
// order and item keys are all preserved.
func WriteJSON(data chart.Data, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode dataset")
	}
	return nil
}

// ExportJSON writes a dataset to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(data chart.Data, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := WriteJSON(data, f); err != nil {
		f.Close()
		return err
	}
	// Close errors matter here: they are the last chance to see a failed
	// flush before the caller treats the file as written.
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// AssignKeys returns a copy of data in which every item lacking a key has
// been given a generated UUID. Items that already carry keys keep them.
// With keys assigned, activation and hover state survive reordering of the
// item sequence between renders, which positional ids do not.
//
// AssignKeys fails if the dataset already contains a duplicated key, since
// two items sharing a key would alias each other's interaction state.
func AssignKeys(data chart.Data) (chart.Data, error) {
	if key, ok := duplicateKey(data.Items); ok {
		return chart.Data{}, errDuplicateKey(key)
	}

	items := make([]chart.Item, len(data.Items))
	copy(items, data.Items)
	for i := range items {
		if items[i].Key == "" {
			items[i].Key = uuid.NewString()
		}
	}
	data.Items = items
	return data, nil
}
