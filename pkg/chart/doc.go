// Package chart implements the core state model for a horizontal segmented
// bar chart with an interactive legend.
//
// # Overview
//
// The widget follows a pure state/update/view triad:
//
//   - Data holds the host-supplied dataset (title, ordered items, theme).
//   - Model pairs the dataset with two independent pieces of interaction
//     state: the activated item (toggled via the legend) and the hovered
//     item (transient, cleared on pointer leave).
//   - Update is a pure reducer mapping an interaction Msg plus the current
//     Model to the next Model.
//
// Renderers live in subpackages: sink projects a Model to an HTML document
// with inline styles and interaction wiring, and tui wraps the Model in a
// Bubble Tea component for terminal hosts. Both preserve item order and
// derive segment widths with SegmentWidths.
//
// # Item identity
//
// Items are identified positionally by default: the id is the item's index
// in the sequence, stringified. Reordering or resizing the sequence between
// renders can therefore make a stored id reference a different item. Hosts
// that mutate the sequence while interaction state persists should set
// Item.Key to a stable identifier; keyed items use the key as their id.
//
// # Degenerate datasets
//
// Every operation is total. An empty item sequence renders zero segments and
// zero legend entries. A zero-sum dataset (all zeros, or values cancelling
// out) yields all-zero segment widths rather than a division by zero.
//
// # Concurrency
//
// The package is purely functional: Models are values, Update returns a new
// Model, and nothing is shared. A Model owned by a single host goroutine
// needs no locking.
//
// # Usage
//
//	m := chart.New(chart.Data{
//	    Title: "Traffic share",
//	    Items: []chart.Item{
//	        {Name: "Search", Value: 62, Color: "#4285f4"},
//	        {Name: "Direct", Value: 28, Color: "#34a853"},
//	        {Name: "Other", Value: 10, Color: "#fbbc04"},
//	    },
//	})
//	m = chart.Update(chart.ToggleItemMsg{ID: "1"}, m) // activate "Direct"
//	m = chart.Update(chart.HoverItemMsg{ID: "0"}, m)  // hover "Search"
package chart
