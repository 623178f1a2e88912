package chart

import "strconv"

// Item is one named, colored, numeric data point. It is rendered as one bar
// segment and one legend entry.
type Item struct {
	// Name is the label shown in the legend.
	Name string `json:"name" toml:"name"`

	// Value determines the segment's share of the bar. Non-negative values
	// are expected but not enforced; see SegmentWidths for how degenerate
	// totals are handled.
	Value float64 `json:"value" toml:"value"`

	// Color is a CSS color (hex or named) used for the segment fill and the
	// legend dot.
	Color string `json:"color" toml:"color"`

	// Key is an optional stable identifier. When set it is used as the
	// item's id instead of its position, so interaction state survives
	// reordering. Empty keys fall back to positional identity.
	Key string `json:"key,omitempty" toml:"key,omitempty"`
}

// Data is the host-supplied dataset. The chart never mutates it; a new Data
// travels inside each new Model.
type Data struct {
	// Title is shown above the bar. Empty titles render as an empty line.
	Title string `json:"title,omitempty" toml:"title,omitempty"`

	// Items are rendered in order. Order is significant: the first and last
	// items get rounded leading/trailing corners.
	Items []Item `json:"items" toml:"items"`

	// Dark selects the dark theme (dark card background, light text).
	Dark bool `json:"dark,omitempty" toml:"dark,omitempty"`
}

// ItemID returns the id for the item at position i: the item's Key when set,
// otherwise the stringified index. Positional ids may drift when the host
// reorders or resizes the item sequence while interaction state persists;
// supply keys to avoid that.
func (d Data) ItemID(i int) string {
	if i >= 0 && i < len(d.Items) && d.Items[i].Key != "" {
		return d.Items[i].Key
	}
	return strconv.Itoa(i)
}

// Model is the complete widget state: the dataset plus the two interaction
// fields. The empty string means "no item".
type Model struct {
	Data Data

	// ActivatedItem is the id of the item toggled on via the legend, or ""
	// when none is activated. It persists until toggled off.
	ActivatedItem string

	// HoveredItem is the id of the item currently under the pointer, or ""
	// when none is hovered. It is cleared on pointer leave.
	HoveredItem string
}

// New constructs a Model with both interaction fields unset. It is total:
// the data is never inspected for validity, and degenerate datasets (empty
// items, zero or negative values) produce degenerate but non-crashing
// renders.
func New(data Data) Model {
	return Model{Data: data}
}

// IsActivated reports whether the item with the given id is toggled on.
func (m Model) IsActivated(id string) bool {
	return m.ActivatedItem != "" && m.ActivatedItem == id
}

// IsHovered reports whether the item with the given id is under the pointer.
func (m Model) IsHovered(id string) bool {
	return m.HoveredItem != "" && m.HoveredItem == id
}

// Msg is an interaction event consumed by Update. Messages are produced by
// the renderers' event wiring and by hosts driving the widget directly.
type Msg interface {
	isMsg()
}

// ToggleItemMsg activates the item with the given id, or deactivates it if
// it is already the activated item.
type ToggleItemMsg struct {
	ID string
}

// HoverItemMsg marks the item with the given id as hovered.
type HoverItemMsg struct {
	ID string
}

// LeaveItemMsg clears the hovered item.
type LeaveItemMsg struct{}

func (ToggleItemMsg) isMsg() {}
func (HoverItemMsg) isMsg()  {}
func (LeaveItemMsg) isMsg()  {}

// Update is the reducer: it maps an interaction event plus the current model
// to the next model. It is pure and total; every (Msg, Model) pair yields
// exactly one Model and no event clears both interaction fields. Unknown
// messages return the model unchanged.
func Update(msg Msg, m Model) Model {
	switch msg := msg.(type) {
	case ToggleItemMsg:
		if m.ActivatedItem == msg.ID {
			m.ActivatedItem = ""
		} else {
			m.ActivatedItem = msg.ID
		}
	case HoverItemMsg:
		m.HoveredItem = msg.ID
	case LeaveItemMsg:
		m.HoveredItem = ""
	}
	return m
}

// Total sums the item values. An empty sequence totals zero.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Value
	}
	return total
}

// SegmentWidths returns each item's value as a percentage of the total, in
// item order. When the total is zero (empty sequence, all-zero values, or
// positive/negative cancellation) every width is exactly zero: no NaN or Inf
// ever reaches a renderer.
func SegmentWidths(items []Item) []float64 {
	widths := make([]float64, len(items))
	total := Total(items)
	if total == 0 {
		return widths
	}
	for i, it := range items {
		widths[i] = it.Value / total * 100
	}
	return widths
}
