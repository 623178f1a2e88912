// Package tui renders the chart as an interactive terminal component.
//
// The component is a Bubble Tea model wrapping [chart.Model]. Run it with
// mouse tracking enabled to get the full interaction surface:
//
//	p := tea.NewProgram(host{chart: tui.New(chart.New(data))},
//	    tea.WithMouseAllMotion())
//
// Mouse motion over a bar segment or legend entry hovers that item; motion
// elsewhere clears the hover. A left click on a legend entry toggles the
// item's activation. Keyboard: left/right (or h/l) move the hover across
// items, enter or space toggles the hovered item, esc clears the hover.
//
// Terminal cells cannot express the CSS table's corner rounding or vertical
// scaling, so emphasis is rendered as the segment's value appearing centered
// and bold; the HTML sink carries the full CSS semantics.
//
// [chart.Model]: github.com/ribbonchart/ribbon/pkg/chart.Model
package tui
