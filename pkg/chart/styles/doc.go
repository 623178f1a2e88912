// Package styles is the widget's style table: pure functions mapping state
// flags and dataset values to ordered CSS declaration lists.
//
// Each visual region of the chart (card, title, bar row, bar segment, legend
// row, legend entry, dot, name) has one function. The functions hold no
// state, perform no I/O, and never fail: invalid inputs such as an empty
// color string degrade to invalid-but-non-crashing declarations that the
// consuming renderer simply ignores.
//
// Declaration order is part of the contract. The HTML sink writes the pairs
// verbatim into inline style attributes, and later declarations override
// earlier ones the way CSS does, so the theme and emphasis branches append
// after the base layout.
package styles
