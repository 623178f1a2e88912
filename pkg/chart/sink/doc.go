// Package sink renders chart models to HTML.
//
// The exported document is self-contained: every element carries its inline
// styles from the style table, and an embedded script re-creates the
// widget's interaction loop in the browser (segment hover emphasis, legend
// click activation) without any external assets.
//
// RenderHTML is pure with respect to the model. Interaction after export is
// client-side only; it does not feed back into the Go model.
package sink
