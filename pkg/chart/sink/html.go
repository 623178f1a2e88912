package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/ribbonchart/ribbon/pkg/chart"
	"github.com/ribbonchart/ribbon/pkg/chart/styles"
)

// Interaction CSS carries the hover/activate emphasis. The declarations are
// !important so they win over the idle inline styles written per segment.
const segmentInteractionCSS = `
    .ribbon-segment {
      transition: transform 0.2s ease, color 0.2s ease;
      color: transparent;
      font-size: 0.75rem;
    }
    .ribbon-segment.hover, .ribbon-segment.active {
      color: #ffffff !important;
      font-size: 0.875rem !important;
      transform: scaleY(1.25) !important;
    }
    .ribbon-legend-button { cursor: pointer; }`

// The script mirrors the reducer: mouseenter/mouseleave on a segment drive
// the transient hover class, and a legend click toggles the persistent
// active class, clearing any other active segment first. On load the
// server-rendered emphasis inline properties are stripped so the classes
// govern from the first interaction onward.
const segmentInteractionJS = `
    const segs = document.querySelectorAll('.ribbon-segment');
    segs.forEach(s => ['color', 'font-size', 'transform'].forEach(p => s.style.removeProperty(p)));
    const segFor = id => document.querySelector('.ribbon-segment[data-item="' + CSS.escape(id) + '"]');
    segs.forEach(s => {
      s.addEventListener('mouseenter', () => s.classList.add('hover'));
      s.addEventListener('mouseleave', () => s.classList.remove('hover'));
    });
    document.querySelectorAll('.ribbon-legend-button').forEach(btn => {
      btn.addEventListener('click', () => {
        const seg = segFor(btn.dataset.item);
        if (!seg) return;
        const wasActive = seg.classList.contains('active');
        segs.forEach(s => s.classList.remove('active'));
        if (!wasActive) seg.classList.add('active');
      });
      btn.addEventListener('mouseenter', () => segFor(btn.dataset.item)?.classList.add('hover'));
      btn.addEventListener('mouseleave', () => segFor(btn.dataset.item)?.classList.remove('hover'));
    });`

// Option configures the HTML renderer.
type Option func(*htmlRenderer)

type htmlRenderer struct {
	standalone bool
	noScript   bool
}

// WithStandalone wraps the chart fragment in a complete HTML document.
func WithStandalone() Option { return func(r *htmlRenderer) { r.standalone = true } }

// WithoutScript omits the interaction style and script blocks, producing a
// static snapshot of the model.
func WithoutScript() Option { return func(r *htmlRenderer) { r.noScript = true } }

// RenderHTML projects a Model to an HTML element tree with inline styles
// from the style table and interaction wiring that feeds hover and click
// events back into the same state transitions the reducer implements.
//
// Rendering is pure with respect to the model: the same model always yields
// the same bytes. Segments and legend entries appear in item order, each
// tagged with a data-item attribute carrying the item's id. The raw numeric
// value is always written into the segment node; whether it is visible is
// purely a style effect.
func RenderHTML(m chart.Model, opts ...Option) []byte {
	var r htmlRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if r.standalone {
		title := m.Data.Title
		if title == "" {
			title = "ribbon chart"
		}
		fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body style=\"margin: 2rem; font-family: system-ui, sans-serif\">\n", html.EscapeString(title))
	}

	renderCard(&buf, m)

	if !r.noScript {
		fmt.Fprintf(&buf, "<style>%s\n</style>\n", segmentInteractionCSS)
		fmt.Fprintf(&buf, "<script>(() => {%s\n})();</script>\n", segmentInteractionJS)
	}

	if r.standalone {
		buf.WriteString("</body>\n</html>\n")
	}
	return buf.Bytes()
}

func renderCard(buf *bytes.Buffer, m chart.Model) {
	openDiv(buf, "ribbon-card", styles.Card(m.Data.Dark))
	openDiv(buf, "ribbon-card-body", styles.CardBody())

	// The title paragraph is always present, empty when unset.
	fmt.Fprintf(buf, "<p class=\"ribbon-title\" style=\"%s\">%s</p>\n",
		inlineAttr(styles.CardTitle(m.Data.Dark)), html.EscapeString(m.Data.Title))

	renderProgress(buf, m)
	renderLegend(buf, m)

	buf.WriteString("</div>\n</div>\n")
}

func renderProgress(buf *bytes.Buffer, m chart.Model) {
	openDiv(buf, "ribbon-progress", styles.Progress())

	widths := chart.SegmentWidths(m.Data.Items)
	last := len(m.Data.Items) - 1
	for i, it := range m.Data.Items {
		id := m.Data.ItemID(i)
		decls := styles.ProgressItem(
			m.IsActivated(id), m.IsHovered(id),
			i == 0, i == last,
			it.Color, widths[i],
		)
		class := "ribbon-segment"
		if m.IsActivated(id) {
			class += " active"
		}
		fmt.Fprintf(buf, "<div class=\"%s\" data-item=\"%s\" style=\"%s\">%s</div>\n",
			class, html.EscapeString(id), inlineAttr(decls), formatValue(it.Value))
	}

	buf.WriteString("</div>\n")
}

func renderLegend(buf *bytes.Buffer, m chart.Model) {
	openDiv(buf, "ribbon-legend", styles.Legend())

	for i, it := range m.Data.Items {
		id := m.Data.ItemID(i)
		openDiv(buf, "ribbon-legend-item", styles.LegendItem())
		fmt.Fprintf(buf, "<button type=\"button\" class=\"ribbon-legend-button\" data-item=\"%s\" style=\"%s\">\n",
			html.EscapeString(id), inlineAttr(styles.LegendItemButton()))
		fmt.Fprintf(buf, "<span class=\"ribbon-legend-dot\" style=\"%s\"></span>\n",
			inlineAttr(styles.LegendItemDot(it.Color)))
		fmt.Fprintf(buf, "<span class=\"ribbon-legend-name\" style=\"%s\">%s</span>\n",
			inlineAttr(styles.LegendItemName(m.Data.Dark)), html.EscapeString(it.Name))
		buf.WriteString("</button>\n</div>\n")
	}

	buf.WriteString("</div>\n")
}

func openDiv(buf *bytes.Buffer, class string, decls []styles.Decl) {
	fmt.Fprintf(buf, "<div class=\"%s\" style=\"%s\">\n", class, inlineAttr(decls))
}

// inlineAttr serializes declarations for a style attribute. Values come from
// caller data (item colors in particular), so the serialized string is
// escaped to keep a hostile value from terminating the attribute.
func inlineAttr(decls []styles.Decl) string {
	return html.EscapeString(styles.Inline(decls))
}

// formatValue renders the raw numeric value the way the host supplied it:
// integers without a decimal point, everything else in the shortest exact
// form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
