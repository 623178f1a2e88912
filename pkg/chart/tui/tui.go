package tui

import (
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ribbonchart/ribbon/pkg/chart"
)

// Card padding. Mouse hit-testing offsets every coordinate by these.
const (
	padTop  = 1
	padLeft = 2
)

// Content rows relative to the card's padded origin.
const (
	titleRow       = 0
	barRow         = 2
	legendStartRow = 4
)

// Bar width bounds in terminal cells.
const (
	minBarWidth     = 10
	maxBarWidth     = 72
	defaultBarWidth = 48
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	darkCardStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#20293e")).Foreground(lipgloss.Color("255")).Padding(padTop, padLeft)
	lightCardStyle = lipgloss.NewStyle().Padding(padTop, padLeft)
)

// Model is the Bubble Tea host for a chart. It owns a chart.Model and
// translates terminal events into the chart's interaction messages: mouse
// motion over a segment or legend entry hovers it, motion elsewhere leaves,
// and a left click on a legend entry toggles activation. Arrow keys plus
// enter/space mirror the same interactions for keyboards.
type Model struct {
	Chart chart.Model

	// Width is the terminal width, set from tea.WindowSizeMsg.
	Width int
}

// New wraps a chart model in a terminal component.
func New(m chart.Model) Model {
	return Model{Chart: m}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update translates terminal events into chart messages and applies them
// through the chart reducer. It never emits commands.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chart.Msg:
		// Hosts may drive the widget directly.
		m.Chart = chart.Update(msg, m.Chart)

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case tea.KeyMsg:
		if cm, ok := m.keyMsg(msg); ok {
			m.Chart = chart.Update(cm, m.Chart)
		}

	case tea.MouseMsg:
		if cm, ok := m.mouseMsg(msg); ok {
			m.Chart = chart.Update(cm, m.Chart)
		}
	}
	return m, nil
}

// keyMsg maps a key press to a chart message.
func (m Model) keyMsg(msg tea.KeyMsg) (chart.Msg, bool) {
	items := m.Chart.Data.Items
	if len(items) == 0 {
		return nil, false
	}

	switch msg.String() {
	case "left", "h":
		if i := m.hoveredIndex(); i > 0 {
			return chart.HoverItemMsg{ID: m.Chart.Data.ItemID(i - 1)}, true
		}
		return chart.HoverItemMsg{ID: m.Chart.Data.ItemID(0)}, true
	case "right", "l", "tab":
		i := m.hoveredIndex()
		switch {
		case i < 0:
			return chart.HoverItemMsg{ID: m.Chart.Data.ItemID(0)}, true
		case i < len(items)-1:
			return chart.HoverItemMsg{ID: m.Chart.Data.ItemID(i + 1)}, true
		}
		return chart.HoverItemMsg{ID: m.Chart.Data.ItemID(i)}, true
	case "enter", " ":
		if id := m.Chart.HoveredItem; id != "" {
			return chart.ToggleItemMsg{ID: id}, true
		}
	case "esc":
		return chart.LeaveItemMsg{}, true
	}
	return nil, false
}

// mouseMsg maps a mouse event to a chart message. Motion events with no
// button held drive hover, and motion outside any segment or legend entry
// leaves. A left press on a legend row toggles activation.
func (m Model) mouseMsg(msg tea.MouseMsg) (chart.Msg, bool) {
	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		if id, ok := m.hitTest(msg.X, msg.Y); ok {
			return chart.HoverItemMsg{ID: id}, true
		}
		return chart.LeaveItemMsg{}, true
	}

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		if i, ok := m.legendRowAt(msg.Y); ok {
			return chart.ToggleItemMsg{ID: m.Chart.Data.ItemID(i)}, true
		}
	}
	return nil, false
}

// hitTest resolves absolute terminal coordinates to an item id, checking the
// bar row's segment spans first and legend rows second.
func (m Model) hitTest(x, y int) (string, bool) {
	if y == padTop+barRow {
		rel := x - padLeft
		for i, s := range m.segmentSpans() {
			if rel >= s.start && rel < s.end {
				return m.Chart.Data.ItemID(i), true
			}
		}
		return "", false
	}
	if i, ok := m.legendRowAt(y); ok {
		return m.Chart.Data.ItemID(i), true
	}
	return "", false
}

// legendRowAt returns the item index for an absolute Y on a legend row.
func (m Model) legendRowAt(y int) (int, bool) {
	i := y - padTop - legendStartRow
	if i >= 0 && i < len(m.Chart.Data.Items) {
		return i, true
	}
	return 0, false
}

func (m Model) hoveredIndex() int {
	if m.Chart.HoveredItem == "" {
		return -1
	}
	for i := range m.Chart.Data.Items {
		if m.Chart.Data.ItemID(i) == m.Chart.HoveredItem {
			return i
		}
	}
	return -1
}

// span is a half-open cell range [start, end) within the bar row.
type span struct {
	start, end int
}

// segmentSpans computes each segment's cell range. Spans are derived from
// the same model state the view renders, so hit-testing and drawing always
// agree.
func (m Model) segmentSpans() []span {
	cells := cellWidths(m.Chart.Data.Items, m.barWidth())
	spans := make([]span, len(cells))
	x := 0
	for i, c := range cells {
		spans[i] = span{start: x, end: x + c}
		x += c
	}
	return spans
}

func (m Model) barWidth() int {
	if m.Width == 0 {
		return defaultBarWidth
	}
	w := m.Width - 2*padLeft
	if w < minBarWidth {
		return minBarWidth
	}
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}

// cellWidths distributes width cells across items in proportion to their
// segment widths, using largest-remainder rounding so the cells sum exactly
// to width for well-formed datasets. A zero-total dataset gets all-zero
// cells; the view renders an empty track in that case. Negative values map
// to zero cells.
func cellWidths(items []chart.Item, width int) []int {
	pcts := chart.SegmentWidths(items)
	cells := make([]int, len(items))
	if width <= 0 {
		return cells
	}

	nonzero := false
	fracs := make([]float64, len(items))
	remainder := width
	for i, p := range pcts {
		if p <= 0 {
			fracs[i] = -1
			continue
		}
		nonzero = true
		exact := p / 100 * float64(width)
		if exact > float64(width) {
			exact = float64(width)
		}
		cells[i] = int(exact)
		fracs[i] = exact - float64(cells[i])
		remainder -= cells[i]
	}
	if !nonzero {
		return cells
	}

	// Hand leftover cells to the largest fractional parts; earliest item
	// wins ties.
	order := make([]int, 0, len(items))
	for i := range items {
		if fracs[i] >= 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fracs[order[a]] > fracs[order[b]]
	})
	for _, i := range order {
		if remainder <= 0 {
			break
		}
		cells[i]++
		remainder--
	}
	return cells
}

// View renders the card: title, bar row, and one legend line per item, in
// item order. The activated or hovered segment shows its raw value centered
// and bold; idle segments show only their fill.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Chart.Data.Title))
	b.WriteString("\n\n")
	b.WriteString(m.viewBar())
	b.WriteString("\n\n")
	b.WriteString(m.viewLegend())

	card := lightCardStyle
	if m.Chart.Data.Dark {
		card = darkCardStyle
	}
	return card.Render(b.String())
}

func (m Model) viewBar() string {
	items := m.Chart.Data.Items
	cells := cellWidths(items, m.barWidth())

	filled := 0
	for _, c := range cells {
		filled += c
	}
	if filled == 0 {
		// Empty or zero-total dataset: an empty track.
		return trackStyle.Render(strings.Repeat("░", m.barWidth()))
	}

	var b strings.Builder
	for i, it := range items {
		if cells[i] == 0 {
			continue
		}
		id := m.Chart.Data.ItemID(i)
		seg := lipgloss.NewStyle().
			Background(lipgloss.Color(it.Color)).
			Width(cells[i])
		if m.Chart.IsActivated(id) || m.Chart.IsHovered(id) {
			seg = seg.Foreground(lipgloss.Color("255")).Bold(true).Align(lipgloss.Center)
			b.WriteString(seg.Render(truncate(formatValue(it.Value), cells[i])))
		} else {
			b.WriteString(seg.Render(strings.Repeat(" ", cells[i])))
		}
	}
	return b.String()
}

func (m Model) viewLegend() string {
	items := m.Chart.Data.Items
	lines := make([]string, len(items))
	for i, it := range items {
		id := m.Chart.Data.ItemID(i)
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("●")

		cursor := "  "
		if m.Chart.IsHovered(id) {
			cursor = "▸ "
		}

		name := it.Name
		if m.Chart.IsActivated(id) {
			name = activeStyle.Render(it.Name)
		}

		lines[i] = cursor + dot + " " + name + " " + dimStyle.Render(formatValue(it.Value))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
