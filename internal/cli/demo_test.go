package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestDemoModel(t *testing.T, opts *demoOpts) demoModel {
	t.Helper()
	data, err := demoData(opts, opts.seed)
	if err != nil {
		t.Fatalf("demoData() error = %v", err)
	}
	return newDemoModel(data, opts)
}

func TestDemoModelQuit(t *testing.T) {
	m := newTestDemoModel(t, &demoOpts{items: 3, seed: 1})

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestDemoModelRegenerate(t *testing.T) {
	m := newTestDemoModel(t, &demoOpts{items: 3, seed: 1})
	before := m.chart.Chart.Data

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	got := updated.(demoModel)

	if got.seed != m.seed+1 {
		t.Errorf("seed = %d, want %d", got.seed, m.seed+1)
	}

	after := got.chart.Chart.Data
	if len(after.Items) != len(before.Items) {
		t.Fatalf("item count changed: %d -> %d", len(before.Items), len(after.Items))
	}
	same := true
	for i := range before.Items {
		if before.Items[i].Value != after.Items[i].Value {
			same = false
			break
		}
	}
	if same {
		t.Error("regenerate should change item values")
	}
}

func TestDemoModelRegenerateKeepsWidth(t *testing.T) {
	m := newTestDemoModel(t, &demoOpts{items: 3, seed: 1})
	m.chart.Width = 120

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	got := updated.(demoModel)

	if got.chart.Width != 120 {
		t.Errorf("Width = %d, want 120 preserved across regeneration", got.chart.Width)
	}
}

func TestDemoModelToggleTheme(t *testing.T) {
	m := newTestDemoModel(t, &demoOpts{items: 3, seed: 1})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	got := updated.(demoModel)
	if !got.chart.Chart.Data.Dark {
		t.Error("first toggle should enable the dark theme")
	}

	updated, _ = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	got = updated.(demoModel)
	if got.chart.Chart.Data.Dark {
		t.Error("second toggle should restore the light theme")
	}
}

func TestDemoModelForwardsToChart(t *testing.T) {
	m := newTestDemoModel(t, &demoOpts{items: 3, seed: 1})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	got := updated.(demoModel)

	if got.chart.Width != 60 {
		t.Errorf("Width = %d, want 60 forwarded to the chart component", got.chart.Width)
	}
}

func TestDemoModelStableKeys(t *testing.T) {
	m := newTestDemoModel(t, &demoOpts{items: 3, seed: 1, stableKeys: true})

	for i, item := range m.chart.Chart.Data.Items {
		if item.Key == "" {
			t.Errorf("item %d should have a minted key", i)
		}
	}
}

func TestDemoModelView(t *testing.T) {
	m := newTestDemoModel(t, &demoOpts{items: 3, seed: 1})
	view := m.View()

	if !strings.Contains(view, "Resource usage") {
		t.Error("view should contain the chart title")
	}
	if !strings.Contains(view, "q quit") {
		t.Error("view should contain the help line")
	}
}
