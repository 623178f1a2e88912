package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ribbonchart/ribbon/pkg/chart"
	"github.com/ribbonchart/ribbon/pkg/chart/tui"
	"github.com/ribbonchart/ribbon/pkg/errors"
	chartio "github.com/ribbonchart/ribbon/pkg/io"
)

const (
	defaultDemoItems = 5  // segment count for generated datasets
	defaultDemoSeed  = 42 // random seed for reproducible datasets
	maxDemoItems     = 64 // hard cap so generated legends stay scrollable-free
)

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	items      int   // number of generated segments
	seed       int64 // random seed for the generator
	dark       bool  // use the dark theme
	stableKeys bool  // mint UUID keys instead of positional ids
}

// newDemoCmd creates the demo command for exploring a generated chart interactively.
// The chart runs as a full-screen terminal program: segments respond to mouse
// hover, legend entries toggle activation on click, and arrow keys move a
// keyboard cursor across the legend.
//
// Keys:
//   - left/right, tab: move the hover cursor
//   - enter, space: toggle activation of the hovered item
//   - esc: clear the hover cursor
//   - r: regenerate the dataset with a new seed
//   - t: toggle between light and dark themes
//   - q, ctrl+c: quit
func newDemoCmd() *cobra.Command {
	opts := demoOpts{
		items: defaultDemoItems,
		seed:  defaultDemoSeed,
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Explore a generated chart interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.items < 1 || opts.items > maxDemoItems {
				return errors.New(errors.ErrCodeInvalidInput, "items must be between 1 and 64")
			}
			return runDemo(cmd, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.items, "items", "n", opts.items, "number of generated segments")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed for the dataset generator")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "use the dark theme")
	cmd.Flags().BoolVar(&opts.stableKeys, "stable-keys", false, "assign UUID keys to items instead of positional ids")

	return cmd
}

// runDemo builds the initial dataset and runs the bubbletea program.
func runDemo(cmd *cobra.Command, opts *demoOpts) error {
	logger := loggerFromContext(cmd.Context())

	data, err := demoData(opts, opts.seed)
	if err != nil {
		return err
	}
	logger.Debugf("Generated dataset: %d items, seed %d", len(data.Items), opts.seed)

	prog := tea.NewProgram(
		newDemoModel(data, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	)
	_, err = prog.Run()
	return err
}

// demoData generates a dataset for the given seed, honoring the theme and
// stable-key flags.
func demoData(opts *demoOpts, seed int64) (chart.Data, error) {
	data := randomData(opts.items, seed)
	data.Dark = opts.dark
	if opts.stableKeys {
		return chartio.AssignKeys(data)
	}
	return data, nil
}

// demoModel wraps the chart component with demo-only key handling: dataset
// regeneration, theme toggling, and quitting.
type demoModel struct {
	chart tui.Model
	opts  *demoOpts
	seed  int64
	err   error
}

func newDemoModel(data chart.Data, opts *demoOpts) demoModel {
	return demoModel{
		chart: tui.New(chart.New(data)),
		opts:  opts,
		seed:  opts.seed,
	}
}

func (m demoModel) Init() tea.Cmd {
	return m.chart.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.regenerate(), nil
		case "t":
			return m.toggleTheme(), nil
		}
	}

	var cmd tea.Cmd
	m.chart, cmd = m.chart.Update(msg)
	return m, cmd
}

// regenerate replaces the dataset with a fresh one derived from the next seed.
// Hover and activation state reset because item identity restarts with the
// new dataset.
func (m demoModel) regenerate() demoModel {
	m.seed++
	data, err := demoData(m.opts, m.seed)
	if err != nil {
		m.err = err
		return m
	}
	width := m.chart.Width
	m.chart = tui.New(chart.New(data))
	m.chart.Width = width
	return m
}

// toggleTheme flips the dataset's theme in place, keeping all interaction state.
func (m demoModel) toggleTheme() demoModel {
	m.chart.Chart.Data.Dark = !m.chart.Chart.Data.Dark
	return m
}

func (m demoModel) View() string {
	if m.err != nil {
		return StyleWarning.Render(m.err.Error()) + "\n"
	}

	help := StyleDim.Render("←/→ move · ⏎ toggle · r regenerate · t theme · q quit")
	return m.chart.View() + "\n" + help + "\n"
}
