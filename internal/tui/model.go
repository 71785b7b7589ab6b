package tui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

// statusHeight is the number of terminal lines below the sandbox.
const statusHeight = 2

// Options configures the terminal driver.
type Options struct {
	// TPS is the simulation rate in ticks per second.
	TPS int
	// FPS is the redraw rate.
	FPS int
	// Width and Height are the terminal size used until the first resize.
	Width, Height int
}

// Model is the Bubble Tea model driving one sandbox.
type Model struct {
	sim    *sand.Sandbox
	clock  *core.FixedStep
	logger *log.Logger
	opts   Options
	colors []string

	width, height int

	paused   bool
	tickOnce bool
	quitting bool

	// painting is true while the left button is held; mouseX/mouseY are
	// the pointer position in pixels.
	painting       bool
	mouseX, mouseY int
}

// NewModel creates a model for sim. A nil logger discards output.
func NewModel(sim *sand.Sandbox, opts Options, logger *log.Logger) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		sim:    sim,
		clock:  core.NewFixedStep(opts.TPS),
		logger: logger,
		opts:   opts,
		colors: hexPalette(sim.Palette()),
	}
	if opts.Width > 0 && opts.Height > 0 {
		m.resize(opts.Width, opts.Height)
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		m.frame()
		return m, frameCmd(m.opts.FPS)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionPause:
		m.paused = !m.paused
	case ActionStep:
		m.tickOnce = true
	case ActionReset:
		m.sim.Reset(0)
		m.logger.Info("reset", "grid", m.sim.Size())
	case ActionGravityUp:
		m.nudgeGravity(1)
	case ActionGravityDown:
		m.nudgeGravity(-1)
	case ActionBiggerCells:
		m.nudgeCellSize(1)
	case ActionSmallerCells:
		m.nudgeCellSize(-1)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	m.mouseX, m.mouseY = msg.X, msg.Y*2
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.painting = true
		}
	case tea.MouseActionRelease:
		m.painting = false
	}
	return m
}

// nudgeGravity moves gravity by one control step in direction dir.
func (m *Model) nudgeGravity(dir float64) {
	ctrl := m.control("gravity")
	g := ctrl.Clamp(m.sim.Config().Gravity + dir*ctrl.Step)
	m.sim.SetGravity(g)
}

func (m *Model) nudgeCellSize(delta int) {
	ctrl := m.control("cell_size")
	w := int(ctrl.Clamp(float64(m.sim.Config().CellSize + delta)))
	if w != m.sim.Config().CellSize {
		m.sim.SetCellSize(w)
		m.logger.Debug("cell size", "size", w, "grid", m.sim.Size())
	}
}

func (m *Model) control(key string) core.ParameterControl {
	for _, c := range m.sim.ParameterControls() {
		if c.Key == key {
			return c
		}
	}
	return core.ParameterControl{Key: key}
}

// resize maps the terminal to a pixel viewport: one pixel per column and
// two per line, minus the status bar.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	viewH := max(height-statusHeight, 0) * 2
	before := m.sim.Size()
	m.sim.SetViewport(width, viewH)
	if after := m.sim.Size(); after != before {
		m.logger.Debug("resize", "terminal", []int{width, height}, "grid", after)
	}
}

// frame paints while the button is held, then runs the ticks that are due.
func (m *Model) frame() {
	if m.painting {
		m.sim.PaintPixel(m.mouseX, m.mouseY)
	}
	steps := m.clock.Pending()
	if m.paused {
		steps = 0
	}
	if m.tickOnce {
		steps = max(steps, 1)
		m.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		m.sim.Step()
	}
}

// View renders the sandbox and the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	size := m.sim.Size()
	viewH := max(m.height-statusHeight, 0)
	grid := renderGrid(m.sim.Cells(), size.W, size.H, m.sim.Config().CellSize, m.width, viewH, m.colors)
	return lipgloss.JoinVertical(lipgloss.Left, grid, m.statusBar())
}

func (m Model) statusBar() string {
	lines := m.sim.StatusLines()
	state := "running"
	if m.paused {
		state = "paused"
	}
	status := strings.Join(append([]string{state}, lines...), " · ")
	width := max(m.width, 1)
	return lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Width(width).MaxWidth(width).Render(status),
		helpStyle.MaxWidth(width).Render(helpLine),
	)
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool { return m.paused }

// Run starts the Bubble Tea program for sim.
func Run(sim *sand.Sandbox, opts Options, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(sim, opts, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
