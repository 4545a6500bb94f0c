package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/tmolnar/chaoscope/internal/dynamo"
	"github.com/tmolnar/chaoscope/internal/field"
	"github.com/tmolnar/chaoscope/internal/trajectory"
)

const (
	canvasWidth  = 70
	canvasHeight = 30
	trailCap     = 3000
	seriesCap    = 120
)

type TickMsg time.Time

// Model animates one attractor: each tick advances the integrator a
// bounded number of RK4 steps and redraws the projected trail, keeping the
// event loop responsive however long the run is.
type Model struct {
	def     field.Definition
	stepper dynamo.Stepper
	params  dynamo.Params
	state   dynamo.State
	initial dynamo.State
	t       float64
	dt      float64

	stepsPerTick int
	trail        trajectory.Trajectory
	seriesX      []float64

	canvas *Canvas
	camera *Camera
	theme  Theme

	paramKeys  []string
	selected   int
	running    bool
	autoRotate bool
	diverged   bool
	showHelp   bool
	frameRate  int
}

// NewModel builds the live view for one attractor definition.
func NewModel(def field.Definition, stepper dynamo.Stepper, params dynamo.Params, init dynamo.State, dt float64, theme Theme, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		def:          def,
		stepper:      stepper,
		params:       params.Clone(),
		state:        init,
		initial:      init,
		dt:           dt,
		stepsPerTick: 20,
		trail:        make(trajectory.Trajectory, 0, trailCap),
		seriesX:      make([]float64, 0, seriesCap),
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		camera:       NewCamera(),
		theme:        theme,
		paramKeys:    def.Coefficients(),
		running:      true,
		autoRotate:   true,
		frameRate:    fps,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.diverged {
				m.running = !m.running
			}
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "[":
			if m.stepsPerTick > 1 {
				m.stepsPerTick--
			}
		case "]":
			if m.stepsPerTick < 200 {
				m.stepsPerTick++
			}
		case "a":
			m.autoRotate = !m.autoRotate
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == m.theme.Name {
					m.theme = GetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		if m.autoRotate {
			m.camera.RotateY(0.01)
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the integration by a bounded chunk.
func (m *Model) step() {
	for i := 0; i < m.stepsPerTick; i++ {
		m.state = m.stepper.Step(m.def.Field, m.state, m.params, m.dt)
		m.t += m.dt
		if !m.state.IsFinite() {
			m.diverged = true
			m.running = false
			return
		}
		m.trail = append(m.trail, m.state)
	}
	if len(m.trail) > trailCap {
		m.trail = m.trail[len(m.trail)-trailCap:]
	}

	m.seriesX = append(m.seriesX, m.state[0])
	if len(m.seriesX) > seriesCap {
		m.seriesX = m.seriesX[1:]
	}
}

func (m *Model) reset() {
	m.state = m.initial
	m.t = 0
	m.trail = m.trail[:0]
	m.seriesX = m.seriesX[:0]
	m.params = m.def.MergeParams(nil)
	m.diverged = false
	m.running = true
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

// adjustParam scales the selected coefficient; the next steps pick up the
// new value immediately, the accumulated trail is kept.
func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	m.params[key] *= factor
	m.diverged = false
}

func (m Model) View() string {
	m.canvas.Clear()
	if len(m.trail) > 1 {
		min, max := m.trail.Bounds()
		pts := make([]Vec3, len(m.trail))
		for i, s := range m.trail {
			pts[i] = NormalizePoint(s, min, max)
		}
		RenderTrajectory(m.canvas, pts, m.camera)
	}

	canvasStyle := lipgloss.NewStyle().Padding(1, 2).Foreground(m.theme.Primary)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(1, 2).
		Width(44)
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary)
	activeStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(m.theme.Warning).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.def.Name)) + "\n")

	status := "RUNNING"
	if m.diverged {
		status = warnStyle.Render("DIVERGED (r to reset)")
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", m.t)) + "\n")
	s.WriteString(labelStyle.Render("State") + valueStyle.Render(
		fmt.Sprintf("%+.3f %+.3f %+.3f", m.state[0], m.state[1], m.state[2])) + "\n")
	s.WriteString(labelStyle.Render("Steps/tick") + valueStyle.Render(fmt.Sprintf("%d", m.stepsPerTick)) + "\n")

	if len(m.seriesX) > 1 {
		chart := asciigraph.Plot(m.seriesX,
			asciigraph.Height(5),
			asciigraph.Width(32),
			asciigraph.Caption("x(t)"),
		)
		s.WriteString("\n" + chart + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-8s %10.4f", k, m.params[k])
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\nSP:pause R:reset Q:quit ?:help\nTab:param ↑↓:tune [ ]:speed\nx/y/z:rotate +/-:zoom A:spin T:theme"))

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		panelStyle.Render(s.String()))

	if m.showHelp {
		return helpOverlay + "\n" + view
	}
	return view
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset state and params   ║
║  Q        - Quit                     ║
║  Tab      - Cycle coefficients       ║
║  Up/K     - Increase selected (+5%)  ║
║  Down/J   - Decrease selected (-5%)  ║
║  [ / ]    - Fewer/more steps per tick║
║  x/X y/Y z/Z - Rotate camera         ║
║  + / -    - Zoom                     ║
║  A        - Toggle auto-rotate       ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
