package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pdelab/internal/metrics"
	"github.com/san-kum/pdelab/internal/pde"
)

const (
	width    = 80
	height   = 20
	maxSpeed = 64
)

type TickMsg time.Time

// Model plays back a solved field row by row: the solution is computed
// up front, so the TUI only scrubs through time, it never re-solves.
type Model struct {
	result    *pde.SolveResult
	reference *pde.SolveResult
	canvas    *Canvas
	energy    []float64
	lo, hi    float64
	row       int
	speed     int
	running   bool
	showRef   bool
	showHelp  bool
}

// NewModel prepares playback of result. A non-nil reference is overlaid
// on the same axes; it may use a different grid.
func NewModel(result, reference *pde.SolveResult) Model {
	lo, hi := fieldRange(result.Field)
	if reference != nil {
		rlo, rhi := fieldRange(reference.Field)
		if rlo < lo {
			lo = rlo
		}
		if rhi > hi {
			hi = rhi
		}
	}
	// Pad the range so curves do not hug the canvas edge. A flat field
	// still needs a non-degenerate range.
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 0.5
	}

	return Model{
		result:    result,
		reference: reference,
		canvas:    NewCanvas(width, height),
		energy:    metrics.EnergyHistory(result.Field, result.Grid),
		lo:        lo - pad,
		hi:        hi + pad,
		row:       0,
		speed:     1,
		running:   true,
		showRef:   reference != nil,
	}
}

func fieldRange(f pde.Field) (lo, hi float64) {
	lo, hi = f[0][0], f[0][0]
	for _, row := range f {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the playback head.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.row = 0
			m.running = true
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "+", "=":
			if m.speed < maxSpeed {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "o":
			if m.reference != nil {
				m.showRef = !m.showRef
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.row += m.speed
			if m.row >= m.result.Grid.Nt() {
				m.row = m.result.Grid.Nt() - 1
				m.running = false
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// scrub moves the playback head one row and pauses.
func (m *Model) scrub(dir int) {
	m.running = false
	m.row += dir
	if m.row < 0 {
		m.row = 0
	}
	if m.row >= m.result.Grid.Nt() {
		m.row = m.result.Grid.Nt() - 1
	}
}

// referenceRow maps the playback head onto the reference time axis,
// which may have a different resolution.
func (m *Model) referenceRow() []float64 {
	nt := m.result.Grid.Nt()
	refNt := m.reference.Grid.Nt()
	idx := 0
	if nt > 1 {
		idx = m.row * (refNt - 1) / (nt - 1)
	}
	return m.reference.Field[idx]
}

// draw renders the current profile, and the reference overlay when
// enabled, onto the shared canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	cw, ch := width*2, height*4
	if m.lo < 0 && m.hi > 0 {
		zeroY := ch - 1 - int((0-m.lo)/(m.hi-m.lo)*float64(ch-1))
		m.canvas.DrawLine(0, zeroY, cw-1, zeroY)
	}
	if m.showRef && m.reference != nil {
		m.canvas.DrawCurve(m.referenceRow(), m.lo, m.hi)
	}
	m.canvas.DrawCurve(m.result.Field[m.row], m.lo, m.hi)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	grid := m.result.Grid
	eq := m.result.Equation
	t := grid.T()[m.row]
	summary := metrics.Summarize(m.result.Field[m.row], grid)

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
		if m.row == grid.Nt()-1 {
			status = "DONE"
		}
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(eq.Kind().String())+" EQUATION") + "\n")
	s.WriteString(fmt.Sprintf("%s\n", status))
	s.WriteString(ProgressBar(float64(m.row)/float64(grid.Nt()-1), 30) + "\n")

	if m.row > 0 {
		chart := asciigraph.Plot(m.energy[:m.row+1], asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.4fs", t)) + "\n")
	s.WriteString(labelStyle.Render("Row") + valueStyle.Render(fmt.Sprintf("%d/%d", m.row, grid.Nt()-1)) + "\n")
	s.WriteString(labelStyle.Render("Max") + valueStyle.Render(fmt.Sprintf("%.4f", summary.Max)) + "\n")
	s.WriteString(labelStyle.Render("Min") + valueStyle.Render(fmt.Sprintf("%.4f", summary.Min)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", summary.Energy)) + "\n")

	r := eq.Coefficient() * grid.Dt() / (grid.Dx() * grid.Dx())
	if w := m.result.Stability(); w != nil {
		s.WriteString(labelStyle.Render("Scheme") + unstableStyle.Render(fmt.Sprintf("UNSTABLE r=%.3f", w.R)) + "\n")
	} else {
		s.WriteString(labelStyle.Render("Scheme") + stableStyle.Render(fmt.Sprintf("stable r=%.3f", r)) + "\n")
	}

	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%dx", m.speed)) + "\n")
	if m.reference != nil {
		overlay := "off"
		if m.showRef {
			overlay = "on"
		}
		s.WriteString(labelStyle.Render("Overlay") + valueStyle.Render(overlay) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Replay Q:Quit\n[ ]:Scrub +/-:Speed\nO:Overlay ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Replay from t=0          ║
║  Q        - Quit                     ║
║  [        - Step one row back        ║
║  ]        - Step one row forward     ║
║  +        - Double playback speed    ║
║  -        - Halve playback speed     ║
║  O        - Toggle reference overlay ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
