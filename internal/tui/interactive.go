// Package tui is the interactive mode: pick a preset, tune its
// parameters, then watch the solved field play back. Unlike the live
// command it never re-solves during playback; editing a parameter and
// restarting triggers a fresh solve.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pdelab/internal/bench"
	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/metrics"
	"github.com/san-kum/pdelab/internal/pde"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type menuItem struct {
	equation string
	preset   string
	desc     string
}

var menuItems = []menuItem{
	{"heat", "canonical", "single sine mode, closed-form check"},
	{"heat", "fine", "fine grid, slow and smooth"},
	{"heat", "gaussian-pulse", "narrow pulse spreading out"},
	{"heat", "step-relax", "step profile with zero-flux ends"},
	{"heat", "unstable", "r above the explicit limit"},
	{"burgers", "gentle", "mild advection"},
	{"burgers", "viscous", "diffusion dominated"},
	{"burgers", "shock", "steepening front"},
}

type state int

const (
	stateMenu state = iota
	stateConfig
	stateSim
)

type model struct {
	state    state
	cursor   int
	selected menuItem

	solverName  string
	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string
	solveErr    string

	res    *pde.SolveResult
	energy []float64
	lo, hi float64
	row    int
	speed  float64
	paused bool

	width  int
	height int
}

func NewInteractiveApp() *model {
	return &model{
		state:      stateMenu,
		solverName: "fdm",
		params:     make(map[string]float64),
		paramNames: []string{"solver", "alpha", "length", "time", "nx", "nt", "terms"},
		speed:      1.0,
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		if !m.paused && m.res != nil {
			steps := int(m.speed)
			if steps < 1 {
				steps = 1
			}
			m.row += steps
			if m.row >= m.res.Grid.Nt() {
				m.row = m.res.Grid.Nt() - 1
				m.paused = true
			}
		}
		if m.state == stateSim {
			return m, tick()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		return m.simKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = menuItems[m.cursor]
		m.state = stateConfig
		m.paramCursor = 0
		m.solveErr = ""
		m.loadPreset()
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		if m.paramNames[m.paramCursor] == "solver" {
			m.toggleSolver()
			return m, nil
		}
		m.editing = true
		m.editBuf = fmt.Sprintf("%g", m.params[m.paramNames[m.paramCursor]])
	case "s":
		if err := m.start(); err != nil {
			m.solveErr = err.Error()
			return m, nil
		}
		m.state = stateSim
		return m, tea.Batch(tea.ClearScreen, tick())
	case "left", "h":
		m.adjustParam(-1)
	case "right", "l":
		m.adjustParam(1)
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
		m.reset()
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.row = 0
		m.paused = false
	case "c":
		m.state = stateConfig
		m.reset()
		return m, tea.ClearScreen
	case "+", "=":
		m.speed = math.Min(m.speed*2, 16)
	case "-", "_":
		m.speed = math.Max(m.speed/2, 0.25)
	case "0":
		m.speed = 1.0
	}
	return m, nil
}

func (m *model) loadPreset() {
	p := config.GetPreset(m.selected.equation, m.selected.preset)
	if p == nil {
		return
	}
	m.params["alpha"] = p.Alpha
	m.params["length"] = p.Length
	m.params["time"] = p.Horizon
	m.params["nx"] = float64(p.Nx)
	m.params["nt"] = float64(p.Nt)
	terms := p.Terms
	if terms == 0 {
		terms = config.DefaultTerms
	}
	m.params["terms"] = float64(terms)
	m.solverName = "fdm"
}

func (m *model) toggleSolver() {
	if m.solverName == "fdm" {
		m.solverName = "analytic"
	} else {
		m.solverName = "fdm"
	}
}

// adjustParam nudges the selected parameter: multiplicative for the
// physical ones, ten grid points at a time for the integers.
func (m *model) adjustParam(dir int) {
	name := m.paramNames[m.paramCursor]
	switch name {
	case "solver":
		m.toggleSolver()
	case "nx", "nt", "terms":
		m.params[name] += float64(dir * 10)
		if m.params[name] < 2 {
			m.params[name] = 2
		}
	default:
		if dir > 0 {
			m.params[name] *= 1.25
		} else {
			m.params[name] *= 0.8
		}
	}
}

// start solves the configured equation. The whole field is computed
// here; the sim state only plays it back.
func (m *model) start() error {
	p := config.GetPreset(m.selected.equation, m.selected.preset)
	if p == nil {
		return fmt.Errorf("unknown preset: %s/%s", m.selected.equation, m.selected.preset)
	}

	cfg := *p
	cfg.Alpha = m.params["alpha"]
	cfg.Length = m.params["length"]
	cfg.Horizon = m.params["time"]
	cfg.Nx = int(m.params["nx"])
	cfg.Nt = int(m.params["nt"])
	cfg.Terms = int(m.params["terms"])

	eq, err := cfg.ToEquation()
	if err != nil {
		return err
	}

	solver, err := bench.NewRegistry().Get(m.solverName, cfg.Terms)
	if err != nil {
		return err
	}
	res, err := solver.Solve(eq, cfg.Nx, cfg.Nt, cfg.Horizon)
	if err != nil {
		return err
	}

	m.res = res
	m.energy = metrics.EnergyHistory(res.Field, res.Grid)
	m.lo, m.hi = fieldRange(res.Field)
	pad := (m.hi - m.lo) * 0.05
	if pad == 0 {
		pad = 0.5
	}
	m.lo -= pad
	m.hi += pad
	m.row = 0
	m.speed = 1.0
	m.paused = false
	m.solveErr = ""
	return nil
}

func (m *model) reset() {
	m.res = nil
	m.energy = nil
	m.row = 0
	m.paused = false
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

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.viewSim()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("p d e l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, item := range menuItems {
		name := item.equation + "/" + item.preset
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-22s", name)) + dim.Render(item.desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-22s", name)) + dimmer.Render(item.desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected.equation+"/"+m.selected.preset) + "  " + dim.Render(m.selected.desc) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 36)) + "\n\n")

	for i, name := range m.paramNames {
		var val string
		if name == "solver" {
			val = fmt.Sprintf("%8s", m.solverName)
		} else {
			val = fmt.Sprintf("%8g", m.params[name])
		}
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	if m.solveErr != "" {
		b.WriteString("\n      " + yellow.Render(m.solveErr) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s solve  esc back") + "\n")

	return b.String()
}

func (m model) viewSim() string {
	cw := m.width - 6
	ch := m.height - 12
	if cw < 50 {
		cw = 50
	}
	if ch < 12 {
		ch = 12
	}

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	m.drawProfile(canvas, cw, ch)

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("playing")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	name := m.selected.equation + "/" + m.selected.preset
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n",
		statusIcon, cyan.Render(name), dim.Render(m.solverName), statusText))

	grid := m.res.Grid
	t := grid.T()[m.row]
	progress := float64(m.row) / float64(grid.Nt()-1)
	barWidth := 36
	filled := int(progress * float64(barWidth))
	timeStr := fmt.Sprintf("%.3fs/%.2fs", t, grid.Horizon())
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar, dim.Render(timeStr), dim.Render(fmt.Sprintf("%.2gx", m.speed))))

	for _, row := range canvas {
		b.WriteString("   " + string(row) + "\n")
	}

	summary := metrics.Summarize(m.res.Field[m.row], grid)
	b.WriteString(fmt.Sprintf("\n   %s%s  %s%s  %s%s\n",
		dim.Render("max="), white.Render(fmt.Sprintf("%.3f", summary.Max)),
		dim.Render("min="), white.Render(fmt.Sprintf("%.3f", summary.Min)),
		dim.Render("energy="), white.Render(fmt.Sprintf("%.4f", summary.Energy))))

	if w := m.res.Stability(); w != nil {
		b.WriteString("   " + yellow.Render(fmt.Sprintf("unstable: r=%.3f exceeds %.2f", w.R, w.Limit)) + "\n")
	}

	if m.row > 0 {
		spark := sparkline(m.energy[:m.row+1], 24)
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("energy"), cyan.Render(spark)))
	}

	b.WriteString("\n" + dim.Render("   space pause  ±speed  r replay  c config  q menu") + "\n")

	return b.String()
}

// drawProfile renders the current row as a column-sampled curve with a
// zero axis when the range straddles it.
func (m model) drawProfile(canvas [][]rune, w, h int) {
	if m.res == nil {
		return
	}
	row := m.res.Field[m.row]
	if len(row) < 2 || m.hi <= m.lo {
		return
	}

	toY := func(v float64) int {
		frac := (v - m.lo) / (m.hi - m.lo)
		y := h - 1 - int(frac*float64(h-1))
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		return y
	}

	if m.lo < 0 && m.hi > 0 {
		ay := toY(0)
		for x := 0; x < w; x++ {
			set(canvas, x, ay, '·', w, h)
		}
	}

	prevY := -1
	for x := 0; x < w; x++ {
		j := x * (len(row) - 1) / (w - 1)
		y := toY(row[j])
		if prevY >= 0 && intAbs(y-prevY) > 1 {
			drawLine(canvas, w, h, x-1, prevY, x, y, '│')
		}
		set(canvas, x, y, '●', w, h)
		prevY = y
	}
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func set(canvas [][]rune, x, y int, c rune, w, h int) {
	if x >= 0 && x < w && y >= 0 && y < h {
		canvas[y][x] = c
	}
}

func drawLine(canvas [][]rune, w, h, x1, y1, x2, y2 int, c rune) {
	dx := intAbs(x2 - x1)
	dy := intAbs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		set(canvas, x1, y1, c, w, h)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
