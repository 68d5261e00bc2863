package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fracgen/internal/catalog"
	"github.com/san-kum/fracgen/internal/config"
	"github.com/san-kum/fracgen/internal/fractal"
)

const (
	canvasCols = 78
	canvasRows = 32
)

// Generation callbacks arrive on pool workers; they are forwarded
// through the model's event channel so all state changes happen on
// the Bubble Tea loop. seq tags each render so results that were
// superseded before arriving are discarded, not canceled.
type progressMsg struct {
	seq  int
	done float64
}

type stageMsg struct {
	seq  int
	out  fractal.Output
	done float64
}

type doneMsg struct {
	seq int
	out fractal.Output
}

// Model is the interactive catalog browser.
type Model struct {
	cat     *catalog.Catalog
	entries []catalog.Entry
	cursor  int

	pool   *fractal.Pool
	events chan tea.Msg
	seq    int

	// presetIdx indexes the highlighted family's preset list; -1 means
	// family defaults. Moving the cursor resets it.
	presetIdx int

	canvas    *Canvas
	rendering bool
	progress  float64
	haveView  bool
	current   string
}

func NewModel(cat *catalog.Catalog) Model {
	return Model{
		cat:       cat,
		entries:   cat.Entries(),
		pool:      fractal.Default(),
		events:    make(chan tea.Msg, 16),
		canvas:    NewCanvas(canvasCols, canvasRows),
		presetIdx: -1,
	}
}

func (m Model) Init() tea.Cmd { return m.listen() }

// listen hands the next worker event to the update loop.
func (m Model) listen() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.presetIdx = -1
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.presetIdx = -1
			}
		case "p":
			m.cyclePreset()
		case "enter", " ", "r":
			m.startRender()
		}
		return m, nil

	case progressMsg:
		if msg.seq == m.seq {
			m.progress = msg.done
		}
		return m, m.listen()

	case stageMsg:
		if msg.seq == m.seq {
			m.progress = msg.done
			m.canvas.Plot(msg.out)
			m.haveView = true
			if msg.done >= 1 {
				m.rendering = false
			}
		}
		return m, m.listen()

	case doneMsg:
		if msg.seq == m.seq {
			m.progress = 1
			m.canvas.Plot(msg.out)
			m.haveView = true
			m.rendering = false
		}
		return m, m.listen()
	}
	return m, nil
}

// cyclePreset steps through the highlighted family's presets, wrapping
// back to the family defaults, and re-renders.
func (m *Model) cyclePreset() {
	if len(m.entries) == 0 {
		return
	}
	names := config.ListPresets(m.entries[m.cursor].Name)
	if len(names) == 0 {
		return
	}
	m.presetIdx++
	if m.presetIdx >= len(names) {
		m.presetIdx = -1
	}
	m.startRender()
}

// startRender submits the selected family to the pool, sized to the
// canvas dot grid. Progressive families stream stages; the rest
// report progress and land once.
func (m *Model) startRender() {
	if len(m.entries) == 0 {
		return
	}
	e := m.entries[m.cursor]
	m.seq++
	m.rendering = true
	m.progress = 0
	m.current = e.Name

	seq := m.seq
	events := m.events
	g := e.New()
	dw, dh := m.canvas.DotSize()
	p := g.DefaultParams().WithSize(dw, dh)

	if names := config.ListPresets(e.Name); m.presetIdx >= 0 && m.presetIdx < len(names) {
		if cfg := config.GetPreset(e.Name, names[m.presetIdx]); cfg != nil {
			p = cfg.Apply(p).WithSize(dw, dh)
		}
		m.current = e.Name + " (" + names[m.presetIdx] + ")"
	}

	if pg, ok := g.(fractal.ProgressiveGenerator); ok {
		m.pool.GenerateProgressive(pg, p, func(out fractal.Output, done float64) {
			events <- stageMsg{seq: seq, out: out, done: done}
		})
		return
	}
	m.pool.Generate(g, p,
		func(done float64) { events <- progressMsg{seq: seq, done: done} },
		func(out fractal.Output) { events <- doneMsg{seq: seq, out: out} },
	)
}

func (m Model) View() string {
	var list strings.Builder
	list.WriteString(titleStyle.Render("FRACGEN") + "\n")
	list.WriteString(subStyle.Render("fractal catalog") + "\n\n")
	for i, e := range m.entries {
		line := fmt.Sprintf("%-16s", e.Name)
		if i == m.cursor {
			list.WriteString(cursorStyle.Render("▸ ") + itemStyle.Render(line))
		} else {
			list.WriteString("  " + dimStyle.Render(line))
		}
		list.WriteString(kindStyle.Render(e.Kind.String()) + "\n")
	}
	list.WriteString(helpStyle.Render("j/k move  enter render  p preset  r again  q quit"))

	var view strings.Builder
	status := " "
	if m.rendering {
		status = fmt.Sprintf("rendering %s %s", m.current, progressBar(m.progress, 24))
	} else if m.haveView {
		status = m.current
	}
	view.WriteString(barStyle.Render(status) + "\n")
	if m.haveView {
		view.WriteString(m.canvas.String())
	} else {
		view.WriteString(dimStyle.Render("\n  select a family and press enter\n"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(list.String()),
		canvasStyle.Render(view.String()),
	)
}

func progressBar(done float64, width int) string {
	filled := int(done * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]" +
		fmt.Sprintf(" %3.0f%%", done*100)
}

// Run starts the interactive browser.
func Run(cat *catalog.Catalog) error {
	_, err := tea.NewProgram(NewModel(cat), tea.WithAltScreen()).Run()
	return err
}
