// Package tui is the interactive terminal front end: pick a chapter, read
// its equations and definitions, and solve equations in a form.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/physcalc/internal/calculator"
	"github.com/san-kum/physcalc/internal/catalog"
	"github.com/san-kum/physcalc/internal/config"
)

type state int

const (
	stateMenu state = iota
	stateChapter
	stateForm
)

type model struct {
	calc *calculator.Calculator

	state    state
	chapters []*catalog.Chapter
	cursor   int

	chapter   *catalog.Chapter
	eqCursor  int
	showDefs  bool
	defOffset int

	eq          *catalog.Equation
	fields      []string
	values      map[string]string
	fieldCursor int
	preset      int
	message     string
	failed      bool

	width  int
	height int
}

func newModel(calc *calculator.Calculator) model {
	return model{
		calc:     calc,
		state:    stateMenu,
		chapters: calc.Library().Chapters(),
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateChapter:
		return m.chapterKey(msg)
	case stateForm:
		return m.formKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.chapters)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.chapter = m.chapters[m.cursor]
		m.state = stateChapter
		m.eqCursor = 0
		m.showDefs = false
		m.defOffset = 0
	}
	return m, nil
}

func (m model) chapterKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "d", "tab":
		m.showDefs = !m.showDefs
		m.defOffset = 0
	case "up", "k":
		if m.showDefs {
			if m.defOffset > 0 {
				m.defOffset--
			}
		} else if m.eqCursor > 0 {
			m.eqCursor--
		}
	case "down", "j":
		if m.showDefs {
			if m.defOffset < len(m.chapter.Definitions)-1 {
				m.defOffset++
			}
		} else if m.eqCursor < len(m.chapter.Equations)-1 {
			m.eqCursor++
		}
	case "enter", " ":
		if m.showDefs {
			break
		}
		eq := &m.chapter.Equations[m.eqCursor]
		if !eq.Solvable() {
			m.message = "no calculator for " + eq.Name
			m.failed = true
			break
		}
		m.openForm(eq)
	}
	return m, nil
}

func (m *model) openForm(eq *catalog.Equation) {
	m.eq = eq
	m.fields = eq.Symbols()
	m.values = make(map[string]string, len(m.fields))
	m.fieldCursor = 0
	m.preset = 0
	m.message = ""
	m.failed = false
	m.state = stateForm
}

func (m model) formKey(msg tea.KeyMsg) (model, tea.Cmd) {
	field := m.fields[m.fieldCursor]

	switch key := msg.String(); key {
	case "esc":
		m.state = stateChapter
		m.message = ""
	case "up", "shift+tab":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "tab":
		if m.fieldCursor < len(m.fields)-1 {
			m.fieldCursor++
		}
	case "backspace":
		if v := m.values[field]; len(v) > 0 {
			m.values[field] = v[:len(v)-1]
		}
	case "ctrl+u":
		m.values[field] = ""
	case "ctrl+r":
		m.values = make(map[string]string, len(m.fields))
		m.message = ""
	case "enter":
		m.solve()
	case "e":
		m.loadPreset()
	default:
		if len(key) == 1 && strings.ContainsAny(key, "0123456789.-+E?") {
			m.values[field] += key
		}
	}
	return m, nil
}

func (m *model) solve() {
	res, err := m.calc.Calculate(context.Background(), calculator.Request{
		Chapter:  m.chapter.Key(),
		Equation: m.eq.Solver.ID,
		Inputs:   m.values,
	})
	if err != nil {
		m.message = err.Error()
		m.failed = true
		return
	}
	m.values[res.Symbol] = format(res.Value)
	m.message = fmt.Sprintf("%s = %s", res.Symbol, format(res.Value))
	m.failed = false
}

// loadPreset fills the form with the next example and blanks the
// equation's left-hand side.
func (m *model) loadPreset() {
	id := m.eq.Solver.ID
	names := config.ListPresets(id)
	if len(names) == 0 {
		m.message = "no example for " + m.eq.Name
		m.failed = true
		return
	}
	name := names[m.preset%len(names)]
	m.preset++

	p := config.GetPreset(id, name)
	for _, sym := range m.fields {
		param, err := m.chapter.Param(m.eq, sym)
		if err != nil {
			continue
		}
		m.values[sym] = format(p[param])
	}
	if sym, ok := m.chapter.Symbol(m.eq, m.eq.Solver.Forward()); ok {
		m.values[sym] = ""
	}
	m.message = "example: " + name
	m.failed = false
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// Run starts the program and blocks until the user quits.
func Run(calc *calculator.Calculator, altScreen bool) error {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(newModel(calc), opts...).Run()
	return err
}
