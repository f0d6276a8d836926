package tui

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateChapter:
		if m.showDefs {
			return m.viewDefinitions()
		}
		return m.viewChapter()
	case stateForm:
		return m.viewForm()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(rule + "\n")
	b.WriteString("              " + cyan.Render("p h y s c a l c") + "\n")
	b.WriteString(rule + "\n\n")

	for i, c := range m.chapters {
		label := fmt.Sprintf("%2d  %-34s", c.Number, c.Title)
		if i == m.cursor {
			b.WriteString("    " + cyan.Render("▸ ") + white.Render(label) + "\n")
		} else {
			b.WriteString("      " + dim.Render(label) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   q quit") + "\n")
	return b.String()
}

func (m model) header() string {
	c := m.chapter
	return "\n    " + cyan.Render(fmt.Sprintf("Chapter %d  %s", c.Number, c.Title)) + "\n" +
		"    " + dim.Render(c.Description) + "\n" +
		dimmer.Render("    "+strings.Repeat("─", 44)) + "\n\n"
}

func (m model) status() string {
	if m.message == "" {
		return ""
	}
	if m.failed {
		return "\n    " + red.Render(m.message) + "\n"
	}
	return "\n    " + green.Render(m.message) + "\n"
}

// window is the visible slice [start, end) of n rows that keeps cursor on
// a screen of the given height.
func window(cursor, n, height int) (int, int) {
	if height < 3 {
		height = 3
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := min(start+height, n)
	return start, end
}

func (m model) viewChapter() string {
	var b strings.Builder
	b.WriteString(m.header())

	start, end := window(m.eqCursor, len(m.chapter.Equations), m.height-12)
	for i := start; i < end; i++ {
		eq := &m.chapter.Equations[i]
		mark := " "
		if eq.Solvable() {
			mark = yellow.Render("ƒ")
		}
		name := fmt.Sprintf("%-42s", eq.Name)
		if i == m.eqCursor {
			b.WriteString("    " + cyan.Render("▸ ") + mark + " " + white.Render(name) + magenta.Render(eq.Formula) + "\n")
		} else {
			b.WriteString("      " + mark + " " + dim.Render(name) + dimmer.Render(eq.Formula) + "\n")
		}
	}

	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter solve (ƒ)   d definitions   esc back") + "\n")
	return b.String()
}

func (m model) viewDefinitions() string {
	var b strings.Builder
	b.WriteString(m.header())

	defs := m.chapter.Definitions
	end := min(m.defOffset+max(m.height-12, 3), len(defs))
	for _, d := range defs[m.defOffset:end] {
		b.WriteString("    " + white.Render(d.Term) + "\n")
		b.WriteString("      " + dim.Render(d.Meaning) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ scroll   d equations   esc back") + "\n")
	return b.String()
}

func (m model) viewForm() string {
	var b strings.Builder
	b.WriteString(m.header())

	b.WriteString("    " + white.Render(m.eq.Name) + "   " + magenta.Render(m.eq.Formula) + "\n")
	if m.eq.Notes != "" {
		b.WriteString("    " + dim.Render(m.eq.Notes) + "\n")
	}
	b.WriteString("\n")

	for i, v := range m.eq.Variables {
		val := m.values[v.Symbol]
		if i == m.fieldCursor {
			b.WriteString("    " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", v.Symbol)) +
				magenta.Render(fmt.Sprintf("%-16s", val+"▋")) + dim.Render(v.Description) + "\n")
		} else {
			if val == "" {
				val = "?"
			}
			b.WriteString("      " + dim.Render(fmt.Sprintf("%-8s", v.Symbol)) +
				white.Render(fmt.Sprintf("%-16s", val)) + dimmer.Render(v.Description) + "\n")
		}
	}

	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(dim.Render("      leave one field blank   enter solve   e example   ctrl+r clear   esc back") + "\n")
	return b.String()
}
