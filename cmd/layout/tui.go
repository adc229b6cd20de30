package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/layout"
	"github.com/wippyai/layout/demo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	dataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	padStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateList modelState = iota
	stateDetail
)

type exploreModel struct {
	err       error
	list      table.Model
	entries   []demo.Entry
	targets   []layout.Target
	targetIdx int
	selected  int
	state     modelState
}

func newExploreModel() *exploreModel {
	entries := demo.Catalog()

	columns := []table.Column{
		{Title: "Record", Width: 14},
		{Title: "Size", Width: 6},
		{Title: "Align", Width: 6},
		{Title: "Note", Width: 44},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(entries)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(lipgloss.Color("#87CEEB"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	t.SetStyles(s)

	m := &exploreModel{
		list:    t,
		entries: entries,
		targets: layout.Targets(),
	}
	m.refreshRows()
	return m
}

func (m *exploreModel) target() layout.Target {
	return m.targets[m.targetIdx]
}

func (m *exploreModel) refreshRows() {
	calc := layout.NewCalculator(m.target())

	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		info, err := calc.Calculate(e.Model)
		if err != nil {
			m.err = err
			return
		}
		rows = append(rows, table.Row{
			e.Name,
			fmt.Sprintf("%d", info.Size),
			fmt.Sprintf("%d", info.Align),
			e.Note,
		})
	}
	m.list.SetRows(rows)
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "t":
			m.targetIdx = (m.targetIdx + 1) % len(m.targets)
			m.refreshRows()

		case "enter":
			if m.state == stateList {
				m.selected = m.list.Cursor()
				m.state = stateDetail
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateList
			}
		}
	}

	if m.state == stateList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *exploreModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Layout Explorer"))
	b.WriteString("  target: ")
	b.WriteString(valueStyle.Render(m.target().Name))
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		b.WriteString(m.list.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • t target • q quit"))

	case stateDetail:
		b.WriteString(m.detailView())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("t target • esc back • q quit"))
	}

	return b.String()
}

func (m *exploreModel) detailView() string {
	entry := m.entries[m.selected]
	calc := layout.NewCalculator(m.target())

	info, err := calc.Calculate(entry.Model)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", err))
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(entry.Name))
	b.WriteString(fmt.Sprintf("  size %s  align %s  padding %s\n\n",
		valueStyle.Render(fmt.Sprintf("%d", info.Size)),
		valueStyle.Render(fmt.Sprintf("%d", info.Align)),
		padStyle.Render(fmt.Sprintf("%d", info.Padding))))

	switch model := entry.Model.(type) {
	case *layout.Record:
		regions, err := calc.Regions(model)
		if err != nil {
			return errorStyle.Render(fmt.Sprintf("Error: %v", err))
		}
		b.WriteString(byteMap(regions, info.Size))
		b.WriteString("\n\n")
		for _, r := range regions {
			line := fmt.Sprintf("%-12s offset %2d  size %2d", r.Field, r.Offset, r.Size)
			b.WriteString(dataStyle.Render(line))
			if r.PadBefore > 0 {
				b.WriteString(padStyle.Render(fmt.Sprintf("  %d pad before", r.PadBefore)))
			}
			b.WriteString("\n")
		}

	case *layout.Union:
		for _, c := range model.Cases {
			cinfo, err := calc.Calculate(c.Type)
			if err != nil {
				return errorStyle.Render(fmt.Sprintf("Error: %v", err))
			}
			line := fmt.Sprintf("%-12s offset  0  size %2d", c.Name, cinfo.Size)
			b.WriteString(dataStyle.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// byteMap draws one cell per byte, grouped in eights. Data cells show the
// first letter of the owning field, padding cells a dot.
func byteMap(regions []layout.Region, size uint32) string {
	cells := make([]string, size)
	for i := range cells {
		cells[i] = padStyle.Render("·")
	}
	for _, r := range regions {
		mark := "?"
		if r.Field != "" {
			mark = strings.ToUpper(r.Field[:1])
		}
		for i := uint32(0); i < r.Size && r.Offset+i < size; i++ {
			cells[r.Offset+i] = dataStyle.Render(mark)
		}
	}

	var b strings.Builder
	for i, c := range cells {
		if i > 0 && i%8 == 0 {
			b.WriteString(" ")
		}
		b.WriteString(c)
	}
	return b.String()
}
