package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/board"
	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
)

func (m Model) View() string {
	v := m.frame.view

	sections := []string{
		styles.TitleStyle.Render("Taskboard"),
		m.renderInput(),
		m.renderFilters(v.Filter),
		m.renderRows(v.Rows),
		styles.CounterStyle.Render(fmt.Sprintf("Total: %d  Completed: %d", v.TotalTasks, v.CompletedTasks)),
	}

	if m.err != nil {
		sections = append(sections, styles.ErrorStyle.Render("error: "+m.err.Error()))
	}

	var helpView string
	if m.input.Focused() {
		helpView = m.help.View(inputHelp{k: m.keys})
	} else {
		helpView = m.help.View(m.keys)
	}
	sections = append(sections, styles.HelpStyle.Render(helpView))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInput() string {
	chips := styles.ChipStyle.Render(fmt.Sprintf("%s %s  %s", m.category.Icon(), m.category, m.status.Label()))

	style := styles.InputStyle
	if m.input.Focused() {
		style = styles.InputFocusedStyle
	}

	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", chips))
}

func (m Model) renderFilters(active board.Filter) string {
	parts := make([]string, 0, len(board.Filters()))
	for i, f := range board.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == active {
			parts = append(parts, styles.FilterActiveStyle.Render(label))
		} else {
			parts = append(parts, styles.FilterStyle.Render(label))
		}
	}
	return "\n" + strings.Join(parts, " ") + "\n"
}

func (m Model) renderRows(rows []board.Row) string {
	if len(rows) == 0 {
		return styles.TextMutedStyle.Render("  No tasks yet. Press a to add one.")
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		selected := i == m.cursor && !m.input.Focused()
		lines = append(lines, m.renderRow(r, selected))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(r board.Row, selected bool) string {
	cursor := "  "
	titleStyle := styles.RowNormalStyle
	if r.Status == task.StatusCompleted {
		titleStyle = styles.RowCompletedStyle
	}
	if selected {
		cursor = styles.RowSelectedStyle.Render("> ")
		if r.Status != task.StatusCompleted {
			titleStyle = styles.RowSelectedStyle
		}
	}

	line := fmt.Sprintf("%s%s %s %s", cursor, r.Icon, titleStyle.Render(r.Title), styles.StatusBadge(r.Status))
	if selected {
		hint := fmt.Sprintf("  s %s  x delete", r.Status.Next().Label())
		line += styles.TextMutedStyle.Render(hint)
	}
	return line
}
