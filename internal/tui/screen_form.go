package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// viewFormScreen отображает общий экран формы: заголовок, поля и подсказку.
func (m *model) viewFormScreen(title, hint string, inputs ...textinput.Model) string {
	var b strings.Builder

	// Определяем стили здесь, чтобы избежать дублирования в каждом вызывающем месте
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))    // Серый
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94")) // Красный для ошибок

	b.WriteString(titleStyle.Render(title) + "\n\n")
	for _, input := range inputs {
		b.WriteString(input.View() + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render(hint) + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}
