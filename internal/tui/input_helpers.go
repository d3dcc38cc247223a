package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusFormField переводит фокус на поле с индексом idx, снимая его с остальных.
func focusFormField(inputs []textinput.Model, idx int) tea.Cmd {
	for i := range inputs {
		if i == idx {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return textinput.Blink
}

// handleFormKeys обрабатывает Tab, Shift+Tab и Enter в многопольной форме.
// Enter на промежуточном поле переводит фокус дальше, на последнем — вызывает
// onSubmit. Возвращает флаг, была ли клавиша обработана.
func (m *model) handleFormKeys(
	keyMsg tea.KeyMsg,
	inputs []textinput.Model,
	focusedField *int,
	onSubmit func() (tea.Model, tea.Cmd),
) (tea.Model, tea.Cmd, bool) {
	n := len(inputs)
	switch keyMsg.String() {
	case keyTab:
		*focusedField = (*focusedField + 1) % n
		return m, focusFormField(inputs, *focusedField), true
	case keyShiftTab:
		*focusedField = (*focusedField + n - 1) % n
		return m, focusFormField(inputs, *focusedField), true
	case keyEnter:
		if *focusedField < n-1 { // Промежуточное поле — переход фокуса
			*focusedField++
			return m, focusFormField(inputs, *focusedField), true
		}
		// Последнее поле — отправка формы
		newModel, cmd := onSubmit()
		return newModel, cmd, true
	default:
		return m, nil, false
	}
}

// handleFormInput обрабатывает ввод в многопольной форме: Esc возвращает на
// previousState, Tab/Shift+Tab/Enter управляют фокусом, остальное уходит в
// активное поле ввода.
func (m *model) handleFormInput(
	msg tea.Msg,
	inputs []textinput.Model,
	focusedField *int,
	onSubmit func() (tea.Model, tea.Cmd),
	previousState screenState,
) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == keyEsc {
			m.err = nil
			m.state = previousState
			for i := range inputs {
				inputs[i].Blur()
			}
			return m, tea.ClearScreen
		}
		newModel, keyCmd, handled := m.handleFormKeys(keyMsg, inputs, focusedField, onSubmit)
		if handled {
			return newModel, keyCmd
		}
	}

	var cmd tea.Cmd
	idx := *focusedField
	inputs[idx], cmd = inputs[idx].Update(msg)
	return m, cmd
}

// splitCSV разбирает введенный пользователем список значений через запятую,
// отбрасывая пустые элементы.
func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
