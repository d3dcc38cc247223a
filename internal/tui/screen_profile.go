package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Несовпадение нового пароля и подтверждения.
var errNewPasswordMismatch = errors.New("новый пароль и подтверждение не совпадают")

// updateProfileScreen обрабатывает экран профиля: смену пароля и удаление
// учетной записи с подтверждением.
func (m *model) updateProfileScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Режим подтверждения удаления: принимаются только y и n/Esc
	if m.confirmDelete {
		switch keyMsg.String() {
		case "y":
			m.confirmDelete = false
			model, statusCmd := m.setStatusMessage("Удаление учетной записи...")
			return model, tea.Batch(m.makeDeleteAccountCmd(), statusCmd)
		case "n", keyEsc:
			m.confirmDelete = false
			return m, nil
		}
		return m, nil
	}

	switch keyMsg.String() {
	case keyEsc, keyBack:
		m.err = nil
		return m.navigate(menuScreen)
	case "p":
		m.err = nil
		m.passwordField = passwordFieldCurrent
		for i := range m.passwordInputs {
			m.passwordInputs[i].SetValue("")
		}
		return m.navigate(passwordScreen)
	case "x":
		m.confirmDelete = true
		return m, nil
	case "r":
		model, statusCmd := m.setStatusMessage("Обновление профиля...")
		return model, tea.Batch(m.makeLoadProfileCmd(), statusCmd)
	}
	return m, nil
}

// viewProfileScreen отображает данные профиля текущего пользователя.
func (m *model) viewProfileScreen() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))
	warnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Профиль") + "\n\n")

	user := m.profile
	if user == nil {
		user = m.manager.CurrentUser()
	}
	if user == nil {
		b.WriteString("Профиль не загружен\n")
	} else {
		b.WriteString("Имя: " + user.FullName() + "\n")
		b.WriteString("Email: " + user.Email + "\n")
		if user.PhoneNumber != "" {
			b.WriteString("Телефон: " + user.PhoneNumber + "\n")
		}
		if user.BirthDate != "" {
			b.WriteString("Дата рождения: " + user.BirthDate + "\n")
		}
	}

	if m.confirmDelete {
		b.WriteString("\n" + warnStyle.Render("Удалить учетную запись без возможности восстановления? (y/n)") + "\n")
	} else {
		b.WriteString("\n" + subtleStyle.Render(m.helpText[profileScreen]) + "\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}

// updatePasswordScreen обрабатывает экран смены пароля.
func (m *model) updatePasswordScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleFormInput(msg, m.passwordInputs, &m.passwordField, m.passwordAction, profileScreen)
}

// passwordAction проверяет форму и отправляет запрос на смену пароля.
// При несовпадении подтверждения запрос не отправляется.
func (m *model) passwordAction() (tea.Model, tea.Cmd) {
	current := m.passwordInputs[passwordFieldCurrent].Value()
	updated := m.passwordInputs[passwordFieldNew].Value()
	confirm := m.passwordInputs[passwordFieldConfirm].Value()

	if updated != confirm {
		m.err = errNewPasswordMismatch
		return m, nil
	}
	m.err = nil
	cmd := m.makeChangePasswordCmd(current, updated)
	model, statusCmd := m.setStatusMessage("Смена пароля...")
	return model, tea.Batch(cmd, statusCmd)
}

// viewPasswordScreen отображает форму смены пароля.
func (m *model) viewPasswordScreen() string {
	return m.viewFormScreen("Смена пароля", m.helpText[passwordScreen], m.passwordInputs...)
}
