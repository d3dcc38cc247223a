package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ptakun123/HotelProj/models"
)

// Роль обычного пользователя, ожидаемая бэкендом при регистрации.
const defaultUserRole = "U"

// errPasswordMismatch — локальная ошибка валидации: пароль и подтверждение
// не совпадают. Запрос на сервер не отправляется.
var errPasswordMismatch = errors.New("пароль и подтверждение должны совпадать")

// updateRegisterScreen обрабатывает ввод данных для регистрации.
func (m *model) updateRegisterScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	registerAction := func() (tea.Model, tea.Cmd) {
		password := m.registerInputs[registerFieldPassword].Value()
		confirm := m.registerInputs[registerFieldPasswordConfirm].Value()
		if password != confirm {
			m.err = errPasswordMismatch
			return m, nil
		}
		m.err = nil

		form := models.RegisterRequest{
			FirstName:   m.registerInputs[registerFieldFirstName].Value(),
			LastName:    m.registerInputs[registerFieldLastName].Value(),
			Email:       m.registerInputs[registerFieldEmail].Value(),
			Password:    password,
			PhoneNumber: m.registerInputs[registerFieldPhone].Value(),
			BirthDate:   m.registerInputs[registerFieldBirthDate].Value(),
			Role:        defaultUserRole,
		}
		cmd := m.makeRegisterCmd(form)
		model, statusCmd := m.setStatusMessage("Выполняется регистрация...")
		return model, tea.Batch(cmd, statusCmd)
	}

	return m.handleFormInput(msg, m.registerInputs, &m.registerFocusedField, registerAction, menuScreen)
}

// viewRegisterScreen отображает экран регистрации.
func (m *model) viewRegisterScreen() string {
	return m.viewFormScreen(
		"Регистрация",
		"Enter — зарегистрироваться (с последнего поля), Tab — следующее поле, Esc — назад",
		m.registerInputs...,
	)
}
