package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateMenuScreen обрабатывает главное меню.
func (m *model) updateMenuScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit:
			return m, tea.Quit
		case keyEnter:
			item, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			return m.selectMenuItem(item)
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// selectMenuItem выполняет действие выбранного пункта меню. Переходы на
// экраны идут через navigate, который применяет Route Guard.
func (m *model) selectMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	m.err = nil
	switch item.id {
	case "search":
		return m.navigate(searchScreen)
	case "reservations":
		newModel, navCmd := m.navigate(reservationsScreen)
		if m.state != reservationsScreen {
			// Guard перенаправил на вход, список не загружаем
			return newModel, navCmd
		}
		return newModel, tea.Batch(navCmd, m.makeListReservationsCmd())
	case "profile":
		newModel, navCmd := m.navigate(profileScreen)
		if m.state != profileScreen {
			return newModel, navCmd
		}
		return newModel, tea.Batch(navCmd, m.makeLoadProfileCmd())
	case "login":
		return m.navigate(loginScreen)
	case "register":
		return m.navigate(registerScreen)
	case "logout":
		if !m.manager.LoggedIn() {
			return m.setStatusMessage("Вы не вошли в систему")
		}
		m.manager.Logout()
		m.profile = nil
		return m.setStatusMessage("Вы вышли из учетной записи")
	}
	return m, nil
}

// viewMenuScreen отображает главное меню.
func (m *model) viewMenuScreen() string {
	return m.menu.View()
}
