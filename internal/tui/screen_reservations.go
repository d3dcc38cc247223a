package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// updateReservationsScreen обрабатывает экран списка активных бронирований.
// Клавиша d отменяет выделенное бронирование.
func (m *model) updateReservationsScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, keyBack:
			m.err = nil
			return m.navigate(menuScreen)
		case "d":
			item, ok := m.reservationsList.SelectedItem().(reservationItem)
			if !ok {
				return m, nil
			}
			m.err = nil
			cmd := m.makeCancelCmd(item.reservation.ID)
			model, statusCmd := m.setStatusMessage(fmt.Sprintf("Отмена бронирования #%d...", item.reservation.ID))
			return model, tea.Batch(cmd, statusCmd)
		case "r":
			model, statusCmd := m.setStatusMessage("Обновление списка бронирований...")
			return model, tea.Batch(m.makeListReservationsCmd(), statusCmd)
		}
	}

	var cmd tea.Cmd
	m.reservationsList, cmd = m.reservationsList.Update(msg)
	return m, cmd
}

// removeReservationItem удаляет из списка ровно одно бронирование по ID.
// Остальные элементы остаются на своих местах.
func (m *model) removeReservationItem(reservationID int64) {
	for idx, it := range m.reservationsList.Items() {
		item, ok := it.(reservationItem)
		if !ok {
			continue
		}
		if item.reservation.ID == reservationID {
			m.reservationsList.RemoveItem(idx)
			return
		}
	}
}

// viewReservationsScreen отображает список бронирований.
func (m *model) viewReservationsScreen() string {
	return m.reservationsList.View()
}
