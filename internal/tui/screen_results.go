package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ptakun123/HotelProj/internal/booking"
)

// updateResultsScreen обрабатывает список результатов поиска.
func (m *model) updateResultsScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, keyBack:
			m.state = searchScreen
			return m, tea.ClearScreen
		case keyEnter:
			if item, ok := m.resultsList.SelectedItem().(roomItem); ok {
				room := item.room
				m.selectedRoom = &room
				m.roomDetails = nil
				m.hotelDetails = nil
				// Даты последнего поиска передаются на экран бронирования;
				// если их нет, рабочий процесс восстановит даты из хранилища.
				m.stayDates = booking.StayDates{
					FirstNight: m.lastCriteria.StartDate,
					LastNight:  m.lastCriteria.EndDate,
				}
				m.fullNameInput.SetValue(m.defaultFullName())
				m.taxIDInput.SetValue("")
				m.wantsInvoice = false
				m.reserveField = 0
				m.fullNameInput.Focus()
				m.taxIDInput.Blur()
				m.err = nil
				m.previousScreenState = resultsScreen
				m.state = roomDetailScreen
				// Подробности комнаты и отеля подгружаются в фоне
				return m, tea.Batch(m.makeRoomInfoCmd(room.ID, room.HotelID), tea.ClearScreen)
			}
		}
	}

	var cmd tea.Cmd
	m.resultsList, cmd = m.resultsList.Update(msg)
	return m, cmd
}

// defaultFullName предзаполняет имя в форме бронирования данными сессии.
func (m *model) defaultFullName() string {
	if user := m.manager.CurrentUser(); user != nil {
		return user.FullName()
	}
	return ""
}

// viewResultsScreen отображает список найденных комнат.
func (m *model) viewResultsScreen() string {
	return m.resultsList.View()
}
