package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ptakun123/HotelProj/internal/booking"
)

// updateRoomDetailScreen обрабатывает экран деталей комнаты с формой
// подтверждения бронирования.
func (m *model) updateRoomDetailScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, keyBack:
			m.err = nil
			m.state = m.previousScreenState
			return m, tea.ClearScreen
		case "i":
			// Переключение фактура/чек; при чеке NIP не нужен и очищается
			m.wantsInvoice = !m.wantsInvoice
			if !m.wantsInvoice {
				m.taxIDInput.SetValue("")
				if m.reserveField == 1 {
					m.reserveField = 0
					m.taxIDInput.Blur()
					m.fullNameInput.Focus()
				}
			}
			return m, nil
		case keyTab, keyShiftTab:
			if m.wantsInvoice { // Второе поле доступно только для фактуры
				if m.reserveField == 0 {
					m.reserveField = 1
					m.fullNameInput.Blur()
					m.taxIDInput.Focus()
				} else {
					m.reserveField = 0
					m.taxIDInput.Blur()
					m.fullNameInput.Focus()
				}
			}
			return m, nil
		case keyEnter:
			return m.submitReservation()
		}
	}

	var cmd tea.Cmd
	if m.reserveField == 0 {
		m.fullNameInput, cmd = m.fullNameInput.Update(msg)
	} else {
		m.taxIDInput, cmd = m.taxIDInput.Update(msg)
	}
	return m, cmd
}

// submitReservation проверяет предусловия и отправляет бронирование.
// Ошибки предусловий показываются на месте, запрос при них не уходит.
func (m *model) submitReservation() (tea.Model, tea.Cmd) {
	if m.selectedRoom == nil {
		return m, nil
	}
	form := booking.BillingForm{
		FullName: strings.TrimSpace(m.fullNameInput.Value()),
		Invoice:  m.wantsInvoice,
		TaxID:    strings.TrimSpace(m.taxIDInput.Value()),
	}
	m.err = nil
	cmd := m.makeReserveCmd(*m.selectedRoom, form, m.stayDates)
	model, statusCmd := m.setStatusMessage("Отправка бронирования...")
	return model, tea.Batch(cmd, statusCmd)
}

// viewRoomDetailScreen отображает детали комнаты и форму бронирования.
func (m *model) viewRoomDetailScreen() string {
	if m.selectedRoom == nil {
		return "Комната не выбрана"
	}
	room := m.selectedRoom

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s — комната %d", room.HotelName, stars(room.HotelStars), room.ID)) + "\n\n")
	b.WriteString(fmt.Sprintf("Расположение: %s, %s\n", room.City, room.Country))
	b.WriteString(fmt.Sprintf("Вместимость: %d чел.\n", room.Capacity))
	b.WriteString(fmt.Sprintf("Цена за ночь: %.2f\n", room.PricePerNight))
	if room.TotalPrice > 0 {
		b.WriteString(fmt.Sprintf("Цена за весь срок: %.2f\n", room.TotalPrice))
	}
	if m.stayDates.FirstNight != "" {
		b.WriteString(fmt.Sprintf("Проживание: %s — %s\n", m.stayDates.FirstNight, m.stayDates.LastNight))
	}
	if room.ImageURL != "" {
		b.WriteString("Фото: " + room.ImageURL + "\n")
	}
	if m.roomDetails != nil && len(m.roomDetails.Facilities) > 0 {
		b.WriteString("Удобства комнаты: " + strings.Join(m.roomDetails.Facilities, ", ") + "\n")
	}
	if m.hotelDetails != nil {
		addr := m.hotelDetails.Address
		if addr.Street != "" {
			b.WriteString(fmt.Sprintf("Адрес: %s %s, %s\n", addr.Street, addr.Building, addr.City))
		}
		if len(m.hotelDetails.Facilities) > 0 {
			b.WriteString("Удобства отеля: " + strings.Join(m.hotelDetails.Facilities, ", ") + "\n")
		}
	}

	b.WriteString("\n" + titleStyle.Render("Бронирование") + "\n")
	b.WriteString(m.fullNameInput.View() + "\n")
	billName := "чек"
	if m.wantsInvoice {
		billName = "фактура"
		b.WriteString(m.taxIDInput.View() + "\n")
	}
	b.WriteString("Тип счета: " + billName + "\n")

	b.WriteString("\n" + subtleStyle.Render("Enter — забронировать, i — фактура/чек, Tab — поля, Esc — назад") + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}
