package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ptakun123/HotelProj/internal/search"
)

// collectCriteria собирает критерии поиска из полей формы.
// Ошибки разбора чисел не прерывают сбор: пустое или нечитаемое значение
// означает "фильтр не задан", окончательную валидацию делает search.BuildRequest.
func (m *model) collectCriteria() search.Criteria {
	c := search.Criteria{
		StartDate: strings.TrimSpace(m.searchInputs[searchFieldStartDate].Value()),
		EndDate:   strings.TrimSpace(m.searchInputs[searchFieldEndDate].Value()),
	}

	if guests, err := strconv.Atoi(strings.TrimSpace(m.searchInputs[searchFieldGuests].Value())); err == nil {
		c.Guests = guests
	}
	if raw := strings.TrimSpace(m.searchInputs[searchFieldLowestPrice].Value()); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			c.LowestPrice = &price
		}
	}
	if raw := strings.TrimSpace(m.searchInputs[searchFieldHighestPrice].Value()); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			c.HighestPrice = &price
		}
	}
	c.RoomFacilities = splitCSV(m.searchInputs[searchFieldRoomFacilities].Value())
	c.HotelFacilities = splitCSV(m.searchInputs[searchFieldHotelFacilities].Value())
	c.Countries = splitCSV(m.searchInputs[searchFieldCountries].Value())
	c.Cities = splitCSV(m.searchInputs[searchFieldCities].Value())
	if stars, err := strconv.Atoi(strings.TrimSpace(m.searchInputs[searchFieldMinStars].Value())); err == nil {
		c.MinHotelStars = stars
	}
	return c
}

// updateSearchScreen обрабатывает ввод фильтров поиска.
func (m *model) updateSearchScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	searchAction := func() (tea.Model, tea.Cmd) {
		criteria := m.collectCriteria()
		// Локальная валидация до отправки: при ошибке запрос не уходит.
		if _, err := search.BuildRequest(criteria); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		cmd := m.makeSearchCmd(criteria)
		model, statusCmd := m.setStatusMessage("Поиск свободных комнат...")
		return model, tea.Batch(cmd, statusCmd)
	}

	return m.handleFormInput(msg, m.searchInputs, &m.searchFocusedField, searchAction, menuScreen)
}

// dictionaryHint собирает подстроку подсказки из загруженных справочников.
func dictionaryHint(label string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	const maxShown = 8
	if len(values) > maxShown {
		values = values[:maxShown]
	}
	return "\n" + label + ": " + strings.Join(values, ", ")
}

// viewSearchScreen отображает экран фильтров поиска вместе с подсказками
// из справочников сервера.
func (m *model) viewSearchScreen() string {
	hint := "Enter — искать (с последнего поля), Tab — следующее поле, Esc — назад"
	hint += dictionaryHint("Страны", m.countries)
	hint += dictionaryHint("Удобства комнат", m.roomFacilities)
	hint += dictionaryHint("Удобства отелей", m.hotelFacilities)
	return m.viewFormScreen("Поиск свободных комнат", hint, m.searchInputs...)
}
