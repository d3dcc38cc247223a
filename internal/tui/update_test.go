//nolint:testpackage // Тесты в том же пакете для доступа к приватным компонентам
package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ptakun123/HotelProj/internal/search"
	"github.com/Ptakun123/HotelProj/models"
)

// TestNavigate_Guard проверяет, что навигация проходит через Route Guard.
func TestNavigate_Guard(t *testing.T) {
	tests := []struct {
		name          string
		loggedIn      bool
		target        screenState
		expectedState screenState
	}{
		{"ЗащищенныйЭкранБезСессии", false, reservationsScreen, loginScreen},
		{"ПрофильБезСессии", false, profileScreen, loginScreen},
		{"ЗащищенныйЭкранССессией", true, reservationsScreen, reservationsScreen},
		{"ВходПриАктивнойСессии", true, loginScreen, profileScreen},
		{"РегистрацияПриАктивнойСессии", true, registerScreen, profileScreen},
		{"ВходДляГостя", false, loginScreen, loginScreen},
		{"ПоискДоступенВсем", false, searchScreen, searchScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			m := newTestModel(t, tt.loggedIn)
			updatedModel, _ := m.navigate(tt.target)
			updated, ok := updatedModel.(*model)
			require.True(ok)

			assert.Equal(t, tt.expectedState, updated.state)
		})
	}
}

// TestUpdate_SearchResults: успешный поиск переводит на экран результатов и
// запоминает критерии для экрана бронирования.
func TestUpdate_SearchResults(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, false)
	m.state = searchScreen

	criteria := search.Criteria{StartDate: "2026-09-01", EndDate: "2026-09-05", Guests: 2}
	rooms := []models.Room{
		{ID: 1, HotelID: 7, HotelName: "Super Hotel", ImageURL: "http://img/main.jpg"},
		{ID: 2, HotelID: 9, HotelName: "Grand Hotel"},
	}

	updatedModel, _ := m.Update(searchResultsMsg{rooms: rooms, criteria: criteria})
	updated, ok := updatedModel.(*model)
	require.True(ok)

	assert.Equal(resultsScreen, updated.state)
	assert.Equal(criteria, updated.lastCriteria)
	require.Len(updated.resultsList.Items(), 2)

	item, ok := updated.resultsList.Items()[0].(roomItem)
	require.True(ok)
	assert.Equal("Super Hotel", item.room.HotelName)
	assert.Contains(item.Title(), "[фото]")
}

// TestUpdate_SearchResults_LateResponse: поздний ответ поиска после ухода с
// экрана игнорируется.
func TestUpdate_SearchResults_LateResponse(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, false)
	m.state = menuScreen

	updatedModel, _ := m.Update(searchResultsMsg{
		rooms:    []models.Room{{ID: 1, HotelID: 7}},
		criteria: search.Criteria{StartDate: "2026-09-01", EndDate: "2026-09-05", Guests: 2},
	})
	updated, ok := updatedModel.(*model)
	require.True(ok)

	assert.Equal(menuScreen, updated.state)
	assert.Empty(updated.resultsList.Items())
	assert.Empty(updated.lastCriteria.StartDate)
}

func seedReservations(m *model) {
	m.reservationsList.SetItems([]list.Item{
		reservationItem{reservation: models.Reservation{ID: 10, Hotel: models.ReservationHotel{Name: "Super Hotel"}}},
		reservationItem{reservation: models.Reservation{ID: 20, Hotel: models.ReservationHotel{Name: "Grand Hotel"}}},
	})
}

// TestUpdate_CancellationDone: успешная отмена удаляет из списка ровно одно
// бронирование.
func TestUpdate_CancellationDone(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, true)
	m.state = reservationsScreen
	seedReservations(m)

	updatedModel, _ := m.Update(cancellationDoneMsg{reservationID: 10})
	updated, ok := updatedModel.(*model)
	require.True(ok)

	require.Len(updated.reservationsList.Items(), 1)
	remaining, ok := updated.reservationsList.Items()[0].(reservationItem)
	require.True(ok)
	assert.Equal(int64(20), remaining.reservation.ID)
}

// TestUpdate_CancelError: при ошибке отмены список остается нетронутым.
func TestUpdate_CancelError(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, true)
	m.state = reservationsScreen
	seedReservations(m)

	updatedModel, _ := m.Update(CancelError{err: tassert.AnError})
	updated, ok := updatedModel.(*model)
	require.True(ok)

	assert.Len(updated.reservationsList.Items(), 2)
	require.Error(updated.err)
}

// TestUpdate_ReservationsLoaded: загруженный список заполняет экран.
func TestUpdate_ReservationsLoaded(t *testing.T) {
	require := require.New(t)

	m := newTestModel(t, true)
	m.state = reservationsScreen

	updatedModel, _ := m.Update(reservationsLoadedMsg{reservations: []models.Reservation{
		{ID: 5, FirstNight: "2026-09-01", LastNight: "2026-09-05", BillType: models.BillReceipt},
	}})
	updated, ok := updatedModel.(*model)
	require.True(ok)
	require.Len(updated.reservationsList.Items(), 1)
}

// TestUpdate_RoomInfo: подробности прикрепляются только к выбранной комнате,
// поздний ответ для другой комнаты отбрасывается.
func TestUpdate_RoomInfo(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, true)
	m.state = roomDetailScreen
	room := models.Room{ID: 12, HotelID: 7}
	m.selectedRoom = &room

	details := &models.RoomDetails{ID: 12, Facilities: []string{"wifi"}}
	updatedModel, _ := m.Update(roomInfoMsg{roomID: 12, room: details})
	updated, ok := updatedModel.(*model)
	require.True(ok)
	require.NotNil(updated.roomDetails)
	assert.Equal([]string{"wifi"}, updated.roomDetails.Facilities)

	// Ответ для другой комнаты игнорируется
	stale := &models.RoomDetails{ID: 99, Facilities: []string{"tv"}}
	updatedModel, _ = updated.Update(roomInfoMsg{roomID: 99, room: stale})
	updated, ok = updatedModel.(*model)
	require.True(ok)
	assert.Equal(int64(12), updated.roomDetails.ID)
}

// TestUpdate_Dictionaries: загруженные справочники попадают в подсказку
// экрана поиска.
func TestUpdate_Dictionaries(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, false)
	m.state = searchScreen

	updatedModel, _ := m.Update(dictionariesMsg{
		countries:      []string{"Poland", "Germany"},
		roomFacilities: []string{"wifi"},
	})
	updated, ok := updatedModel.(*model)
	require.True(ok)

	assert.True(updated.dictionariesLoaded)
	view := updated.viewSearchScreen()
	assert.Contains(view, "Poland")
	assert.Contains(view, "wifi")
}

// TestUpdate_AccountDeleted: после удаления учетной записи сессии нет и
// пользователь оказывается на экране регистрации.
func TestUpdate_AccountDeleted(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, true)
	m.state = profileScreen
	m.profile = &models.User{ID: 7}
	// Команда удаления уже выполнила manager.Logout
	m.manager.Logout()

	updatedModel, _ := m.Update(accountDeletedMsg{})
	updated, ok := updatedModel.(*model)
	require.True(ok)

	assert.Equal(registerScreen, updated.state)
	assert.Nil(updated.profile)
	assert.False(updated.confirmDelete)
}
