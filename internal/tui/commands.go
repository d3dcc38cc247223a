package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ptakun123/HotelProj/internal/booking"
	"github.com/Ptakun123/HotelProj/internal/search"
	"github.com/Ptakun123/HotelProj/models"
)

// clearStatusCmd возвращает команду, которая отправит clearStatusMsg через delay.
func clearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// --- Сообщения и команды для входа/регистрации --- //

type loginSuccessMsg struct {
	response *models.LoginResponse
}

// LoginError сообщает об ошибке входа.
type LoginError struct {
	err error
}

func (e LoginError) Error() string { return e.err.Error() }

// makeLoginCmd выполняет вход через менеджер сессии.
func (m *model) makeLoginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.manager.Login(context.Background(), email, password)
		if err != nil {
			// Возвращаем исходную ошибку без добавления контекста
			return LoginError{err: err}
		}
		return loginSuccessMsg{response: resp}
	}
}

type registerSuccessMsg struct {
	response *models.RegisterResponse
}

// RegisterError сообщает об ошибке регистрации.
type RegisterError struct {
	err error
}

func (e RegisterError) Error() string { return e.err.Error() }

// makeRegisterCmd выполняет регистрацию через менеджер сессии.
func (m *model) makeRegisterCmd(form models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.manager.Register(context.Background(), form)
		if err != nil {
			return RegisterError{err: err}
		}
		return registerSuccessMsg{response: resp}
	}
}

// --- Сообщения и команды для поиска --- //

type searchResultsMsg struct {
	rooms    []models.Room
	criteria search.Criteria
}

// SearchError сообщает об ошибке поиска.
type SearchError struct {
	err error
}

func (e SearchError) Error() string { return e.err.Error() }

// makeSearchCmd выполняет поиск свободных комнат.
func (m *model) makeSearchCmd(criteria search.Criteria) tea.Cmd {
	return func() tea.Msg {
		rooms, err := m.searcher.Search(context.Background(), criteria)
		if err != nil {
			return SearchError{err: err}
		}
		return searchResultsMsg{rooms: rooms, criteria: criteria}
	}
}

// --- Сообщения и команды для бронирований --- //

type reservationDoneMsg struct{}

// ReserveError сообщает об ошибке создания бронирования.
type ReserveError struct {
	err error
}

func (e ReserveError) Error() string { return e.err.Error() }

// makeReserveCmd создает бронирование выбранной комнаты.
func (m *model) makeReserveCmd(room models.Room, form booking.BillingForm, dates booking.StayDates) tea.Cmd {
	return func() tea.Msg {
		if err := m.workflow.Reserve(context.Background(), room, form, dates); err != nil {
			return ReserveError{err: err}
		}
		return reservationDoneMsg{}
	}
}

type reservationsLoadedMsg struct {
	reservations []models.Reservation
}

// ReservationsError сообщает об ошибке загрузки списка бронирований.
type ReservationsError struct {
	err error
}

func (e ReservationsError) Error() string { return e.err.Error() }

// makeListReservationsCmd загружает активные бронирования пользователя.
func (m *model) makeListReservationsCmd() tea.Cmd {
	return func() tea.Msg {
		reservations, err := m.workflow.List(context.Background())
		if err != nil {
			return ReservationsError{err: err}
		}
		return reservationsLoadedMsg{reservations: reservations}
	}
}

type cancellationDoneMsg struct {
	reservationID int64
}

// CancelError сообщает об ошибке отмены бронирования.
type CancelError struct {
	err error
}

func (e CancelError) Error() string { return e.err.Error() }

// makeCancelCmd отменяет бронирование. При ошибке список остается прежним.
func (m *model) makeCancelCmd(reservationID int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.workflow.Cancel(context.Background(), reservationID); err != nil {
			return CancelError{err: err}
		}
		return cancellationDoneMsg{reservationID: reservationID}
	}
}

type roomInfoMsg struct {
	roomID int64
	room   *models.RoomDetails
	hotel  *models.HotelDetails
}

// makeRoomInfoCmd загружает подробности комнаты и отеля для экрана деталей.
// Отказ любого из запросов не мешает показу данных из результатов поиска.
func (m *model) makeRoomInfoCmd(roomID, hotelID int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		info := roomInfoMsg{roomID: roomID}

		room, err := m.client.GetRoom(ctx, roomID)
		if err != nil {
			slog.Warn("Не удалось загрузить подробности комнаты", "id_room", roomID, "error", err)
		} else {
			info.room = room
		}

		hotel, err := m.client.GetHotel(ctx, hotelID)
		if err != nil {
			slog.Warn("Не удалось загрузить подробности отеля", "id_hotel", hotelID, "error", err)
		} else {
			info.hotel = hotel
		}
		return info
	}
}

type dictionariesMsg struct {
	countries       []string
	roomFacilities  []string
	hotelFacilities []string
}

// makeDictionariesCmd загружает справочники для подсказок в фильтрах поиска.
// Справочники необязательны: любой отказ оставляет подсказку пустой.
func (m *model) makeDictionariesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var msg dictionariesMsg

		if countries, err := m.client.Countries(ctx); err == nil {
			msg.countries = countries
		} else {
			slog.Warn("Не удалось загрузить список стран", "error", err)
		}
		if facilities, err := m.client.RoomFacilities(ctx); err == nil {
			msg.roomFacilities = facilities
		} else {
			slog.Warn("Не удалось загрузить удобства комнат", "error", err)
		}
		if facilities, err := m.client.HotelFacilities(ctx); err == nil {
			msg.hotelFacilities = facilities
		} else {
			slog.Warn("Не удалось загрузить удобства отелей", "error", err)
		}
		return msg
	}
}

// --- Сообщения и команды для профиля --- //

type profileLoadedMsg struct {
	user *models.User
}

// ProfileError сообщает об ошибке загрузки профиля.
type ProfileError struct {
	err error
}

func (e ProfileError) Error() string { return e.err.Error() }

// makeLoadProfileCmd загружает профиль текущего пользователя.
func (m *model) makeLoadProfileCmd() tea.Cmd {
	return func() tea.Msg {
		user := m.manager.CurrentUser()
		if user == nil {
			return ProfileError{err: booking.ErrNotAuthenticated}
		}
		profile, err := m.client.GetUser(context.Background(), user.ID)
		if err != nil {
			return ProfileError{err: err}
		}
		return profileLoadedMsg{user: profile}
	}
}

type passwordChangedMsg struct{}

// PasswordError сообщает об ошибке смены пароля.
type PasswordError struct {
	err error
}

func (e PasswordError) Error() string { return e.err.Error() }

// makeChangePasswordCmd меняет пароль текущего пользователя.
func (m *model) makeChangePasswordCmd(current, updated string) tea.Cmd {
	return func() tea.Msg {
		user := m.manager.CurrentUser()
		if user == nil {
			return PasswordError{err: booking.ErrNotAuthenticated}
		}
		req := models.PasswordChangeRequest{CurrentPassword: current, NewPassword: updated}
		if err := m.client.ChangePassword(context.Background(), user.ID, req); err != nil {
			return PasswordError{err: err}
		}
		return passwordChangedMsg{}
	}
}

type accountDeletedMsg struct{}

// DeleteAccountError сообщает об ошибке удаления учетной записи.
type DeleteAccountError struct {
	err error
}

func (e DeleteAccountError) Error() string { return e.err.Error() }

// makeDeleteAccountCmd удаляет учетную запись и при успехе завершает сессию.
func (m *model) makeDeleteAccountCmd() tea.Cmd {
	return func() tea.Msg {
		user := m.manager.CurrentUser()
		if user == nil {
			return DeleteAccountError{err: booking.ErrNotAuthenticated}
		}
		if err := m.client.DeleteUser(context.Background(), user.ID); err != nil {
			return DeleteAccountError{err: err}
		}
		m.manager.Logout()
		return accountDeletedMsg{}
	}
}
