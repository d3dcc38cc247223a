package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ptakun123/HotelProj/internal/auth"
)

// Высота, резервируемая под подсказку и строку статуса.
const helpStatusHeightOffset = 4

// navigate переводит приложение на экран target через Route Guard:
// защищенный экран без сессии отправляет на вход, экран только для гостей
// при активной сессии — на профиль.
func (m *model) navigate(target screenState) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch auth.Decide(routeModes[target], m.manager.LoggedIn()) {
	case auth.RedirectLogin:
		slog.Debug("Переход на защищенный экран без сессии", "target", target.String())
		target = loginScreen
	case auth.RedirectProfile:
		slog.Debug("Переход на гостевой экран с активной сессией", "target", target.String())
		target = profileScreen
		cmds = append(cmds, m.makeLoadProfileCmd())
	case auth.ShowView:
	}

	m.previousScreenState = m.state
	m.state = target

	// Начальный фокус для форм
	switch target {
	case loginScreen:
		m.loginFocusedField = 0
		m.loginEmailInput.Focus()
		m.loginPasswordInput.Blur()
		cmds = append(cmds, textinput.Blink)
	case registerScreen:
		m.registerFocusedField = registerFieldFirstName
		cmds = append(cmds, focusFormField(m.registerInputs, m.registerFocusedField))
	case searchScreen:
		cmds = append(cmds, focusFormField(m.searchInputs, m.searchFocusedField))
		if !m.dictionariesLoaded {
			cmds = append(cmds, m.makeDictionariesCmd())
		}
	case passwordScreen:
		cmds = append(cmds, focusFormField(m.passwordInputs, m.passwordField))
	}

	cmds = append(cmds, tea.ClearScreen)
	return m, tea.Batch(cmds...)
}

// Update обрабатывает входящие сообщения.
//
//nolint:gocognit,gocyclo,funlen // роутинг сообщений по экранам
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// == Глобальные сообщения (не зависят от экрана) ==
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := m.docStyle.GetFrameSize()
		listWidth := msg.Width - h
		listHeight := msg.Height - v - helpStatusHeightOffset

		m.menu.SetSize(listWidth, listHeight)
		m.resultsList.SetSize(listWidth, listHeight)
		m.reservationsList.SetSize(listWidth, listHeight)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		m.statusTimer = nil
		return m, nil

	// == Результаты асинхронных команд ==
	case loginSuccessMsg:
		m.loginPasswordInput.SetValue("")
		m.err = nil
		slog.Info("Вход выполнен", "user_id", msg.response.User.ID)
		newModel, navCmd := m.navigate(menuScreen)
		model, statusCmd := newModel.(*model).setStatusMessage("Вход выполнен")
		return model, tea.Batch(navCmd, statusCmd)

	case LoginError:
		m.status = ""
		m.err = msg
		return m, nil

	case registerSuccessMsg:
		m.err = nil
		for i := range m.registerInputs {
			m.registerInputs[i].SetValue("")
		}
		status := "Регистрация выполнена"
		if msg.response.AccessToken == "" {
			status = "Регистрация выполнена, войдите в систему"
		}
		newModel, navCmd := m.navigate(menuScreen)
		model, statusCmd := newModel.(*model).setStatusMessage(status)
		return model, tea.Batch(navCmd, statusCmd)

	case RegisterError:
		m.status = ""
		m.err = msg
		return m, nil

	case searchResultsMsg:
		if m.state != searchScreen && m.state != resultsScreen {
			// Пользователь уже ушел с поиска, поздний ответ игнорируем
			slog.Debug("Поздний ответ поиска отброшен", "state", m.state.String())
			return m, nil
		}
		m.err = nil
		m.status = ""
		m.lastCriteria = msg.criteria
		items := make([]list.Item, 0, len(msg.rooms))
		for _, room := range msg.rooms {
			items = append(items, roomItem{room: room})
		}
		m.resultsList.SetItems(items)
		m.resultsList.ResetSelected()
		m.previousScreenState = m.state
		m.state = resultsScreen
		return m, tea.ClearScreen

	case SearchError:
		m.status = ""
		m.err = msg
		return m, nil

	case roomInfoMsg:
		// Подробности относятся к выбранной комнате, поздний ответ для
		// другой комнаты отбрасывается
		if m.selectedRoom == nil || m.selectedRoom.ID != msg.roomID {
			return m, nil
		}
		m.roomDetails = msg.room
		m.hotelDetails = msg.hotel
		return m, nil

	case dictionariesMsg:
		m.dictionariesLoaded = true
		m.countries = msg.countries
		m.roomFacilities = msg.roomFacilities
		m.hotelFacilities = msg.hotelFacilities
		return m, nil

	case reservationDoneMsg:
		m.err = nil
		m.selectedRoom = nil
		newModel, navCmd := m.navigate(reservationsScreen)
		model, statusCmd := newModel.(*model).setStatusMessage("Бронирование создано")
		return model, tea.Batch(navCmd, statusCmd, m.makeListReservationsCmd())

	case ReserveError:
		m.status = ""
		m.err = msg
		return m, nil

	case reservationsLoadedMsg:
		m.err = nil
		m.status = ""
		items := make([]list.Item, 0, len(msg.reservations))
		for _, reservation := range msg.reservations {
			items = append(items, reservationItem{reservation: reservation})
		}
		m.reservationsList.SetItems(items)
		return m, nil

	case ReservationsError:
		m.status = ""
		m.err = msg
		return m, nil

	case cancellationDoneMsg:
		m.err = nil
		m.removeReservationItem(msg.reservationID)
		return m.setStatusMessage("Бронирование отменено")

	case CancelError:
		// Список остается прежним
		m.status = ""
		m.err = msg
		return m, nil

	case profileLoadedMsg:
		m.err = nil
		m.status = ""
		m.profile = msg.user
		return m, nil

	case ProfileError:
		m.status = ""
		m.err = msg
		return m, nil

	case passwordChangedMsg:
		m.err = nil
		for i := range m.passwordInputs {
			m.passwordInputs[i].SetValue("")
		}
		m.state = profileScreen
		return m.setStatusMessage("Пароль изменен")

	case PasswordError:
		m.status = ""
		m.err = msg
		return m, nil

	case accountDeletedMsg:
		m.err = nil
		m.profile = nil
		m.confirmDelete = false
		newModel, navCmd := m.navigate(registerScreen)
		model, statusCmd := newModel.(*model).setStatusMessage("Учетная запись удалена")
		return model, tea.Batch(navCmd, statusCmd)

	case DeleteAccountError:
		m.status = ""
		m.err = msg
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// == Делегирование текущему экрану ==
	switch m.state {
	case menuScreen:
		return m.updateMenuScreen(msg)
	case loginScreen:
		return m.updateLoginScreen(msg)
	case registerScreen:
		return m.updateRegisterScreen(msg)
	case searchScreen:
		return m.updateSearchScreen(msg)
	case resultsScreen:
		return m.updateResultsScreen(msg)
	case roomDetailScreen:
		return m.updateRoomDetailScreen(msg)
	case reservationsScreen:
		return m.updateReservationsScreen(msg)
	case profileScreen:
		return m.updateProfileScreen(msg)
	case passwordScreen:
		return m.updatePasswordScreen(msg)
	}
	return m, nil
}
