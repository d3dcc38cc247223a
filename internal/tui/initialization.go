package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/auth"
	"github.com/Ptakun123/HotelProj/internal/booking"
	"github.com/Ptakun123/HotelProj/internal/search"
	"github.com/Ptakun123/HotelProj/internal/session"
)

// Константы, используемые при инициализации.
const (
	initInputCharLimit    = 128
	initInputWidth        = 30
	initPasswordCharLimit = 156
	initDateCharLimit     = 10 // YYYY-MM-DD

	docStyleMarginVertical   = 1
	docStyleMarginHorizontal = 2
)

// newInput создает текстовое поле со стандартными ограничениями.
func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = initInputCharLimit
	ti.Width = initInputWidth
	return ti
}

// newPasswordInput создает поле ввода пароля со скрытым вводом.
func newPasswordInput(placeholder string) textinput.Model {
	ti := newInput(placeholder)
	ti.CharLimit = initPasswordCharLimit
	ti.EchoMode = textinput.EchoPassword
	return ti
}

// newDateInput создает поле ввода даты.
func newDateInput(placeholder string) textinput.Model {
	ti := newInput(placeholder)
	ti.CharLimit = initDateCharLimit
	return ti
}

// initMenu инициализирует главное меню.
func initMenu() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New([]list.Item{
		menuItem{title: "Поиск комнат", id: "search"},
		menuItem{title: "Мои бронирования", id: "reservations"},
		menuItem{title: "Профиль", id: "profile"},
		menuItem{title: "Войти", id: "login"},
		menuItem{title: "Регистрация", id: "register"},
		menuItem{title: "Выйти из учетной записи", id: "logout"},
	}, delegate, defaultListWidth, defaultListHeight)
	l.Title = "Бронирование отелей"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initResultsList инициализирует список результатов поиска.
func initResultsList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	l.Title = "Свободные комнаты"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initReservationsList инициализирует список бронирований.
func initReservationsList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	l.Title = "Мои бронирования"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initSearchInputs инициализирует поля формы поиска в порядке индексов
// searchField*.
func initSearchInputs() []textinput.Model {
	inputs := make([]textinput.Model, numSearchFields)
	inputs[searchFieldStartDate] = newDateInput("Дата заезда (ГГГГ-ММ-ДД)")
	inputs[searchFieldEndDate] = newDateInput("Дата выезда (ГГГГ-ММ-ДД)")
	inputs[searchFieldGuests] = newInput("Число гостей")
	inputs[searchFieldGuests].SetValue("1")
	inputs[searchFieldLowestPrice] = newInput("Мин. цена (весь срок)")
	inputs[searchFieldHighestPrice] = newInput("Макс. цена (весь срок)")
	inputs[searchFieldRoomFacilities] = newInput("Удобства комнаты, через запятую")
	inputs[searchFieldHotelFacilities] = newInput("Удобства отеля, через запятую")
	inputs[searchFieldCountries] = newInput("Страны, через запятую")
	inputs[searchFieldCities] = newInput("Города, через запятую")
	inputs[searchFieldMinStars] = newInput("Мин. звезды отеля (0-5)")
	inputs[searchFieldStartDate].Focus()
	return inputs
}

// initRegisterInputs инициализирует поля формы регистрации.
func initRegisterInputs() []textinput.Model {
	inputs := make([]textinput.Model, numRegisterFields)
	inputs[registerFieldFirstName] = newInput("Имя")
	inputs[registerFieldLastName] = newInput("Фамилия")
	inputs[registerFieldEmail] = newInput("Email")
	inputs[registerFieldPassword] = newPasswordInput("Пароль")
	inputs[registerFieldPasswordConfirm] = newPasswordInput("Подтвердите пароль")
	inputs[registerFieldPhone] = newInput("Телефон")
	inputs[registerFieldBirthDate] = newDateInput("Дата рождения (ГГГГ-ММ-ДД)")
	inputs[registerFieldFirstName].Focus()
	return inputs
}

// initPasswordInputs инициализирует поля формы смены пароля.
func initPasswordInputs() []textinput.Model {
	inputs := make([]textinput.Model, numPasswordFields)
	inputs[passwordFieldCurrent] = newPasswordInput("Текущий пароль")
	inputs[passwordFieldNew] = newPasswordInput("Новый пароль")
	inputs[passwordFieldConfirm] = newPasswordInput("Подтвердите новый пароль")
	inputs[passwordFieldCurrent].Focus()
	return inputs
}

// initLoginInputs инициализирует поля экрана входа.
func initLoginInputs() (textinput.Model, textinput.Model) {
	email := newInput("Email")
	email.Focus()
	password := newPasswordInput("Пароль")
	return email, password
}

// initHelpText сопоставляет каждому экрану строку подсказки.
func initHelpText() map[screenState]string {
	return map[screenState]string{
		menuScreen:         "Enter — выбрать, q — выход",
		loginScreen:        "Enter — войти, Tab — следующее поле, Esc — назад",
		registerScreen:     "Enter — зарегистрироваться, Tab — следующее поле, Esc — назад",
		searchScreen:       "Enter — искать (с последнего поля), Tab — следующее поле, Esc — назад",
		resultsScreen:      "Enter — подробности, Esc — к фильтрам",
		roomDetailScreen:   "Enter — забронировать, i — фактура/чек, Tab — поля, Esc — назад",
		reservationsScreen: "d — отменить выбранное, Esc — в меню",
		profileScreen:      "p — сменить пароль, x — удалить учетную запись, Esc — в меню",
		passwordScreen:     "Enter — сохранить, Tab — следующее поле, Esc — назад",
	}
}

// initModel создает начальное состояние модели.
func initModel(client api.Client, manager *auth.Manager, store *session.Store, serverURL string, debugMode bool) model {
	loginEmail, loginPassword := initLoginInputs()

	return model{
		state:              menuScreen,
		manager:            manager,
		searcher:           search.NewSearcher(client, store),
		workflow:           booking.NewWorkflow(client, manager, store),
		store:              store,
		client:             client,
		serverURL:          serverURL,
		debugMode:          debugMode,
		menu:               initMenu(),
		loginEmailInput:    loginEmail,
		loginPasswordInput: loginPassword,
		registerInputs:     initRegisterInputs(),
		searchInputs:       initSearchInputs(),
		resultsList:        initResultsList(),
		reservationsList:   initReservationsList(),
		fullNameInput:      newInput("Имя и фамилия"),
		taxIDInput:         newInput("NIP (для фактуры)"),
		passwordInputs:     initPasswordInputs(),
		docStyle:           lipgloss.NewStyle().Margin(docStyleMarginVertical, docStyleMarginHorizontal),
		helpText:           initHelpText(),
	}
}
