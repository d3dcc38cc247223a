// Package tui реализует терминальный интерфейс клиента бронирования:
// экраны входа и регистрации, поиск комнат, подтверждение бронирования,
// список бронирований и профиль.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/auth"
	"github.com/Ptakun123/HotelProj/internal/booking"
	"github.com/Ptakun123/HotelProj/internal/search"
	"github.com/Ptakun123/HotelProj/internal/session"
	"github.com/Ptakun123/HotelProj/models"
)

// Состояния (экраны) приложения.
type screenState int

const (
	menuScreen         screenState = iota // Главное меню
	loginScreen                           // Экран входа
	registerScreen                        // Экран регистрации
	searchScreen                          // Экран фильтров поиска
	resultsScreen                         // Экран результатов поиска
	roomDetailScreen                      // Экран деталей комнаты и формы бронирования
	reservationsScreen                    // Экран списка бронирований
	profileScreen                         // Экран профиля
	passwordScreen                        // Экран смены пароля
)

// String возвращает имя экрана для логов и отладочной строки.
func (s screenState) String() string {
	names := map[screenState]string{
		menuScreen:         "menu",
		loginScreen:        "login",
		registerScreen:     "register",
		searchScreen:       "search",
		resultsScreen:      "results",
		roomDetailScreen:   "room_detail",
		reservationsScreen: "reservations",
		profileScreen:      "profile",
		passwordScreen:     "password",
	}
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// routeModes — заявленная видимость каждого экрана. Route Guard сверяется
// с этой таблицей при каждой навигации.
//
//nolint:gochecknoglobals // таблица маршрутов неизменяема
var routeModes = map[screenState]auth.RouteMode{
	menuScreen:         auth.RouteOpen,
	loginScreen:        auth.RoutePublicOnly,
	registerScreen:     auth.RoutePublicOnly,
	searchScreen:       auth.RouteOpen,
	resultsScreen:      auth.RouteOpen,
	roomDetailScreen:   auth.RouteOpen,
	reservationsScreen: auth.RouteProtected,
	profileScreen:      auth.RouteProtected,
	passwordScreen:     auth.RouteProtected,
}

// Индексы полей формы поиска.
const (
	searchFieldStartDate = iota
	searchFieldEndDate
	searchFieldGuests
	searchFieldLowestPrice
	searchFieldHighestPrice
	searchFieldRoomFacilities
	searchFieldHotelFacilities
	searchFieldCountries
	searchFieldCities
	searchFieldMinStars
	numSearchFields // Общее количество полей формы поиска
)

// Индексы полей формы регистрации.
const (
	registerFieldFirstName = iota
	registerFieldLastName
	registerFieldEmail
	registerFieldPassword
	registerFieldPasswordConfirm
	registerFieldPhone
	registerFieldBirthDate
	numRegisterFields
)

// Индексы полей формы смены пароля.
const (
	passwordFieldCurrent = iota
	passwordFieldNew
	passwordFieldConfirm
	numPasswordFields
)

// Константы для TUI.
const (
	defaultListWidth  = 80 // Стандартная ширина терминала для списка
	defaultListHeight = 24 // Стандартная высота терминала для списка
	inputWidthOffset  = 4  // Отступ для полей ввода

	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyQuit     = "q"
	keyBack     = "b"
)

// roomItem представляет комнату в списке результатов поиска.
// Реализует интерфейс list.Item.
type roomItem struct {
	room models.Room
}

func (i roomItem) Title() string {
	title := fmt.Sprintf("%s %s — комната %d", i.room.HotelName, stars(i.room.HotelStars), i.room.ID)
	if i.room.ImageURL != "" {
		title += " [фото]"
	}
	return title
}

func (i roomItem) Description() string {
	desc := fmt.Sprintf("%s, %s | %d чел. | %.2f/ночь", i.room.City, i.room.Country, i.room.Capacity, i.room.PricePerNight)
	if i.room.TotalPrice > 0 {
		desc += fmt.Sprintf(" | всего %.2f", i.room.TotalPrice)
	}
	return desc
}

func (i roomItem) FilterValue() string { return i.room.HotelName }

// reservationItem представляет бронирование в списке.
// Реализует интерфейс list.Item.
type reservationItem struct {
	reservation models.Reservation
}

func (i reservationItem) Title() string {
	return fmt.Sprintf("Бронирование #%d — %s, комната %d",
		i.reservation.ID, i.reservation.Hotel.Name, i.reservation.Room.ID)
}

func (i reservationItem) Description() string {
	billName := "чек"
	if i.reservation.BillType == models.BillInvoice {
		billName = "фактура"
		if i.reservation.TaxID != "" {
			billName += " (NIP: " + i.reservation.TaxID + ")"
		}
	}
	return fmt.Sprintf("%s — %s | %.2f | %s",
		i.reservation.FirstNight, i.reservation.LastNight, i.reservation.Price, billName)
}

func (i reservationItem) FilterValue() string { return i.reservation.Hotel.Name }

// menuItem представляет пункт главного меню.
type menuItem struct {
	title string
	id    string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.title }

// stars возвращает строку из звезд для отображения категории отеля.
func stars(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += "★"
	}
	return out
}

// model представляет состояние TUI приложения.
type model struct {
	state               screenState
	previousScreenState screenState // Предыдущее состояние (для возврата)

	manager  *auth.Manager
	searcher *search.Searcher
	workflow *booking.Workflow
	store    *session.Store
	client   api.Client

	serverURL string
	debugMode bool

	status      string      // Статусное сообщение внизу экрана
	statusTimer *time.Timer // Таймер для очистки статуса
	err         error       // Последняя ошибка для отображения

	// Главное меню.
	menu list.Model

	// Вход.
	loginEmailInput    textinput.Model
	loginPasswordInput textinput.Model
	loginFocusedField  int

	// Регистрация.
	registerInputs       []textinput.Model
	registerFocusedField int

	// Поиск.
	searchInputs       []textinput.Model
	searchFocusedField int
	lastCriteria       search.Criteria // Критерии последнего успешного поиска

	// Результаты.
	resultsList list.Model

	// Детали комнаты и бронирование.
	selectedRoom  *models.Room
	roomDetails   *models.RoomDetails  // Подробности комнаты с сервера, может остаться nil
	hotelDetails  *models.HotelDetails // Подробности отеля с сервера, может остаться nil
	stayDates     booking.StayDates    // Даты, переданные с экрана поиска
	fullNameInput textinput.Model
	taxIDInput    textinput.Model
	wantsInvoice  bool
	reserveField  int // 0 — имя, 1 — NIP

	// Справочники для подсказок в фильтрах поиска.
	dictionariesLoaded bool
	countries          []string
	roomFacilities     []string
	hotelFacilities    []string

	// Бронирования.
	reservationsList list.Model

	// Профиль.
	profile        *models.User
	confirmDelete  bool // Ожидается подтверждение удаления учетной записи
	passwordInputs []textinput.Model
	passwordField  int

	width    int
	height   int
	docStyle lipgloss.Style
	helpText map[screenState]string
}

// Сообщение для очистки статуса.
type clearStatusMsg struct{}
