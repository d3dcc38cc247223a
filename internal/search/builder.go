// Package search собирает критерии поиска свободных комнат в запрос к
// серверу и обогащает результаты фотографиями отелей.
package search

import (
	"errors"
	"time"

	"github.com/Ptakun123/HotelProj/models"
)

// Ошибки валидации критериев. Запрос к серверу при них не отправляется.
var (
	ErrDatesRequired     = errors.New("выберите даты заезда и выезда")
	ErrBadDateFormat     = errors.New("неверный формат даты, ожидается ГГГГ-ММ-ДД")
	ErrDateOrder         = errors.New("дата заезда должна быть раньше даты выезда")
	ErrGuestsNotPositive = errors.New("число гостей должно быть больше нуля")
	ErrPriceBounds       = errors.New("минимальная цена не может превышать максимальную")
	ErrStarsRange        = errors.New("число звезд должно быть от 0 до 5")
)

const maxStars = 5

// Criteria — критерии поиска, как их ввел пользователь. Все поля, кроме дат
// и числа гостей, необязательны; нулевое значение означает "фильтр не задан".
type Criteria struct {
	StartDate       string // YYYY-MM-DD
	EndDate         string // YYYY-MM-DD
	Guests          int
	LowestPrice     *float64
	HighestPrice    *float64
	RoomFacilities  []string
	HotelFacilities []string
	Countries       []string
	Cities          []string
	MinHotelStars   int    // 0 — фильтр не задан
	SortBy          string // "price" | "stars" | ""
	SortOrder       string // "asc" | "desc" | ""
}

// BuildRequest валидирует критерии и собирает тело запроса, в которое
// попадают только заполненные поля. Даты и число гостей обязательны всегда.
func BuildRequest(c Criteria) (models.SearchRequest, error) {
	var req models.SearchRequest

	if c.StartDate == "" || c.EndDate == "" {
		return req, ErrDatesRequired
	}
	start, err := time.Parse(time.DateOnly, c.StartDate)
	if err != nil {
		return req, ErrBadDateFormat
	}
	end, err := time.Parse(time.DateOnly, c.EndDate)
	if err != nil {
		return req, ErrBadDateFormat
	}
	if !start.Before(end) {
		return req, ErrDateOrder
	}
	if c.Guests <= 0 {
		return req, ErrGuestsNotPositive
	}
	if c.LowestPrice != nil && c.HighestPrice != nil && *c.LowestPrice > *c.HighestPrice {
		return req, ErrPriceBounds
	}
	if c.MinHotelStars < 0 || c.MinHotelStars > maxStars {
		return req, ErrStarsRange
	}

	req.StartDate = c.StartDate
	req.EndDate = c.EndDate
	req.Guests = c.Guests
	req.LowestPrice = c.LowestPrice
	req.HighestPrice = c.HighestPrice
	if len(c.RoomFacilities) > 0 {
		req.RoomFacilities = c.RoomFacilities
	}
	if len(c.HotelFacilities) > 0 {
		req.HotelFacilities = c.HotelFacilities
	}
	if len(c.Countries) > 0 {
		req.Countries = c.Countries
	}
	if len(c.Cities) > 0 {
		req.Cities = c.Cities
	}
	if c.MinHotelStars > 0 {
		stars := c.MinHotelStars
		req.MinHotelStars = &stars
	}
	req.SortBy = c.SortBy
	req.SortOrder = c.SortOrder

	return req, nil
}
