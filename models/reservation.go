package models

// Типы счета в бронировании: фактура (инвойс) или чек.
const (
	BillInvoice = "I"
	BillReceipt = "R"
)

// Reservation — активное бронирование пользователя.
// Бронирование не изменяется на месте: его можно только создать и отменить.
type Reservation struct {
	ID         int64            `json:"id_reservation"`
	FirstNight string           `json:"first_night"` // YYYY-MM-DD
	LastNight  string           `json:"last_night"`  // YYYY-MM-DD
	FullName   string           `json:"full_name"`
	Price      float64          `json:"price"`
	BillType   string           `json:"bill_type"`
	TaxID      string           `json:"nip,omitempty"`
	Status     string           `json:"status,omitempty"`
	Room       ReservationRoom  `json:"room"`
	Hotel      ReservationHotel `json:"hotel"`
}

// ReservationRoom — вложенная комната в ответе со списком бронирований.
type ReservationRoom struct {
	ID            int64    `json:"id_room"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Facilities    []string `json:"facilities,omitempty"`
}

// ReservationHotel — вложенный отель в ответе со списком бронирований.
type ReservationHotel struct {
	ID         int64    `json:"id_hotel"`
	Name       string   `json:"name"`
	Stars      int      `json:"stars"`
	Facilities []string `json:"facilities,omitempty"`
}

// ReservationRequest — тело запроса /post_reservation.
// nip передается только для фактуры.
type ReservationRequest struct {
	RoomID     int64  `json:"id_room"`
	UserID     int64  `json:"id_user"`
	FirstNight string `json:"first_night"`
	LastNight  string `json:"last_night"`
	FullName   string `json:"full_name"`
	BillType   string `json:"bill_type"`
	TaxID      string `json:"nip,omitempty"`
}

// CancellationRequest — тело запроса /post_cancellation.
type CancellationRequest struct {
	ReservationID int64 `json:"id_reservation"`
	UserID        int64 `json:"id_user"`
}

// ReservationsResponse — тело ответа /user/{id}/reservations.
// При отсутствии бронирований сервер возвращает message вместо списка.
type ReservationsResponse struct {
	Reservations []Reservation `json:"reservations"`
	Message      string        `json:"message,omitempty"`
}
