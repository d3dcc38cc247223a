package models

// Room — один результат поиска свободных комнат.
// ImageURL заполняется клиентом после обогащения результатов фотографиями
// отеля и на сервер не отправляется.
type Room struct {
	ID            int64    `json:"id_room"`
	HotelID       int64    `json:"id_hotel"`
	HotelName     string   `json:"hotel_name"`
	HotelStars    int      `json:"hotel_stars"`
	Country       string   `json:"country"`
	City          string   `json:"city"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	TotalPrice    float64  `json:"total_price,omitempty"`
	Facilities    []string `json:"facilities,omitempty"`
	ImageURL      string   `json:"-"`
}

// HotelImage — фотография отеля из /hotel_images/{id}.
type HotelImage struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	IsMain      bool   `json:"is_main"`
}

// SearchRequest — тело запроса /search_free_rooms. Обязательны только даты
// и число гостей; остальные поля сериализуются лишь когда заданы.
type SearchRequest struct {
	StartDate       string   `json:"start_date"` // YYYY-MM-DD
	EndDate         string   `json:"end_date"`   // YYYY-MM-DD
	Guests          int      `json:"guests"`
	LowestPrice     *float64 `json:"lowest_price,omitempty"`
	HighestPrice    *float64 `json:"highest_price,omitempty"`
	RoomFacilities  []string `json:"room_facilities,omitempty"`
	HotelFacilities []string `json:"hotel_facilities,omitempty"`
	Countries       []string `json:"countries,omitempty"`
	Cities          []string `json:"city,omitempty"`
	MinHotelStars   *int     `json:"min_hotel_stars,omitempty"`
	SortBy          string   `json:"sort_by,omitempty"`    // "price" | "stars"
	SortOrder       string   `json:"sort_order,omitempty"` // "asc" | "desc"
}

// SearchResponse — тело ответа /search_free_rooms.
type SearchResponse struct {
	AvailableRooms []Room `json:"available_rooms"`
}

// Address — адрес отеля в ответе /hotel/{id}.
type Address struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	Street   string `json:"street"`
	Building string `json:"building"`
	ZipCode  string `json:"zip_code,omitempty"`
}

// HotelDetails — подробности отеля из /hotel/{id}.
type HotelDetails struct {
	ID         int64    `json:"id_hotel"`
	Name       string   `json:"name"`
	Stars      int      `json:"stars"`
	GeoLength  float64  `json:"geo_length,omitempty"`
	GeoLat     float64  `json:"geo_latitude,omitempty"`
	Address    Address  `json:"address"`
	Facilities []string `json:"facilities"`
}

// RoomDetails — подробности комнаты из /room/{id}.
type RoomDetails struct {
	ID            int64    `json:"id_room"`
	HotelID       int64    `json:"id_hotel"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Facilities    []string `json:"facilities"`
}
