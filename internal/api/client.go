package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ptakun123/HotelProj/models"
)

// ErrAuthorization сигнализирует об ошибке авторизации (401).
var ErrAuthorization = errors.New("ошибка авторизации")

// ErrNotFound сигнализирует, что запрошенный ресурс не существует (404).
// Для списка бронирований 404 означает "бронирований нет" и ошибкой не является.
var ErrNotFound = errors.New("ресурс не найден")

// ServerError — ошибка, для которой сервер прислал собственное сообщение
// в теле ответа ({"error": "..."}). Сообщение показывается пользователю
// дословно.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("ошибка сервера: статус %d", e.StatusCode)
}

// Client определяет интерфейс для взаимодействия с API сервиса бронирования.
type Client interface {
	// Login аутентифицирует пользователя по email и паролю.
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	// Register регистрирует нового пользователя.
	Register(ctx context.Context, form models.RegisterRequest) (*models.RegisterResponse, error)
	// SearchFreeRooms ищет свободные комнаты по заданным фильтрам.
	SearchFreeRooms(ctx context.Context, req models.SearchRequest) ([]models.Room, error)
	// HotelImages возвращает фотографии отеля.
	HotelImages(ctx context.Context, hotelID int64) ([]models.HotelImage, error)
	// PostReservation создает бронирование.
	PostReservation(ctx context.Context, req models.ReservationRequest) error
	// PostCancellation отменяет бронирование.
	PostCancellation(ctx context.Context, req models.CancellationRequest) error
	// UserReservations возвращает бронирования пользователя с данным статусом.
	UserReservations(ctx context.Context, userID int64, status string) ([]models.Reservation, error)
	// GetUser возвращает профиль пользователя.
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	// ChangePassword меняет пароль пользователя.
	ChangePassword(ctx context.Context, userID int64, req models.PasswordChangeRequest) error
	// DeleteUser удаляет учетную запись пользователя.
	DeleteUser(ctx context.Context, userID int64) error
	// GetRoom возвращает подробности комнаты.
	GetRoom(ctx context.Context, roomID int64) (*models.RoomDetails, error)
	// GetHotel возвращает подробности отеля.
	GetHotel(ctx context.Context, hotelID int64) (*models.HotelDetails, error)
	// Countries возвращает список стран для фильтра поиска.
	Countries(ctx context.Context) ([]string, error)
	// Cities возвращает список городов, опционально отфильтрованный по стране.
	Cities(ctx context.Context, country string) ([]string, error)
	// RoomFacilities возвращает справочник удобств комнат.
	RoomFacilities(ctx context.Context) ([]string, error)
	// HotelFacilities возвращает справочник удобств отелей.
	HotelFacilities(ctx context.Context) ([]string, error)
	// SetAuthToken устанавливает bearer-токен для аутентифицированных запросов.
	SetAuthToken(token string)
}

// httpClient реализует интерфейс Client поверх net/http.
type httpClient struct {
	baseURL    string       // Базовый URL сервера, например "http://localhost:5000"
	httpClient *http.Client // HTTP клиент для выполнения запросов
	authToken  string       // Bearer-токен; пустая строка — неаутентифицированные запросы
}

// NewHTTPClient создает новый экземпляр API клиента.
func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// SetAuthToken устанавливает токен аутентификации для клиента.
func (c *httpClient) SetAuthToken(token string) {
	c.authToken = token
}

// setAuthHeader добавляет заголовок Authorization, если токен задан.
// Запросы без токена уходят неаутентифицированными: просроченный или
// отсутствующий токен обнаружит сервер, а не клиент.
func (c *httpClient) setAuthHeader(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
}

// decodeError превращает неуспешный HTTP-ответ в ошибку клиента.
// Если сервер прислал {"error": "..."}, сообщение сохраняется дословно.
func decodeError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthorization
	case http.StatusNotFound:
		// На 404 бэкенд присылает либо {"error": ...}, либо {"message": ...}
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			if msg := body.Error; msg != "" {
				return fmt.Errorf("%w: %s", ErrNotFound, msg)
			}
			if body.Message != "" {
				return fmt.Errorf("%w: %s", ErrNotFound, body.Message)
			}
		}
		return ErrNotFound
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return &ServerError{StatusCode: resp.StatusCode, Message: body.Error}
	}
	return &ServerError{StatusCode: resp.StatusCode}
}

// doJSON выполняет запрос с JSON-телом (или без тела, если body == nil)
// и декодирует JSON-ответ в out (если out != nil).
func (c *httpClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("ошибка формирования URL %s: %w", path, err)
	}

	var reader io.Reader
	if body != nil {
		jsonData, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			return fmt.Errorf("ошибка кодирования тела запроса: %w", errMarshal)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.setAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("ошибка декодирования ответа %s: %w", path, err)
		}
	}
	return nil
}

// Login отправляет запрос на вход.
func (c *httpClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/login", models.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register отправляет запрос на регистрацию.
func (c *httpClient) Register(ctx context.Context, form models.RegisterRequest) (*models.RegisterResponse, error) {
	var out models.RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchFreeRooms отправляет поисковый запрос и возвращает найденные комнаты.
func (c *httpClient) SearchFreeRooms(ctx context.Context, req models.SearchRequest) ([]models.Room, error) {
	var out models.SearchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/search_free_rooms", req, &out); err != nil {
		return nil, err
	}
	return out.AvailableRooms, nil
}

// HotelImages возвращает фотографии отеля.
func (c *httpClient) HotelImages(ctx context.Context, hotelID int64) ([]models.HotelImage, error) {
	var out []models.HotelImage
	path := "/hotel_images/" + strconv.FormatInt(hotelID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostReservation создает бронирование.
func (c *httpClient) PostReservation(ctx context.Context, req models.ReservationRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/post_reservation", req, nil)
}

// PostCancellation отменяет бронирование.
func (c *httpClient) PostCancellation(ctx context.Context, req models.CancellationRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/post_cancellation", req, nil)
}

// UserReservations возвращает бронирования пользователя.
// Ответ с message вместо списка означает пустой список.
func (c *httpClient) UserReservations(ctx context.Context, userID int64, status string) ([]models.Reservation, error) {
	path := "/user/" + strconv.FormatInt(userID, 10) + "/reservations"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out models.ReservationsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out.Reservations == nil {
		return []models.Reservation{}, nil
	}
	return out.Reservations, nil
}

// GetUser возвращает профиль пользователя.
func (c *httpClient) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var out models.User
	path := "/user/" + strconv.FormatInt(userID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword меняет пароль пользователя.
func (c *httpClient) ChangePassword(ctx context.Context, userID int64, req models.PasswordChangeRequest) error {
	path := "/user/" + strconv.FormatInt(userID, 10) + "/password"
	return c.doJSON(ctx, http.MethodPut, path, req, nil)
}

// DeleteUser удаляет учетную запись пользователя.
func (c *httpClient) DeleteUser(ctx context.Context, userID int64) error {
	path := "/user/" + strconv.FormatInt(userID, 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// GetRoom возвращает подробности комнаты.
func (c *httpClient) GetRoom(ctx context.Context, roomID int64) (*models.RoomDetails, error) {
	var out models.RoomDetails
	path := "/room/" + strconv.FormatInt(roomID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHotel возвращает подробности отеля.
func (c *httpClient) GetHotel(ctx context.Context, hotelID int64) (*models.HotelDetails, error) {
	var out models.HotelDetails
	path := "/hotel/" + strconv.FormatInt(hotelID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Countries возвращает список стран.
func (c *httpClient) Countries(ctx context.Context) ([]string, error) {
	var out struct {
		Countries []string `json:"countries"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/countries", nil, &out); err != nil {
		return nil, err
	}
	return out.Countries, nil
}

// Cities возвращает список городов; country — необязательный фильтр.
func (c *httpClient) Cities(ctx context.Context, country string) ([]string, error) {
	path := "/cities"
	if country != "" {
		path += "?country=" + url.QueryEscape(country)
	}
	var out struct {
		Cities []string `json:"cities"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Cities, nil
}

// RoomFacilities возвращает справочник удобств комнат.
func (c *httpClient) RoomFacilities(ctx context.Context) ([]string, error) {
	var out struct {
		Facilities []string `json:"room_facilities"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/room_facilities", nil, &out); err != nil {
		return nil, err
	}
	return out.Facilities, nil
}

// HotelFacilities возвращает справочник удобств отелей.
func (c *httpClient) HotelFacilities(ctx context.Context) ([]string, error) {
	var out struct {
		Facilities []string `json:"hotel_facilities"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/hotel_facilities", nil, &out); err != nil {
		return nil, err
	}
	return out.Facilities, nil
}
