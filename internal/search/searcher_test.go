package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/search"
	"github.com/Ptakun123/HotelProj/internal/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func validCriteria() search.Criteria {
	return search.Criteria{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Guests:    2,
	}
}

// TestSearcher_Search проверяет сценарий поиска целиком: запрос, сохранение
// дат и обогащение результатов фотографиями отелей.
func TestSearcher_Search(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search_free_rooms":
			assert.Equal(http.MethodPost, r.Method)
			_, _ = w.Write([]byte(`{"available_rooms":[
				{"id_room":1,"id_hotel":7,"hotel_name":"Super Hotel","hotel_stars":4,
				 "country":"Poland","city":"Warsaw","capacity":2,"price_per_night":120},
				{"id_room":2,"id_hotel":7,"hotel_name":"Super Hotel","hotel_stars":4,
				 "country":"Poland","city":"Warsaw","capacity":3,"price_per_night":150},
				{"id_room":3,"id_hotel":9,"hotel_name":"Grand Hotel","hotel_stars":5,
				 "country":"Poland","city":"Krakow","capacity":2,"price_per_night":300}
			]}`))
		case "/hotel_images/7":
			_, _ = w.Write([]byte(`[
				{"url":"http://img/7-side.jpg","is_main":false},
				{"url":"http://img/7-main.jpg","is_main":true}
			]`))
		case "/hotel_images/9":
			// Отказ по отдельному отелю не срывает поиск
			w.WriteHeader(http.StatusInternalServerError)
		default:
			t.Errorf("неожиданный запрос: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	store := newTestStore(t)
	searcher := search.NewSearcher(api.NewHTTPClient(server.URL), store)

	rooms, err := searcher.Search(context.Background(), validCriteria())
	require.NoError(err)
	require.Len(rooms, 3)

	// Комнаты отеля 7 получают главную фотографию, отель 9 остается без фото
	assert.Equal("Super Hotel", rooms[0].HotelName)
	assert.Equal("http://img/7-main.jpg", rooms[0].ImageURL)
	assert.Equal("http://img/7-main.jpg", rooms[1].ImageURL)
	assert.Empty(rooms[2].ImageURL)

	// Даты поиска сохранены для экрана бронирования
	start, end, ok := store.SearchDates()
	require.True(ok)
	assert.Equal("2026-09-01", start)
	assert.Equal("2026-09-05", end)
}

// TestSearcher_Search_FirstImageFallback: если главная фотография не помечена,
// берется первая доступная.
func TestSearcher_Search_FirstImageFallback(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search_free_rooms":
			_, _ = w.Write([]byte(`{"available_rooms":[
				{"id_room":1,"id_hotel":7,"hotel_name":"Super Hotel","capacity":2,"price_per_night":120}
			]}`))
		case "/hotel_images/7":
			_, _ = w.Write([]byte(`[
				{"url":"http://img/first.jpg","is_main":false},
				{"url":"http://img/second.jpg","is_main":false}
			]`))
		}
	}))
	defer server.Close()

	searcher := search.NewSearcher(api.NewHTTPClient(server.URL), newTestStore(t))

	rooms, err := searcher.Search(context.Background(), validCriteria())
	require.NoError(err)
	require.Len(rooms, 1)
	assert.Equal("http://img/first.jpg", rooms[0].ImageURL)
}

// TestSearcher_Search_DropsRoomsWithoutHotel: результат без ссылки на отель
// отбрасывается, фотографии для него не запрашиваются.
func TestSearcher_Search_DropsRoomsWithoutHotel(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search_free_rooms":
			_, _ = w.Write([]byte(`{"available_rooms":[
				{"id_room":1,"id_hotel":0,"hotel_name":"Broken","capacity":2,"price_per_night":10},
				{"id_room":2,"id_hotel":7,"hotel_name":"Super Hotel","capacity":2,"price_per_night":120}
			]}`))
		case "/hotel_images/7":
			_, _ = w.Write([]byte(`[]`))
		case "/hotel_images/0":
			t.Error("фотографии для отброшенного результата запрашиваться не должны")
		}
	}))
	defer server.Close()

	searcher := search.NewSearcher(api.NewHTTPClient(server.URL), newTestStore(t))

	rooms, err := searcher.Search(context.Background(), validCriteria())
	require.NoError(err)
	require.Len(rooms, 1)
	assert.Equal(int64(2), rooms[0].ID)
}

// TestSearcher_Search_InvalidCriteria: при ошибке валидации запрос к серверу
// не отправляется.
func TestSearcher_Search_InvalidCriteria(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	searcher := search.NewSearcher(api.NewHTTPClient(server.URL), newTestStore(t))

	_, err := searcher.Search(context.Background(), search.Criteria{Guests: 2})
	require.ErrorIs(t, err, search.ErrDatesRequired)
	assert.Zero(t, requests.Load())
}

// TestSearcher_Search_NotFound: сервер отвечает 404 с сообщением, когда
// свободных комнат нет; сообщение доходит до пользователя.
func TestSearcher_Search_NotFound(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Нет свободных комнат на выбранные даты"}`))
	}))
	defer server.Close()

	store := newTestStore(t)
	searcher := search.NewSearcher(api.NewHTTPClient(server.URL), store)

	_, err := searcher.Search(context.Background(), validCriteria())
	require.ErrorIs(err, api.ErrNotFound)
	assert.Contains(err.Error(), "Нет свободных комнат")

	// Неудачный поиск не трогает сохраненные даты
	_, _, ok := store.SearchDates()
	assert.False(ok)
}
