package search

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/session"
	"github.com/Ptakun123/HotelProj/models"
)

// imageFetchLimit ограничивает число одновременных запросов фотографий.
const imageFetchLimit = 4

// Searcher выполняет поиск свободных комнат: валидация критериев, запрос к
// серверу, сохранение выбранных дат и обогащение результатов фотографиями.
type Searcher struct {
	client api.Client
	store  *session.Store
}

// NewSearcher создает Searcher.
func NewSearcher(client api.Client, store *session.Store) *Searcher {
	return &Searcher{client: client, store: store}
}

// Search ищет комнаты по критериям. При успехе выбранные даты сохраняются в
// хранилище (их потом восстановит экран бронирования), результаты без ссылки
// на отель отбрасываются, а к остальным прикрепляется фотография отеля.
func (s *Searcher) Search(ctx context.Context, c Criteria) ([]models.Room, error) {
	req, err := BuildRequest(c)
	if err != nil {
		return nil, err
	}

	rooms, err := s.client.SearchFreeRooms(ctx, req)
	if err != nil {
		return nil, err
	}

	if err = s.store.SaveSearchDates(req.StartDate, req.EndDate); err != nil {
		// Не фатально: поиск удался, просто даты не переживут перезапуск.
		slog.Warn("Не удалось сохранить даты поиска", "error", err)
	}

	filtered := rooms[:0]
	for _, room := range rooms {
		if room.HotelID == 0 {
			slog.Warn("Результат поиска без ссылки на отель отброшен", "id_room", room.ID)
			continue
		}
		filtered = append(filtered, room)
	}

	s.attachImages(ctx, filtered)
	return filtered, nil
}

// attachImages запрашивает фотографии для каждого уникального отеля из
// результатов и прикрепляет к комнатам главную (is_main) либо первую
// доступную. Запросы идут параллельно; отказ по одному отелю не мешает
// остальным и не срывает поиск.
func (s *Searcher) attachImages(ctx context.Context, rooms []models.Room) {
	hotelIDs := make([]int64, 0, len(rooms))
	seen := make(map[int64]bool, len(rooms))
	for _, room := range rooms {
		if !seen[room.HotelID] {
			seen[room.HotelID] = true
			hotelIDs = append(hotelIDs, room.HotelID)
		}
	}

	var mu sync.Mutex
	urls := make(map[int64]string, len(hotelIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imageFetchLimit)
	for _, hotelID := range hotelIDs {
		hotelID := hotelID
		g.Go(func() error {
			images, err := s.client.HotelImages(gctx, hotelID)
			if err != nil {
				// Терпим отказ по отдельному отелю: комната останется без фото.
				slog.Warn("Не удалось получить фотографии отеля", "id_hotel", hotelID, "error", err)
				return nil
			}
			if url := pickImage(images); url != "" {
				mu.Lock()
				urls[hotelID] = url
				mu.Unlock()
			}
			return nil
		})
	}
	// Ошибки не возвращаются из горутин, Wait нужен только как барьер.
	_ = g.Wait()

	for i := range rooms {
		rooms[i].ImageURL = urls[rooms[i].HotelID]
	}
}

// pickImage выбирает фотографию, помеченную главной, иначе первую доступную.
func pickImage(images []models.HotelImage) string {
	for _, img := range images {
		if img.IsMain {
			return img.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return ""
}
