// Package session хранит сессию пользователя (пользователь + bearer-токен)
// и последние выбранные даты поиска в локальном JSON-файле, переживающем
// перезапуски клиента. Никакой валидации токена локально не выполняется:
// протухший токен обнаружит сервер ответом 401.
package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/Ptakun123/HotelProj/models"
)

const fileMode = 0600

// ErrReadOnly возвращается при попытке записи, когда блокировка файла
// сессии принадлежит другому экземпляру клиента.
var ErrReadOnly = errors.New("хранилище сессии доступно только для чтения")

// document — формат файла сессии на диске. Сессия хранится одной атомарной
// записью: user и token записываются и очищаются только вместе.
type document struct {
	Session         *models.Session `json:"session,omitempty"`
	SearchStartDate string          `json:"search_startDate,omitempty"`
	SearchEndDate   string          `json:"search_endDate,omitempty"`
}

// Store — файловое хранилище сессии.
type Store struct {
	path     string
	fileLock *flock.Flock
	readOnly bool
}

// Open создает хранилище и пытается получить эксклюзивную блокировку.
// Если блокировка занята другим экземпляром, хранилище работает в режиме
// только для чтения — второй клиент не затирает сессию первого.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	s := &Store{path: path, fileLock: flock.New(path + ".lock")}
	locked, err := s.fileLock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		s.readOnly = true
		slog.Warn("Блокировка файла сессии не получена, режим только для чтения", "path", path)
	}
	return s, nil
}

// Close снимает блокировку файла сессии.
func (s *Store) Close() error {
	if s.readOnly {
		return nil
	}
	return s.fileLock.Unlock()
}

// ReadOnly сообщает, доступна ли запись.
func (s *Store) ReadOnly() bool {
	return s.readOnly
}

// load читает документ с диска. Отсутствующий или поврежденный файл
// равносилен пустому документу: сессии просто нет.
func (s *Store) load() document {
	var doc document
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Не удалось прочитать файл сессии", "path", s.path, "error", err)
		}
		return doc
	}
	if err = json.Unmarshal(data, &doc); err != nil {
		slog.Warn("Файл сессии поврежден, игнорируем", "path", s.path, "error", err)
		return document{}
	}
	return doc
}

func (s *Store) write(doc document) error {
	if s.readOnly {
		return ErrReadOnly
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, fileMode)
}

// Save сохраняет пользователя и токен одной записью.
func (s *Store) Save(user models.User, token string) error {
	doc := s.load()
	doc.Session = &models.Session{User: user, Token: token}
	return s.write(doc)
}

// Load возвращает сохраненную сессию или nil, если ее нет.
func (s *Store) Load() *models.Session {
	return s.load().Session
}

// Clear удаляет сессию целиком (пользователя и токен вместе), сохраняя
// даты поиска.
func (s *Store) Clear() error {
	doc := s.load()
	doc.Session = nil
	return s.write(doc)
}

// SaveSearchDates запоминает последние выбранные даты поиска, чтобы экран
// деталей комнаты мог восстановить их после навигации.
func (s *Store) SaveSearchDates(start, end string) error {
	doc := s.load()
	doc.SearchStartDate = start
	doc.SearchEndDate = end
	return s.write(doc)
}

// SearchDates возвращает сохраненные даты поиска. ok == false, если хотя бы
// одна из дат отсутствует.
func (s *Store) SearchDates() (start, end string, ok bool) {
	doc := s.load()
	if doc.SearchStartDate == "" || doc.SearchEndDate == "" {
		return "", "", false
	}
	return doc.SearchStartDate, doc.SearchEndDate, true
}
