// Package auth владеет текущей сессией пользователя: вход, регистрация,
// выход и решение о доступе к экранам. Менеджер — единственный писатель
// состояния сессии; остальные компоненты только читают его.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/session"
	"github.com/Ptakun123/HotelProj/models"
)

// ErrMissingUserID возвращается, когда сервер подтвердил вход, но не
// прислал идентификатор пользователя. Сессия в этом случае не сохраняется.
var ErrMissingUserID = errors.New("в ответе сервера нет идентификатора пользователя")

// Manager синхронизирует текущего пользователя в памяти с хранилищем сессии.
type Manager struct {
	client api.Client
	store  *session.Store
	user   *models.User
}

// NewManager создает менеджер и один раз восстанавливает сессию из
// хранилища: сохраненный пользователь становится текущим, а его токен
// подставляется в API клиент.
func NewManager(client api.Client, store *session.Store) *Manager {
	m := &Manager{client: client, store: store}
	if sess := store.Load(); sess != nil {
		user := sess.User
		m.user = &user
		client.SetAuthToken(sess.Token)
		slog.Info("Сессия восстановлена из хранилища", "id_user", user.ID, "email", user.Email)
	}
	return m
}

// CurrentUser возвращает текущего пользователя или nil, если входа не было.
func (m *Manager) CurrentUser() *models.User {
	return m.user
}

// LoggedIn сообщает, есть ли активная сессия.
func (m *Manager) LoggedIn() bool {
	return m.user != nil
}

// Login выполняет вход. Ответ без id_user считается ошибкой валидации:
// состояние сессии при этом не меняется. Ошибки транспорта и сервера
// пробрасываются без изменений.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if resp.User == nil || resp.User.ID == 0 {
		return nil, ErrMissingUserID
	}

	m.user = resp.User
	m.client.SetAuthToken(resp.AccessToken)
	if err = m.store.Save(*resp.User, resp.AccessToken); err != nil {
		slog.Warn("Не удалось сохранить сессию", "error", err)
	}
	return resp, nil
}

// Register регистрирует пользователя. Токен сохраняется только если сервер
// его вернул: часть бэкендов требует отдельного входа после регистрации.
func (m *Manager) Register(ctx context.Context, form models.RegisterRequest) (*models.RegisterResponse, error) {
	resp, err := m.client.Register(ctx, form)
	if err != nil {
		return nil, err
	}

	if resp.User != nil {
		m.user = resp.User
		if resp.AccessToken != "" {
			m.client.SetAuthToken(resp.AccessToken)
		}
		if err = m.store.Save(*resp.User, resp.AccessToken); err != nil {
			slog.Warn("Не удалось сохранить сессию после регистрации", "error", err)
		}
	}
	return resp, nil
}

// Logout очищает сессию целиком: текущего пользователя, токен API клиента
// и запись в хранилище. Пользователь и токен всегда удаляются вместе.
func (m *Manager) Logout() {
	m.user = nil
	m.client.SetAuthToken("")
	if err := m.store.Clear(); err != nil {
		slog.Warn("Не удалось очистить сессию в хранилище", "error", err)
	}
}
