//nolint:testpackage // Тесты в том же пакете для доступа к приватным компонентам
package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/auth"
	"github.com/Ptakun123/HotelProj/internal/session"
	"github.com/Ptakun123/HotelProj/models"
)

// newTestModel создает модель TUI поверх временного хранилища сессии.
// Сервер в тестах навигации не нужен: клиент никуда не ходит.
func newTestModel(t *testing.T, loggedIn bool) *model {
	t.Helper()

	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	if loggedIn {
		require.NoError(t, store.Save(models.User{ID: 7, FirstName: "Иван", LastName: "Петров"}, "jwt-token"))
	}

	client := api.NewHTTPClient("http://127.0.0.1:0")
	manager := auth.NewManager(client, store)

	m := initModel(client, manager, store, "http://127.0.0.1:0", false)
	return &m
}
