package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/auth"
	"github.com/Ptakun123/HotelProj/internal/session"
)

// Время отображения статусных сообщений.
const statusMessageTimeout = 2 * time.Second

// Init - команда, выполняемая при запуске приложения.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// setStatusMessage устанавливает статусное сообщение и запускает таймер для его очистки.
func (m *model) setStatusMessage(status string) (tea.Model, tea.Cmd) {
	m.status = status
	if m.statusTimer != nil {
		m.statusTimer.Stop()
		m.statusTimer = nil
	}
	return m, clearStatusCmd(statusMessageTimeout)
}

// getMainContentView возвращает основное содержимое для текущего состояния.
func (m *model) getMainContentView() string {
	switch m.state {
	case menuScreen:
		return m.viewMenuScreen()
	case loginScreen:
		return m.viewLoginScreen()
	case registerScreen:
		return m.viewRegisterScreen()
	case searchScreen:
		return m.viewSearchScreen()
	case resultsScreen:
		return m.viewResultsScreen()
	case roomDetailScreen:
		return m.viewRoomDetailScreen()
	case reservationsScreen:
		return m.viewReservationsScreen()
	case profileScreen:
		return m.viewProfileScreen()
	case passwordScreen:
		return m.viewPasswordScreen()
	default:
		return "Неизвестное состояние!"
	}
}

// getContentAndHelp возвращает основное содержимое и строку подсказки.
func (m *model) getContentAndHelp() (string, string) {
	mainContent := m.getMainContentView()
	help, ok := m.helpText[m.state]
	if !ok {
		help = fmt.Sprintf("State: %s", m.state.String())
	}
	return mainContent, help
}

// getDebugInfoString генерирует строку отладочной информации.
func (m *model) getDebugInfoString() string {
	var debugInfo strings.Builder
	debugInfo.WriteString(fmt.Sprintf(" [State: %s]\n", m.state.String()))
	debugInfo.WriteString(fmt.Sprintf(" [URL: %s]\n", m.serverURL))
	if user := m.manager.CurrentUser(); user != nil {
		debugInfo.WriteString(fmt.Sprintf(" [User: %d %s]\n", user.ID, user.Email))
	} else {
		debugInfo.WriteString(" [User: not logged in]\n")
	}
	if start, end, ok := m.store.SearchDates(); ok {
		debugInfo.WriteString(fmt.Sprintf(" [Search dates: %s — %s]\n", start, end))
	}
	debugInfo.WriteString(fmt.Sprintf(" [Results: %d]\n", len(m.resultsList.Items())))
	return debugInfo.String()
}

// View отрисовывает пользовательский интерфейс.
func (m *model) View() string {
	mainContent, help := m.getContentAndHelp()

	// --- Формируем подвал (статус + отладка) --- //
	var footer strings.Builder

	readOnlyIndicator := ""
	if m.store.ReadOnly() {
		readOnlyIndicator = " [Read-Only]"
	}
	if m.status != "" || readOnlyIndicator != "" {
		footer.WriteString("\n")
		footer.WriteString(m.status)
		footer.WriteString(readOnlyIndicator)
	}

	if m.debugMode {
		footer.WriteString("\n\n---\nОтладка:\n")
		footer.WriteString(m.getDebugInfoString())
	}

	styledContent := m.docStyle.Render(mainContent)
	return fmt.Sprintf("%s\n%s%s", styledContent, help, footer.String())
}

// Start запускает TUI приложение.
func Start(client api.Client, manager *auth.Manager, store *session.Store, serverURL string, debugMode bool) error {
	m := initModel(client, manager, store, serverURL, debugMode)

	if manager.LoggedIn() {
		slog.Info("Сессия восстановлена", "user_id", manager.CurrentUser().ID)
	}
	if store.ReadOnly() {
		slog.Warn("Файл сессии заблокирован другим процессом, запуск в режиме Read-Only")
	}

	// AltScreen нужен для корректной работы списков
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("запуск TUI: %w", err)
	}
	return nil
}
