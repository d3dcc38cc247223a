//nolint:testpackage // Тесты в том же пакете для доступа к приватным компонентам
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUpdateLoginScreen проверяет обработку сообщений на экране входа.
func TestUpdateLoginScreen(t *testing.T) {
	tests := []struct {
		name            string
		inputMsg        tea.Msg
		initialField    int
		expectedField   int
		expectedState   screenState
		expectedCmd     bool
		emailFocused    bool
		passwordFocused bool
	}{
		{
			name:            "ПереключениеПоляВперед",
			inputMsg:        tea.KeyMsg{Type: tea.KeyTab},
			initialField:    0,
			expectedField:   1,
			expectedState:   loginScreen,
			expectedCmd:     true,
			emailFocused:    false,
			passwordFocused: true,
		},
		{
			name:            "ПереключениеПоляНазад",
			inputMsg:        tea.KeyMsg{Type: tea.KeyShiftTab},
			initialField:    1,
			expectedField:   0,
			expectedState:   loginScreen,
			expectedCmd:     true,
			emailFocused:    true,
			passwordFocused: false,
		},
		{
			name:          "ОтменаВхода",
			inputMsg:      tea.KeyMsg{Type: tea.KeyEsc},
			initialField:  0,
			expectedField: 0,
			expectedState: menuScreen,
			expectedCmd:   true,
		},
		{
			name:            "НажатиеEnter_ПервоеПоле",
			inputMsg:        tea.KeyMsg{Type: tea.KeyEnter},
			initialField:    0,
			expectedField:   1,
			expectedState:   loginScreen,
			expectedCmd:     true,
			emailFocused:    false,
			passwordFocused: true,
		},
		{
			name:          "НажатиеEnter_ВтороеПоле_ОтправкаФормы",
			inputMsg:      tea.KeyMsg{Type: tea.KeyEnter},
			initialField:  1,
			expectedField: 1,
			expectedState: loginScreen,
			expectedCmd:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			m := newTestModel(t, false)
			m.state = loginScreen
			m.loginFocusedField = tt.initialField
			m.loginEmailInput.SetValue("ivan@example.com")
			m.loginPasswordInput.SetValue("secret")

			updatedModel, cmd := m.updateLoginScreen(tt.inputMsg)
			updated, ok := updatedModel.(*model)
			require.True(ok)

			assert.Equal(tt.expectedState, updated.state)
			assert.Equal(tt.expectedField, updated.loginFocusedField)
			if tt.expectedCmd {
				assert.NotNil(cmd)
			}
			if tt.expectedState == loginScreen && tt.name != "НажатиеEnter_ВтороеПоле_ОтправкаФормы" {
				assert.Equal(tt.emailFocused, updated.loginEmailInput.Focused())
				assert.Equal(tt.passwordFocused, updated.loginPasswordInput.Focused())
			}
		})
	}
}

// TestUpdate_LoginError: ошибка входа отображается, статус сбрасывается.
func TestUpdate_LoginError(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModel(t, false)
	m.state = loginScreen
	m.status = "Выполняется вход..."

	loginErr := LoginError{err: tassert.AnError}
	updatedModel, _ := m.Update(loginErr)
	updated, ok := updatedModel.(*model)
	require.True(ok)

	assert.Equal(loginScreen, updated.state)
	assert.Empty(updated.status)
	require.Error(updated.err)
	assert.Equal(loginErr.Error(), updated.err.Error())
}
