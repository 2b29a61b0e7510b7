package component

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, model ContactFormModel, text string) ContactFormModel {
	t.Helper()

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})

	return model
}

func filledForm(t *testing.T) ContactFormModel {
	t.Helper()

	model, _ := NewContactFormModel().Update(command.FocusFormMsg{Focused: true})
	require.True(t, model.Focused())

	model = typeText(t, model, "Jo")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = typeText(t, model, "jo@example.com")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = typeText(t, model, "Hello there")

	return model
}

func TestContactFormValidate(t *testing.T) {
	model := NewContactFormModel()
	require.ErrorIs(t, model.Validate(), contact.ErrFieldRequired)

	model, _ = model.Update(command.FocusFormMsg{Focused: true})
	model = typeText(t, model, "Jo")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = typeText(t, model, "not-an-email")
	require.ErrorIs(t, model.Validate(), contact.ErrEmailInvalid)

	require.NoError(t, filledForm(t).Validate())
}

func TestContactFormSubmit(t *testing.T) {
	model := filledForm(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.Equal(t, command.SubmitMsg{Form: contact.Form{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "Hello there",
	}}, cmd())

	// No second request while one is in flight.
	model, _ = model.Update(nav.State{Submit: nav.SubmitSending})
	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
}

func TestContactFormSubmitInvalid(t *testing.T) {
	model, _ := NewContactFormModel().Update(command.FocusFormMsg{Focused: true})

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	status, ok := cmd().(command.StatusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
}

func TestContactFormResult(t *testing.T) {
	model := filledForm(t)

	failed, _ := model.Update(command.SubmitResultMsg{Err: errors.New("nope")})
	require.Equal(t, "Jo", failed.Form().Name)

	sent, _ := model.Update(command.SubmitResultMsg{})
	require.True(t, sent.Form().Empty())
}

func TestContactFormStableHeight(t *testing.T) {
	model := filledForm(t)
	height := lipgloss.Height(model.View())

	for _, status := range []nav.SubmitStatus{nav.SubmitSending, nav.SubmitSuccess, nav.SubmitError, nav.SubmitIdle} {
		model, _ = model.Update(nav.State{Submit: status})
		require.Equal(t, height, lipgloss.Height(model.View()), status.String())
	}

	model, _ = model.Update(command.FocusFormMsg{Focused: false})
	require.Equal(t, height, lipgloss.Height(model.View()))
}
