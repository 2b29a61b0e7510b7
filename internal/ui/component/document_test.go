package component

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/stretchr/testify/require"
)

func newTestDocument(t *testing.T) DocumentModel {
	t.Helper()

	doc, err := content.Default()
	require.NoError(t, err)

	model := NewDocumentModel(content.NewRenderer("notty"), doc, time.Millisecond)
	model, _ = model.SetSize(80, 20)
	require.Positive(t, model.Layout().MaxScroll())

	return model
}

func TestDocumentFrameCoalescing(t *testing.T) {
	model := newTestDocument(t)
	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}

	model, _ = model.Update(down)
	require.True(t, model.framePending)
	model, _ = model.Update(down)
	model, _ = model.Update(down)
	require.Equal(t, 3, model.Offset())

	model, cmd := model.Update(command.FrameMsg{})
	require.False(t, model.framePending)
	require.NotNil(t, cmd)
	require.Equal(t, command.ScrollMsg{Offset: 3}, cmd())

	// Nothing moved since the last frame.
	_, cmd = model.Update(command.FrameMsg{})
	require.Nil(t, cmd)
}

func TestDocumentScrollTo(t *testing.T) {
	model := newTestDocument(t)

	model, _ = model.Update(command.ScrollToMsg{Offset: 10})
	require.True(t, model.animating)

	for range 1000 {
		if !model.animating {
			break
		}
		model, _ = model.Update(command.FrameMsg{})
	}

	require.False(t, model.animating)
	require.Equal(t, 10, model.Offset())
}

func TestDocumentScrollToClamped(t *testing.T) {
	model := newTestDocument(t)
	maxScroll := model.Layout().MaxScroll()

	model, _ = model.Update(command.ScrollToMsg{Offset: maxScroll + 500})
	for range 1000 {
		if !model.animating {
			break
		}
		model, _ = model.Update(command.FrameMsg{})
	}

	require.Equal(t, maxScroll, model.Offset())
}

func TestDocumentManualScrollCancelsAnimation(t *testing.T) {
	model := newTestDocument(t)

	model, _ = model.Update(command.ScrollToMsg{Offset: 10})
	model, _ = model.Update(command.FrameMsg{})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})

	require.False(t, model.animating)
	require.Equal(t, model.Layout().MaxScroll(), model.Offset())
}

func TestDocumentInsert(t *testing.T) {
	model := newTestDocument(t)
	before, found := model.Layout().Region(nav.SectionContact)
	require.True(t, found)

	model, cmd := model.SetInsert(string(nav.SectionContact), "one\ntwo\nthree")
	require.NotNil(t, cmd)

	after, _ := model.Layout().Region(nav.SectionContact)
	require.Equal(t, before.Top, after.Top)
	require.Equal(t, before.Height()+3, after.Height())

	// Same text again is a no-op.
	_, cmd = model.SetInsert(string(nav.SectionContact), "one\ntwo\nthree")
	require.Nil(t, cmd)
}
