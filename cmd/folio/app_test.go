package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/store"
	"github.com/stretchr/testify/require"
)

type recordingUI struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingUI) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingUI) Run() error {
	return nil
}

func (r *recordingUI) received() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]tea.Msg(nil), r.msgs...)
}

func TestAppRoutesUpdates(t *testing.T) {
	contentPath := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(contentPath, []byte("name: Jo\nblocks:\n  - id: home\n"), 0o600))

	configUpdates := make(chan config.Config)
	app := NewApp(config.Config{}, nil, configUpdates)
	tui := &recordingUI{}
	app.ui = tui

	done := make(chan any)
	finished := make(chan struct{})
	go func() {
		app.Start(t.Context(), done)
		close(finished)
	}()

	configUpdates <- config.Config{ThresholdRows: 5, ContentPath: contentPath}

	require.Eventually(t, func() bool {
		var gotConfig, gotDoc bool
		for _, msg := range tui.received() {
			switch msg := msg.(type) {
			case config.Config:
				gotConfig = msg.ThresholdRows == 5
			case content.Document:
				gotDoc = msg.Name == "Jo"
			}
		}

		return gotConfig && gotDoc
	}, time.Second, 10*time.Millisecond)

	close(done)
	<-finished
}

func TestHistoryTable(t *testing.T) {
	now := time.Now()
	out := historyTable([]store.Submission{
		{Email: "jo@example.com", Status: "success", Message: "hello", CreatedOn: now.Add(-time.Hour)},
		{Email: "sam@example.com", Status: "error", HTTPStatus: 500, Message: "again", CreatedOn: now},
	}, now)

	require.Contains(t, out, "jo@example.com")
	require.Contains(t, out, "1 hour ago")
	require.Contains(t, out, "error (500)")
}

func TestPreview(t *testing.T) {
	require.Equal(t, "a b", preview("a\n\nb"))
	require.Len(t, []rune(preview(strings.Repeat("x", 100))), previewLength)
}
