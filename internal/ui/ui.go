package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, opts Options) *UI {
	zone.NewGlobal()

	fps := opts.Config.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, opts),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

// Send delivers a message, eg. a reloaded content.Document or config.Config, to the running program.
func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
