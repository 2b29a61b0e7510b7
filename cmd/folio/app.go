package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/ui"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing file change notifications to the ui.
type App struct {
	ui             UI
	config         config.Config
	loader         *config.Loader
	uiUpdates      chan any
	configUpdates  chan config.Config
	contentUpdates chan content.Document
	stopWatch      context.CancelFunc
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(conf config.Config, loader *config.Loader, configUpdates chan config.Config) *App {
	return &App{
		config:         conf,
		loader:         loader,
		configUpdates:  configUpdates,
		uiUpdates:      make(chan any),
		contentUpdates: make(chan content.Document),
	}
}

// Start brings up the file watchers and runs the main event loop until the ui exits.
func (app *App) Start(ctx context.Context, done <-chan any) {
	if app.loader != nil {
		app.loader.Watch()
	}

	app.watchContent(ctx, app.config.ContentPath)
	defer func() { app.stopWatch() }()

	// Start sending UI updates to the UI.
	go app.uiSender(ctx)

	for {
		select {
		case conf := <-app.configUpdates:
			if conf.ContentPath != app.config.ContentPath {
				app.onContentPath(ctx, conf.ContentPath)
			}
			app.config = conf
			app.send(ctx, conf)
		case doc := <-app.contentUpdates:
			app.send(ctx, doc)
		case <-ctx.Done():
			return
		case <-done:
			return
		}
	}
}

// onContentPath loads a newly configured document and moves the watcher over to it.
func (app *App) onContentPath(ctx context.Context, path string) {
	app.watchContent(ctx, path)

	doc, err := content.Load(path)
	if err != nil {
		slog.Error("Failed to load content", slog.String("path", path), slog.String("error", err.Error()))

		return
	}

	app.send(ctx, doc)
}

func (app *App) watchContent(ctx context.Context, path string) {
	if app.stopWatch != nil {
		app.stopWatch()
	}

	watchCtx, cancel := context.WithCancel(ctx)
	app.stopWatch = cancel

	go content.Watch(watchCtx, path, app.contentUpdates)
}

func (app *App) send(ctx context.Context, msg any) {
	select {
	case app.uiUpdates <- msg:
	case <-ctx.Done():
	}
}

// uiSender handles forwarding all events to the UI.
func (app *App) uiSender(ctx context.Context) {
	for {
		select {
		case msg := <-app.uiUpdates:
			if app.ui != nil {
				app.ui.Send(msg)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, opts ui.Options) UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, opts)
	}

	return app.ui
}
