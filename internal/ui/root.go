package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

var errNoSender = errors.New("contact form is not configured")

// Sender delivers contact form submissions.
type Sender interface {
	Submit(ctx context.Context, form contact.Form) error
}

// LastSent looks up when a message was last sent successfully.
type LastSent interface {
	LastSuccess(ctx context.Context) (time.Time, bool, error)
}

// Options bundles everything the root model needs from the outside.
type Options struct {
	Config   config.Config
	Document content.Document
	Renderer *content.Renderer
	Sender   Sender
	History  LastSent
	// Section, when set, is scrolled to once the document layout is first known.
	Section nav.Section
	Build   component.BuildInfo
}

// rootModel is the top level model for the ui side of the app. It is the sole owner of nav.State,
// child models only ever receive copies of it.
type rootModel struct {
	ctx      context.Context
	state    nav.State
	width    int
	height   int
	showHelp bool
	sender   Sender
	history  LastSent
	pending  nav.Section

	progress component.ProgressModel
	navBar   component.NavBarModel
	document component.DocumentModel
	form     component.ContactFormModel
	status   component.StatusBarModel
	help     component.HelpModel
}

func newRootModel(ctx context.Context, opts Options) rootModel {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = content.NewRenderer(opts.Config.MarkdownStyle)
	}

	navBar, _ := component.NewNavBarModel().Update(opts.Document)

	return rootModel{
		ctx:      ctx,
		state:    nav.New(opts.Config.ThresholdRows),
		sender:   opts.Sender,
		history:  opts.History,
		pending:  opts.Section,
		progress: component.NewProgressModel(),
		navBar:   navBar,
		document: component.NewDocumentModel(renderer, opts.Document, opts.Config.FrameInterval()),
		form:     component.NewContactFormModel(),
		status:   component.NewStatusBarModel(opts.Build.Version),
		help:     component.NewHelpModel(opts.Build),
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("folio"),
		m.form.Init(),
		m.loadLastSent(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	var cmd tea.Cmd

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m, cmd = m.resize(msg)
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Quit) && (msg.String() == "ctrl+c" || !m.form.Focused()) {
			return m, tea.Quit
		}
		m, cmd = m.onKey(msg)
	case tea.MouseMsg:
		// The help screen covers the nav bar and the document.
		if m.showHelp {
			return m, nil
		}
		var navCmd, docCmd tea.Cmd
		m.navBar, navCmd = m.navBar.Update(msg)
		m.document, docCmd = m.document.Update(msg)
		cmd = tea.Batch(navCmd, docCmd)
	case command.NavigateMsg:
		m, cmd = m.apply(nav.NavigateCommand{Section: msg.Section})
	case command.ToggleMenuMsg:
		m, cmd = m.apply(nav.ToggleMenu{})
	case command.ScrollMsg:
		m, cmd = m.apply(nav.ScrollEvent{Offset: msg.Offset})
	case command.LayoutMsg:
		m, cmd = m.apply(nav.LayoutEvent{Layout: msg.Layout})
		var startCmd tea.Cmd
		m, startCmd = m.openPending()
		cmd = tea.Batch(cmd, startCmd)
	case command.ScrollToMsg, command.FrameMsg:
		m.document, cmd = m.document.Update(msg)
	case command.SubmitMsg:
		m, cmd = m.startSubmit(msg.Form)
	case command.SubmitResultMsg:
		m, cmd = m.finishSubmit(msg)
	case command.SubmitResetMsg:
		m, cmd = m.apply(nav.SubmitReset{Generation: msg.Generation})
	case command.FocusFormMsg:
		m.form, cmd = m.form.Update(msg)
	case command.StatusMsg, command.ClearStatusMessageMsg, command.LastSentMsg:
		m.status, cmd = m.status.Update(msg)
	case content.Document:
		m.navBar, _ = m.navBar.Update(msg)
		m.document, cmd = m.document.SetDocument(msg)
		cmd = tea.Batch(cmd, command.SetStatusMessage("Content reloaded", false))
	case config.Config:
		m, cmd = m.apply(nav.ThresholdEvent{Rows: msg.ThresholdRows})
	}

	return m.sync(cmd)
}

// sync pushes the latest state to the children and keeps the form spliced into the document.
func (m rootModel) sync(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.progress, _ = m.progress.Update(m.state)
	m.navBar, _ = m.navBar.Update(m.state)
	m.form, _ = m.form.Update(m.state)
	m.status, _ = m.status.Update(m.state)

	var insertCmd tea.Cmd
	m.document, insertCmd = m.document.SetInsert(string(nav.SectionContact), m.form.View())

	return m, tea.Batch(cmd, insertCmd)
}

func (m rootModel) resize(msg tea.WindowSizeMsg) (rootModel, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.progress, _ = m.progress.Update(msg)
	m.navBar, _ = m.navBar.Update(msg)
	m.form, _ = m.form.Update(msg)
	m.status, _ = m.status.Update(msg)
	m.help, _ = m.help.Update(msg)

	var cmd tea.Cmd
	m.document, cmd = m.document.SetSize(msg.Width, m.contentHeight())

	return m, cmd
}

// contentHeight is what remains after the progress bar, nav bar and status bar.
func (m rootModel) contentHeight() int {
	return max(0, m.height-3)
}

func (m rootModel) onKey(msg tea.KeyMsg) (rootModel, tea.Cmd) {
	if m.form.Focused() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)

		return m, cmd
	}

	if m.showHelp {
		if key.Matches(msg, input.Default.Help, input.Default.Back) {
			m.showHelp = false
		}

		return m, nil
	}

	switch {
	case key.Matches(msg, input.Default.Help):
		m.showHelp = true

		return m, nil
	case key.Matches(msg, input.Default.Back):
		if m.state.MenuOpen {
			return m.apply(nav.CloseMenu{})
		}

		return m, nil
	case key.Matches(msg, input.Default.Menu):
		return m.apply(nav.ToggleMenu{})
	case key.Matches(msg, input.Default.Jump):
		idx, ok := input.JumpIndex(msg.String())
		if !ok || idx >= len(nav.Sections) {
			return m, nil
		}

		return m.apply(nav.NavigateCommand{Section: nav.Sections[idx]})
	case key.Matches(msg, input.Default.NextSection):
		return m.step(input.Down)
	case key.Matches(msg, input.Default.PrevSection):
		return m.step(input.Up)
	case key.Matches(msg, input.Default.Compose):
		next, cmd := m.apply(nav.NavigateCommand{Section: nav.SectionContact})

		return next, tea.Batch(cmd, command.FocusForm(true))
	}

	var cmd tea.Cmd
	m.document, cmd = m.document.Update(msg)

	return m, cmd
}

// openPending navigates to the requested start section once its region exists.
func (m rootModel) openPending() (rootModel, tea.Cmd) {
	if m.pending == "" {
		return m, nil
	}

	if _, found := m.state.Layout.Region(m.pending); !found {
		return m, nil
	}

	section := m.pending
	m.pending = ""

	return m.apply(nav.NavigateCommand{Section: section})
}

func (m rootModel) step(dir input.Direction) (rootModel, tea.Cmd) {
	idx := input.Step(m.state.Active.Index(), len(nav.Sections), dir)

	return m.apply(nav.NavigateCommand{Section: nav.Sections[idx]})
}

// apply runs a transition and turns its effect into a command.
func (m rootModel) apply(evt nav.Event) (rootModel, tea.Cmd) {
	next, effect := m.state.Apply(evt)
	m.state = next

	switch effect := effect.(type) {
	case nav.ScrollTo:
		return m, command.ScrollTo(effect.Offset)
	case nav.ResetSubmitAfter:
		return m, command.ResetSubmitAfter(effect.Delay, effect.Generation)
	}

	return m, nil
}

func (m rootModel) startSubmit(form contact.Form) (rootModel, tea.Cmd) {
	next, effect := m.state.Apply(nav.SubmitStarted{})
	m.state = next

	if _, ok := effect.(nav.BeginSubmit); !ok {
		return m, nil
	}

	ctx, sender := m.ctx, m.sender

	return m, func() tea.Msg {
		if sender == nil {
			return command.SubmitResultMsg{Err: errNoSender}
		}

		return command.SubmitResultMsg{Err: sender.Submit(ctx, form)}
	}
}

func (m rootModel) finishSubmit(msg command.SubmitResultMsg) (rootModel, tea.Cmd) {
	m, cmd := m.apply(nav.SubmitResult{Err: msg.Err})

	var formCmd tea.Cmd
	m.form, formCmd = m.form.Update(msg)

	if msg.Err != nil {
		return m, tea.Batch(cmd, formCmd)
	}

	return m, tea.Batch(cmd, formCmd, m.loadLastSent())
}

func (m rootModel) loadLastSent() tea.Cmd {
	if m.history == nil {
		return nil
	}

	ctx, history := m.ctx, m.history

	return func() tea.Msg {
		sentAt, found, err := history.LastSuccess(ctx)
		if err != nil {
			slog.Error("Failed to load last sent time", slog.String("error", err.Error()))

			return nil
		}

		if !found {
			return nil
		}

		return command.LastSentMsg{At: sentAt}
	}
}

func (m rootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body string
	if m.showHelp {
		body = lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(m.help.View())
	} else {
		body = overlay(m.document.View(), m.navBar.Menu())
	}

	ctr := styles.ContentContainerStyle.Width(m.width).Render(body)
	ftr := styles.FooterContainerStyle.Width(m.width).Render(m.status.View())

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, m.progress.View(), m.navBar.View(), ctr, ftr))
}

// overlay draws top over the first lines of base, replacing them entirely.
func overlay(base string, top string) string {
	if top == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	for idx, line := range strings.Split(top, "\n") {
		if idx >= len(baseLines) {
			break
		}
		baseLines[idx] = line
	}

	return strings.Join(baseLines, "\n")
}

// logMsg is useful for debugging events. Tail the log file ~/.config/folio/folio.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case command.FrameMsg, command.ScrollMsg, tea.MouseMsg:
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
