package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/nav"
)

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// NavigateMsg is a request to jump to a section, from a key press or a click.
type NavigateMsg struct {
	Section nav.Section
}

func Navigate(section nav.Section) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Section: section} }
}

type ToggleMenuMsg struct{}

func ToggleMenu() tea.Cmd {
	return func() tea.Msg { return ToggleMenuMsg{} }
}

// ScrollMsg reports the viewport offset, at most once per frame.
type ScrollMsg struct {
	Offset int
}

// LayoutMsg is sent whenever the rendered document geometry changes.
type LayoutMsg struct {
	Layout nav.Layout
}

func SetLayout(layout nav.Layout) tea.Cmd {
	return func() tea.Msg { return LayoutMsg{Layout: layout} }
}

// ScrollToMsg starts a smooth scroll towards Offset.
type ScrollToMsg struct {
	Offset int
}

func ScrollTo(offset int) tea.Cmd {
	return func() tea.Msg { return ScrollToMsg{Offset: offset} }
}

// FrameMsg drives animation and coalesced scroll recomputation.
type FrameMsg struct{}

func Frame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// SubmitMsg asks for the contact form to be sent.
type SubmitMsg struct {
	Form contact.Form
}

func Submit(form contact.Form) tea.Cmd {
	return func() tea.Msg { return SubmitMsg{Form: form} }
}

type SubmitResultMsg struct {
	Err error
}

// SubmitResetMsg returns the submission status to idle if Generation is still the latest
// submission.
type SubmitResetMsg struct {
	Generation int
}

func ResetSubmitAfter(delay time.Duration, generation int) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return SubmitResetMsg{Generation: generation}
	})
}

// FocusFormMsg moves keyboard focus into or out of the contact form.
type FocusFormMsg struct {
	Focused bool
}

func FocusForm(focused bool) tea.Cmd {
	return func() tea.Msg { return FocusFormMsg{Focused: focused} }
}

// LastSentMsg carries the time of the newest successfully sent message.
type LastSentMsg struct {
	At time.Time
}
