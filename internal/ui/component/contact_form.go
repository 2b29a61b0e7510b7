package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldSubmit
	fieldCount
)

const (
	messageRows   = 5
	formMaxWidth  = 64
	msgSending    = "Sending..."
	msgSuccess    = "Message sent successfully!"
	msgError      = "Failed to send message. Please try again."
	buttonSend    = "[ Send Message ]"
	buttonSending = "[ Sending... ]"
)

// ContactFormModel is the name, email and message form placed under the contact section.
type ContactFormModel struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int
	focused bool
	status  nav.SubmitStatus
	width   int
}

func NewContactFormModel() ContactFormModel {
	name := textinput.New()
	name.Placeholder = "Your Name"
	name.CharLimit = 100
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "Your Email"
	email.CharLimit = 254
	email.Prompt = ""

	message := textarea.New()
	message.Placeholder = "Your Message"
	message.ShowLineNumbers = false
	message.SetHeight(messageRows)
	message.CharLimit = 5000

	return ContactFormModel{name: name, email: email, message: message, width: formMaxWidth}
}

func (m ContactFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ContactFormModel) Focused() bool {
	return m.focused
}

// Form returns the current field values.
func (m ContactFormModel) Form() contact.Form {
	return contact.Form{
		Name:    strings.TrimSpace(m.name.Value()),
		Email:   strings.TrimSpace(m.email.Value()),
		Message: strings.TrimSpace(m.message.Value()),
	}
}

// Validate checks the current field values.
func (m ContactFormModel) Validate() error {
	return m.Form().Validate()
}

func (m ContactFormModel) Update(msg tea.Msg) (ContactFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(formMaxWidth, max(24, msg.Width-6))
		m.name.Width = m.width - 14
		m.email.Width = m.width - 14
		m.message.SetWidth(m.width - 14)

		return m, nil
	case nav.State:
		m.status = msg.Submit

		return m, nil
	case command.FocusFormMsg:
		if msg.Focused {
			return m.setFocus(true, m.focus)
		}

		return m.setFocus(false, m.focus)
	case command.SubmitResultMsg:
		if msg.Err == nil {
			m.name.Reset()
			m.email.Reset()
			m.message.Reset()

			return m.setFocus(m.focused, fieldName)
		}

		return m, nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}

		return m.onKey(msg)
	}

	return m, nil
}

func (m ContactFormModel) onKey(msg tea.KeyMsg) (ContactFormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.Back):
		return m.setFocus(false, m.focus)
	case key.Matches(msg, input.Default.NextField):
		return m.setFocus(true, (m.focus+1)%fieldCount)
	case key.Matches(msg, input.Default.PrevField):
		return m.setFocus(true, (m.focus+fieldCount-1)%fieldCount)
	case key.Matches(msg, input.Default.Submit):
		return m, m.submit()
	case m.focus == fieldSubmit && msg.Type == tea.KeyEnter:
		return m, m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	}

	return m, cmd
}

func (m ContactFormModel) submit() tea.Cmd {
	if m.status == nav.SubmitSending {
		return nil
	}

	if err := m.Validate(); err != nil {
		return command.SetStatusMessage("Cannot send: "+err.Error(), true)
	}

	return command.Submit(m.Form())
}

func (m ContactFormModel) setFocus(focused bool, field int) (ContactFormModel, tea.Cmd) {
	m.focused = focused
	m.focus = field
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()

	if !focused {
		return m, nil
	}

	switch field {
	case fieldName:
		return m, m.name.Focus()
	case fieldEmail:
		return m, m.email.Focus()
	case fieldMessage:
		return m, m.message.Focus()
	}

	return m, nil
}

// View renders the form. Its height does not depend on the field values or the submission
// status so the document layout stays stable while typing.
func (m ContactFormModel) View() string {
	row := func(label string, field int, value string) string {
		labelStyle := styles.FormLabel
		if m.focused && m.focus == field {
			labelStyle = labelStyle.Foreground(styles.Accent)
		}

		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}

	var button string
	switch {
	case m.status == nav.SubmitSending:
		button = styles.DisabledButton.Render(buttonSending)
	case m.focused && m.focus == fieldSubmit:
		button = styles.FocusedSubmitButton.Render(buttonSend)
	default:
		button = styles.BlurredSubmitButton.Render(buttonSend)
	}

	var status string
	switch m.status {
	case nav.SubmitSending:
		status = styles.FormHint.Render(msgSending)
	case nav.SubmitSuccess:
		status = styles.FormSuccess.Render(msgSuccess)
	case nav.SubmitError:
		status = styles.FormError.Render(msgError)
	case nav.SubmitIdle:
		if m.focused {
			status = styles.FormHint.Render("tab next field · ctrl+s send · esc done")
		} else {
			status = styles.FormHint.Render("press c to write a message")
		}
	}

	box := styles.FormBox
	if m.focused {
		box = styles.FormBoxActive
	}

	return box.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left,
		row("Name", fieldName, m.name.View()),
		row("Email", fieldEmail, m.email.View()),
		row("Message", fieldMessage, m.message.View()),
		"",
		button,
		truncate.String(status, uint(max(1, m.width-4))),
	))
}
