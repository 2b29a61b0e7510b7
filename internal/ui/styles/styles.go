package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayLight   = lipgloss.Color("240")
	GrayDark    = lipgloss.Color("#2f3030")
	White       = lipgloss.Color("#cccccc")
	Red         = lipgloss.Color("#B8383B")
	Blue        = lipgloss.Color("#5885A2")
	Green       = lipgloss.Color("#4d7455")
	Gold        = lipgloss.Color("#ffd700")
	Purple      = lipgloss.Color("#8650ac")
	ProgressEnd = lipgloss.Color("#cf6a32")

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(GrayLight)
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	// Navigation bar.
	BrandBracket = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	BrandText    = lipgloss.NewStyle().Foreground(White).Bold(true)
	NavInactive  = lipgloss.NewStyle().Foreground(Blue).PaddingLeft(1).PaddingRight(1)
	NavActive    = lipgloss.NewStyle().Foreground(Black).Background(Accent).Bold(true).PaddingLeft(1).PaddingRight(1)
	MenuToggle   = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingLeft(1).PaddingRight(1)
	MenuOverlay  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(0, 1)

	// Contact form.
	FormLabel           = lipgloss.NewStyle().Foreground(GrayLight).Width(9)
	FormBox             = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Padding(0, 1).MarginLeft(2)
	FormBoxActive       = FormBox.BorderForeground(Accent)
	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	BlurredSubmitButton = lipgloss.NewStyle().Foreground(GrayLight)
	DisabledButton      = lipgloss.NewStyle().Foreground(Gray).Italic(true)
	FormSuccess         = lipgloss.NewStyle().Foreground(Green).Bold(true)
	FormError           = lipgloss.NewStyle().Foreground(Red).Bold(true)
	FormHint            = lipgloss.NewStyle().Foreground(Gray).Italic(true)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(2)
	StatusSection = lipgloss.NewStyle().Foreground(Purple).Bold(true).PaddingRight(2).PaddingLeft(1)
	StatusHelp    = lipgloss.NewStyle().Foreground(GrayLight).Bold(true).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(1)
	StatusHistory = lipgloss.NewStyle().Foreground(Gray).PaddingLeft(1)

	PanelLabel = lipgloss.NewStyle().Foreground(GrayLight).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(1, 3)
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(0, width-lipgloss.Width(value))

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}
