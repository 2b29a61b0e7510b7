package component

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
)

const (
	springFrequency = 7.0
	springDamping   = 1.0
	settleDistance  = 0.5
)

// DocumentModel is the scrollable portfolio. Scroll changes are not reported immediately,
// instead the offset is published at most once per frame through command.ScrollMsg.
type DocumentModel struct {
	viewport viewport.Model
	renderer *content.Renderer
	doc      content.Document
	blocks   []content.RenderedBlock
	inserts  map[string]string
	layout   nav.Layout
	interval time.Duration

	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    int
	animating bool

	dirty        bool
	framePending bool
	width        int
}

func NewDocumentModel(renderer *content.Renderer, doc content.Document, interval time.Duration) DocumentModel {
	port := viewport.New(0, 0)
	port.MouseWheelEnabled = true
	port.KeyMap = viewport.KeyMap{
		PageDown:     input.Default.PageDown,
		PageUp:       input.Default.PageUp,
		HalfPageUp:   input.Default.HalfUp,
		HalfPageDown: input.Default.HalfDown,
		Up:           input.Default.Up,
		Down:         input.Default.Down,
	}

	return DocumentModel{
		viewport: port,
		renderer: renderer,
		doc:      doc,
		inserts:  map[string]string{},
		interval: interval,
		spring:   harmonica.NewSpring(harmonica.FPS(fpsFor(interval)), springFrequency, springDamping),
	}
}

func fpsFor(interval time.Duration) int {
	if interval <= 0 {
		return 60
	}

	return max(1, int(time.Second/interval))
}

func (m DocumentModel) Init() tea.Cmd {
	return nil
}

// Layout is the geometry of the currently composed document.
func (m DocumentModel) Layout() nav.Layout {
	return m.layout
}

func (m DocumentModel) Offset() int {
	return m.viewport.YOffset
}

// SetSize changes the viewport dimensions, re-rendering the content when the width changes.
func (m DocumentModel) SetSize(width int, height int) (DocumentModel, tea.Cmd) {
	m.viewport.Height = max(0, height)
	if width != m.width {
		m.width = width
		m.viewport.Width = width
		m.blocks = nil
	}

	return m.recompose()
}

// SetDocument replaces the portfolio content.
func (m DocumentModel) SetDocument(doc content.Document) (DocumentModel, tea.Cmd) {
	m.doc = doc
	m.blocks = nil

	return m.recompose()
}

// SetInsert places extra text, eg. the contact form, directly below the block with the given id.
func (m DocumentModel) SetInsert(id string, text string) (DocumentModel, tea.Cmd) {
	if m.inserts[id] == text {
		return m, nil
	}

	inserts := make(map[string]string, len(m.inserts)+1)
	for k, v := range m.inserts {
		inserts[k] = v
	}
	inserts[id] = text
	m.inserts = inserts

	return m.recompose()
}

func (m DocumentModel) recompose() (DocumentModel, tea.Cmd) {
	if m.width <= 0 {
		return m, nil
	}

	if m.blocks == nil {
		m.blocks = m.renderer.Render(m.doc, m.width)
	}

	text, regions := content.Compose(m.blocks, m.inserts)
	previousOffset := m.viewport.YOffset
	m.viewport.SetContent(text)

	layout := nav.Layout{
		Regions:        regions,
		DocHeight:      m.viewport.TotalLineCount(),
		ViewportHeight: m.viewport.Height,
	}

	var cmds []tea.Cmd
	if !layoutEqual(layout, m.layout) {
		m.layout = layout
		cmds = append(cmds, command.SetLayout(layout))
	}

	if m.viewport.YOffset != previousOffset {
		m, cmds = m.markDirty(cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m DocumentModel) Update(msg tea.Msg) (DocumentModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case command.ScrollToMsg:
		m.target = m.layout.ClampOffset(msg.Offset)
		m.position = float64(m.viewport.YOffset)
		m.velocity = 0
		m.animating = true
		m, cmds = m.scheduleFrame(cmds)

		return m, tea.Batch(cmds...)
	case command.FrameMsg:
		return m.onFrame()
	case tea.KeyMsg:
		before := m.viewport.YOffset
		switch {
		case key.Matches(msg, input.Default.Top):
			m.viewport.GotoTop()
		case key.Matches(msg, input.Default.Bottom):
			m.viewport.GotoBottom()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		if m.viewport.YOffset != before {
			// Manual scrolling wins over an in progress jump.
			m.animating = false
			m, cmds = m.markDirty(cmds)
		}
	case tea.MouseMsg:
		before := m.viewport.YOffset

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

		if m.viewport.YOffset != before {
			m.animating = false
			m, cmds = m.markDirty(cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m DocumentModel) markDirty(cmds []tea.Cmd) (DocumentModel, []tea.Cmd) {
	m.dirty = true

	return m.scheduleFrame(cmds)
}

func (m DocumentModel) scheduleFrame(cmds []tea.Cmd) (DocumentModel, []tea.Cmd) {
	if m.framePending {
		return m, cmds
	}
	m.framePending = true

	return m, append(cmds, command.Frame(m.interval))
}

func (m DocumentModel) onFrame() (DocumentModel, tea.Cmd) {
	m.framePending = false

	var cmds []tea.Cmd

	if m.animating {
		m.position, m.velocity = m.spring.Update(m.position, m.velocity, float64(m.target))
		if math.Abs(m.position-float64(m.target)) < settleDistance && math.Abs(m.velocity) < settleDistance {
			m.position = float64(m.target)
			m.animating = false
		}

		offset := int(math.Round(m.position))
		if offset != m.viewport.YOffset {
			m.viewport.SetYOffset(offset)
			m.dirty = true
		}

		if m.animating {
			m, cmds = m.scheduleFrame(cmds)
		}
	}

	if m.dirty {
		m.dirty = false
		offset := m.viewport.YOffset
		cmds = append(cmds, func() tea.Msg { return command.ScrollMsg{Offset: offset} })
	}

	return m, tea.Batch(cmds...)
}

func (m DocumentModel) View() string {
	return m.viewport.View()
}

func layoutEqual(a nav.Layout, b nav.Layout) bool {
	if a.DocHeight != b.DocHeight || a.ViewportHeight != b.ViewportHeight || len(a.Regions) != len(b.Regions) {
		return false
	}

	for idx := range a.Regions {
		if a.Regions[idx] != b.Regions[idx] {
			return false
		}
	}

	return true
}
