package content

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const (
	DefaultStyle = "dark"
	minWidth     = 20
)

// RenderedBlock is a block converted to terminal output for a specific width.
type RenderedBlock struct {
	ID   string
	Text string
}

// Renderer converts markdown blocks into styled terminal output. Glamour renderers are cached
// per width since building one is comparatively slow.
type Renderer struct {
	mu        sync.Mutex
	style     string
	renderers map[string]*glamour.TermRenderer
}

func NewRenderer(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}

	return &Renderer{style: style, renderers: map[string]*glamour.TermRenderer{}}
}

// Render renders every block of doc for the given width.
func (r *Renderer) Render(doc Document, width int) []RenderedBlock {
	width = max(width, minWidth)
	blocks := make([]RenderedBlock, len(doc.Blocks))

	for idx, block := range doc.Blocks {
		blocks[idx] = RenderedBlock{ID: block.ID, Text: r.renderBlock(doc, block, idx == 0, width)}
	}

	return blocks
}

func (r *Renderer) renderBlock(doc Document, block Block, hero bool, width int) string {
	var source strings.Builder
	if hero {
		source.WriteString("# " + firstNonEmpty(block.Title, doc.Name) + "\n\n")
		if doc.Headline != "" {
			source.WriteString("*" + doc.Headline + "*\n\n")
		}
	} else if block.Title != "" {
		source.WriteString("## " + block.Title + "\n\n")
	}
	source.WriteString(block.Body)

	markdown := source.String()

	termRenderer := r.termRenderer(width)
	if termRenderer != nil {
		out, err := termRenderer.Render(markdown)
		if err == nil {
			return strings.TrimRight(out, "\n")
		}

		slog.Error("Failed to render markdown", slog.String("block", block.ID), slog.String("error", err.Error()))
	}

	return indent.String(wordwrap.String(markdown, width-2), 2)
}

func (r *Renderer) termRenderer(width int) *glamour.TermRenderer {
	key := r.style + ":" + strconv.Itoa(width)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, found := r.renderers[key]; found {
		return existing
	}

	// WithAutoStyle queries the terminal which can block while the program owns it.
	termRenderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		slog.Error("Failed to create markdown renderer", slog.String("style", r.style), slog.String("error", err.Error()))

		return nil
	}

	r.renderers[key] = termRenderer

	return termRenderer
}

// Compose joins rendered blocks into a single document. Each value in after is placed directly
// beneath the block with the matching id and counts as part of that block's region.
func Compose(blocks []RenderedBlock, after map[string]string) (string, []nav.Region) {
	var (
		parts   []string
		regions = make([]nav.Region, 0, len(blocks))
		top     int
	)

	for _, block := range blocks {
		text := block.Text
		if extra, found := after[block.ID]; found && extra != "" {
			text += "\n" + extra
		}

		height := lineCount(text)
		regions = append(regions, nav.Region{Section: nav.Section(block.ID), Top: top, Bottom: top + height})
		top += height
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n"), regions
}

func lineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
