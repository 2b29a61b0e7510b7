// Package content loads the portfolio document that is rendered by the ui.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed default.yaml
	defaultDocument []byte

	ErrContentRead  = errors.New("failed to read content")
	ErrContentValid = errors.New("invalid content")
)

// Block is one anchorable part of the document. Body is markdown.
type Block struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Document is the whole portfolio, rendered top to bottom in block order.
type Document struct {
	Name     string  `yaml:"name"`
	Headline string  `yaml:"headline"`
	Blocks   []Block `yaml:"blocks"`
}

func (d Document) Validate() error {
	if len(d.Blocks) == 0 {
		return fmt.Errorf("%w: no blocks", ErrContentValid)
	}

	seen := map[string]bool{}
	for idx, block := range d.Blocks {
		id := strings.TrimSpace(block.ID)
		if id == "" {
			return fmt.Errorf("%w: block %d has no id", ErrContentValid, idx)
		}

		if seen[id] {
			return fmt.Errorf("%w: duplicate block id %q", ErrContentValid, id)
		}
		seen[id] = true
	}

	return nil
}

// Decode parses and validates a yaml document.
func Decode(reader io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(reader).Decode(&doc); err != nil {
		return Document{}, errors.Join(err, ErrContentRead)
	}

	for idx := range doc.Blocks {
		doc.Blocks[idx].ID = strings.TrimSpace(doc.Blocks[idx].ID)
	}

	if err := doc.Validate(); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Load reads the document at path. An empty path loads the built in document.
func Load(path string) (Document, error) {
	if path == "" {
		return Default()
	}

	file, errOpen := os.Open(path)
	if errOpen != nil {
		return Document{}, errors.Join(errOpen, ErrContentRead)
	}
	defer file.Close()

	return Decode(file)
}

func Default() (Document, error) {
	return Decode(bytes.NewReader(defaultDocument))
}
