// Package nav holds the navigation state machine that keeps the navigation ui in sync with the
// scroll position of the portfolio document.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSection = errors.New("unknown section")

// Section identifies a named, anchorable region of the document.
type Section string

const (
	SectionHome       Section = "home"
	SectionAbout      Section = "about"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionExperience Section = "experience"
	SectionContact    Section = "contact"
)

// Sections is the fixed, ordered set of tracked sections. Order matters, the first section
// whose region brackets the threshold line wins.
var Sections = []Section{ //nolint:gochecknoglobals
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionContact,
}

func (s Section) Valid() bool {
	for _, section := range Sections {
		if section == s {
			return true
		}
	}

	return false
}

// Title returns the label shown in the navigation bar.
func (s Section) Title() string {
	if s == "" {
		return ""
	}

	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Index returns the position in Sections, or -1.
func (s Section) Index() int {
	for idx, section := range Sections {
		if section == s {
			return idx
		}
	}

	return -1
}

func ParseSection(value string) (Section, error) {
	section := Section(strings.ToLower(strings.TrimSpace(value)))
	if !section.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, value)
	}

	return section, nil
}
