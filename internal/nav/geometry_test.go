package nav_test

import (
	"math"
	"testing"

	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/stretchr/testify/require"
)

// stackedLayout builds adjacent regions with no gap, in declared order.
func stackedLayout(viewport int, heights ...int) nav.Layout {
	var (
		layout nav.Layout
		top    int
	)

	for idx, height := range heights {
		layout.Regions = append(layout.Regions, nav.Region{Section: nav.Sections[idx], Top: top, Bottom: top + height})
		top += height
	}

	layout.DocHeight = top
	layout.ViewportHeight = viewport

	return layout
}

func TestProgress(t *testing.T) {
	offsets := []int{0, 50, 100}
	expected := []float64{0, 50, 100}

	for idx, offset := range offsets {
		require.InDelta(t, expected[idx], nav.Progress(offset, 100), 0.0001)
	}
}

func TestProgressMonotonicAndBounded(t *testing.T) {
	const maxScroll = 137

	prev := -1.0
	for offset := 0; offset <= maxScroll; offset++ {
		value := nav.Progress(offset, maxScroll)
		require.GreaterOrEqual(t, value, prev)
		require.GreaterOrEqual(t, value, 0.0)
		require.LessOrEqual(t, value, 100.0)
		prev = value
	}
}

func TestProgressDegenerate(t *testing.T) {
	for _, offset := range []int{-5, 0, 10} {
		value := nav.Progress(offset, 0)
		require.False(t, math.IsNaN(value))
		require.False(t, math.IsInf(value, 0))
		require.Zero(t, value)
	}

	require.Zero(t, nav.Progress(3, -10))
}

func TestProgressClampsOvershoot(t *testing.T) {
	require.InDelta(t, 100.0, nav.Progress(120, 100), 0.0001)
	require.InDelta(t, 0.0, nav.Progress(-3, 100), 0.0001)
}

func TestLayoutMaxScroll(t *testing.T) {
	require.Equal(t, 0, nav.Layout{DocHeight: 10, ViewportHeight: 10}.MaxScroll())
	require.Equal(t, 0, nav.Layout{DocHeight: 5, ViewportHeight: 10}.MaxScroll())
	require.Equal(t, 90, nav.Layout{DocHeight: 100, ViewportHeight: 10}.MaxScroll())
}

func TestActiveSection(t *testing.T) {
	layout := stackedLayout(20, 10, 10, 10, 10, 10, 10)

	testCases := []struct {
		offset   int
		expected nav.Section
	}{
		{offset: 0, expected: nav.SectionHome},
		{offset: 5, expected: nav.SectionHome},
		{offset: 8, expected: nav.SectionAbout},
		{offset: 25, expected: nav.SectionSkills},
		{offset: 40, expected: nav.SectionExperience},
	}

	for _, testCase := range testCases {
		require.Equal(t, testCase.expected,
			nav.ActiveSection(layout, testCase.offset, nav.DefaultThreshold, nav.SectionHome),
			"offset %d", testCase.offset)
	}
}

func TestActiveSectionBoundaryPrefersEarlier(t *testing.T) {
	layout := stackedLayout(20, 10, 10)

	// Threshold sits exactly on the shared edge: home.bottom == about.top == threshold.
	require.Equal(t, nav.SectionHome, nav.ActiveSection(layout, 7, 3, nav.SectionAbout))
	// One row later only about brackets it.
	require.Equal(t, nav.SectionAbout, nav.ActiveSection(layout, 8, 3, nav.SectionHome))
}

func TestActiveSectionRetainsPrevious(t *testing.T) {
	// A gap between about and skills, like an untracked block sitting between them.
	layout := nav.Layout{
		Regions: []nav.Region{
			{Section: nav.SectionHome, Top: 0, Bottom: 10},
			{Section: nav.SectionAbout, Top: 10, Bottom: 20},
			{Section: nav.SectionSkills, Top: 40, Bottom: 50},
		},
		DocHeight:      50,
		ViewportHeight: 10,
	}

	require.Equal(t, nav.SectionAbout, nav.ActiveSection(layout, 25, 3, nav.SectionAbout))
	require.Equal(t, nav.SectionProjects, nav.ActiveSection(layout, 25, 3, nav.SectionProjects))
	require.Equal(t, nav.SectionSkills, nav.ActiveSection(layout, 37, 3, nav.SectionAbout))
}

func TestActiveSectionFirstMatchInDeclaredOrder(t *testing.T) {
	// Regions listed out of order and overlapping; declared section order decides.
	layout := nav.Layout{
		Regions: []nav.Region{
			{Section: nav.SectionProjects, Top: 0, Bottom: 30},
			{Section: nav.SectionAbout, Top: 0, Bottom: 30},
		},
		DocHeight:      30,
		ViewportHeight: 10,
	}

	require.Equal(t, nav.SectionAbout, nav.ActiveSection(layout, 0, 3, nav.SectionHome))
}

func TestSectionParse(t *testing.T) {
	section, err := nav.ParseSection(" Projects ")
	require.NoError(t, err)
	require.Equal(t, nav.SectionProjects, section)
	require.Equal(t, "Projects", section.Title())
	require.Equal(t, 3, section.Index())

	_, errUnknown := nav.ParseSection("certifications")
	require.ErrorIs(t, errUnknown, nav.ErrUnknownSection)
	require.Equal(t, -1, nav.Section("nope").Index())
}
