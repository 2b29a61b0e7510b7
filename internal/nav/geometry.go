package nav

// DefaultThreshold is the distance, in rows from the top of the viewport, of the line used to
// decide which section is active.
const DefaultThreshold = 3

// Region is the vertical extent of a section within the document, in rows. Bottom is exclusive
// in the sense that it equals Top + height.
type Region struct {
	Section Section
	Top     int
	Bottom  int
}

func (r Region) Height() int {
	return r.Bottom - r.Top
}

// Layout describes the rendered document that is being scrolled.
type Layout struct {
	Regions        []Region
	DocHeight      int
	ViewportHeight int
}

// MaxScroll is the largest valid scroll offset. It is never negative.
func (l Layout) MaxScroll() int {
	return max(0, l.DocHeight-l.ViewportHeight)
}

// Region returns the first region bound to the section.
func (l Layout) Region(section Section) (Region, bool) {
	for _, region := range l.Regions {
		if region.Section == section {
			return region, true
		}
	}

	return Region{}, false
}

// ClampOffset bounds an offset to [0, MaxScroll].
func (l Layout) ClampOffset(offset int) int {
	return min(max(0, offset), l.MaxScroll())
}

// Progress computes the scroll completion ratio as a percentage in [0,100]. A document that
// fits entirely in the viewport has nothing to scroll and always reports 0.
func Progress(offset int, maxScroll int) float64 {
	if maxScroll <= 0 {
		return 0
	}

	percent := float64(offset) / float64(maxScroll) * 100

	return min(max(percent, 0), 100)
}

// ActiveSection scans Sections in declared order and returns the first whose region, relative
// to the viewport, brackets the threshold line. When nothing matches prev is returned as-is.
func ActiveSection(layout Layout, offset int, threshold int, prev Section) Section {
	for _, section := range Sections {
		region, found := layout.Region(section)
		if !found {
			continue
		}

		top := region.Top - offset
		bottom := region.Bottom - offset

		if top <= threshold && bottom >= threshold {
			return section
		}
	}

	return prev
}
