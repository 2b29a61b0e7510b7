package input

// Direction is the way the user is stepping through the sections of the document.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
)

// Step moves idx one position in dir, staying within [0, count).
func Step(idx int, count int, dir Direction) int {
	if count <= 0 {
		return 0
	}

	switch dir {
	case Up:
		idx--
	case Down:
		idx++
	}

	return min(max(idx, 0), count-1)
}
