package schedule

// Grid is the fixed per-day slot structure: an ordered list of time labels,
// each with the same capacity of concurrent hearings. It is identical for
// every business day.
type Grid struct {
	Times    []string
	Capacity int
}

func NewGrid(times []string, capacity int) Grid {
	if capacity < 1 {
		capacity = 1
	}
	return Grid{Times: times, Capacity: capacity}
}

// HasTime reports whether the label is one of the grid's time slots.
func (g Grid) HasTime(label string) bool {
	for _, t := range g.Times {
		if t == label {
			return true
		}
	}
	return false
}
