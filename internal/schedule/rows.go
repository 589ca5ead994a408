package schedule

import "github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"

// Row is one fixed line of a rendered day: a seat in the grid, filled or not.
// Time is set only on the first row of each label, matching the printed form.
type Row struct {
	Time string              `json:"time"`
	Slot *models.HearingSlot `json:"slot"`
}

// Rows flattens one day into exactly len(Times) x Capacity rows, padding
// unfilled seats with nil slots. Renderers must not reshape the compiled
// output beyond this padding.
func (s Schedule) Rows(date string, grid Grid) []Row {
	daily := s[date]
	rows := make([]Row, 0, len(grid.Times)*grid.Capacity)
	for _, label := range grid.Times {
		var forTime []models.HearingSlot
		for _, slot := range daily {
			if slot.Time == label {
				forTime = append(forTime, slot)
			}
		}
		for i := 0; i < grid.Capacity; i++ {
			row := Row{}
			if i == 0 {
				row.Time = label
			}
			if i < len(forTime) {
				slot := forTime[i]
				row.Slot = &slot
			}
			rows = append(rows, row)
		}
	}
	return rows
}
