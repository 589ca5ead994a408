package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/schedule"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalendarClassify(t *testing.T) {
	cal := schedule.NewCalendar([]string{"2025-05-01", "2025-10-12"})

	tests := map[string]struct {
		day      string
		kind     schedule.DayKind
		business bool
	}{
		"plain weekday":      {"2025-09-02", schedule.DayBusiness, true},
		"saturday":           {"2025-09-06", schedule.DayWeekend, false},
		"sunday":             {"2025-09-07", schedule.DayWeekend, false},
		"weekday holiday":    {"2025-05-01", schedule.DayHoliday, false},
		"holiday on weekend": {"2025-10-12", schedule.DayHoliday, false}, // Sunday: holiday still wins for display
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.kind, cal.Classify(date(tc.day)))
			assert.Equal(t, tc.business, cal.IsBusinessDay(date(tc.day)))
		})
	}
}

func TestRowsPadToFixedShape(t *testing.T) {
	grid := schedule.NewGrid([]string{"08:00", "09:00"}, 2)
	s := schedule.Schedule{
		"2025-09-02": {
			{Date: "2025-09-02", Time: "09:00", Claimant: "A", Defendant: "X"},
		},
	}

	rows := s.Rows("2025-09-02", grid)
	assert.Len(t, rows, 4)

	assert.Equal(t, "08:00", rows[0].Time)
	assert.Nil(t, rows[0].Slot)
	assert.Empty(t, rows[1].Time)
	assert.Nil(t, rows[1].Slot)
	assert.Equal(t, "09:00", rows[2].Time)
	if assert.NotNil(t, rows[2].Slot) {
		assert.Equal(t, "A", rows[2].Slot.Claimant)
	}
	assert.Nil(t, rows[3].Slot)

	// A missing day still renders the full empty shape.
	empty := s.Rows("2025-09-03", grid)
	assert.Len(t, empty, 4)
	for _, r := range empty {
		assert.Nil(t, r.Slot)
	}
}

func TestRowsTruncateOverbookedTime(t *testing.T) {
	grid := schedule.NewGrid([]string{"08:00"}, 2)
	s := schedule.Schedule{
		"2025-09-02": {
			{Time: "08:00", Claimant: "ONE"},
			{Time: "08:00", Claimant: "TWO"},
			{Time: "08:00", Claimant: "THREE"},
		},
	}

	// The printed form has exactly capacity rows per label; overflow beyond
	// capacity is not rendered.
	rows := s.Rows("2025-09-02", grid)
	assert.Len(t, rows, 2)
	assert.Equal(t, "ONE", rows[0].Slot.Claimant)
	assert.Equal(t, "TWO", rows[1].Slot.Claimant)
}
