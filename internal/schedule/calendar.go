package schedule

import "time"

// DayKind classifies a calendar date for display purposes.
type DayKind string

const (
	DayBusiness DayKind = "business"
	DayWeekend  DayKind = "weekend"
	DayHoliday  DayKind = "holiday"
)

// DateKey formats a date the way the schedule map is keyed.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Calendar decides which dates are eligible for hearings. The holiday set is
// injected configuration (exact YYYY-MM-DD strings), never derived.
type Calendar struct {
	holidays map[string]struct{}
}

func NewCalendar(holidays []string) *Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h] = struct{}{}
	}
	return &Calendar{holidays: set}
}

func (c *Calendar) isHoliday(t time.Time) bool {
	_, ok := c.holidays[DateKey(t)]
	return ok
}

// IsBusinessDay reports whether hearings may be placed on the given date:
// a weekday that is not in the holiday set.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday && !c.isHoliday(t)
}

// Classify returns the display classification of a date. Holiday wins over
// Weekend so a holiday falling on a weekend still reads "holiday"; both are
// excluded from hearings exactly the same way.
func (c *Calendar) Classify(t time.Time) DayKind {
	if c.isHoliday(t) {
		return DayHoliday
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return DayWeekend
	}
	return DayBusiness
}
