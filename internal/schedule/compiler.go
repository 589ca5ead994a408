package schedule

import (
	"time"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"
)

// horizonDays caps the forward search. Complaints that do not fit inside the
// horizon stay pending and reappear on the next compilation.
const horizonDays = 365

// Schedule is the compiled date -> hearings map. A missing key means the day
// has no hearings and its capacity is fully free.
type Schedule map[string][]models.HearingSlot

// Compiler merges administrator-pinned hearings with an automatic fill
// sequence drawn from pending complaints.
type Compiler struct {
	Calendar *Calendar
	Grid     Grid
}

func NewCompiler(cal *Calendar, grid Grid) *Compiler {
	return &Compiler{Calendar: cal, Grid: grid}
}

// Compile rebuilds the full schedule from scratch. It is a pure function of
// its inputs; now is injected so results are deterministic under test.
//
// Manual hearings are placed unconditionally: they are never capacity-checked,
// so administrators can over-book a slot and the overflow is accepted policy.
// Complaints arrive most-recent-first; the automatic fill serves them
// oldest-first (FIFO) into whatever capacity the manuals left, walking forward
// from tomorrow and skipping non-business days.
func (c *Compiler) Compile(now time.Time, complaints []models.Complaint, manuals []models.HearingSlot) Schedule {
	out := make(Schedule)

	// Manuals first, grouped by date, insertion order kept. A manual without
	// a date holds no seat but still reserves its complaint below.
	for _, h := range manuals {
		if h.Date == "" {
			continue
		}
		out[h.Date] = append(out[h.Date], h)
	}

	covered := make(map[string]struct{})
	for _, h := range manuals {
		if h.ComplaintID != "" {
			covered[h.ComplaintID] = struct{}{}
		}
	}

	// Oldest submitted first, minus complaints already owned by a manual.
	pending := make([]models.Complaint, 0, len(complaints))
	for i := len(complaints) - 1; i >= 0; i-- {
		if _, ok := covered[complaints[i].ID]; ok {
			continue
		}
		pending = append(pending, complaints[i])
	}

	next := 0
	day := now.AddDate(0, 0, 1)
	for processed := 0; next < len(pending) && processed < horizonDays; processed++ {
		if c.Calendar.IsBusinessDay(day) {
			key := DateKey(day)
			for _, label := range c.Grid.Times {
				occupied := 0
				for _, s := range out[key] {
					if s.Time == label {
						occupied++
					}
				}
				// Over-booked manuals make this negative; nothing is placed.
				for free := c.Grid.Capacity - occupied; free > 0 && next < len(pending); free-- {
					comp := pending[next]
					out[key] = append(out[key], models.HearingSlot{
						Date:        key,
						Time:        label,
						Claimant:    comp.FullName,
						Defendant:   comp.DenouncedCompany,
						ComplaintID: comp.ID,
						IsManual:    false,
					})
					next++
				}
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return out
}

// Unplaced returns the complaints a compiled schedule did not seat: those with
// no covering manual hearing and no automatic slot inside the horizon. They
// are not an error; they stay pending until capacity or an administrator
// reaches them.
func Unplaced(compiled Schedule, complaints []models.Complaint, manuals []models.HearingSlot) []models.Complaint {
	seated := make(map[string]struct{})
	for _, h := range manuals {
		if h.ComplaintID != "" {
			seated[h.ComplaintID] = struct{}{}
		}
	}
	for _, slots := range compiled {
		for _, s := range slots {
			if s.ComplaintID != "" {
				seated[s.ComplaintID] = struct{}{}
			}
		}
	}
	var out []models.Complaint
	for _, comp := range complaints {
		if _, ok := seated[comp.ID]; !ok {
			out = append(out, comp)
		}
	}
	return out
}
