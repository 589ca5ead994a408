package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/metrics"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/repository"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/schedule"
)

var (
	// ErrInvalidHearing rejects a save missing claimant, defendant, date or
	// a valid time label.
	ErrInvalidHearing = errors.New("claimant, defendant, date and a valid time are required")

	// ErrNotManual rejects deleting an automatic placement: it has no
	// identity of its own. Editing and saving converts it into a fixed
	// manual entry first.
	ErrNotManual = errors.New("only manual hearings can be deleted; edit and save to convert an automatic hearing into a fixed manual entry first")
)

// DayView is what the back-office table and the print form render.
type DayView struct {
	Date   string           `json:"date"`
	Kind   schedule.DayKind `json:"kind"`
	Rows   []schedule.Row   `json:"rows"`
	Manual int              `json:"manualCount"`
}

// ScheduleService owns the compiled schedule and the in-memory complaint and
// manual-hearing sets behind it. Reads are cheap map lookups; every mutation
// persists first, then recompiles the whole map from scratch so it is always
// consistent with the stores.
type ScheduleService struct {
	log        zerolog.Logger
	complaints repository.ComplaintRepository
	hearings   repository.HearingRepository
	compiler   *schedule.Compiler
	now        func() time.Time

	mu         sync.RWMutex
	generation uint64
	all        []models.Complaint
	manuals    []models.HearingSlot
	compiled   schedule.Schedule
}

func NewScheduleService(
	log zerolog.Logger,
	complaints repository.ComplaintRepository,
	hearings repository.HearingRepository,
	compiler *schedule.Compiler,
) *ScheduleService {
	return &ScheduleService{
		log:        log,
		complaints: complaints,
		hearings:   hearings,
		compiler:   compiler,
		now:        time.Now,
		compiled:   make(schedule.Schedule),
	}
}

// SetClock overrides the wall clock, for deterministic tests.
func (s *ScheduleService) SetClock(now func() time.Time) { s.now = now }

// Grid exposes the slot configuration to handlers.
func (s *ScheduleService) Grid() schedule.Grid { return s.compiler.Grid }

// Refresh fetches complaints and manual hearings concurrently, then
// recompiles. A failed fetch degrades to an empty collection with a warning
// so the back office stays usable when the store is unreachable. If another
// refresh or a mutation lands while the fetches are in flight, the stale
// result is discarded.
func (s *ScheduleService) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var (
		complaints []models.Complaint
		manuals    []models.HearingSlot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if complaints, err = s.complaints.List(gctx); err != nil {
			s.log.Warn().Err(err).Msg("complaint fetch failed, scheduling without complaints")
			metrics.FetchFailures.WithLabelValues("complaints").Inc()
			complaints = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if manuals, err = s.hearings.List(gctx); err != nil {
			s.log.Warn().Err(err).Msg("manual hearing fetch failed, scheduling without manuals")
			metrics.FetchFailures.WithLabelValues("hearings").Inc()
			manuals = nil
		}
		return nil
	})
	_ = g.Wait() // fetch errors are degraded above, never returned

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.log.Debug().Uint64("generation", gen).Msg("discarding stale refresh")
		return
	}
	s.all = complaints
	s.manuals = manuals
	s.recompileLocked()
}

// recompileLocked rebuilds the map from the in-memory sets. Callers hold mu.
func (s *ScheduleService) recompileLocked() {
	start := time.Now()
	s.compiled = s.compiler.Compile(s.now(), s.all, s.manuals)
	metrics.CompileDuration.Observe(time.Since(start).Seconds())

	auto := 0
	for _, slots := range s.compiled {
		for _, slot := range slots {
			if !slot.IsManual {
				auto++
			}
		}
	}
	metrics.ComplaintsTotal.Set(float64(len(s.all)))
	metrics.HearingsManual.Set(float64(len(s.manuals)))
	metrics.HearingsAutomatic.Set(float64(auto))
	metrics.ComplaintsUnplaced.Set(float64(len(schedule.Unplaced(s.compiled, s.all, s.manuals))))
}

// Day renders one date as fixed rows. It only re-reads the compiled map;
// day navigation never triggers a recompute.
func (s *ScheduleService) Day(date string) (DayView, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DayView{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	manual := 0
	for _, slot := range s.compiled[date] {
		if slot.IsManual {
			manual++
		}
	}
	return DayView{
		Date:   date,
		Kind:   s.compiler.Calendar.Classify(t),
		Rows:   s.compiled.Rows(date, s.compiler.Grid),
		Manual: manual,
	}, nil
}

// Save validates, persists and pins a hearing as manual, then recompiles.
func (s *ScheduleService) Save(ctx context.Context, h models.HearingSlot) (models.HearingSlot, error) {
	h.Claimant = strings.ToUpper(strings.TrimSpace(h.Claimant))
	h.Defendant = strings.ToUpper(strings.TrimSpace(h.Defendant))
	h.Date = strings.TrimSpace(h.Date)
	if h.Claimant == "" || h.Defendant == "" || h.Date == "" || !s.compiler.Grid.HasTime(h.Time) {
		return models.HearingSlot{}, ErrInvalidHearing
	}
	if _, err := time.Parse("2006-01-02", h.Date); err != nil {
		return models.HearingSlot{}, ErrInvalidHearing
	}
	h.IsManual = true // saving always pins

	if err := s.hearings.Upsert(ctx, &h); err != nil {
		return models.HearingSlot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	kept := s.manuals[:0:0]
	for _, m := range s.manuals {
		if m.ID != h.ID {
			kept = append(kept, m)
		}
	}
	s.manuals = append(kept, h)
	s.recompileLocked()
	return h, nil
}

// Delete removes a manual hearing. Ids that do not belong to a stored manual
// hearing are refused; automatic placements cannot be deleted.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	s.mu.RLock()
	found := false
	for _, m := range s.manuals {
		if m.ID == id && m.IsManual {
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found {
		return ErrNotManual
	}

	if err := s.hearings.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	kept := s.manuals[:0:0]
	for _, m := range s.manuals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.manuals = kept
	s.recompileLocked()
	return nil
}

// Pending lists complaints that the current schedule did not seat anywhere.
func (s *ScheduleService) Pending() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.Unplaced(s.compiled, s.all, s.manuals)
}
