package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/handlers"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/schedule"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/service"
)

type stubComplaints struct{ items []models.Complaint }

func (s *stubComplaints) List(context.Context) ([]models.Complaint, error)       { return s.items, nil }
func (s *stubComplaints) Get(context.Context, string) (*models.Complaint, error) { return nil, nil }
func (s *stubComplaints) Create(context.Context, *models.Complaint) error        { return nil }
func (s *stubComplaints) Stats(context.Context) (int, int, int, error)           { return 0, 0, 0, nil }

type stubHearings struct{ items []models.HearingSlot }

func (s *stubHearings) List(context.Context) ([]models.HearingSlot, error) { return s.items, nil }
func (s *stubHearings) Upsert(_ context.Context, h *models.HearingSlot) error {
	if h.ID == "" {
		h.ID = "h-1"
	}
	return nil
}
func (s *stubHearings) Delete(context.Context, string) error { return nil }

func testRouter(t *testing.T, complaints []models.Complaint, manuals []models.HearingSlot) *chi.Mux {
	t.Helper()
	compiler := schedule.NewCompiler(
		schedule.NewCalendar(nil),
		schedule.NewGrid([]string{"08:00", "09:00"}, 2),
	)
	svc := service.NewScheduleService(zerolog.Nop(), &stubComplaints{items: complaints}, &stubHearings{items: manuals}, compiler)
	svc.SetClock(func() time.Time {
		return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) // Monday
	})
	svc.Refresh(context.Background())

	sh := handlers.NewScheduleHTTP(svc)
	r := chi.NewRouter()
	r.Get("/api/schedule/{date}", sh.Day())
	r.Get("/api/schedule/{date}/print", sh.Print())
	r.Post("/api/hearings", sh.SaveHearing())
	r.Delete("/api/hearings/{id}", sh.DeleteHearing())
	return r
}

func TestDayEndpointReturnsPaddedRows(t *testing.T) {
	r := testRouter(t, []models.Complaint{
		{ID: "A", FullName: "First", DenouncedCompany: "X"},
	}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/schedule/2025-09-02", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"kind":"business"`)
	assert.Contains(t, body, `"complaintId":"A"`)
	// 2 labels x capacity 2 = 4 rows, padded with nulls.
	assert.Equal(t, 3, strings.Count(body, `"slot":null`))
}

func TestDayEndpointRejectsBadDate(t *testing.T) {
	r := testRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/schedule/02-09-2025", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAutomaticIsConflict(t *testing.T) {
	r := testRouter(t, []models.Complaint{
		{ID: "A", FullName: "First", DenouncedCompany: "X"},
	}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/hearings/A", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "edit and save")
}

func TestSaveHearingValidation(t *testing.T) {
	r := testRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/hearings",
		strings.NewReader(`{"claimant":"A","defendant":"","date":"2025-09-02","time":"08:00"}`))
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/hearings",
		strings.NewReader(`{"claimant":"ana","defendant":"acme","date":"2025-09-02","time":"08:00"}`))
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isManual":true`)
	assert.Contains(t, rec.Body.String(), `"ANA"`)
}

func TestPrintPadsEveryTimeLabel(t *testing.T) {
	r := testRouter(t, nil, []models.HearingSlot{
		{ID: "m1", Date: "2025-09-02", Time: "09:00", Claimant: "PINNED", Defendant: "ACME", IsManual: true},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/schedule/2025-09-02/print", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "LISTADO DE AUDIENCIAS")
	assert.Contains(t, body, "PINNED")
	assert.Contains(t, body, "C/ ACME")
	// 2 labels x capacity 2 seats, one row each.
	assert.Equal(t, 4, strings.Count(body, `<tr><td class="time">`))
}
