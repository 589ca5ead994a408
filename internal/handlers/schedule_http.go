package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/service"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/utils"
)

// ScheduleHTTP is the back-office view/editor surface over the compiled
// hearing schedule.
type ScheduleHTTP struct {
	svc *service.ScheduleService
}

func NewScheduleHTTP(svc *service.ScheduleService) *ScheduleHTTP {
	return &ScheduleHTTP{svc: svc}
}

// GET /api/schedule/{date} — one day as fixed render rows. Re-reads the
// compiled map only; navigation does not recompute.
func (h *ScheduleHTTP) Day() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.svc.Day(chi.URLParam(r, "date"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		utils.JSON(w, http.StatusOK, view)
	}
}

// POST /api/schedule/refresh — refetch complaints and manuals, recompile.
// Fetch failures degrade inside the service, so this cannot fail.
func (h *ScheduleHTTP) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.svc.Refresh(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /api/schedule/pending — complaints the horizon could not seat.
func (h *ScheduleHTTP) Pending() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := h.svc.Pending()
		if items == nil {
			items = []models.Complaint{}
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// POST /api/hearings — create or edit a manual hearing, then recompile.
func (h *ScheduleHTTP) SaveHearing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.HearingSlot
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		saved, err := h.svc.Save(r.Context(), in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidHearing) {
				utils.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			utils.Error(w, http.StatusBadGateway, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, saved)
	}
}

// DELETE /api/hearings/{id}
func (h *ScheduleHTTP) DeleteHearing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		if err := h.svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, service.ErrNotManual) {
				utils.Error(w, http.StatusConflict, err.Error())
				return
			}
			utils.Error(w, http.StatusBadGateway, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /api/schedule/{date}/print — the printable day listing. A pure
// formatting consumer: every time label gets exactly capacity rows.
func (h *ScheduleHTTP) Print() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")
		view, err := h.svc.Day(date)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8">`)
		b.WriteString(`<title>Audiencias - ` + html.EscapeString(date) + `</title>`)
		b.WriteString(`<style>body{font-family:"Courier New",Courier,monospace;padding:20px}` +
			`.header{text-align:center;border-bottom:2px solid #000;padding-bottom:10px}` +
			`table{width:100%;border-collapse:collapse;margin-top:20px;font-size:14px}` +
			`th,td{border:1px solid #000;padding:8px;height:35px}` +
			`.time{width:80px;text-align:center;font-weight:bold}</style></head><body>`)
		b.WriteString(`<div class="header"><h1>DEFENSA DEL CONSUMIDOR CATAMARCA</h1>` +
			`<h2>LISTADO DE AUDIENCIAS</h2><h2>FECHA: ` + html.EscapeString(date) + `</h2></div>`)
		b.WriteString(`<table><thead><tr><th class="time">HORARIO</th><th>EXPEDIENTE / PARTES</th></tr></thead><tbody>`)
		for _, row := range view.Rows {
			cell := ""
			if row.Slot != nil {
				cell = fmt.Sprintf("<b>%s</b><br>C/ %s",
					html.EscapeString(row.Slot.Claimant), html.EscapeString(row.Slot.Defendant))
			}
			b.WriteString(`<tr><td class="time">` + html.EscapeString(row.Time) + `</td><td>` + cell + `</td></tr>`)
		}
		b.WriteString(`</tbody></table></body></html>`)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(b.String()))
	}
}
