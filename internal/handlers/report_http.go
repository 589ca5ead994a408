package handlers

import (
	"net/http"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/repository"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/service"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/utils"
)

type ReportsHTTP struct {
	complaints repository.ComplaintRepository
	schedule   *service.ScheduleService
}

func NewReportsHTTP(complaints repository.ComplaintRepository, schedule *service.ScheduleService) *ReportsHTTP {
	return &ReportsHTTP{complaints: complaints, schedule: schedule}
}

// GET /api/reports/summary
// Returns: { total, uniqueUsers, uniqueCompanies, pending }
func (h *ReportsHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, users, companies, err := h.complaints.Stats(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]int{
			"total":           total,
			"uniqueUsers":     users,
			"uniqueCompanies": companies,
			"pending":         len(h.schedule.Pending()),
		})
	}
}
