package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/repository"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/utils"
)

type CompanyHTTP struct {
	repo repository.CompanyRepository
	log  zerolog.Logger
}

func NewCompanyHTTP(repo repository.CompanyRepository, log zerolog.Logger) *CompanyHTTP {
	return &CompanyHTTP{repo: repo, log: log}
}

// GET /api/companies — the intake form's autocomplete source. An unreachable
// store degrades to an empty list so the form keeps working.
func (h *CompanyHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.repo.List(r.Context())
		if err != nil {
			h.log.Warn().Err(err).Msg("company fetch failed, serving empty list")
			items = []models.Company{}
		}
		utils.JSON(w, http.StatusOK, items)
	}
}
