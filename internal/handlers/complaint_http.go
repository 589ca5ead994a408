package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/repository"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/utils"
)

// ComplaintHTTP wires the citizen intake form and the back-office complaint
// list to the repository.
type ComplaintHTTP struct {
	repo repository.ComplaintRepository
}

func NewComplaintHTTP(repo repository.ComplaintRepository) *ComplaintHTTP {
	return &ComplaintHTTP{repo: repo}
}

// GET /api/complaints?limit=
func (h *ComplaintHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.repo.List(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if limit := utils.QueryInt(r.URL.Query(), "limit", 0); limit > 0 && limit < len(items) {
			items = items[:limit]
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// GET /api/complaints/{id}
func (h *ComplaintHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		c, err := h.repo.Get(r.Context(), id)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if c == nil {
			utils.Error(w, http.StatusNotFound, "not found")
			return
		}
		utils.JSON(w, http.StatusOK, c)
	}
}

// POST /api/complaints — the public intake form.
func (h *ComplaintHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		FullName          string `json:"fullName"`
		Phone             string `json:"phone"`
		Email             string `json:"email"`
		Problem           string `json:"problem"`
		DenouncedCompany  string `json:"denouncedCompany"`
		Resolutions       string `json:"resolutions"`
		SpecificPetitions string `json:"specificPetitions"`
		FilesURL          string `json:"filesUrl"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.FullName = strings.TrimSpace(in.FullName)
		in.DenouncedCompany = strings.TrimSpace(in.DenouncedCompany)
		in.Problem = strings.TrimSpace(in.Problem)
		if in.FullName == "" || in.DenouncedCompany == "" || in.Problem == "" {
			utils.Error(w, http.StatusBadRequest, "fullName, denouncedCompany and problem are required")
			return
		}

		c := &models.Complaint{
			FullName:          in.FullName,
			Phone:             strings.TrimSpace(in.Phone),
			Email:             strings.TrimSpace(in.Email),
			Problem:           in.Problem,
			DenouncedCompany:  in.DenouncedCompany,
			Resolutions:       strings.TrimSpace(in.Resolutions),
			SpecificPetitions: strings.TrimSpace(in.SpecificPetitions),
			FilesURL:          strings.TrimSpace(in.FilesURL),
		}
		if err := h.repo.Create(r.Context(), c); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, c)
	}
}
