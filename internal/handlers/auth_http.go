package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/middleware"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/service"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/utils"
)

type AuthHTTP struct {
	svc *service.AuthService
}

func NewAuthHTTP(s *service.AuthService) *AuthHTTP {
	return &AuthHTTP{svc: s}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, err := h.svc.Login(in.Username, in.Password)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			// Set true behind HTTPS in prod
			Secure:  false,
			Expires: time.Now().Add(24 * time.Hour),
		})
		utils.JSON(w, http.StatusOK, map[string]string{"username": in.Username, "role": "admin"})
	}
}

func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,              // expire immediately
			Expires:  time.Unix(0, 0), // for older browsers
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetString(r.Context(), middleware.CtxUser)
		if !ok || user == "" {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		role, _ := utils.GetString(r.Context(), middleware.CtxRole)
		utils.JSON(w, http.StatusOK, map[string]string{"username": user, "role": role})
	}
}
