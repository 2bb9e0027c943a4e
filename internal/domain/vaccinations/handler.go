package vaccinations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"mamas-embrace/internal/middleware"
	"mamas-embrace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/vaccinations", func(vr chi.Router) {
		vr.Get("/", getScheduleHandler(svc))
		vr.Put("/{vaccinationID}", setStatusHandler(svc))
	})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// getScheduleHandler godoc
// @Summary Calendario de vacunación
// @Description Devuelve el calendario de la usuaria; en la primera lectura lo inicializa desde el calendario default.
// @Tags vaccinations
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/vaccinations [get]
func getScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		schedule, err := svc.Schedule(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		respond.Success(w, http.StatusOK, map[string]any{"vaccinations": schedule})
	}
}

func setStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", nil)
			return
		}

		rec, err := svc.SetStatus(r.Context(), claims.UserID, chi.URLParam(r, "vaccinationID"), Status(strings.TrimSpace(req.Status)))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "vaccination not found", nil)
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "status must be pending, completed or skipped", nil)
			default:
				respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			}
			return
		}

		respond.Success(w, http.StatusOK, map[string]any{"vaccination": rec})
	}
}
