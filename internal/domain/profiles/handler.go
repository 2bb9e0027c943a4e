package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"mamas-embrace/internal/middleware"
	"mamas-embrace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// /api/profile y /api/user son la misma cosa; ambas se mantienen
	// porque el cliente histórico usa las dos.
	r.Route("/api/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Put("/", updateProfileHandler(svc))
	})
	r.Route("/api/user", func(ur chi.Router) {
		ur.Get("/", getProfileHandler(svc))
		ur.Patch("/", updateProfileHandler(svc))
	})
}

type profileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phase     string    `json:"phase"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type updateProfileRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name  *string `json:"name"`
	Phase *string `json:"phase"`
}

// getProfileHandler godoc
// @Summary Perfil de la usuaria autenticada
// @Description Devuelve el perfil; en el primer fetch lo crea desde los claims del token.
// @Tags profile
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		p, err := svc.GetOrCreate(r.Context(), claims)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		respond.Success(w, http.StatusOK, map[string]any{"profile": toProfileResponse(p)})
	}
}

func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", nil)
			return
		}

		// Lazy create antes del update: primer PUT sin GET previo también vale.
		if _, err := svc.GetOrCreate(r.Context(), claims); err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		p, err := svc.Update(r.Context(), claims.UserID, UpdateInput{
			Name:  req.Name,
			Phase: req.Phase,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid phase", nil)
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "profile not found", nil)
			default:
				respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			}
			return
		}

		respond.Success(w, http.StatusOK, map[string]any{"profile": toProfileResponse(p)})
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phase:     string(p.Phase),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
