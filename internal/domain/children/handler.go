package children

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
	// /api/children y /api/babies son alias: el cliente viejo usa "babies".
	for _, prefix := range []string{"/api/children", "/api/babies"} {
		r.Route(prefix, func(cr chi.Router) {
			cr.Post("/", createChildHandler(svc))
			cr.Get("/", listChildrenHandler(svc))
			cr.Get("/{childID}", getChildHandler(svc))
			cr.Post("/{childID}/measurements", addMeasurementHandler(svc))
		})
	}
}

type createChildRequest struct {
	Name        string  `json:"name"`
	Birthday    string  `json:"birthday"` // YYYY-MM-DD
	Gender      string  `json:"gender"`
	BirthHeight float64 `json:"birthHeight"` // cm
	BirthWeight float64 `json:"birthWeight"` // kg
}

type measurementRequest struct {
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
	Date   *string  `json:"date"` // YYYY-MM-DD opcional, default hoy
}

type childResponse struct {
	ID        string        `json:"id"`
	ParentID  string        `json:"parentId"`
	Name      string        `json:"name"`
	Birthday  time.Time     `json:"birthday"`
	Gender    string        `json:"gender"`
	Height    []Measurement `json:"height"`
	Weight    []Measurement `json:"weight"`
	CreatedAt time.Time     `json:"createdAt"`
}

// createChildHandler godoc
// @Summary Crear perfil de bebé
// @Description Valida presencia de name, birthday, birthHeight, birthWeight y gender; devuelve 400 listando los campos faltantes.
// @Tags children
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/children [post]
func createChildHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		var req createChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", nil)
			return
		}

		// 400 con la lista completa de faltantes, no solo el primero.
		var missing []string
		if strings.TrimSpace(req.Name) == "" {
			missing = append(missing, "name")
		}
		if strings.TrimSpace(req.Birthday) == "" {
			missing = append(missing, "birthday")
		}
		if req.BirthHeight == 0 {
			missing = append(missing, "birthHeight")
		}
		if req.BirthWeight == 0 {
			missing = append(missing, "birthWeight")
		}
		if strings.TrimSpace(req.Gender) == "" {
			missing = append(missing, "gender")
		}
		if len(missing) > 0 {
			respond.Error(w, http.StatusBadRequest, "missing required fields", missing)
			return
		}

		birthday, err := time.Parse("2006-01-02", strings.TrimSpace(req.Birthday))
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "birthday must be YYYY-MM-DD", nil)
			return
		}

		c, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Birthday:    birthday,
			Gender:      Gender(strings.TrimSpace(req.Gender)),
			BirthHeight: req.BirthHeight,
			BirthWeight: req.BirthWeight,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		respond.Success(w, http.StatusCreated, map[string]any{"child": toChildResponse(c)})
	}
}

func listChildrenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		items, err := svc.ListByParent(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		out := make([]childResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toChildResponse(c))
		}

		respond.Success(w, http.StatusOK, map[string]any{"children": out})
	}
}

func getChildHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		c, err := svc.GetOwned(r.Context(), chi.URLParam(r, "childID"), claims.UserID)
		if err != nil {
			writeChildError(w, err)
			return
		}

		respond.Success(w, http.StatusOK, map[string]any{"child": toChildResponse(c)})
	}
}

func addMeasurementHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		var req measurementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", nil)
			return
		}

		var date *time.Time
		if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(*req.Date))
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
				return
			}
			date = &t
		}

		c, err := svc.AddMeasurement(r.Context(), chi.URLParam(r, "childID"), claims.UserID, MeasurementInput{
			Height: req.Height,
			Weight: req.Weight,
			Date:   date,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "height or weight required, values must be positive", nil)
				return
			}
			writeChildError(w, err)
			return
		}

		respond.Success(w, http.StatusOK, map[string]any{"child": toChildResponse(c)})
	}
}

func writeChildError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		respond.Error(w, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "child not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func toChildResponse(c Child) childResponse {
	return childResponse{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Name:      c.Name,
		Birthday:  c.Birthday,
		Gender:    string(c.Gender),
		Height:    c.Height,
		Weight:    c.Weight,
		CreatedAt: c.CreatedAt,
	}
}
