package notifications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"mamas-embrace/internal/middleware"
	"mamas-embrace/internal/platform/logger"
	"mamas-embrace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := &handler{svc: svc, log: log}

	r.Post("/api/push-tokens", h.registerToken)
	r.Post("/api/notifications", h.dispatch)
}

type handler struct {
	svc *Service
	log logger.Logger
}

type registerTokenRequest struct {
	Token string `json:"token"`
}

type dispatchRequest struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// registerToken godoc
// @Summary Registrar token de push
// @Description Valida el formato ExponentPushToken[...] y upsertea el registro del dispositivo.
// @Tags notifications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/push-tokens [post]
func (h *handler) registerToken(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req registerTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.svc.RegisterToken(r.Context(), claims.UserID, req.Token); err != nil {
		if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrInvalidInput) {
			respond.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respond.Error(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respond.OK(w)
}

func (h *handler) dispatch(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	tickets, err := h.svc.Dispatch(r.Context(), claims.UserID, DispatchInput{
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(w, http.StatusBadRequest, "title is required", nil)
		case errors.Is(err, ErrNoTokens):
			respond.Error(w, http.StatusBadRequest, "no push tokens registered for this user", nil)
		default:
			h.log.Error("push dispatch failed", map[string]any{"err": err.Error()})
			respond.Error(w, http.StatusBadGateway, "could not deliver notification", nil)
		}
		return
	}

	respond.Success(w, http.StatusOK, map[string]any{"tickets": tickets})
}
