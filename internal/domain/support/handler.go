package support

import (
	"encoding/json"
	"net/http"
	"strings"

	"mamas-embrace/internal/middleware"
	"mamas-embrace/internal/platform/logger"
	"mamas-embrace/internal/platform/respond"
	"mamas-embrace/internal/ports/ai"

	"github.com/go-chi/chi/v5"
)

// Handlers de los dos flujos de IA. Sin retry, sin streaming, sin memoria:
// si el upstream falla, error genérico y listo.
func RegisterRoutes(r chi.Router, flows ai.PromptFlows, log logger.Logger) {
	h := &handler{flows: flows, log: log}

	r.Post("/api/support", h.ask)
	r.Post("/api/prompts/journal", h.journalPrompt)
}

type handler struct {
	flows ai.PromptFlows
	log   logger.Logger
}

type askRequest struct {
	Question string `json:"question"`
}

type journalPromptRequest struct {
	StageOfMotherhood string `json:"stageOfMotherhood"`
	RecentExperiences string `json:"recentExperiences"`
}

// ask godoc
// @Summary Pregunta de contención emocional
// @Description Flujo de soporte: {question} => {answer}. Stateless, sin memoria de conversación.
// @Tags support
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/support [post]
func (h *handler) ask(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respond.Error(w, http.StatusBadRequest, "question is required", nil)
		return
	}

	if h.flows == nil {
		respond.Error(w, http.StatusServiceUnavailable, "support is not available right now", nil)
		return
	}

	answer, err := h.flows.SupportAnswer(r.Context(), req.Question)
	if err != nil {
		h.log.Error("support flow failed", map[string]any{"err": err.Error()})
		respond.Error(w, http.StatusBadGateway, "something went wrong, please try again", nil)
		return
	}

	respond.Success(w, http.StatusOK, map[string]any{"answer": answer})
}

func (h *handler) journalPrompt(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req journalPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if strings.TrimSpace(req.StageOfMotherhood) == "" || strings.TrimSpace(req.RecentExperiences) == "" {
		respond.Error(w, http.StatusBadRequest, "stageOfMotherhood and recentExperiences are required", nil)
		return
	}

	if h.flows == nil {
		respond.Error(w, http.StatusServiceUnavailable, "prompts are not available right now", nil)
		return
	}

	prompt, err := h.flows.JournalPrompt(r.Context(), req.StageOfMotherhood, req.RecentExperiences)
	if err != nil {
		h.log.Error("journal prompt flow failed", map[string]any{"err": err.Error()})
		respond.Error(w, http.StatusBadGateway, "something went wrong, please try again", nil)
		return
	}

	respond.Success(w, http.StatusOK, map[string]any{"prompt": prompt})
}
