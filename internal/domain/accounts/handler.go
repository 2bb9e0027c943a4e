package accounts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"mamas-embrace/internal/domain/profiles"
	"mamas-embrace/internal/middleware"
	"mamas-embrace/internal/platform/logger"
	"mamas-embrace/internal/platform/respond"
	"mamas-embrace/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

const minPasswordLen = 6

func RegisterRoutes(r chi.Router, identity auth.IdentityProvider, profilesSvc *profiles.Service, log logger.Logger) {
	h := &handler{identity: identity, profiles: profilesSvc, log: log}

	r.Route("/api/auth", func(ar chi.Router) {
		ar.Post("/register", h.register)
		ar.Post("/login", h.login)
		ar.Post("/logout", h.logout)
		ar.Get("/verify", h.verify)
	})
}

type handler struct {
	identity auth.IdentityProvider
	profiles *profiles.Service
	log      logger.Logger
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phase    string `json:"phase"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register godoc
// @Summary Registrar cuenta
// @Description Valida el input (password >= 6) ANTES de llamar al proveedor de identidad; luego crea el perfil local.
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/auth/register [post]
func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	// Validación completa antes de tocar el upstream.
	var details []string
	if strings.TrimSpace(req.Email) == "" {
		details = append(details, "email is required")
	}
	if len(req.Password) < minPasswordLen {
		details = append(details, "password must be at least 6 characters")
	}
	phase := profiles.Phase(strings.TrimSpace(req.Phase))
	if !profiles.IsValidPhase(phase) {
		details = append(details, "phase must be preparation, pregnancy, fourth-trimester or beyond")
	}
	if len(details) > 0 {
		respond.Error(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	if h.identity == nil {
		respond.Error(w, http.StatusServiceUnavailable, "identity provider not configured", nil)
		return
	}

	account, err := h.identity.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Error("register upstream failed", map[string]any{"err": err.Error()})
		respond.Error(w, http.StatusBadGateway, "could not register account", nil)
		return
	}

	profile, err := h.profiles.CreateForAccount(r.Context(), account, req.Name, phase)
	if err != nil {
		h.log.Error("profile create failed", map[string]any{"err": err.Error(), "user_id": account.ID})
		respond.Error(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respond.Success(w, http.StatusCreated, map[string]any{
		"user": map[string]any{
			"id":    account.ID,
			"email": account.Email,
			"name":  profile.Name,
			"phase": string(profile.Phase),
		},
	})
}

// login godoc
// @Summary Login con email y password
// @Description Devuelve el access token y setea la cookie de sesión (HttpOnly, 7 días). La cookie solo gatea redirects de vistas.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/auth/login [post]
func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	if h.identity == nil {
		respond.Error(w, http.StatusServiceUnavailable, "identity provider not configured", nil)
		return
	}

	session, err := h.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	// Perfil lazy: primer login de una cuenta vieja también lo crea.
	profile, err := h.profiles.GetOrCreate(r.Context(), auth.Claims{
		UserID: session.Account.ID,
		Email:  session.Account.Email,
	})
	if err != nil {
		h.log.Error("profile fetch on login failed", map[string]any{"err": err.Error(), "user_id": session.Account.ID})
		respond.Error(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	middleware.SetSessionCookie(w, session.AccessToken)

	respond.Success(w, http.StatusOK, map[string]any{
		"accessToken":  session.AccessToken,
		"refreshToken": session.RefreshToken,
		"expiresIn":    session.ExpiresIn,
		"user": map[string]any{
			"id":    session.Account.ID,
			"email": session.Account.Email,
			"name":  profile.Name,
			"phase": string(profile.Phase),
		},
	})
}

// logout limpia la cookie SIEMPRE; el logout upstream es best-effort
// (si falla la red, el estado local del cliente igual queda anonymous).
func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.BearerToken(r); token != "" && h.identity != nil {
		if err := h.identity.Logout(r.Context(), token); err != nil {
			h.log.Warn("upstream logout failed", map[string]any{"err": err.Error()})
		}
	}

	middleware.ClearSessionCookie(w)
	respond.OK(w)
}

// verify reenvía el token de verificación de email al proveedor.
// Query params: vtoken, vtype (signup | recovery | invite).
func (h *handler) verify(w http.ResponseWriter, r *http.Request) {
	vtoken := strings.TrimSpace(r.URL.Query().Get("vtoken"))
	vtype := strings.TrimSpace(r.URL.Query().Get("vtype"))
	if vtoken == "" || vtype == "" {
		respond.Error(w, http.StatusBadRequest, "vtoken and vtype are required", nil)
		return
	}

	if h.identity == nil {
		respond.Error(w, http.StatusServiceUnavailable, "identity provider not configured", nil)
		return
	}

	err := h.identity.VerifyEmail(r.Context(), auth.VerifyEmailInput{
		Token: vtoken,
		Type:  vtype,
	})
	if err != nil {
		if errors.Is(err, auth.ErrUnknownVerifyType) {
			respond.Error(w, http.StatusBadRequest, "unknown verification type", nil)
			return
		}
		respond.Error(w, http.StatusUnauthorized, "verification failed", nil)
		return
	}

	respond.OK(w)
}
