package middleware

import (
	"net/http"
	"time"
)

// Cookie de sesión: solo gatea redirects de vistas entre rutas públicas y
// protegidas. La validez criptográfica del token NO se chequea acá; eso lo
// hace el handler contra el proveedor de identidad. Cookie presente con
// token vencido => el handler devuelve 401 y el cliente vuelve a anonymous.
const (
	SessionCookieName = "session"
	SessionMaxAge     = 7 * 24 * time.Hour

	LoginRoute = "/login"
	HomeRoute  = "/home"
)

// Rutas públicas de auth (no requieren sesión).
var publicRoutes = map[string]bool{
	"/login":    true,
	"/register": true,
	"/verify":   true,
}

func IsPublicRoute(route string) bool {
	return publicRoutes[route]
}

// NextRoute es la política de redirect como función pura:
// (autenticado, ruta actual) => próxima ruta, o "" si no hay redirect.
func NextRoute(isAuthenticated bool, currentRoute string) string {
	if !isAuthenticated && !IsPublicRoute(currentRoute) {
		return LoginRoute
	}
	if isAuthenticated && IsPublicRoute(currentRoute) {
		return HomeRoute
	}
	return ""
}

// HasSession mira solo la presencia de la cookie.
func HasSession(r *http.Request) bool {
	c, err := r.Cookie(SessionCookieName)
	return err == nil && c.Value != ""
}

// SessionGate aplica NextRoute a requests de vistas (no API):
// anonymous en ruta protegida => redirect a login; autenticado en ruta
// pública => redirect a home.
func SessionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target := NextRoute(HasSession(r), r.URL.Path); target != "" && target != r.URL.Path {
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetSessionCookie setea la cookie HttpOnly de 7 días.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie borra la cookie (valor vacío + expiración inmediata).
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
