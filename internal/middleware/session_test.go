package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNextRoute(t *testing.T) {
	cases := []struct {
		name  string
		authn bool
		route string
		want  string
	}{
		{"anonymous en ruta protegida", false, "/home", LoginRoute},
		{"anonymous en raíz", false, "/", LoginRoute},
		{"anonymous en login", false, "/login", ""},
		{"anonymous en register", false, "/register", ""},
		{"anonymous en verify", false, "/verify", ""},
		{"autenticada en login", true, "/login", HomeRoute},
		{"autenticada en register", true, "/register", HomeRoute},
		{"autenticada en home", true, "/home", ""},
		{"autenticada en ruta cualquiera", true, "/journal", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextRoute(tc.authn, tc.route); got != tc.want {
				t.Fatalf("NextRoute(%v, %q) = %q, want %q", tc.authn, tc.route, got, tc.want)
			}
		})
	}
}

func TestHasSession(t *testing.T) {
	r := httptest.NewRequest("GET", "/home", nil)
	if HasSession(r) {
		t.Fatalf("expected no session without cookie")
	}

	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: ""})
	if HasSession(r) {
		t.Fatalf("empty cookie value must not count as session")
	}

	r = httptest.NewRequest("GET", "/home", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	if !HasSession(r) {
		t.Fatalf("expected session with cookie present")
	}
}

func TestSetAndClearSessionCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetSessionCookie(w, "tok-123")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != "tok-123" {
		t.Fatalf("unexpected cookie: %+v", c)
	}
	if !c.HttpOnly || c.Path != "/" {
		t.Fatalf("cookie must be HttpOnly with path /: %+v", c)
	}
	if c.MaxAge != int(SessionMaxAge.Seconds()) {
		t.Fatalf("expected max-age %d, got %d", int(SessionMaxAge.Seconds()), c.MaxAge)
	}

	w = httptest.NewRecorder()
	ClearSessionCookie(w)
	c = w.Result().Cookies()[0]
	if c.Value != "" || c.MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got %+v", c)
	}
}
