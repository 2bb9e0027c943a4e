package accounts_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mamas-embrace/internal/adapters/storage/memory"
	"mamas-embrace/internal/domain/accounts"
	"mamas-embrace/internal/domain/profiles"
	"mamas-embrace/internal/platform/logger"
	"mamas-embrace/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// fakeIdentity cuenta las llamadas para poder afirmar que la validación
// local corre antes de tocar el upstream.
type fakeIdentity struct {
	registerCalls int
	loginCalls    int
	logoutCalls   int
	verifyCalls   int

	loginErr  error
	verifyErr error
}

func (f *fakeIdentity) Register(_ context.Context, in auth.RegisterInput) (auth.Account, error) {
	f.registerCalls++
	return auth.Account{ID: "user-1", Email: in.Email}, nil
}

func (f *fakeIdentity) Login(_ context.Context, email, _ string) (auth.Session, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return auth.Session{}, f.loginErr
	}
	return auth.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    3600,
		Account:      auth.Account{ID: "user-1", Email: email},
	}, nil
}

func (f *fakeIdentity) Logout(_ context.Context, _ string) error {
	f.logoutCalls++
	return nil
}

func (f *fakeIdentity) VerifyEmail(_ context.Context, _ auth.VerifyEmailInput) error {
	f.verifyCalls++
	return f.verifyErr
}

func newAuthServer(t *testing.T, identity auth.IdentityProvider) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	svc := profiles.NewService(memory.NewProfilesRepo())
	accounts.RegisterRoutes(r, identity, svc, logger.Noop())

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestRegister_ValidatesBeforeUpstream(t *testing.T) {
	fake := &fakeIdentity{}
	ts := newAuthServer(t, fake)

	// Password corto + phase inválida: 400 con TODOS los problemas listados
	st, body := postJSON(t, ts.URL+"/api/auth/register", map[string]any{
		"email":    "lucia@example.com",
		"password": "12345",
		"phase":    "whatever",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d body=%s", st, string(body))
	}
	var resp struct {
		Details []string `json:"details"`
	}
	_ = json.Unmarshal(body, &resp)
	if len(resp.Details) != 2 {
		t.Fatalf("expected 2 validation details, got %v", resp.Details)
	}
	if fake.registerCalls != 0 {
		t.Fatalf("upstream must not be called on invalid input, got %d calls", fake.registerCalls)
	}

	// Input válido => upstream + perfil creado
	st, body = postJSON(t, ts.URL+"/api/auth/register", map[string]any{
		"name":     "Lucía",
		"email":    "lucia@example.com",
		"password": "123456",
		"phase":    "pregnancy",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}
	if fake.registerCalls != 1 {
		t.Fatalf("expected 1 upstream register call, got %d", fake.registerCalls)
	}
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	fake := &fakeIdentity{}
	ts := newAuthServer(t, fake)

	st, body, res := postJSONFull(t, ts.URL+"/api/auth/login", map[string]any{
		"email":    "lucia@example.com",
		"password": "123456",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var resp struct {
		Success     bool   `json:"success"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}
	if !resp.Success || resp.AccessToken != "access-token" {
		t.Fatalf("unexpected login payload: %s", string(body))
	}

	cookie := findCookie(res.Cookies(), "session")
	if cookie == nil {
		t.Fatalf("expected session cookie on login")
	}
	if cookie.Value != "access-token" || !cookie.HttpOnly || cookie.Path != "/" {
		t.Fatalf("unexpected session cookie: %+v", cookie)
	}
	if cookie.MaxAge != 7*24*60*60 {
		t.Fatalf("expected 7 day max-age, got %d", cookie.MaxAge)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	fake := &fakeIdentity{loginErr: errors.New("upstream says no")}
	ts := newAuthServer(t, fake)

	st, _, res := postJSONFull(t, ts.URL+"/api/auth/login", map[string]any{
		"email":    "lucia@example.com",
		"password": "wrong-pass",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 bad credentials, got %d", st)
	}
	if findCookie(res.Cookies(), "session") != nil {
		t.Fatalf("must not set session cookie on failed login")
	}
}

func TestLogout_AlwaysClearsCookie(t *testing.T) {
	fake := &fakeIdentity{}
	ts := newAuthServer(t, fake)

	// Sin bearer token: igual limpia la cookie, sin llamar al upstream
	req, _ := http.NewRequest("POST", ts.URL+"/api/auth/logout", nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 logout, got %d", res.StatusCode)
	}
	cookie := findCookie(res.Cookies(), "session")
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired session cookie, got %+v", cookie)
	}
	if fake.logoutCalls != 0 {
		t.Fatalf("upstream logout without token should be skipped, got %d calls", fake.logoutCalls)
	}

	// Con bearer token: también pasa por el upstream
	req, _ = http.NewRequest("POST", ts.URL+"/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("logout with token: %v", err)
	}
	res.Body.Close()
	if fake.logoutCalls != 1 {
		t.Fatalf("expected 1 upstream logout call, got %d", fake.logoutCalls)
	}
}

func TestVerify_MapsUnknownTypeTo400(t *testing.T) {
	fake := &fakeIdentity{verifyErr: auth.ErrUnknownVerifyType}
	ts := newAuthServer(t, fake)

	res, err := http.Get(ts.URL + "/api/auth/verify?vtoken=abc&vtype=banana")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown verify type, got %d", res.StatusCode)
	}

	// Sin params => 400 antes del upstream
	calls := fake.verifyCalls
	res, err = http.Get(ts.URL + "/api/auth/verify")
	if err != nil {
		t.Fatalf("verify without params: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 missing params, got %d", res.StatusCode)
	}
	if fake.verifyCalls != calls {
		t.Fatalf("upstream must not be called without params")
	}
}

func postJSON(t *testing.T, url string, body any) (int, []byte) {
	t.Helper()
	st, b, _ := postJSONFull(t, url, body)
	return st, b
}

func postJSONFull(t *testing.T, url string, body any) (int, []byte, *http.Response) {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody, res
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
