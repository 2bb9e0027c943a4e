package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mamas-embrace/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{})) // sin verifier => modo dev
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Journal_EndToEnd(t *testing.T) {
	ts := newTestServer(t)

	mamaID := "mama-1"
	otherID := "mama-2"

	// 1) Sin auth => 401 y nada se crea
	{
		st, _ := doMultipart(t, ts.URL, "/api/journal", "", map[string]string{
			"title":   "Primer día",
			"content": "Hoy nació Emma",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 create without auth, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/api/journal", mamaID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		if n := len(decodeList(t, body, "entries")); n != 0 {
			t.Fatalf("expected empty journal after rejected create, got %d entries", n)
		}
	}

	// 2) Crear entrada (multipart con campos, sin archivos)
	entryID := ""
	{
		st, body := doMultipart(t, ts.URL, "/api/journal", mamaID, map[string]string{
			"title":   "Primer día",
			"content": "Hoy nació Emma",
			"tags":    "parto,emociones",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create entry, got %d body=%s", st, string(body))
		}
		entryID = extractID(t, body, "entry")
	}

	// 3) Aparece en el listado de la dueña, no en el de otra usuaria
	{
		_, body := doReq(t, ts.URL, "GET", "/api/journal", mamaID, nil)
		if n := len(decodeList(t, body, "entries")); n != 1 {
			t.Fatalf("expected 1 entry for owner, got %d", n)
		}

		_, body = doReq(t, ts.URL, "GET", "/api/journal", otherID, nil)
		if n := len(decodeList(t, body, "entries")); n != 0 {
			t.Fatalf("expected 0 entries for other user, got %d", n)
		}
	}

	// 4) Otra usuaria no puede editar ni borrar (403) y la entrada queda intacta
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/journal/"+entryID, otherID, map[string]any{
			"title": "hackeada",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 update by non-owner, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/api/journal/"+entryID, otherID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 delete by non-owner, got %d", st)
		}

		_, body := doReq(t, ts.URL, "GET", "/api/journal", mamaID, nil)
		entries := decodeList(t, body, "entries")
		if len(entries) != 1 {
			t.Fatalf("entry should survive non-owner attempts, got %d", len(entries))
		}
		if title, _ := entries[0]["title"].(string); title != "Primer día" {
			t.Fatalf("entry title changed by non-owner: %q", title)
		}
	}

	// 5) La dueña edita y borra
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/journal/"+entryID, mamaID, map[string]any{
			"content": "Hoy nació Emma. Fue un día larguísimo.",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update by owner, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/api/journal/"+entryID, mamaID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete by owner, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/api/journal/"+entryID, mamaID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting twice, got %d", st)
		}
	}
}

func TestHTTP_Memories_NonOwnerDeleteForbidden(t *testing.T) {
	ts := newTestServer(t)

	st, body := doMultipart(t, ts.URL, "/api/memories", "mama-1", map[string]string{
		"title": "Primera sonrisa",
		"text":  "Se rió dormida",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create memory, got %d body=%s", st, string(body))
	}
	memoryID := extractID(t, body, "memory")

	st, _ = doReq(t, ts.URL, "DELETE", "/api/memories/"+memoryID, "mama-2", nil)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 delete by non-owner, got %d", st)
	}

	// El recuerdo sigue ahí para la dueña
	_, body = doReq(t, ts.URL, "GET", "/api/memories", "mama-1", nil)
	if n := len(decodeList(t, body, "memories")); n != 1 {
		t.Fatalf("memory should survive non-owner delete, got %d", n)
	}
}

func TestHTTP_Memories_RequiresContent(t *testing.T) {
	ts := newTestServer(t)

	// Solo título, sin texto/imagen/voz => 400
	st, _ := doMultipart(t, ts.URL, "/api/memories", "mama-1", map[string]string{
		"title": "Vacío",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for memory without content, got %d", st)
	}
}

func TestHTTP_Children_MissingFieldsListsAll(t *testing.T) {
	ts := newTestServer(t)

	// Solo name => los otros cuatro deben venir en details
	st, body := doReq(t, ts.URL, "POST", "/api/children", "mama-1", map[string]any{
		"name": "Emma",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete child, got %d body=%s", st, string(body))
	}

	var resp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	want := []string{"birthday", "birthHeight", "birthWeight", "gender"}
	if len(resp.Details) != len(want) {
		t.Fatalf("expected %d missing fields, got %v", len(want), resp.Details)
	}
	for _, f := range want {
		found := false
		for _, d := range resp.Details {
			if d == f {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing field %q not reported in %v", f, resp.Details)
		}
	}
}

func TestHTTP_Children_CreateAndGrow(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/children", "mama-1", map[string]any{
		"name":        "Emma",
		"birthday":    "2026-03-10",
		"gender":      "female",
		"birthHeight": 49.5,
		"birthWeight": 3.2,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create child, got %d body=%s", st, string(body))
	}
	childID := extractID(t, body, "child")

	// El alias /api/babies sirve el mismo recurso
	st, body = doReq(t, ts.URL, "GET", "/api/babies/"+childID, "mama-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get via babies alias, got %d body=%s", st, string(body))
	}

	// Medición nueva se agrega al historial (nacimiento + 1)
	st, body = doReq(t, ts.URL, "POST", "/api/children/"+childID+"/measurements", "mama-1", map[string]any{
		"height": 52.0,
		"weight": 3.9,
		"date":   "2026-04-10",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 add measurement, got %d body=%s", st, string(body))
	}

	var resp struct {
		Child struct {
			Height []map[string]any `json:"height"`
			Weight []map[string]any `json:"weight"`
		} `json:"child"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal child: %v", err)
	}
	if len(resp.Child.Height) != 2 || len(resp.Child.Weight) != 2 {
		t.Fatalf("expected 2 height and 2 weight points, got %d/%d", len(resp.Child.Height), len(resp.Child.Weight))
	}

	// Otra usuaria no puede ver ni medir al niño
	st, _ = doReq(t, ts.URL, "GET", "/api/children/"+childID, "mama-2", nil)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 get child by non-parent, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/api/children/"+childID+"/measurements", "mama-2", map[string]any{
		"height": 60.0,
	})
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 measurement by non-parent, got %d", st)
	}
}

func TestHTTP_Vaccinations_LazyInitAndIdempotentToggle(t *testing.T) {
	ts := newTestServer(t)

	// Primera lectura inicializa el calendario default
	st, body := doReq(t, ts.URL, "GET", "/api/vaccinations", "mama-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get schedule, got %d body=%s", st, string(body))
	}
	records := decodeList(t, body, "vaccinations")
	if len(records) == 0 {
		t.Fatalf("expected default schedule on first read, got empty")
	}
	vaccinationID, _ := records[0]["id"].(string)
	if vaccinationID == "" {
		t.Fatalf("schedule record missing id: %v", records[0])
	}

	// Marcar como completada
	st, body = doReq(t, ts.URL, "PUT", "/api/vaccinations/"+vaccinationID, "mama-1", map[string]any{
		"status": "completed",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 set status, got %d body=%s", st, string(body))
	}

	// Repetir el mismo estado no cambia nada (idempotente)
	st, _ = doReq(t, ts.URL, "PUT", "/api/vaccinations/"+vaccinationID, "mama-1", map[string]any{
		"status": "completed",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 idempotent set status, got %d", st)
	}

	_, body = doReq(t, ts.URL, "GET", "/api/vaccinations", "mama-1", nil)
	for _, rec := range decodeList(t, body, "vaccinations") {
		if rec["id"] == vaccinationID {
			if got, _ := rec["status"].(string); got != "completed" {
				t.Fatalf("expected completed after toggle, got %q", got)
			}
		}
	}

	// ID desconocido => 404; estado inválido => 400
	st, _ = doReq(t, ts.URL, "PUT", "/api/vaccinations/no-such-vaccine", "mama-1", map[string]any{
		"status": "completed",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown vaccination, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "PUT", "/api/vaccinations/"+vaccinationID, "mama-1", map[string]any{
		"status": "definitely-not-a-status",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", st)
	}

	// El calendario de otra usuaria arranca limpio
	_, body = doReq(t, ts.URL, "GET", "/api/vaccinations", "mama-2", nil)
	for _, rec := range decodeList(t, body, "vaccinations") {
		if got, _ := rec["status"].(string); got == "completed" {
			t.Fatalf("schedules must be per user, found completed record for fresh user")
		}
	}
}

func TestHTTP_Profile_LazyCreateAndUpdate(t *testing.T) {
	ts := newTestServer(t)

	// GET crea el perfil si no existe
	st, body := doReq(t, ts.URL, "GET", "/api/profile", "mama-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get profile, got %d body=%s", st, string(body))
	}

	// /api/user es alias del mismo perfil
	st, _ = doReq(t, ts.URL, "GET", "/api/user", "mama-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get profile via /api/user, got %d", st)
	}

	st, body = doReq(t, ts.URL, "PUT", "/api/profile", "mama-1", map[string]any{
		"name":  "Lucía",
		"phase": "pregnancy",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update profile, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "PUT", "/api/profile", "mama-1", map[string]any{
		"phase": "not-a-phase",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid phase, got %d", st)
	}
}

func TestHTTP_Support_UnavailableWithoutFlows(t *testing.T) {
	ts := newTestServer(t) // sin Flows

	st, _ := doReq(t, ts.URL, "POST", "/api/support", "mama-1", map[string]any{
		"question": "No puedo dormir y me siento sola",
	})
	if st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 support without flows, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/support", "", map[string]any{
		"question": "hola",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 support without auth, got %d", st)
	}
}

func TestHTTP_PushTokens_FormatValidated(t *testing.T) {
	ts := newTestServer(t)

	st, _ := doReq(t, ts.URL, "POST", "/api/push-tokens", "mama-1", map[string]any{
		"token": "not-an-expo-token",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid expo token, got %d", st)
	}

	st, body := doReq(t, ts.URL, "POST", "/api/push-tokens", "mama-1", map[string]any{
		"token": "ExponentPushToken[abc123DEF]",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 register token, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Views_RedirectOnSessionCookie(t *testing.T) {
	ts := newTestServer(t)

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	// Sin cookie: /home redirige a /login
	res, err := client.Get(ts.URL + "/home")
	if err != nil {
		t.Fatalf("get /home: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusFound || res.Header.Get("Location") != "/login" {
		t.Fatalf("expected 302 to /login without session, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}

	// Con cookie: /login redirige a /home
	req, _ := http.NewRequest("GET", ts.URL+"/login", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
	res, err = client.Do(req)
	if err != nil {
		t.Fatalf("get /login: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusFound || res.Header.Get("Location") != "/home" {
		t.Fatalf("expected 302 to /home with session, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}
}

// --- helpers ---

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doMultipart(t *testing.T, baseURL, path, debugUserID string, fields map[string]string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest("POST", baseURL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, body
}

// decodeList saca la lista bajo key del envelope {"success":true,key:[...]}.
func decodeList(t *testing.T, body []byte, key string) []map[string]any {
	t.Helper()

	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal %s: %v body=%s", key, err, string(body))
	}
	raw, _ := resp[key].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// extractID saca el id del objeto bajo key ({"success":true,key:{"id":...}}).
func extractID(t *testing.T, body []byte, key string) string {
	t.Helper()

	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal %s: %v body=%s", key, err, string(body))
	}
	obj, _ := resp[key].(map[string]any)
	id, _ := obj["id"].(string)
	if strings.TrimSpace(id) == "" {
		t.Fatalf("missing %s.id in body=%s", key, string(body))
	}
	return id
}
