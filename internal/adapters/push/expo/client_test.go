package expo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mamas-embrace/internal/ports/push"
)

func TestIsValidToken(t *testing.T) {
	cases := []struct {
		token string
		want  bool
	}{
		{"ExponentPushToken[abc123]", true},
		{"  ExponentPushToken[abc123]  ", true},
		{"ExponentPushToken[]", false},
		{"ExponentPushToken[abc", false},
		{"abc123]", false},
		{"", false},
		{"FCMToken[abc]", false},
	}
	for _, tc := range cases {
		if got := IsValidToken(tc.token); got != tc.want {
			t.Fatalf("IsValidToken(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestClient_Send(t *testing.T) {
	var gotAuth string
	var gotBody pushMessage

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pushResponse{Data: []pushTicket{
			{Status: "ok", ID: "ticket-1"},
			{Status: "error", Message: "DeviceNotRegistered"},
		}})
	}))
	defer ts.Close()

	c := NewClient(Config{PushURL: ts.URL, AccessToken: "expo-secret"})

	tickets, err := c.Send(context.Background(), push.Message{
		To:    []string{"ExponentPushToken[dev1]", "ExponentPushToken[dev2]"},
		Title: "Recordatorio",
		Body:  "Hoy toca la vacuna de Emma",
	})
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}

	if gotAuth != "Bearer expo-secret" {
		t.Fatalf("expected bearer auth header, got %q", gotAuth)
	}
	if len(gotBody.To) != 2 || gotBody.Title != "Recordatorio" {
		t.Fatalf("unexpected upstream payload: %+v", gotBody)
	}

	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
	if tickets[0].Status != "ok" || tickets[0].ID != "ticket-1" {
		t.Fatalf("unexpected first ticket: %+v", tickets[0])
	}
	if tickets[1].Status != "error" || tickets[1].Detail != "DeviceNotRegistered" {
		t.Fatalf("unexpected second ticket: %+v", tickets[1])
	}
}

func TestClient_Send_RejectsInvalidToken(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(Config{PushURL: ts.URL})

	_, err := c.Send(context.Background(), push.Message{
		To: []string{"ExponentPushToken[dev1]", "not-a-token"},
	})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if called {
		t.Fatalf("gateway must not be called with an invalid token in the batch")
	}
}

func TestClient_Send_UpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(Config{PushURL: ts.URL})

	_, err := c.Send(context.Background(), push.Message{
		To: []string{"ExponentPushToken[dev1]"},
	})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
