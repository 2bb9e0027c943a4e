package expo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mamas-embrace/internal/platform/httpclient"
	"mamas-embrace/internal/ports/push"
)

const DefaultPushURL = "https://exp.host/--/api/v2/push/send"

var (
	ErrNotConfigured = errors.New("expo client not configured")
	ErrInvalidToken  = errors.New("invalid expo push token")
	ErrUpstream      = errors.New("expo upstream error")
)

type Config struct {
	// PushURL vacío => DefaultPushURL.
	PushURL string

	// AccessToken opcional (enhanced security en Expo).
	AccessToken string

	Timeout time.Duration

	// HTTP opcional, para tests.
	HTTP *httpclient.Client
}

// Client despacha notificaciones al gateway push de Expo.
type Client struct {
	http        *httpclient.Client
	pushURL     string
	accessToken string
}

func NewClient(cfg Config) *Client {
	url := strings.TrimSpace(cfg.PushURL)
	if url == "" {
		url = DefaultPushURL
	}

	hc := cfg.HTTP
	if hc == nil {
		hc = httpclient.New(cfg.Timeout)
	}

	return &Client{
		http:        hc,
		pushURL:     url,
		accessToken: strings.TrimSpace(cfg.AccessToken),
	}
}

// IsValidToken valida el formato ExponentPushToken[...] antes de guardar
// o despachar nada.
func IsValidToken(token string) bool {
	token = strings.TrimSpace(token)
	return strings.HasPrefix(token, "ExponentPushToken[") &&
		strings.HasSuffix(token, "]") &&
		len(token) > len("ExponentPushToken[]")
}

type pushMessage struct {
	To    []string          `json:"to"`
	Title string            `json:"title,omitempty"`
	Body  string            `json:"body,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

type pushTicket struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

type pushResponse struct {
	Data []pushTicket `json:"data"`
}

func (c *Client) Send(ctx context.Context, msg push.Message) ([]push.Ticket, error) {
	if c == nil || c.http == nil {
		return nil, ErrNotConfigured
	}
	if len(msg.To) == 0 {
		return nil, errors.New("no recipients")
	}
	for _, t := range msg.To {
		if !IsValidToken(t) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidToken, t)
		}
	}

	headers := map[string]string{}
	if c.accessToken != "" {
		headers["Authorization"] = "Bearer " + c.accessToken
	}

	var out pushResponse
	err := c.http.DoJSON(ctx, http.MethodPost, c.pushURL, headers, pushMessage{
		To:    msg.To,
		Title: msg.Title,
		Body:  msg.Body,
		Data:  msg.Data,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	tickets := make([]push.Ticket, 0, len(out.Data))
	for _, t := range out.Data {
		tickets = append(tickets, push.Ticket{
			Status: t.Status,
			ID:     t.ID,
			Detail: t.Message,
		})
	}
	return tickets, nil
}
