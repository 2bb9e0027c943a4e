package push

import "context"

// Message es una notificación push a uno o más dispositivos.
type Message struct {
	To    []string // tokens de dispositivo (formato del gateway)
	Title string
	Body  string
	Data  map[string]string
}

// Ticket es el resultado por-token que devuelve el gateway.
type Ticket struct {
	Status string // "ok" | "error"
	ID     string
	Detail string
}

// Sender despacha notificaciones al gateway de push.
type Sender interface {
	Send(ctx context.Context, msg Message) ([]Ticket, error)
}
