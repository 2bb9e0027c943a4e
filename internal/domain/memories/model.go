package memories

import "time"

// Memory es un recuerdo de la caja de recuerdos: texto, imagen o nota de
// voz. Distinto de una entrada de diario; puede venir de una respuesta de
// la IA guardada por la usuaria (IsAIResponse).
type Memory struct {
	ID     string
	UserID string

	Title        string
	Text         string
	ImageURL     string
	VoiceNoteURL string
	IsAIResponse bool

	CreatedAt time.Time
}
