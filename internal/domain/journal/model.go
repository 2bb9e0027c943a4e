package journal

import "time"

// Entry es una entrada de diario. Pertenece a exactamente una usuaria;
// toda mutación exige que el caller resuelto sea la dueña.
type Entry struct {
	ID     string
	UserID string

	Title   string
	Content string

	ImageURL     string
	VoiceNoteURL string
	Tags         []string

	CreatedAt time.Time
}
