package children

import "time"

// Gender define el sexo del bebé.
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func IsValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Measurement es un punto de la historia de crecimiento.
type Measurement struct {
	Value float64   `json:"value"` // cm para altura, kg para peso
	Date  time.Time `json:"date"`
}

// Child es el perfil de un bebé. Acceso siempre condicionado a
// ParentID == identidad resuelta del caller.
// Height y Weight son historiales append-only ordenados por fecha de alta.
type Child struct {
	ID       string
	ParentID string

	Name     string
	Birthday time.Time
	Gender   Gender

	Height []Measurement
	Weight []Measurement

	CreatedAt time.Time
}
