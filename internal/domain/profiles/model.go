package profiles

import "time"

// Phase es la etapa de maternidad autodeclarada.
// @Enum preparation, pregnancy, fourth-trimester, beyond
type Phase string

const (
	PhasePreparation     Phase = "preparation"
	PhasePregnancy       Phase = "pregnancy"
	PhaseFourthTrimester Phase = "fourth-trimester"
	PhaseBeyond          Phase = "beyond"
	PhaseEmpty           Phase = ""
)

func IsValidPhase(p Phase) bool {
	switch p {
	case PhasePreparation, PhasePregnancy, PhaseFourthTrimester, PhaseBeyond, PhaseEmpty:
		return true
	default:
		return false
	}
}

// Profile es el perfil canónico de la usuaria.
// ID coincide con el subject del proveedor de identidad; el mapeo de
// esquemas externos ocurre solo en el adapter, nunca acá.
type Profile struct {
	ID    string
	Name  string
	Email string
	Phase Phase

	CreatedAt time.Time
	UpdatedAt time.Time
}
