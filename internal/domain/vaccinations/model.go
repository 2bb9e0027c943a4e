package vaccinations

// Status de una vacuna del calendario.
// @Enum pending, completed, skipped
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped:
		return true
	default:
		return false
	}
}

// Record es una vacuna del calendario embebido en el perfil de la usuaria.
// El calendario se inicializa lazy desde el default en la primera lectura
// y después se muta in-place por id.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Age         string `json:"age"` // "birth", "2 months", ...
	Dose        string `json:"dose"`
	Status      Status `json:"status"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}
