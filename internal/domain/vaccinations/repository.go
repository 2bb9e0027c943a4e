package vaccinations

import "context"

// Repository persiste el calendario embebido por usuaria.
// GetSchedule devuelve found=false si la usuaria todavía no tiene
// calendario (el service lo siembra en ese caso).
type Repository interface {
	GetSchedule(ctx context.Context, userID string) (schedule []Record, found bool, err error)
	SaveSchedule(ctx context.Context, userID string, schedule []Record) error
}
