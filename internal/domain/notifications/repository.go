package notifications

import "context"

type Repository interface {
	// Upsert: registrar dos veces el mismo token no duplica.
	Upsert(ctx context.Context, rec TokenRecord) error
	ListByUser(ctx context.Context, userID string) ([]TokenRecord, error)
}
