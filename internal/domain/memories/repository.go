package memories

import "context"

type Repository interface {
	Create(ctx context.Context, m Memory) error
	GetByID(ctx context.Context, id string) (Memory, error)
	ListByOwner(ctx context.Context, userID string) ([]Memory, error)
	Delete(ctx context.Context, id string) error
}
