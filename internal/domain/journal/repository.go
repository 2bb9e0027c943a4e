package journal

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByOwner(ctx context.Context, userID string) ([]Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string) error
}
