package children

import "context"

type Repository interface {
	Create(ctx context.Context, c Child) error
	GetByID(ctx context.Context, id string) (Child, error)
	ListByParent(ctx context.Context, parentID string) ([]Child, error)
	Update(ctx context.Context, c Child) error
}
