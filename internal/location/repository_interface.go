package location

import "context"

type Repository interface {
	Create(ctx context.Context, name, address string, ownerID int) (*Location, error)
	GetByID(ctx context.Context, id int) (*Location, error)
	ListWithCourts(ctx context.Context) ([]LocationWithCourts, error)
	ListByOwner(ctx context.Context, ownerID int) ([]LocationWithCourts, error)
}
