package slot

import (
	"context"
	"time"
)

type Repository interface {
	CreateBatch(ctx context.Context, slots []NewSlot) (int, error)
	GenerateForCourt(ctx context.Context, courtID int, from time.Time) (int, error)
	GetByID(ctx context.Context, id int) (*Slot, error)
	ListByCourt(ctx context.Context, courtID int) ([]Slot, error)
}
