package readings

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows a reading listing to an inclusive timestamp range.
type Filter struct {
	Start *time.Time
	End   *time.Time
}

type ReadingRepository interface {
	Create(ctx context.Context, r *Reading) error
	// ListByUser returns a page of the owner's readings, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, f Filter, limit, offset int) ([]*Reading, int, error)
	// AllByUser returns the owner's complete history, newest first.
	AllByUser(ctx context.Context, userID uuid.UUID) ([]*Reading, error)
	Count(ctx context.Context) (int, error)
}
