package appointments

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByUser returns the owner's appointments ordered by date ascending.
	// An empty status applies no filter.
	ListByUser(ctx context.Context, userID uuid.UUID, status string) ([]*Appointment, error)
	Count(ctx context.Context) (int, error)
}
