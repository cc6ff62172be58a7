package appointments

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("appointment not found")
	ErrNotOwner = errors.New("appointment belongs to another user")
)

// Appointment statuses.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Defaults applied when the creation payload leaves fields blank.
const (
	DefaultTitle    = "Medical Appointment"
	DefaultLocation = "Virtual"
	DefaultType     = "in-person"
)

// Appointment maps to the appointments table.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Title     string    `db:"title" json:"title"`
	Date      time.Time `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Doctor    string    `db:"doctor" json:"doctor"`
	Reason    *string   `db:"reason" json:"reason,omitempty"`
	Location  string    `db:"location" json:"location"`
	Type      string    `db:"appointment_type" json:"type"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
