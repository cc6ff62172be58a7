package readings

import (
	"time"

	"github.com/google/uuid"
)

// Reading maps to the glucose_readings table. Readings are immutable once
// logged; they disappear only when their owner is deleted.
type Reading struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Value     float64   `db:"value" json:"value"`
	Unit      string    `db:"unit" json:"unit"`
	Status    Status    `db:"status" json:"status"`
	Label     *string   `db:"label" json:"label,omitempty"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
