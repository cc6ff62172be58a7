package readings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrMissingFields = errors.New("value and unit are required")

type Service struct {
	repo ReadingRepository
}

func NewService(repo ReadingRepository) *Service {
	return &Service{repo: repo}
}

// LogInput is the payload for logging a reading.
type LogInput struct {
	Value     float64    `json:"value"`
	Unit      string     `json:"unit"`
	Label     *string    `json:"label"`
	Timestamp *time.Time `json:"timestamp"`
}

// Log classifies and stores a new reading for the user. The status band is
// derived here and stored redundantly with the row.
func (s *Service) Log(ctx context.Context, userID uuid.UUID, in LogInput) (*Reading, error) {
	if in.Value == 0 || in.Unit == "" {
		return nil, ErrMissingFields
	}
	status, err := Classify(in.Value, in.Unit)
	if err != nil {
		return nil, err
	}
	ts := time.Now()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}
	r := &Reading{
		UserID:    userID,
		Value:     in.Value,
		Unit:      in.Unit,
		Status:    status,
		Label:     in.Label,
		Timestamp: ts,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) History(ctx context.Context, userID uuid.UUID, f Filter, limit, offset int) ([]*Reading, int, error) {
	return s.repo.ListByUser(ctx, userID, f, limit, offset)
}
