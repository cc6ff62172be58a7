package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glucocare/glucocare/internal/domain/readings"
)

type Service struct {
	readings readings.ReadingRepository
}

func NewService(repo readings.ReadingRepository) *Service {
	return &Service{readings: repo}
}

// StatsFor computes the dashboard metrics over the user's full history.
func (s *Service) StatsFor(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	history, err := s.readings.AllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	avg := Average(history)
	return &Stats{
		AverageGlucose:   avg,
		HbA1c:            EstimateHbA1c(avg),
		ReadingsThisWeek: CountSince(history, time.Now().AddDate(0, 0, -7)),
		RiskScore:        RiskScore(history),
	}, nil
}
