package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo AppointmentRepository
}

func NewService(repo AppointmentRepository) *Service {
	return &Service{repo: repo}
}

// CreateInput is the booking payload. Dates arrive as YYYY-MM-DD.
type CreateInput struct {
	Title    string  `json:"title"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Doctor   string  `json:"doctor"`
	Reason   *string `json:"reason"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*Appointment, error) {
	if in.Date == "" || in.Time == "" || in.Doctor == "" {
		return nil, fmt.Errorf("date, time and doctor are required")
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	title := in.Title
	if title == "" {
		if in.Reason != nil && *in.Reason != "" {
			title = *in.Reason
		} else {
			title = DefaultTitle
		}
	}
	location := in.Location
	if location == "" {
		location = DefaultLocation
	}
	apptType := in.Type
	if apptType == "" {
		apptType = DefaultType
	}

	a := &Appointment{
		UserID:   userID,
		Title:    title,
		Date:     date,
		Time:     in.Time,
		Doctor:   in.Doctor,
		Reason:   in.Reason,
		Location: location,
		Type:     apptType,
		Status:   StatusUpcoming,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get fetches an appointment for its owner. The entity is looked up before
// ownership is checked, so a missing row and a foreign row fail differently.
func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, ErrNotOwner
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, status string) ([]*Appointment, error) {
	if status == "all" {
		status = ""
	}
	return s.repo.ListByUser(ctx, userID, status)
}

// UpdateInput carries the patchable fields. Nil or empty leaves a field
// untouched; status values are stored as submitted, without a whitelist.
type UpdateInput struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Reason *string `json:"reason"`
}

func (s *Service) Update(ctx context.Context, id, userID uuid.UUID, in UpdateInput) (*Appointment, error) {
	a, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Status != nil && *in.Status != "" {
		a.Status = *in.Status
	}
	if in.Date != nil && *in.Date != "" {
		date, err := time.Parse("2006-01-02", *in.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		a.Date = date
	}
	if in.Time != nil && *in.Time != "" {
		a.Time = *in.Time
	}
	if in.Reason != nil && *in.Reason != "" {
		a.Reason = in.Reason
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
