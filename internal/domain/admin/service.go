package admin

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/glucocare/glucocare/internal/domain/appointments"
	"github.com/glucocare/glucocare/internal/domain/identity"
	"github.com/glucocare/glucocare/internal/domain/readings"
)

// UserPageSize is the fixed page size of the back-office user listing.
const UserPageSize = 10

// Stats is the back-office overview payload.
type Stats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalReadings     int `json:"totalReadings"`
	TotalAppointments int `json:"totalAppointments"`
	ActiveUsers       int `json:"activeUsers"`
}

// UserSummary is the trimmed profile returned after an admin update.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type Service struct {
	users        identity.UserRepository
	readings     readings.ReadingRepository
	appointments appointments.AppointmentRepository
}

func NewService(users identity.UserRepository, rd readings.ReadingRepository, ap appointments.AppointmentRepository) *Service {
	return &Service{users: users, readings: rd, appointments: ap}
}

// Overview counts the main entities. Active users is a fixed 80% estimate
// of the registered total; there is no last-seen tracking to derive it from.
func (s *Service) Overview(ctx context.Context) (*Stats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalReadings, err := s.readings.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAppointments, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalUsers:        totalUsers,
		TotalReadings:     totalReadings,
		TotalAppointments: totalAppointments,
		ActiveUsers:       int(math.Floor(float64(totalUsers) * 0.8)),
	}, nil
}

// ListUsers pages through accounts. A role of "all" (the back-office
// default) means no role filter, like the appointments status param.
func (s *Service) ListUsers(ctx context.Context, search, role string, page int) ([]*identity.User, int, error) {
	if page < 1 {
		page = 1
	}
	if role == "all" {
		role = ""
	}
	return s.users.List(ctx, search, role, UserPageSize, (page-1)*UserPageSize)
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return s.users.GetByID(ctx, id)
}

// UserUpdate carries the fields an admin can change on any account,
// including role and email. Nil leaves a field untouched.
type UserUpdate struct {
	Name             *string    `json:"name"`
	Email            *string    `json:"email"`
	Role             *string    `json:"role"`
	DiabetesType     *string    `json:"diabetesType"`
	Phone            *string    `json:"phone"`
	Address          *string    `json:"address"`
	City             *string    `json:"city"`
	DiagnosisDate    *time.Time `json:"diagnosisDate"`
	Medications      *string    `json:"medications"`
	Allergies        *string    `json:"allergies"`
	EmergencyContact *string    `json:"emergencyContact"`
	EmergencyPhone   *string    `json:"emergencyPhone"`
}

func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, in UserUpdate) (*UserSummary, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.DiabetesType != nil {
		u.DiabetesType = in.DiabetesType
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if in.Address != nil {
		u.Address = in.Address
	}
	if in.City != nil {
		u.City = in.City
	}
	if in.DiagnosisDate != nil {
		u.DiagnosisDate = in.DiagnosisDate
	}
	if in.Medications != nil {
		u.Medications = in.Medications
	}
	if in.Allergies != nil {
		u.Allergies = in.Allergies
	}
	if in.EmergencyContact != nil {
		u.EmergencyContact = in.EmergencyContact
	}
	if in.EmergencyPhone != nil {
		u.EmergencyPhone = in.EmergencyPhone
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// DeleteUser removes the account; readings and appointments go with it via
// the schema's cascade.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
