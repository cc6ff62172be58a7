package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// SignupInput is the registration payload.
type SignupInput struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	DiabetesType *string `json:"diabetesType"`
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         RoleForEmail(in.Email),
		DiabetesType: in.DiabetesType,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// ProfileUpdate carries the fields a user may change about themselves.
// Nil means "leave as is".
type ProfileUpdate struct {
	Name             *string    `json:"name"`
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

// UpdateProfile applies the provided fields to the user's stored profile.
// Email, role and password are not reachable through this path.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileUpdate) (*User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		u.Name = *in.Name
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
	return u, nil
}
