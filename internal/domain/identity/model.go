package identity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glucocare/glucocare/internal/platform/auth"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User maps to the users table.
type User struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Email            string     `db:"email" json:"email"`
	PasswordHash     string     `db:"password_hash" json:"-"`
	Role             string     `db:"role" json:"role"`
	DiabetesType     *string    `db:"diabetes_type" json:"diabetesType,omitempty"`
	Phone            *string    `db:"phone" json:"phone,omitempty"`
	Address          *string    `db:"address" json:"address,omitempty"`
	City             *string    `db:"city" json:"city,omitempty"`
	DiagnosisDate    *time.Time `db:"diagnosis_date" json:"diagnosisDate,omitempty"`
	Medications      *string    `db:"medications" json:"medications,omitempty"`
	Allergies        *string    `db:"allergies" json:"allergies,omitempty"`
	EmergencyContact *string    `db:"emergency_contact" json:"emergencyContact,omitempty"`
	EmergencyPhone   *string    `db:"emergency_phone" json:"emergencyPhone,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// SessionUser projects the user into the claims embedded in the
// session credential.
func (u *User) SessionUser() auth.SessionUser {
	return auth.SessionUser{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		DiabetesType: strVal(u.DiabetesType),
	}
}

// RoleForEmail assigns the account role at signup. Addresses containing
// "admin" get the ADMIN role; everyone else is a regular USER.
func RoleForEmail(email string) string {
	if strings.Contains(strings.ToLower(email), "admin") {
		return auth.RoleAdmin
	}
	return auth.RoleUser
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
