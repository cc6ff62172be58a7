package identity

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/glucocare/glucocare/internal/platform/auth"
)

// -- Mock Repository --

type mockUserRepo struct {
	users map[uuid.UUID]*User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *User) error {
	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	u.UpdatedAt = time.Now()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, search, role string, limit, offset int) ([]*User, int, error) {
	var all []*User
	for _, u := range m.users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(u.Email), strings.ToLower(search)) {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int, error) {
	return len(m.users), nil
}

// -- Tests --

func TestSignup(t *testing.T) {
	svc := NewService(newMockUserRepo())

	u, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Sarah Johnson",
		Email:    "sarah@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Signup() error: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Error("expected an assigned id")
	}
	if u.Role != auth.RoleUser {
		t.Errorf("Role = %s, want %s", u.Role, auth.RoleUser)
	}
	if u.PasswordHash == "s3cret-pass" || u.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Error("stored hash does not verify the original password")
	}
}

func TestSignupAdminHeuristic(t *testing.T) {
	svc := NewService(newMockUserRepo())

	u, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Ops",
		Email:    "admin@glucocare.io",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Signup() error: %v", err)
	}
	if u.Role != auth.RoleAdmin {
		t.Errorf("Role = %s, want %s", u.Role, auth.RoleAdmin)
	}
}

func TestSignupRejectsMissingFields(t *testing.T) {
	svc := NewService(newMockUserRepo())

	if _, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.c", Password: "x"}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := svc.Signup(context.Background(), SignupInput{Name: "A", Email: "a@b.c"}); err == nil {
		t.Error("expected error for missing password")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())
	in := SignupInput{Name: "A", Email: "dup@example.com", Password: "s3cret-pass"}

	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("first Signup() error: %v", err)
	}
	_, err := svc.Signup(context.Background(), in)
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	if _, err := svc.Signup(context.Background(), SignupInput{
		Name: "Sarah", Email: "sarah@example.com", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Signup() error: %v", err)
	}

	u, err := svc.Login(context.Background(), "sarah@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if u.Email != "sarah@example.com" {
		t.Errorf("Email = %s", u.Email)
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	if _, err := svc.Signup(context.Background(), SignupInput{
		Name: "Sarah", Email: "sarah@example.com", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Signup() error: %v", err)
	}

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "s3cret-pass")
	_, errWrongPw := svc.Login(context.Background(), "sarah@example.com", "wrong")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
}

func TestUpdateProfileMergesProvidedFields(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	dt := "type-2"
	created, err := svc.Signup(context.Background(), SignupInput{
		Name: "Sarah", Email: "sarah@example.com", Password: "s3cret-pass", DiabetesType: &dt,
	})
	if err != nil {
		t.Fatalf("Signup() error: %v", err)
	}

	phone := "+1-555-0100"
	newName := "Sarah J."
	u, err := svc.UpdateProfile(context.Background(), created.ID, ProfileUpdate{
		Name:  &newName,
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}
	if u.Name != "Sarah J." {
		t.Errorf("Name = %s", u.Name)
	}
	if u.Phone == nil || *u.Phone != phone {
		t.Error("phone not persisted")
	}
	if u.DiabetesType == nil || *u.DiabetesType != "type-2" {
		t.Error("untouched field must keep its prior value")
	}
	if u.Email != "sarah@example.com" {
		t.Error("email must not change through profile update")
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewService(newMockUserRepo())
	name := "X"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), ProfileUpdate{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRoleForEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"admin@glucocare.io", auth.RoleAdmin},
		{"site-ADMIN@example.com", auth.RoleAdmin},
		{"sarah@example.com", auth.RoleUser},
		{"", auth.RoleUser},
	}
	for _, tt := range tests {
		if got := RoleForEmail(tt.email); got != tt.want {
			t.Errorf("RoleForEmail(%q) = %s, want %s", tt.email, got, tt.want)
		}
	}
}
