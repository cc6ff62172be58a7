package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/glucocare/glucocare/internal/domain/appointments"
	"github.com/glucocare/glucocare/internal/domain/identity"
	"github.com/glucocare/glucocare/internal/domain/readings"
	"github.com/glucocare/glucocare/internal/platform/auth"
)

// -- Mocks --

type mockUserRepo struct {
	users map[uuid.UUID]*identity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*identity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *identity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, identity.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, identity.ErrNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *identity.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return identity.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return identity.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, search, role string, limit, offset int) ([]*identity.User, int, error) {
	var all []*identity.User
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

type stubReadingRepo struct{ total int }

func (s *stubReadingRepo) Create(_ context.Context, _ *readings.Reading) error { return nil }
func (s *stubReadingRepo) ListByUser(_ context.Context, _ uuid.UUID, _ readings.Filter, _, _ int) ([]*readings.Reading, int, error) {
	return nil, 0, nil
}
func (s *stubReadingRepo) AllByUser(_ context.Context, _ uuid.UUID) ([]*readings.Reading, error) {
	return nil, nil
}
func (s *stubReadingRepo) Count(_ context.Context) (int, error) { return s.total, nil }

type stubAppointmentRepo struct{ total int }

func (s *stubAppointmentRepo) Create(_ context.Context, _ *appointments.Appointment) error {
	return nil
}
func (s *stubAppointmentRepo) GetByID(_ context.Context, _ uuid.UUID) (*appointments.Appointment, error) {
	return nil, appointments.ErrNotFound
}
func (s *stubAppointmentRepo) Update(_ context.Context, _ *appointments.Appointment) error {
	return appointments.ErrNotFound
}
func (s *stubAppointmentRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return appointments.ErrNotFound
}
func (s *stubAppointmentRepo) ListByUser(_ context.Context, _ uuid.UUID, _ string) ([]*appointments.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) Count(_ context.Context) (int, error) { return s.total, nil }

func seedUsers(t *testing.T, repo *mockUserRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		u := &identity.User{
			Name:         fmt.Sprintf("User %02d", i),
			Email:        fmt.Sprintf("user%02d@example.com", i),
			PasswordHash: "x",
			Role:         auth.RoleUser,
			CreatedAt:    time.Now().Add(time.Duration(i) * time.Minute),
		}
		u.ID = uuid.New()
		repo.users[u.ID] = u
	}
}

// -- Tests --

func TestOverview(t *testing.T) {
	users := newMockUserRepo()
	seedUsers(t, users, 7)
	svc := NewService(users, &stubReadingRepo{total: 42}, &stubAppointmentRepo{total: 9})

	stats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview() error: %v", err)
	}
	if stats.TotalUsers != 7 {
		t.Errorf("TotalUsers = %d, want 7", stats.TotalUsers)
	}
	if stats.TotalReadings != 42 {
		t.Errorf("TotalReadings = %d, want 42", stats.TotalReadings)
	}
	if stats.TotalAppointments != 9 {
		t.Errorf("TotalAppointments = %d, want 9", stats.TotalAppointments)
	}
	// floor(7 * 0.8) = 5
	if stats.ActiveUsers != 5 {
		t.Errorf("ActiveUsers = %d, want 5", stats.ActiveUsers)
	}
}

func TestListUsersPageSize(t *testing.T) {
	users := newMockUserRepo()
	seedUsers(t, users, 23)
	svc := NewService(users, &stubReadingRepo{}, &stubAppointmentRepo{})

	page, total, err := svc.ListUsers(context.Background(), "", "", 1)
	if err != nil {
		t.Fatalf("ListUsers() error: %v", err)
	}
	if len(page) != UserPageSize {
		t.Errorf("page size = %d, want %d", len(page), UserPageSize)
	}
	if total != 23 {
		t.Errorf("total = %d, want 23", total)
	}

	last, _, err := svc.ListUsers(context.Background(), "", "", 3)
	if err != nil {
		t.Fatalf("ListUsers() error: %v", err)
	}
	if len(last) != 3 {
		t.Errorf("last page size = %d, want 3", len(last))
	}
}

func TestListUsersSearchCaseInsensitive(t *testing.T) {
	users := newMockUserRepo()
	seedUsers(t, users, 5)
	svc := NewService(users, &stubReadingRepo{}, &stubAppointmentRepo{})

	page, total, err := svc.ListUsers(context.Background(), "USER02", "", 1)
	if err != nil {
		t.Fatalf("ListUsers() error: %v", err)
	}
	if total != 1 || len(page) != 1 {
		t.Fatalf("got %d/%d matches, want 1", len(page), total)
	}
	if page[0].Email != "user02@example.com" {
		t.Errorf("matched %s", page[0].Email)
	}
}

func TestListUsersRoleFilter(t *testing.T) {
	users := newMockUserRepo()
	seedUsers(t, users, 4)
	adminUser := &identity.User{ID: uuid.New(), Name: "Ops", Email: "admin@glucocare.io",
		PasswordHash: "x", Role: auth.RoleAdmin, CreatedAt: time.Now()}
	users.users[adminUser.ID] = adminUser
	svc := NewService(users, &stubReadingRepo{}, &stubAppointmentRepo{})

	page, total, err := svc.ListUsers(context.Background(), "", auth.RoleAdmin, 1)
	if err != nil {
		t.Fatalf("ListUsers() error: %v", err)
	}
	if total != 1 || len(page) != 1 || page[0].Role != auth.RoleAdmin {
		t.Errorf("role filter returned %d/%d", len(page), total)
	}
}

func TestListUsersRoleAllMeansNoFilter(t *testing.T) {
	users := newMockUserRepo()
	seedUsers(t, users, 5)
	svc := NewService(users, &stubReadingRepo{}, &stubAppointmentRepo{})

	page, total, err := svc.ListUsers(context.Background(), "", "all", 1)
	if err != nil {
		t.Fatalf("ListUsers() error: %v", err)
	}
	if total != 5 || len(page) != 5 {
		t.Errorf("role=all returned %d/%d users, want 5/5", len(page), total)
	}
}

func TestUpdateUser(t *testing.T) {
	users := newMockUserRepo()
	u := &identity.User{ID: uuid.New(), Name: "Sarah", Email: "sarah@example.com",
		PasswordHash: "x", Role: auth.RoleUser, CreatedAt: time.Now()}
	users.users[u.ID] = u
	svc := NewService(users, &stubReadingRepo{}, &stubAppointmentRepo{})

	role := auth.RoleAdmin
	email := "sarah@glucocare.io"
	summary, err := svc.UpdateUser(context.Background(), u.ID, UserUpdate{Role: &role, Email: &email})
	if err != nil {
		t.Fatalf("UpdateUser() error: %v", err)
	}
	if summary.Role != auth.RoleAdmin || summary.Email != email {
		t.Errorf("summary = %+v", summary)
	}
	stored, _ := users.GetByID(context.Background(), u.ID)
	if stored.Role != auth.RoleAdmin {
		t.Error("role change not persisted")
	}
}

func TestUpdateUserMissing(t *testing.T) {
	svc := NewService(newMockUserRepo(), &stubReadingRepo{}, &stubAppointmentRepo{})
	name := "X"
	_, err := svc.UpdateUser(context.Background(), uuid.New(), UserUpdate{Name: &name})
	if !errors.Is(err, identity.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	users := newMockUserRepo()
	u := &identity.User{ID: uuid.New(), Name: "Sarah", Email: "sarah@example.com",
		PasswordHash: "x", Role: auth.RoleUser}
	users.users[u.ID] = u
	svc := NewService(users, &stubReadingRepo{}, &stubAppointmentRepo{})

	if err := svc.DeleteUser(context.Background(), u.ID); err != nil {
		t.Fatalf("DeleteUser() error: %v", err)
	}
	if _, err := users.GetByID(context.Background(), u.ID); !errors.Is(err, identity.ErrNotFound) {
		t.Error("user must be gone after delete")
	}
}
