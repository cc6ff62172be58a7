package identity

import (
	"context"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns a page of users, newest first. search matches name or
	// email case-insensitively; role filters exactly; both optional.
	List(ctx context.Context, search, role string, limit, offset int) ([]*User, int, error)
	Count(ctx context.Context) (int, error)
}
