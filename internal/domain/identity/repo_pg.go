package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepoPG struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) UserRepository {
	return &userRepoPG{pool: pool}
}

const userCols = `id, name, email, password_hash, role, diabetes_type,
	phone, address, city, diagnosis_date, medications, allergies,
	emergency_contact, emergency_phone, created_at, updated_at`

func (r *userRepoPG) Create(ctx context.Context, u *User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (
			id, name, email, password_hash, role, diabetes_type,
			phone, address, city, diagnosis_date, medications, allergies,
			emergency_contact, emergency_phone
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.DiabetesType,
		u.Phone, u.Address, u.City, u.DiagnosisDate, u.Medications, u.Allergies,
		u.EmergencyContact, u.EmergencyPhone,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (r *userRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (r *userRepoPG) GetByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email = $1`, email))
}

func (r *userRepoPG) Update(ctx context.Context, u *User) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET
			name=$2, email=$3, password_hash=$4, role=$5, diabetes_type=$6,
			phone=$7, address=$8, city=$9, diagnosis_date=$10, medications=$11,
			allergies=$12, emergency_contact=$13, emergency_phone=$14,
			updated_at=NOW()
		WHERE id = $1`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.DiabetesType,
		u.Phone, u.Address, u.City, u.DiagnosisDate, u.Medications,
		u.Allergies, u.EmergencyContact, u.EmergencyPhone,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepoPG) List(ctx context.Context, search, role string, limit, offset int) ([]*User, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	idx := 1
	if search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", idx, idx)
		args = append(args, "%"+search+"%")
		idx++
	}
	if role != "" {
		where += fmt.Sprintf(" AND role = $%d", idx)
		args = append(args, role)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM users %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		userCols, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *userRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.DiabetesType,
		&u.Phone, &u.Address, &u.City, &u.DiagnosisDate, &u.Medications,
		&u.Allergies, &u.EmergencyContact, &u.EmergencyPhone,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
