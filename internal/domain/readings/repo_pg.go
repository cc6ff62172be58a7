package readings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type readingRepoPG struct {
	pool *pgxpool.Pool
}

func NewReadingRepo(pool *pgxpool.Pool) ReadingRepository {
	return &readingRepoPG{pool: pool}
}

const readingCols = `id, user_id, value, unit, status, label, timestamp, created_at`

func (r *readingRepoPG) Create(ctx context.Context, reading *Reading) error {
	if reading.ID == uuid.Nil {
		reading.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO glucose_readings (id, user_id, value, unit, status, label, timestamp)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		reading.ID, reading.UserID, reading.Value, reading.Unit, reading.Status,
		reading.Label, reading.Timestamp,
	)
	return err
}

func (r *readingRepoPG) ListByUser(ctx context.Context, userID uuid.UUID, f Filter, limit, offset int) ([]*Reading, int, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}
	idx := 2
	if f.Start != nil {
		where += fmt.Sprintf(" AND timestamp >= $%d", idx)
		args = append(args, *f.Start)
		idx++
	}
	if f.End != nil {
		where += fmt.Sprintf(" AND timestamp <= $%d", idx)
		args = append(args, *f.End)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM glucose_readings `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM glucose_readings %s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`,
		readingCols, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := collectReadings(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *readingRepoPG) AllByUser(ctx context.Context, userID uuid.UUID) ([]*Reading, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+readingCols+` FROM glucose_readings WHERE user_id = $1 ORDER BY timestamp DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReadings(rows)
}

func (r *readingRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM glucose_readings`).Scan(&n)
	return n, err
}

func collectReadings(rows pgx.Rows) ([]*Reading, error) {
	var list []*Reading
	for rows.Next() {
		var rd Reading
		if err := rows.Scan(&rd.ID, &rd.UserID, &rd.Value, &rd.Unit, &rd.Status,
			&rd.Label, &rd.Timestamp, &rd.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &rd)
	}
	return list, rows.Err()
}
