// README: Rider store backed by PostgreSQL.
package rider

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"buyback/internal/types"
)

var ErrNotFound = errors.New("rider not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, r *Rider) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO riders (id, name, phone, status, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(r.ID), r.Name, r.Phone, string(r.Status), r.PasswordHash, r.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Rider, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, phone, status, password_hash, created_at
		FROM riders
		WHERE id = $1`, string(id),
	)
	var r Rider
	err := row.Scan(&r.ID, &r.Name, &r.Phone, &r.Status, &r.PasswordHash, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) List(ctx context.Context) ([]*Rider, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, phone, status, password_hash, created_at
		FROM riders
		ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var riders []*Rider
	for rows.Next() {
		var r Rider
		if err := rows.Scan(&r.ID, &r.Name, &r.Phone, &r.Status, &r.PasswordHash, &r.CreatedAt); err != nil {
			return nil, err
		}
		riders = append(riders, &r)
	}
	return riders, rows.Err()
}

func (s *Store) Exists(ctx context.Context, id types.ID) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM riders WHERE id = $1)`, string(id),
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Store) SetStatus(ctx context.Context, id types.ID, status Status) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE riders SET status = $1 WHERE id = $2`, string(status), string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a rider. Orders keep their rider_id as a historic record;
// display layers treat the dangling reference as unassigned.
func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM riders WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
