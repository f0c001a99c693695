// README: Variant store backed by PostgreSQL (read-only to the core).
package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"buyback/internal/types"
)

var ErrNotFound = errors.New("variant not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Variant, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, category, name, base_price
		FROM variants
		WHERE id = $1`, string(id),
	)

	var v Variant
	err := row.Scan(&v.ID, &v.Category, &v.Name, &v.BasePrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
