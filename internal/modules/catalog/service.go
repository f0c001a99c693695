// README: Catalog service exposes variant lookups to the quote flow.
package catalog

import (
	"context"

	"buyback/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetVariant(ctx context.Context, id types.ID) (*Variant, error) {
	return s.store.Get(ctx, id)
}
