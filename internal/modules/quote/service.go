// README: Quote service; validates answers and produces locked-in offers.
package quote

import (
	"context"
	"fmt"
	"strings"

	"buyback/internal/modules/catalog"
	"buyback/internal/types"
)

// Catalog is the external collaborator that owns variants and categories.
type Catalog interface {
	GetVariant(ctx context.Context, id types.ID) (*catalog.Variant, error)
}

type Service struct {
	store   *Store
	catalog Catalog
	schemas *SchemaSet
}

func NewService(store *Store, catalog Catalog, schemas *SchemaSet) *Service {
	return &Service{store: store, catalog: catalog, schemas: schemas}
}

// QuoteDevice computes the offer for one variant and answer set. The result
// is ephemeral until an order captures it.
func (s *Service) QuoteDevice(ctx context.Context, variantID types.ID, answers AnswerSet) (*Quote, error) {
	v, err := s.catalog.GetVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}
	return s.quoteVariant(ctx, v, answers)
}

// ComputeFinalPrice resolves deductions for the category and applies them to
// basePrice. Safe to call repeatedly with the same inputs.
func (s *Service) ComputeFinalPrice(ctx context.Context, category string, basePrice int64, answers AnswerSet) (int64, error) {
	if basePrice < 0 {
		return 0, ErrBadRequest
	}
	schema, ok := s.schemas.Get(category)
	if !ok {
		return 0, ErrNoSchema
	}
	if err := schema.Validate(answers); err != nil {
		return 0, err
	}
	snap, err := s.store.GetSnapshot(ctx, category)
	if err != nil {
		return 0, err
	}
	return FinalPrice(basePrice, Resolve(schema, answers, snap))
}

func (s *Service) quoteVariant(ctx context.Context, v *catalog.Variant, answers AnswerSet) (*Quote, error) {
	schema, ok := s.schemas.Get(v.Category)
	if !ok {
		return nil, ErrNoSchema
	}
	if err := schema.Validate(answers); err != nil {
		return nil, err
	}
	snap, err := s.store.GetSnapshot(ctx, v.Category)
	if err != nil {
		return nil, err
	}

	deductions := Resolve(schema, answers, snap)
	final, err := FinalPrice(v.BasePrice, deductions)
	if err != nil {
		return nil, err
	}
	return &Quote{
		VariantID:  v.ID,
		Category:   v.Category,
		BasePrice:  v.BasePrice,
		FinalPrice: final,
		Deductions: deductions,
	}, nil
}

// UpsertRule validates and writes one admin rule edit.
func (s *Service) UpsertRule(ctx context.Context, r Rule) error {
	r.Category = strings.TrimSpace(r.Category)
	r.QuestionKey = strings.TrimSpace(r.QuestionKey)
	r.AnswerKey = strings.TrimSpace(r.AnswerKey)
	if r.Category == "" || r.QuestionKey == "" || r.AnswerKey == "" {
		return fmt.Errorf("%w: rule key must be fully specified", ErrBadRequest)
	}
	if r.Amount < 0 || r.Percent < 0 {
		return fmt.Errorf("%w: deductions must be non-negative", ErrBadRequest)
	}
	return s.store.Upsert(ctx, r)
}

func (s *Service) ListRules(ctx context.Context, category string) ([]Rule, error) {
	return s.store.List(ctx, category)
}
