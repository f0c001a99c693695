// README: Rider service; admin onboarding and informational status updates.
package rider

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"buyback/internal/types"
)

var ErrBadRequest = errors.New("bad request")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	Name     string
	Phone    string
	Password string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Rider, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	if cmd.Name == "" || cmd.Phone == "" || cmd.Password == "" {
		return nil, ErrBadRequest
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	r := &Rider{
		ID:           types.ID(uuid.NewString()),
		Name:         cmd.Name,
		Phone:        cmd.Phone,
		Status:       StatusAvailable,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.store.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Rider, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Rider, error) {
	return s.store.List(ctx)
}

func (s *Service) Exists(ctx context.Context, id types.ID) (bool, error) {
	return s.store.Exists(ctx, id)
}

func (s *Service) SetStatus(ctx context.Context, id types.ID, status Status) error {
	if status != StatusAvailable && status != StatusBusy {
		return ErrBadRequest
	}
	return s.store.SetStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}
