// README: Order service implements lifecycle transitions, placement guards, and persistence.
package order

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"buyback/internal/modules/quote"
	"buyback/internal/types"
)

var (
	ErrInvalidState  = errors.New("invalid state transition")
	ErrNotFound      = errors.New("order not found")
	ErrRiderNotFound = errors.New("rider not found")
	ErrConflict      = errors.New("order state conflict")
	ErrNotVerified   = errors.New("verification checklist incomplete")
	ErrBadRequest    = errors.New("bad request")
)

// Quoter produces the locked-in offer captured at placement time.
type Quoter interface {
	QuoteDevice(ctx context.Context, variantID types.ID, answers quote.AnswerSet) (*quote.Quote, error)
}

// RiderDirectory answers whether a rider id references a real field executive.
type RiderDirectory interface {
	Exists(ctx context.Context, id types.ID) (bool, error)
}

// Geocoder resolves a display address from coordinates. Optional; placement
// proceeds without it.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, p types.Point) (string, error)
}

type Service struct {
	store    *Store
	gate     Gate
	riders   RiderDirectory
	quoter   Quoter
	geocoder Geocoder
	now      func() time.Time
}

func NewService(store *Store, gate Gate, riders RiderDirectory, quoter Quoter, geocoder Geocoder) *Service {
	return &Service{
		store:    store,
		gate:     gate,
		riders:   riders,
		quoter:   quoter,
		geocoder: geocoder,
		now:      time.Now,
	}
}

type PlaceCommand struct {
	ConsumerID    types.ID
	VariantID     types.ID
	Device        string
	Answers       quote.AnswerSet
	Address       string
	Location      *types.Point
	ScheduledDate time.Time
	Slot          Slot
	Express       bool
}

type AssignCommand struct {
	OrderID types.ID
	RiderID types.ID
	AdminID types.ID
}

type ConfirmPickupCommand struct {
	OrderID types.ID
	RiderID types.ID
}

type DeliverCommand struct {
	OrderID types.ID
	RiderID types.ID
}

type CancelCommand struct {
	OrderID   types.ID
	ActorType string
	ActorID   types.ID
	Reason    string
}

// Place creates an order in the placed state with the quoted price locked in.
// Guards: an address or a location, and a valid schedule — a selected slot
// XOR express. The price is computed once here and never recomputed.
func (s *Service) Place(ctx context.Context, cmd PlaceCommand) (*Order, error) {
	if cmd.ConsumerID == "" || cmd.VariantID == "" {
		return nil, ErrBadRequest
	}
	if cmd.Address == "" && cmd.Location == nil {
		return nil, ErrBadRequest
	}

	now := s.now()
	var scheduledDate *time.Time
	slot := cmd.Slot
	if cmd.Express {
		// Express bypasses slot selection entirely.
		if slot != SlotNone {
			return nil, ErrBadRequest
		}
		if !ExpressEligible(now) {
			return nil, ErrBadRequest
		}
	} else {
		if slot == SlotNone {
			return nil, ErrBadRequest
		}
		if !dateOffered(now, cmd.ScheduledDate) || !slotOffered(now, cmd.ScheduledDate, slot) {
			return nil, ErrBadRequest
		}
		d := midnight(cmd.ScheduledDate)
		scheduledDate = &d
	}

	q, err := s.quoter.QuoteDevice(ctx, cmd.VariantID, cmd.Answers)
	if err != nil {
		return nil, err
	}

	address := cmd.Address
	if address == "" && s.geocoder != nil && cmd.Location != nil {
		resolved, err := s.geocoder.ReverseGeocode(ctx, *cmd.Location)
		if err != nil {
			// The raw coordinates still satisfy the placement guard.
			log.Printf("reverse geocode failed for order placement: %v", err)
		} else {
			address = resolved
		}
	}

	answersJSON, err := json.Marshal(cmd.Answers)
	if err != nil {
		return nil, err
	}

	o := &Order{
		ID:            types.ID(uuid.NewString()),
		Device:        cmd.Device,
		VariantID:     cmd.VariantID,
		Price:         types.Rupees(q.FinalPrice),
		Status:        StatusPlaced,
		StatusVersion: 0,
		Address:       address,
		Location:      cmd.Location,
		Answers:       string(answersJSON),
		ScheduledDate: scheduledDate,
		ScheduledSlot: slot,
		Express:       cmd.Express,
		CreatedAt:     now,
	}
	if err := s.store.Create(ctx, o); err != nil {
		return nil, err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    o.ID,
		FromStatus: StatusNone,
		ToStatus:   StatusPlaced,
		ActorType:  "consumer",
		ActorID:    &cmd.ConsumerID,
		CreatedAt:  now,
	})
	return o, nil
}

// Assign hands the order to a rider. Allowed from placed and, as
// re-assignment, from assigned; the later write simply overwrites the rider
// and re-stamps the status.
func (s *Service) Assign(ctx context.Context, cmd AssignCommand) error {
	exists, err := s.riders.Exists(ctx, cmd.RiderID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRiderNotFound
	}

	o, err := s.store.Get(ctx, cmd.OrderID)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, StatusAssigned) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, o.ID, o.Status, StatusAssigned, o.StatusVersion, &cmd.RiderID, nil)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    o.ID,
		FromStatus: o.Status,
		ToStatus:   StatusAssigned,
		ActorType:  "admin",
		ActorID:    &cmd.AdminID,
		CreatedAt:  s.now(),
	})
	return nil
}

// ConfirmPickup moves an assigned order to picked_up, but only once the
// agent's five-point checklist is fully acknowledged. Price re-confirmation
// with the consumer happens at the door; the core only presents the price.
func (s *Service) ConfirmPickup(ctx context.Context, cmd ConfirmPickupCommand) error {
	o, err := s.store.Get(ctx, cmd.OrderID)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, StatusPickedUp) {
		return ErrInvalidState
	}

	list, err := s.gate.Checklist(ctx, cmd.OrderID, cmd.RiderID)
	if err != nil {
		return err
	}
	if !list.FullyVerified() {
		return ErrNotVerified
	}

	ok, err := s.store.UpdateStatus(ctx, o.ID, o.Status, StatusPickedUp, o.StatusVersion, o.RiderID, nil)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	_ = s.gate.Clear(ctx, cmd.OrderID, cmd.RiderID)
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    o.ID,
		FromStatus: o.Status,
		ToStatus:   StatusPickedUp,
		ActorType:  "rider",
		ActorID:    &cmd.RiderID,
		CreatedAt:  s.now(),
	})
	return nil
}

// Deliver marks the device handed over at the hub.
func (s *Service) Deliver(ctx context.Context, cmd DeliverCommand) error {
	o, err := s.store.Get(ctx, cmd.OrderID)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, StatusCompleted) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, o.ID, o.Status, StatusCompleted, o.StatusVersion, o.RiderID, nil)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    o.ID,
		FromStatus: o.Status,
		ToStatus:   StatusCompleted,
		ActorType:  "rider",
		ActorID:    &cmd.RiderID,
		CreatedAt:  s.now(),
	})
	return nil
}

// Cancel closes an order before pickup. No cancel edge exists once the device
// has been collected.
func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) error {
	o, err := s.store.Get(ctx, cmd.OrderID)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, StatusCancelled) {
		return ErrInvalidState
	}
	reason := cmd.Reason
	ok, err := s.store.UpdateStatus(ctx, o.ID, o.Status, StatusCancelled, o.StatusVersion, o.RiderID, &reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	actorID := cmd.ActorID
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    o.ID,
		FromStatus: o.Status,
		ToStatus:   StatusCancelled,
		ActorType:  cmd.ActorType,
		ActorID:    &actorID,
		CreatedAt:  s.now(),
	})
	return nil
}

// SetCheck records one checklist acknowledgement for the agent's session.
func (s *Service) SetCheck(ctx context.Context, orderID, riderID types.ID, item CheckItem, ok bool) error {
	if !ValidCheckItem(item) {
		return ErrBadRequest
	}
	if _, err := s.store.Get(ctx, orderID); err != nil {
		return err
	}
	return s.gate.SetCheck(ctx, orderID, riderID, item, ok)
}

// Checklist returns the agent's current session state for display.
func (s *Service) Checklist(ctx context.Context, orderID, riderID types.ID) (Checklist, error) {
	return s.gate.Checklist(ctx, orderID, riderID)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Order, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Order, error) {
	return s.store.List(ctx, f)
}
