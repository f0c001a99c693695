// README: Order store backed by PostgreSQL with optimistic status updates.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"buyback/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const orderColumns = `
	id, order_number, device, variant_id, price, status, status_version,
	address, lat, lng, answers, rider_id,
	scheduled_date, scheduled_slot, is_express,
	created_at, assigned_at, picked_up_at, completed_at, cancelled_at, cancel_reason`

func (s *Store) Create(ctx context.Context, o *Order) error {
	var lat, lng *float64
	if o.Location != nil {
		lat, lng = &o.Location.Lat, &o.Location.Lng
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO orders (
			id, device, variant_id, price, status, status_version,
			address, lat, lng, answers, rider_id,
			scheduled_date, scheduled_slot, is_express, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15
		)
		RETURNING order_number`,
		string(o.ID),
		o.Device,
		string(o.VariantID),
		o.Price.Amount,
		string(o.Status),
		o.StatusVersion,
		o.Address,
		lat, lng,
		o.Answers,
		toStringPtr(o.RiderID),
		o.ScheduledDate,
		string(o.ScheduledSlot),
		o.Express,
		o.CreatedAt,
	)
	return row.Scan(&o.Number)
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Order, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1`, string(id),
	)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Filter narrows List. Zero values mean "any".
type Filter struct {
	Status  Status
	RiderID types.ID
}

func (s *Store) List(ctx context.Context, f Filter) ([]*Order, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR rider_id = $2)
		ORDER BY order_number DESC`,
		string(f.Status), string(f.RiderID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateStatus applies one transition conditionally on the observed status
// and version. Returns false when a concurrent transition won the race; the
// caller surfaces that as ErrConflict rather than silently overwriting.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, riderID *types.ID, reason *string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE orders
		SET status = $1,
		    status_version = status_version + 1,
		    rider_id = COALESCE($2, rider_id),
		    cancel_reason = COALESCE($3, cancel_reason),
		    assigned_at = CASE WHEN $1 = 'assigned' THEN NOW() ELSE assigned_at END,
		    picked_up_at = CASE WHEN $1 = 'picked_up' THEN NOW() ELSE picked_up_at END,
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END,
		    cancelled_at = CASE WHEN $1 = 'cancelled' THEN NOW() ELSE cancelled_at END
		WHERE id = $4 AND status = $5 AND status_version = $6`,
		string(to),
		toStringPtr(riderID),
		reason,
		string(id),
		string(from),
		version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) AppendEvent(ctx context.Context, e *Event) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO order_state_events (
			order_id, from_status, to_status, actor_type, actor_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.OrderID),
		string(e.FromStatus),
		string(e.ToStatus),
		e.ActorType,
		toStringPtr(e.ActorID),
		e.CreatedAt,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var o Order
	var variantID, riderID, slot, cancelReason *string
	var lat, lng *float64
	var scheduledDate, assignedAt, pickedUpAt, completedAt, cancelledAt *time.Time

	err := row.Scan(
		&o.ID, &o.Number, &o.Device, &variantID, &o.Price.Amount, &o.Status, &o.StatusVersion,
		&o.Address, &lat, &lng, &o.Answers, &riderID,
		&scheduledDate, &slot, &o.Express,
		&o.CreatedAt, &assignedAt, &pickedUpAt, &completedAt, &cancelledAt, &cancelReason,
	)
	if err != nil {
		return nil, err
	}

	o.Price.Currency = types.DefaultCurrency
	if variantID != nil {
		o.VariantID = types.ID(*variantID)
	}
	if riderID != nil {
		r := types.ID(*riderID)
		o.RiderID = &r
	}
	if lat != nil && lng != nil {
		o.Location = &types.Point{Lat: *lat, Lng: *lng}
	}
	if slot != nil {
		o.ScheduledSlot = Slot(*slot)
	}
	o.ScheduledDate = scheduledDate
	o.AssignedAt = assignedAt
	o.PickedUpAt = pickedUpAt
	o.CompletedAt = completedAt
	o.CancelledAt = cancelledAt
	o.CancelReason = cancelReason
	return &o, nil
}

func toStringPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
