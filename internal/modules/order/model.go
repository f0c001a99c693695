// README: Order aggregate, status definitions, and the transition table.
package order

import (
	"time"

	"buyback/internal/types"
)

type Status string

const (
	StatusNone      Status = "none"
	StatusPlaced    Status = "placed"
	StatusAssigned  Status = "assigned"
	StatusPickedUp  Status = "picked_up"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Slot string

const (
	SlotNone    Slot = ""
	SlotMorning Slot = "10:00-14:00"
	SlotEvening Slot = "15:00-19:00"
)

type Order struct {
	ID            types.ID
	Number        int64
	Device        string
	VariantID     types.ID
	Price         types.Money
	Status        Status
	StatusVersion int
	Address       string
	Location      *types.Point
	Answers       string
	RiderID       *types.ID
	ScheduledDate *time.Time
	ScheduledSlot Slot
	Express       bool
	CreatedAt     time.Time
	AssignedAt    *time.Time
	PickedUpAt    *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
	CancelReason  *string
}

type Event struct {
	ID         int64
	OrderID    types.ID
	FromStatus Status
	ToStatus   Status
	ActorType  string
	ActorID    *types.ID
	CreatedAt  time.Time
}

// AllowedTransitions represents the order state flow as code. The assigned
// self-loop models re-assignment: an admin may hand an assigned order to a
// different rider, re-stamping the status. Once a device is physically picked
// up the record can only complete; there is no cancel edge past that point.
var AllowedTransitions = map[Status][]Status{
	StatusPlaced:   {StatusAssigned, StatusCancelled},
	StatusAssigned: {StatusAssigned, StatusPickedUp, StatusCancelled},
	StatusPickedUp: {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
