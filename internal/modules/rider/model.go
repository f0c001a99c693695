// README: Field executive (rider) definitions.
package rider

import (
	"time"

	"buyback/internal/types"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
)

// Rider is a field executive who collects devices. Status is informational
// only; assignment never consults it, so a busy rider can still receive
// orders.
type Rider struct {
	ID           types.ID
	Name         string
	Phone        string
	Status       Status
	PasswordHash string
	CreatedAt    time.Time
}
