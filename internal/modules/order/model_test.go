// README: Transition table tests (no database required).
package order

import "testing"

// TestCanTransition verifies the state machine transition table without a database.
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// happy-path forward transitions
		{StatusPlaced, StatusAssigned, true},
		{StatusAssigned, StatusPickedUp, true},
		{StatusPickedUp, StatusCompleted, true},
		// re-assignment self-loop
		{StatusAssigned, StatusAssigned, true},
		// cancels before pickup
		{StatusPlaced, StatusCancelled, true},
		{StatusAssigned, StatusCancelled, true},
		// invalid: no cancel once the device is collected
		{StatusPickedUp, StatusCancelled, false},
		// invalid: skipping states
		{StatusPlaced, StatusPickedUp, false},
		{StatusPlaced, StatusCompleted, false},
		{StatusAssigned, StatusCompleted, false},
		// invalid: terminal states have no outgoing transitions
		{StatusCompleted, StatusAssigned, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusAssigned, false},
		{StatusCancelled, StatusPlaced, false},
		// invalid: going backwards
		{StatusPickedUp, StatusAssigned, false},
		{StatusAssigned, StatusPlaced, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		if got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
