// README: Rider service validation tests.
package rider

import (
	"context"
	"testing"
)

func TestCreateRejectsIncompleteCommands(t *testing.T) {
	svc := NewService(nil)
	cases := []CreateCommand{
		{Name: "", Phone: "9876543210", Password: "pw"},
		{Name: "Ravi", Phone: "", Password: "pw"},
		{Name: "Ravi", Phone: "9876543210", Password: ""},
		{Name: "   ", Phone: "9876543210", Password: "pw"},
	}
	for _, cmd := range cases {
		if _, err := svc.Create(context.Background(), cmd); err != ErrBadRequest {
			t.Errorf("Create(%+v): expected ErrBadRequest, got %v", cmd, err)
		}
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(nil)
	if err := svc.SetStatus(context.Background(), "r1", Status("vacation")); err != ErrBadRequest {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
