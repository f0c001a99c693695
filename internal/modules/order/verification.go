// README: Five-point verification checklist gating the picked_up transition.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"buyback/internal/types"
)

type CheckItem string

const (
	CheckPhysical     CheckItem = "physical"
	CheckDisplay      CheckItem = "display"
	CheckCamera       CheckItem = "camera"
	CheckConnectivity CheckItem = "connectivity"
	CheckBattery      CheckItem = "battery"
)

// CheckItems is the full checklist a field executive must acknowledge at the
// door before a pickup can be confirmed.
var CheckItems = []CheckItem{
	CheckPhysical,
	CheckDisplay,
	CheckCamera,
	CheckConnectivity,
	CheckBattery,
}

func ValidCheckItem(item CheckItem) bool {
	for _, c := range CheckItems {
		if c == item {
			return true
		}
	}
	return false
}

// Checklist is one agent session's verification state. Advisory only: the
// individual ticks are never persisted as order data, only the resulting
// picked_up transition is.
type Checklist map[CheckItem]bool

// FullyVerified reports whether all five checks are acknowledged. Un-ticking
// any item re-opens the checklist and blocks the pickup again.
func (c Checklist) FullyVerified() bool {
	for _, item := range CheckItems {
		if !c[item] {
			return false
		}
	}
	return true
}

// Gate holds per-session checklists. Implementations are volatile by design.
type Gate interface {
	SetCheck(ctx context.Context, orderID, riderID types.ID, item CheckItem, ok bool) error
	Checklist(ctx context.Context, orderID, riderID types.ID) (Checklist, error)
	Clear(ctx context.Context, orderID, riderID types.ID) error
}

const (
	gateKeyPrefix = "verification:order:%s:rider:%s"
	// A field visit resolves well within a shift.
	gateTTL = 8 * time.Hour
)

// GateStore keeps checklists in Redis with a TTL so abandoned sessions decay
// on their own.
type GateStore struct {
	redis *redis.Client
}

func NewGateStore(redis *redis.Client) *GateStore {
	return &GateStore{redis: redis}
}

func (s *GateStore) SetCheck(ctx context.Context, orderID, riderID types.ID, item CheckItem, ok bool) error {
	val := "0"
	if ok {
		val = "1"
	}
	key := gateKey(orderID, riderID)
	pipe := s.redis.Pipeline()
	pipe.HSet(ctx, key, string(item), val)
	pipe.Expire(ctx, key, gateTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *GateStore) Checklist(ctx context.Context, orderID, riderID types.ID) (Checklist, error) {
	vals, err := s.redis.HGetAll(ctx, gateKey(orderID, riderID)).Result()
	if err != nil {
		return nil, err
	}
	list := make(Checklist, len(CheckItems))
	for item, v := range vals {
		list[CheckItem(item)] = v == "1"
	}
	return list, nil
}

func (s *GateStore) Clear(ctx context.Context, orderID, riderID types.ID) error {
	return s.redis.Del(ctx, gateKey(orderID, riderID)).Err()
}

func gateKey(orderID, riderID types.ID) string {
	return fmt.Sprintf(gateKeyPrefix, string(orderID), string(riderID))
}
