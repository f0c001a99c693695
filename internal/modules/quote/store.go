// README: Rule store backed by PostgreSQL with a per-category Redis snapshot cache.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	snapshotKeyPrefix = "quote:rules:%s"
	// Rule edits are rare admin actions; a short TTL bounds staleness even if
	// an invalidation is lost.
	snapshotTTL = 5 * time.Minute
)

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

// Upsert creates or updates the rule for its (category, question, answer)
// triple in place. The category's cached snapshot is invalidated so readers
// pick up the new table on the next quote.
func (s *Store) Upsert(ctx context.Context, r Rule) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO deduction_rules (category, question_key, answer_key, label, amount, percent)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (category, question_key, answer_key)
		DO UPDATE SET label = EXCLUDED.label,
		              amount = EXCLUDED.amount,
		              percent = EXCLUDED.percent`,
		r.Category, r.QuestionKey, r.AnswerKey, r.Label, r.Amount, r.Percent,
	)
	if err != nil {
		return err
	}
	if s.redis != nil {
		_ = s.redis.Del(ctx, snapshotKey(r.Category)).Err()
	}
	return nil
}

// List returns every rule configured for a category, in key order.
func (s *Store) List(ctx context.Context, category string) ([]Rule, error) {
	rows, err := s.db.Query(ctx, `
		SELECT category, question_key, answer_key, label, amount, percent
		FROM deduction_rules
		WHERE category = $1
		ORDER BY question_key, answer_key`, category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []Rule
	for rows.Next() {
		var r Rule
		if err := rows.Scan(&r.Category, &r.QuestionKey, &r.AnswerKey, &r.Label, &r.Amount, &r.Percent); err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// GetSnapshot returns the category's rule table, served from the Redis cache
// when warm. Each cached entry is the whole table, so a reader never observes
// half of a rule's amount/percent pair.
func (s *Store) GetSnapshot(ctx context.Context, category string) (Snapshot, error) {
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, snapshotKey(category)).Result(); err == nil {
			var rules []Rule
			if err := json.Unmarshal([]byte(raw), &rules); err == nil {
				return buildSnapshot(rules), nil
			}
		}
	}

	rules, err := s.List(ctx, category)
	if err != nil {
		return nil, err
	}
	if s.redis != nil {
		if raw, err := json.Marshal(rules); err == nil {
			_ = s.redis.Set(ctx, snapshotKey(category), raw, snapshotTTL).Err()
		}
	}
	return buildSnapshot(rules), nil
}

func buildSnapshot(rules []Rule) Snapshot {
	snap := make(Snapshot, len(rules))
	for _, r := range rules {
		snap[RuleKey{QuestionKey: r.QuestionKey, AnswerKey: r.AnswerKey}] = r
	}
	return snap
}

func snapshotKey(category string) string {
	return fmt.Sprintf(snapshotKeyPrefix, category)
}
