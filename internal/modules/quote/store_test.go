// README: Rule store tests (upsert-in-place semantics, DB-backed).
package quote

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestRuleStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("BUYBACK_TEST_DSN")
	if dsn == "" {
		t.Skip("BUYBACK_TEST_DSN not set; skipping DB-backed rule tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "0001_init.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	var cleaned strings.Builder
	for _, line := range strings.Split(string(content), "\n") {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		cleaned.WriteString(line)
		cleaned.WriteString("\n")
	}
	for _, stmt := range strings.Split(cleaned.String(), ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			if _, err := db.Exec(ctx, s); err != nil {
				t.Fatalf("apply migration: %v", err)
			}
		}
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE deduction_rules"); err != nil {
		t.Fatalf("truncate rules: %v", err)
	}

	// no redis in tests; the store reads through to the database
	return NewStore(db, nil)
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	store := setupTestRuleStore(t)
	ctx := context.Background()

	first := Rule{Category: "smartphone", QuestionKey: "calls", AnswerKey: "false", Label: "No calls", Amount: 500, Percent: 2}
	if err := store.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	second := first
	second.Label = "Cannot make calls"
	second.Amount = 1000
	second.Percent = 5
	if err := store.Upsert(ctx, second); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	rules, err := store.List(ctx, "smartphone")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule after double upsert, got %d", len(rules))
	}
	got := rules[0]
	if got.Label != "Cannot make calls" || got.Amount != 1000 || got.Percent != 5 {
		t.Fatalf("rule not updated in place: %+v", got)
	}
}

func TestSnapshotReadThrough(t *testing.T) {
	store := setupTestRuleStore(t)
	ctx := context.Background()

	rule := Rule{Category: "smartphone", QuestionKey: "touch", AnswerKey: "false", Label: "Touch broken", Percent: 20}
	if err := store.Upsert(ctx, rule); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	snap, err := store.GetSnapshot(ctx, "smartphone")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	got, ok := snap[RuleKey{QuestionKey: "touch", AnswerKey: "false"}]
	if !ok {
		t.Fatalf("rule missing from snapshot")
	}
	if got.Percent != 20 {
		t.Fatalf("expected percent 20, got %v", got.Percent)
	}

	if _, ok := snap[RuleKey{QuestionKey: "touch", AnswerKey: "true"}]; ok {
		t.Fatalf("unexpected rule for unanswered key")
	}
}
