// README: Deduction rules, answer sets, and quote definitions.
package quote

import (
	"errors"

	"buyback/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrBadAnswers = errors.New("malformed answer set")
	ErrNoSchema   = errors.New("unknown category")
)

// Rule is an admin-configured penalty tied to one questionnaire answer.
// Unique per (category, question, answer); upserts never duplicate.
type Rule struct {
	Category    string  `json:"category"`
	QuestionKey string  `json:"question_key"`
	AnswerKey   string  `json:"answer_key"`
	Label       string  `json:"label"`
	Amount      int64   `json:"amount"`
	Percent     float64 `json:"percent"`
}

// RuleKey identifies a rule within one category's table.
type RuleKey struct {
	QuestionKey string
	AnswerKey   string
}

// Snapshot is one category's rule table as observed at a single point in time.
// Readers see whole rules only; a rule's amount/percent pair is never split.
type Snapshot map[RuleKey]Rule

// Answer is a tagged union over the three questionnaire answer shapes.
type Answer interface{ isAnswer() }

type BoolAnswer bool

type SingleAnswer string

type MultiAnswer []string

func (BoolAnswer) isAnswer()   {}
func (SingleAnswer) isAnswer() {}
func (MultiAnswer) isAnswer()  {}

// AnswerSet maps question keys to submitted answers. Immutable once handed to
// the engine.
type AnswerSet map[string]Answer

// AppliedDeduction records one rule that matched an answer, kept in stable
// order for audit display.
type AppliedDeduction struct {
	QuestionKey string  `json:"question_key"`
	AnswerKey   string  `json:"answer_key"`
	Label       string  `json:"label"`
	Amount      int64   `json:"amount"`
	Percent     float64 `json:"percent"`
}

// Quote is the computed, not-yet-persisted buyback price for one variant and
// condition combination. An order captures it at placement; it is never
// recomputed afterwards.
type Quote struct {
	VariantID  types.ID           `json:"variant_id"`
	Category   string             `json:"category"`
	BasePrice  int64              `json:"base_price"`
	FinalPrice int64              `json:"final_price"`
	Deductions []AppliedDeduction `json:"deductions"`
}
