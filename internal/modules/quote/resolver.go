// README: Deduction resolver maps questionnaire answers onto configured rules.
package quote

// Resolve returns the deductions applicable to an answer set under one rule
// snapshot. Pure function; missing rules contribute nothing. Order is stable
// for audit display: schema question order first, then selection order.
//
// Boolean questions deduct only when answered false ("false = defect"); the
// lookup key for those is the literal answer key "false".
func Resolve(schema CategorySchema, answers AnswerSet, snap Snapshot) []AppliedDeduction {
	var applied []AppliedDeduction
	for _, q := range schema.Questions {
		ans, ok := answers[q.Key]
		if !ok {
			continue
		}
		switch a := ans.(type) {
		case BoolAnswer:
			if bool(a) {
				continue
			}
			applied = appendMatch(applied, snap, q.Key, "false")
		case SingleAnswer:
			applied = appendMatch(applied, snap, q.Key, string(a))
		case MultiAnswer:
			for _, choice := range a {
				applied = appendMatch(applied, snap, q.Key, choice)
			}
		}
	}
	return applied
}

func appendMatch(applied []AppliedDeduction, snap Snapshot, questionKey, answerKey string) []AppliedDeduction {
	rule, ok := snap[RuleKey{QuestionKey: questionKey, AnswerKey: answerKey}]
	if !ok {
		// No penalty configured for this condition yet.
		return applied
	}
	return append(applied, AppliedDeduction{
		QuestionKey: questionKey,
		AnswerKey:   answerKey,
		Label:       rule.Label,
		Amount:      rule.Amount,
		Percent:     rule.Percent,
	})
}
