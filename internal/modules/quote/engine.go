// README: Price engine; combines base price and deductions into a final offer.
package quote

import "math/big"

var half = big.NewRat(1, 2)

// FinalPrice computes round(base × (1 − Σpercent/100)) − Σamount, clamped at
// zero. Percent is applied before fixed amounts and accumulated as an exact
// rational, so there is exactly one rounding step. Idempotent: same inputs,
// same integer out.
func FinalPrice(basePrice int64, deductions []AppliedDeduction) (int64, error) {
	if basePrice < 0 {
		return 0, ErrBadRequest
	}

	percentTotal := new(big.Rat)
	var fixedTotal int64
	for _, d := range deductions {
		p := new(big.Rat)
		p.SetFloat64(d.Percent)
		percentTotal.Add(percentTotal, p)
		fixedTotal += d.Amount
	}

	// base × (1 − percentTotal/100)
	factor := new(big.Rat).Sub(big.NewRat(1, 1), percentTotal.Quo(percentTotal, big.NewRat(100, 1)))
	discounted := new(big.Rat).Mul(new(big.Rat).SetInt64(basePrice), factor)

	final := roundHalfUp(discounted) - fixedTotal
	if final < 0 {
		// Negative intermediates are legal; the published quote is not.
		final = 0
	}
	return final, nil
}

// roundHalfUp rounds to the nearest integer, ties away from the floor:
// floor(x + 1/2). Rat denominators are always positive, so Div is a true
// floor for negative values too.
func roundHalfUp(r *big.Rat) int64 {
	shifted := new(big.Rat).Add(r, half)
	return new(big.Int).Div(shifted.Num(), shifted.Denom()).Int64()
}
