// README: Common value objects shared across modules.
package types

// ID is an opaque entity identifier (UUID or external key).
type ID string

// Point is a WGS84 coordinate attached to a pickup address.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Money is an integer amount in the smallest currency unit.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

const DefaultCurrency = "INR"

func Rupees(amount int64) Money {
	return Money{Amount: amount, Currency: DefaultCurrency}
}
