// README: Sellable device variant as owned by the catalog collaborator.
package catalog

import "buyback/internal/types"

// Variant identifies one sellable device configuration. The catalog owns these
// rows; the core only reads BasePrice and Category.
type Variant struct {
	ID        types.ID
	Category  string
	Name      string
	BasePrice int64
}
