package entity

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrCartOwner is returned when a cart has neither or both owners set.
var ErrCartOwner = errors.New("cart must belong to exactly one of user or session")

// CartOwner identifies whose cart it is: a logged-in user or an anonymous browser session.
type CartOwner struct {
	UserID    *uuid.UUID
	SessionID string
}

// UserCartOwner builds an owner for a logged-in user.
func UserCartOwner(userID uuid.UUID) CartOwner {
	return CartOwner{UserID: &userID}
}

// SessionCartOwner builds an owner for an anonymous session.
func SessionCartOwner(sessionID string) CartOwner {
	return CartOwner{SessionID: sessionID}
}

// Validate enforces the user XOR session rule.
func (o CartOwner) Validate() error {
	hasUser := o.UserID != nil && *o.UserID != uuid.Nil
	hasSession := o.SessionID != ""
	if hasUser == hasSession {
		return ErrCartOwner
	}

	return nil
}

// IsAnonymous reports whether the owner is a session.
func (o CartOwner) IsAnonymous() bool {
	return o.UserID == nil && o.SessionID != ""
}

// MaxLineQuantity caps the units of one product in a cart.
const MaxLineQuantity = 999

// addQuantity sums two line quantities, saturating at MaxLineQuantity.
func addQuantity(a, b int) int {
	if b > MaxLineQuantity-a {
		return MaxLineQuantity
	}

	return a + b
}

// CartItem is one line of the cart. Price and name are snapshots from the first add.
type CartItem struct {
	Quantity int             `json:"quantidade"`
	Price    decimal.Decimal `json:"preco"`
	Name     string          `json:"nome"`
}

// Subtotal is the snapshot price times quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartItems maps a product id string to its line.
type CartItems map[string]CartItem

// Add increments an existing line or inserts a new one with the given snapshot.
// The snapshot of an existing line is never refreshed. Quantities saturate at MaxLineQuantity.
func (items CartItems) Add(productID string, quantity int, price decimal.Decimal, name string) {
	if line, ok := items[productID]; ok {
		line.Quantity = addQuantity(line.Quantity, quantity)
		items[productID] = line

		return
	}

	items[productID] = CartItem{Quantity: addQuantity(0, quantity), Price: price, Name: name}
}

// Remove deletes a line. Absent ids are ignored.
func (items CartItems) Remove(productID string) {
	delete(items, productID)
}

// Merge folds other into items: shared ids sum quantities up to MaxLineQuantity,
// new ids keep their snapshot.
func (items CartItems) Merge(other CartItems) {
	for id, line := range other {
		if existing, ok := items[id]; ok {
			existing.Quantity = addQuantity(existing.Quantity, line.Quantity)
			items[id] = existing

			continue
		}
		line.Quantity = addQuantity(0, line.Quantity)
		items[id] = line
	}
}

// Count is the number of distinct products in the cart.
func (items CartItems) Count() int {
	return len(items)
}

// Total sums every line subtotal at snapshot prices.
func (items CartItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range items {
		total = total.Add(line.Subtotal())
	}

	return total
}

// IDs returns the product ids in a stable order.
func (items CartItems) IDs() []string {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Clone returns an independent copy.
func (items CartItems) Clone() CartItems {
	out := make(CartItems, len(items))
	for id, line := range items {
		out[id] = line
	}

	return out
}

// Cart is the persisted item map of one owner.
type Cart struct {
	ID        uuid.UUID
	Owner     CartOwner
	Items     CartItems
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// CartLine is a cart item resolved against the catalog for display.
type CartLine struct {
	ProductID uuid.UUID
	Product   *Product
	Quantity  int
	Price     decimal.Decimal
	Name      string
	Subtotal  decimal.Decimal
}

// MinorUnits converts a price to centavos, truncating any fraction below one centavo.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Floor().IntPart()
}
