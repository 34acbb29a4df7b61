package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks delivery progress.
type OrderStatus string

const (
	OrderRequested OrderStatus = "solicitado"
	OrderInTransit OrderStatus = "a_caminho"
	OrderDelivered OrderStatus = "entregue"
)

// Label returns the display text of the status.
func (s OrderStatus) Label() string {
	switch s {
	case OrderRequested:
		return "Solicitado"
	case OrderInTransit:
		return "A Caminho"
	case OrderDelivered:
		return "Entregue"
	default:
		return string(s)
	}
}

// Order groups the items one buyer bought from one seller in a paid checkout.
type Order struct {
	ID                uuid.UUID    // Order identifier.
	CheckoutSessionID string       // Processor session id; unique together with ProfileID.
	ProfileID         uuid.UUID    // Seller.
	BuyerID           uuid.UUID    // Buyer.
	Status            OrderStatus  // Delivery state.
	Items             []*OrderItem // Purchased lines.
	Buyer             *User        // Filled on dashboard reads.
	CreatedAt         time.Time
}

// OrderItem is one product line of an order.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Product   *Product
}

// CheckoutSessionStatus is the local view of a processor checkout session.
type CheckoutSessionStatus string

const (
	CheckoutSessionOpen      CheckoutSessionStatus = "open"
	CheckoutSessionCompleted CheckoutSessionStatus = "completed"
	CheckoutSessionExpired   CheckoutSessionStatus = "expired"
)

// CheckoutSession is the cart snapshot taken when the buyer was sent to the processor.
// The webhook builds orders from it, not from the live cart.
type CheckoutSession struct {
	ID          string                // Processor session id.
	UserID      uuid.UUID             // Buyer.
	Items       CartItems             // Lines charged.
	AmountTotal int64                 // Minor units charged.
	Currency    string                // ISO currency code, lower case.
	Status      CheckoutSessionStatus // open, completed or expired.
	CreatedAt   time.Time
	CompletedAt *time.Time
}
