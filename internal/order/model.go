package order

import "time"

type Status string

const (
	StatusCreated Status = "created"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// Order groups the slot reservations of one checkout plus the payment
// reference the gateway reports back.
type Order struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Reference   string    `db:"reference" json:"reference"`
	Status      Status    `db:"status" json:"status"`
	AmountCents int64     `db:"amount_cents" json:"amount_cents"`
	PaymentID   *string   `db:"payment_id" json:"payment_id,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	SlotIDs     []int     `db:"-" json:"slot_ids"`
}

type CheckoutResponse struct {
	Order *Order `json:"order"`
}

type ConfirmRequest struct {
	OrderID   int    `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
}

type FailRequest struct {
	OrderID int    `json:"order_id" binding:"required"`
	Reason  string `json:"reason,omitempty"`
}
