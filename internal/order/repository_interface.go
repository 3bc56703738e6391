package order

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, amountCents int64, reference string, slotIDs []int) (*Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	MarkPaid(ctx context.Context, id int, paymentID string) error
	MarkFailed(ctx context.Context, id int) error
}
