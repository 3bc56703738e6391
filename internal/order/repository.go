package order

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNotPayable    = errors.New("order is not awaiting payment")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, amountCents int64, reference string, slotIDs []int) (*Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	o := &Order{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO orders (user_id, reference, status, amount_cents)
		VALUES ($1, $2, 'created', $3)
		RETURNING id, user_id, reference, status, amount_cents, payment_id, created_at, updated_at
	`, userID, reference, amountCents).StructScan(o)
	if err != nil {
		return nil, err
	}

	for _, slotID := range slotIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_slots (order_id, slot_id) VALUES ($1, $2)`,
			o.ID, slotID,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	o.SlotIDs = slotIDs
	return o, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Order, error) {
	o := &Order{}
	err := r.db.GetContext(ctx, o, `
		SELECT id, user_id, reference, status, amount_cents, payment_id, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	slotIDs := []int{}
	err = r.db.SelectContext(ctx, &slotIDs,
		`SELECT slot_id FROM order_slots WHERE order_id = $1 ORDER BY slot_id`, o.ID)
	if err != nil {
		return nil, err
	}

	o.SlotIDs = slotIDs
	return o, nil
}

// MarkPaid is conditioned on the order still awaiting payment so the
// transition applies once no matter how often the gateway retries.
func (r *repository) MarkPaid(ctx context.Context, id int, paymentID string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = 'paid', payment_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'created'
	`, id, paymentID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotPayable
	}

	return nil
}

func (r *repository) MarkFailed(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = 'failed', updated_at = NOW()
		WHERE id = $1 AND status = 'created'
	`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotPayable
	}

	return nil
}
