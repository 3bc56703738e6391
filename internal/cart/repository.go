package cart

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrItemNotFound = errors.New("cart item not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetOrCreate(ctx context.Context, userID int) (*Cart, error) {
	c := &Cart{}
	err := r.db.GetContext(ctx, c, `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = r.db.QueryRowxContext(ctx,
		`INSERT INTO carts (user_id)
		 VALUES ($1)
		 ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		 RETURNING id, user_id, created_at, updated_at`,
		userID,
	).StructScan(c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) GetWithItems(ctx context.Context, userID int) (*Cart, error) {
	c, err := r.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := []Item{}
	err = r.db.SelectContext(ctx, &items, `
		SELECT id, cart_id, title, price_cents, class_type, instructor_id, slot_keys, created_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at ASC
	`, c.ID)
	if err != nil {
		return nil, err
	}

	c.Items = items
	return c, nil
}

func (r *repository) AddItem(ctx context.Context, userID int, req AddItemRequest) (*Item, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	c := &Cart{}
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO carts (user_id)
		 VALUES ($1)
		 ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		 RETURNING id, user_id, created_at, updated_at`,
		userID,
	).StructScan(c)
	if err != nil {
		return nil, err
	}

	item := &Item{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO cart_items (cart_id, title, price_cents, class_type, instructor_id, slot_keys)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, cart_id, title, price_cents, class_type, instructor_id, slot_keys, created_at
	`, c.ID, req.Title, req.PriceCents, req.ClassType, req.InstructorID, pq.StringArray(req.SlotKeys)).StructScan(item)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return item, nil
}

func (r *repository) RemoveItem(ctx context.Context, userID, itemID int) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1
		  AND cart_id = (SELECT id FROM carts WHERE user_id = $2)
	`, itemID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = (SELECT id FROM carts WHERE user_id = $1)
	`, userID)
	return err
}

// RemoveItemsBySlotKeys drops items whose slot keys intersect the given set,
// used after checkout so paid slots leave the cart.
func (r *repository) RemoveItemsBySlotKeys(ctx context.Context, userID, instructorID int, slotKeys []string) error {
	if len(slotKeys) == 0 {
		return nil
	}

	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = (SELECT id FROM carts WHERE user_id = $1)
		  AND instructor_id = $2
		  AND slot_keys && $3
	`, userID, instructorID, pq.StringArray(slotKeys))
	return err
}
