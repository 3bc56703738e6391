package cart

import "context"

type Repository interface {
	GetOrCreate(ctx context.Context, userID int) (*Cart, error)
	GetWithItems(ctx context.Context, userID int) (*Cart, error)
	AddItem(ctx context.Context, userID int, req AddItemRequest) (*Item, error)
	RemoveItem(ctx context.Context, userID, itemID int) error
	Clear(ctx context.Context, userID int) error
	RemoveItemsBySlotKeys(ctx context.Context, userID, instructorID int, slotKeys []string) error
}
