package cart

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Cart is the server-side mirror of a student's cart. The client keeps an
// optimistic local copy; once the student is authenticated this record is
// authoritative and pushed over the cart stream.
type Cart struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	Items     []Item    `db:"-" json:"items"`
}

// Item references a product or package. Driving-lesson items additionally
// carry the instructor and the reserved slot keys (date-start-end), which is
// what the soft-release visibility check consults.
type Item struct {
	ID           int            `db:"id" json:"id"`
	CartID       int            `db:"cart_id" json:"cart_id"`
	Title        string         `db:"title" json:"title"`
	PriceCents   int64          `db:"price_cents" json:"price_cents"`
	ClassType    string         `db:"class_type" json:"class_type"`
	InstructorID *int           `db:"instructor_id" json:"instructor_id,omitempty"`
	SlotKeys     pq.StringArray `db:"slot_keys" json:"slot_keys" swaggertype:"array,string"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

type AddItemRequest struct {
	Title        string   `json:"title" binding:"required"`
	PriceCents   int64    `json:"price_cents" binding:"required,gte=0"`
	ClassType    string   `json:"class_type" binding:"required"`
	InstructorID *int     `json:"instructor_id,omitempty"`
	SlotKeys     []string `json:"slot_keys,omitempty"`
}

// ScopedKey namespaces a slot key by instructor; two instructors can both
// have a 2025-03-10-09:00-09:30 slot.
func ScopedKey(instructorID int, slotKey string) string {
	return fmt.Sprintf("%d|%s", instructorID, slotKey)
}

// TotalCents sums the cart's item prices.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents
	}
	return total
}

// SlotKeySet returns the scoped slot keys currently referenced by the cart.
func (c *Cart) SlotKeySet() map[string]struct{} {
	keys := make(map[string]struct{})
	for _, item := range c.Items {
		if item.InstructorID == nil {
			continue
		}
		for _, k := range item.SlotKeys {
			keys[ScopedKey(*item.InstructorID, k)] = struct{}{}
		}
	}
	return keys
}
