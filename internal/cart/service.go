package cart

import (
	"context"

	"driveslot/internal/event"
	"driveslot/internal/logger"
	"driveslot/internal/metrics"
)

type Service interface {
	Get(ctx context.Context, userID int) (*Cart, error)
	AddItem(ctx context.Context, userID int, req AddItemRequest) (*Item, error)
	RemoveItem(ctx context.Context, userID, itemID int) error
	Clear(ctx context.Context, userID int) error
	RemoveSlotKeys(ctx context.Context, userID, instructorID int, slotKeys []string) error
	SlotKeySet(ctx context.Context, userID int) (map[string]struct{}, error)
}

type service struct {
	repo   Repository
	mirror *Mirror
	bus    *event.Bus
}

func NewService(repo Repository, mirror *Mirror, bus *event.Bus) Service {
	return &service{repo: repo, mirror: mirror, bus: bus}
}

func (s *service) Get(ctx context.Context, userID int) (*Cart, error) {
	return s.repo.GetWithItems(ctx, userID)
}

func (s *service) AddItem(ctx context.Context, userID int, req AddItemRequest) (*Item, error) {
	item, err := s.repo.AddItem(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	metrics.RecordCartOperation("add")
	s.refresh(ctx, userID, item.InstructorID)
	return item, nil
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID int) error {
	// fetch before deleting so we know which instructor calendar to wake:
	// removing a lesson item changes slot visibility for its viewer.
	var instructorID *int
	if c, err := s.repo.GetWithItems(ctx, userID); err == nil {
		for _, item := range c.Items {
			if item.ID == itemID {
				instructorID = item.InstructorID
				break
			}
		}
	}

	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		return err
	}

	metrics.RecordCartOperation("remove")
	s.refresh(ctx, userID, instructorID)
	return nil
}

func (s *service) Clear(ctx context.Context, userID int) error {
	c, err := s.repo.GetWithItems(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Clear(ctx, userID); err != nil {
		return err
	}

	metrics.RecordCartOperation("clear")

	seen := make(map[int]struct{})
	for _, item := range c.Items {
		if item.InstructorID == nil {
			continue
		}
		if _, ok := seen[*item.InstructorID]; ok {
			continue
		}
		seen[*item.InstructorID] = struct{}{}
		s.bus.Publish(event.SlotsTopic(*item.InstructorID))
	}
	s.refresh(ctx, userID, nil)
	return nil
}

func (s *service) RemoveSlotKeys(ctx context.Context, userID, instructorID int, slotKeys []string) error {
	if err := s.repo.RemoveItemsBySlotKeys(ctx, userID, instructorID, slotKeys); err != nil {
		return err
	}
	s.refresh(ctx, userID, &instructorID)
	return nil
}

// SlotKeySet returns the scoped slot keys in the user's live cart, feeding
// the soft-release visibility rule. Reads the redis mirror first and falls
// back to the database on a miss or error.
func (s *service) SlotKeySet(ctx context.Context, userID int) (map[string]struct{}, error) {
	if cached, err := s.mirror.Get(ctx, userID); err == nil && cached != nil {
		return cached.SlotKeySet(), nil
	} else if err != nil {
		logger.Debug("cart mirror read failed, falling back to database", "user_id", userID, "error", err.Error())
	}

	c, err := s.repo.GetWithItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.SlotKeySet(), nil
}

// refresh re-mirrors the cart and wakes the cart stream plus the affected
// instructor calendar. Mirror failures are logged, never propagated.
func (s *service) refresh(ctx context.Context, userID int, instructorID *int) {
	c, err := s.repo.GetWithItems(ctx, userID)
	if err != nil {
		logger.Error("failed to reload cart for mirror", "user_id", userID, "error", err.Error())
	} else if err := s.mirror.Set(ctx, c); err != nil {
		logger.Error("cart mirror write failed", "user_id", userID, "error", err.Error())
	}

	s.bus.Publish(event.CartTopic(userID))
	if instructorID != nil {
		s.bus.Publish(event.SlotsTopic(*instructorID))
	}
}
