package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"driveslot/internal/cart"
	"driveslot/internal/instructor"
	"driveslot/internal/logger"
	"driveslot/internal/metrics"
	"driveslot/internal/reservation"
	"driveslot/internal/user"
)

var (
	ErrEmptyCart       = errors.New("cart has no payable items")
	ErrNotOwner        = errors.New("order belongs to another user")
	ErrSlotNotReserved = errors.New("slot is not reserved by this user")
)

// Mailer is the slice of the email service checkout needs.
type Mailer interface {
	SendPaymentReceipt(ctx context.Context, email, name, reference string, amountCents int64) error
}

type Service interface {
	Checkout(ctx context.Context, userID int) (*CheckoutResponse, error)
	Get(ctx context.Context, userID, orderID int) (*Order, error)
	Confirm(ctx context.Context, userID int, req ConfirmRequest) (*Order, error)
	Fail(ctx context.Context, userID int, req FailRequest) (*Order, error)
}

type service struct {
	repo         Repository
	slots        instructor.Repository
	reservations reservation.Service
	carts        cart.Service
	users        user.Repository
	mailer       Mailer
}

func NewService(repo Repository, slots instructor.Repository, reservations reservation.Service, carts cart.Service, users user.Repository, mailer Mailer) Service {
	return &service{
		repo:         repo,
		slots:        slots,
		reservations: reservations,
		carts:        carts,
		users:        users,
		mailer:       mailer,
	}
}

// Checkout snapshots the cart's reserved slots into a pending-payment order.
// Every lesson slot key in the cart must resolve to a slot the user currently
// holds in pending state; anything already swept or taken fails the checkout
// so the client can reconcile before paying.
func (s *service) Checkout(ctx context.Context, userID int) (*CheckoutResponse, error) {
	c, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var slotIDs []int
	for _, item := range c.Items {
		if item.InstructorID == nil {
			continue
		}
		for _, key := range item.SlotKeys {
			date, start, end, err := instructor.ParseSlotKey(key)
			if err != nil {
				return nil, err
			}
			slot, err := s.slots.GetSlotByKey(ctx, *item.InstructorID, date, start, end)
			if err != nil {
				return nil, err
			}
			if slot.Status != instructor.StatusPending || !slot.OccupiedBy(userID) {
				return nil, ErrSlotNotReserved
			}
			slotIDs = append(slotIDs, slot.ID)
		}
	}

	reference := uuid.NewString()
	o, err := s.repo.Create(ctx, userID, c.TotalCents(), reference, slotIDs)
	if err != nil {
		return nil, err
	}

	logger.Info("order created", "order_id", o.ID, "user_id", userID, "slots", len(slotIDs))
	return &CheckoutResponse{Order: o}, nil
}

func (s *service) Get(ctx context.Context, userID, orderID int) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrNotOwner
	}
	return o, nil
}

// Confirm applies a successful payment: the order flips to paid and every
// slot in it goes pending -> booked with paid set. Gateways redeliver
// webhooks, so a repeat confirmation with the same payment id is a no-op
// success rather than an error.
func (s *service) Confirm(ctx context.Context, userID int, req ConfirmRequest) (*Order, error) {
	o, err := s.Get(ctx, userID, req.OrderID)
	if err != nil {
		return nil, err
	}

	if o.Status == StatusPaid {
		if o.PaymentID != nil && *o.PaymentID == req.PaymentID {
			return o, nil
		}
		return nil, ErrNotPayable
	}

	// Slots flip first. If one of them was swept or cancelled between
	// checkout and confirmation the order stays in created, so the gateway
	// retry re-attempts the whole transition instead of finding an order
	// that claims to be paid over unbooked slots. ConfirmSlots skips slots
	// already booked with this payment id, so the retry is safe.
	if err := s.reservations.ConfirmSlots(ctx, o.SlotIDs, req.PaymentID); err != nil {
		metrics.RecordPaymentConfirmation("rejected")
		return nil, err
	}

	if err := s.repo.MarkPaid(ctx, o.ID, req.PaymentID); err != nil {
		return nil, err
	}

	s.clearCartSlots(ctx, userID, o.SlotIDs)
	metrics.RecordPaymentConfirmation("success")

	if u, err := s.users.FindByID(ctx, userID); err == nil {
		if err := s.mailer.SendPaymentReceipt(ctx, u.Email, u.Name, o.Reference, o.AmountCents); err != nil {
			logger.Error("failed to queue payment receipt", "order_id", o.ID, "error", err)
		}
	}

	return s.repo.GetByID(ctx, o.ID)
}

// Fail reverts a declined or abandoned payment: the order is marked failed
// and its pending slots go back to available so other students see them
// immediately.
func (s *service) Fail(ctx context.Context, userID int, req FailRequest) (*Order, error) {
	o, err := s.Get(ctx, userID, req.OrderID)
	if err != nil {
		return nil, err
	}

	if o.Status == StatusFailed {
		return o, nil
	}

	if err := s.repo.MarkFailed(ctx, o.ID); err != nil {
		return nil, err
	}

	if err := s.reservations.ReleaseSlots(ctx, o.SlotIDs); err != nil {
		return nil, err
	}

	metrics.RecordPaymentConfirmation("failed")
	logger.Info("order failed, slots released", "order_id", o.ID, "reason", req.Reason)

	return s.repo.GetByID(ctx, o.ID)
}

// clearCartSlots drops the now-booked slot keys out of the cart so the cart
// stream and the soft-release check stop tracking them. Best effort: a stale
// cart row only affects presentation.
func (s *service) clearCartSlots(ctx context.Context, userID int, slotIDs []int) {
	slots, err := s.slots.ListSlotsByIDs(ctx, slotIDs)
	if err != nil {
		logger.Error("failed to load slots for cart cleanup", "user_id", userID, "error", err)
		return
	}

	byInstructor := make(map[int][]string)
	for _, slot := range slots {
		byInstructor[slot.InstructorID] = append(byInstructor[slot.InstructorID], slot.Key())
	}

	for instructorID, keys := range byInstructor {
		if err := s.carts.RemoveSlotKeys(ctx, userID, instructorID, keys); err != nil {
			logger.Error("failed to clear booked slots from cart",
				"user_id", userID, "instructor_id", instructorID, "error", err)
		}
	}
}
