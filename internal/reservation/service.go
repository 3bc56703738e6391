package reservation

import (
	"context"
	"errors"

	"driveslot/internal/cart"
	"driveslot/internal/event"
	"driveslot/internal/instructor"
	"driveslot/internal/logger"
	"driveslot/internal/metrics"
)

var (
	ErrSlotNotFound     = errors.New("slot not found")
	ErrSlotTaken        = errors.New("slot is no longer available")
	ErrOverlap          = errors.New("slot overlaps an existing reservation")
	ErrNotOccupant      = errors.New("slot is not reserved by this student")
	ErrBadTransition    = errors.New("unsupported status transition")
	ErrLessonFieldsOnly = errors.New("pickup and dropoff apply to driving lessons only")
)

type ReserveRequest struct {
	SlotID          int     `json:"slot_id,omitempty"`
	InstructorID    int     `json:"instructor_id" binding:"required"`
	Date            string  `json:"date,omitempty"`
	Start           string  `json:"start,omitempty"`
	End             string  `json:"end,omitempty"`
	ClassType       string  `json:"class_type" binding:"required"`
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	PickupLocation  *string `json:"pickup_location,omitempty"`
	DropoffLocation *string `json:"dropoff_location,omitempty"`
}

type UpdateStatusRequest struct {
	SlotIDs      []int  `json:"slot_ids" binding:"required,min=1"`
	InstructorID int    `json:"instructor_id" binding:"required"`
	Status       string `json:"status" binding:"required"`
	Paid         bool   `json:"paid"`
	PaymentID    string `json:"payment_id,omitempty"`
}

type Service interface {
	Reserve(ctx context.Context, studentID int, req ReserveRequest) (*instructor.Slot, error)
	Cancel(ctx context.Context, studentID, slotID int) error
	AdminCancel(ctx context.Context, slotID int) error
	VerifyStatus(ctx context.Context, slotID int) (*instructor.Slot, error)
	ConfirmSlots(ctx context.Context, slotIDs []int, paymentID string) error
	ReleaseSlots(ctx context.Context, slotIDs []int) error
	UpdateStatusBatch(ctx context.Context, req UpdateStatusRequest) error
	ListForViewer(ctx context.Context, instructorID, viewerID int, fromDate, classType string) ([]SlotView, error)
}

type service struct {
	repo  instructor.Repository
	carts cart.Service
	bus   *event.Bus
}

func NewService(repo instructor.Repository, carts cart.Service, bus *event.Bus) Service {
	return &service{repo: repo, carts: carts, bus: bus}
}

// Reserve transitions a slot available -> pending for the student. The
// overlap check is advisory (client already pre-checks); the conditional
// UPDATE in the repository is what actually prevents double-booking.
func (s *service) Reserve(ctx context.Context, studentID int, req ReserveRequest) (*instructor.Slot, error) {
	slot, err := s.resolveSlot(ctx, req)
	if err != nil {
		return nil, err
	}

	if instructor.ClassType(req.ClassType) != instructor.ClassDrivingLesson &&
		(req.PickupLocation != nil || req.DropoffLocation != nil) {
		return nil, ErrLessonFieldsOnly
	}

	existing, err := s.repo.ListSlotsByStudentOnDate(ctx, studentID, slot.SlotDate)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.ID == slot.ID {
			continue
		}
		if instructor.Overlaps(slot.StartTime, slot.EndTime, other.StartTime, other.EndTime) {
			return nil, ErrOverlap
		}
	}

	err = s.repo.Reserve(ctx, instructor.ReserveParams{
		SlotID:          slot.ID,
		StudentID:       studentID,
		ClassType:       instructor.ClassType(req.ClassType),
		PaymentMethod:   instructor.PaymentMethod(req.PaymentMethod),
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	})
	if err != nil {
		if errors.Is(err, instructor.ErrSlotUnavailable) {
			metrics.RecordReservationConflict()
			metrics.RecordReservation("conflict", req.PaymentMethod)
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	metrics.RecordReservation("reserved", req.PaymentMethod)
	s.bus.Publish(event.SlotsTopic(slot.InstructorID))

	return s.repo.GetSlotByID(ctx, slot.ID)
}

// Cancel is the student's explicit pending -> available release.
func (s *service) Cancel(ctx context.Context, studentID, slotID int) error {
	slot, err := s.repo.GetSlotByID(ctx, slotID)
	if err != nil {
		return ErrSlotNotFound
	}

	if err := s.repo.Release(ctx, slotID, studentID); err != nil {
		if errors.Is(err, instructor.ErrSlotNotPending) {
			return ErrNotOccupant
		}
		return err
	}

	metrics.RecordReservation("cancelled", slot.PaymentMethod)
	s.bus.Publish(event.SlotsTopic(slot.InstructorID))
	return nil
}

// AdminCancel reverts a booked slot; administrative override only.
func (s *service) AdminCancel(ctx context.Context, slotID int) error {
	slot, err := s.repo.GetSlotByID(ctx, slotID)
	if err != nil {
		return ErrSlotNotFound
	}

	if err := s.repo.AdminRelease(ctx, slotID); err != nil {
		return err
	}

	s.bus.Publish(event.SlotsTopic(slot.InstructorID))
	return nil
}

func (s *service) VerifyStatus(ctx context.Context, slotID int) (*instructor.Slot, error) {
	slot, err := s.repo.GetSlotByID(ctx, slotID)
	if err != nil {
		return nil, ErrSlotNotFound
	}
	return slot, nil
}

// ConfirmSlots applies pending -> booked to a batch after a verified
// payment. Idempotent: a slot already booked with the same payment id is
// skipped, so repeated confirmation calls are safe.
func (s *service) ConfirmSlots(ctx context.Context, slotIDs []int, paymentID string) error {
	slots, err := s.repo.ListSlotsByIDs(ctx, slotIDs)
	if err != nil {
		return err
	}
	if len(slots) != len(slotIDs) {
		return ErrSlotNotFound
	}

	touched := make(map[int]struct{})
	for _, slot := range slots {
		if slot.Status == instructor.StatusBooked && slot.Paid &&
			slot.PaymentID != nil && *slot.PaymentID == paymentID {
			continue
		}
		if slot.Status != instructor.StatusPending || slot.StudentID == nil {
			return ErrBadTransition
		}

		if err := s.repo.ConfirmBooked(ctx, slot.ID, *slot.StudentID, paymentID); err != nil {
			return err
		}
		touched[slot.InstructorID] = struct{}{}
	}

	for instructorID := range touched {
		s.bus.Publish(event.SlotsTopic(instructorID))
	}
	return nil
}

// ReleaseSlots reverts a batch of pendings after a rejected payment.
// Slots already released (sweeper, explicit cancel) are skipped.
func (s *service) ReleaseSlots(ctx context.Context, slotIDs []int) error {
	slots, err := s.repo.ListSlotsByIDs(ctx, slotIDs)
	if err != nil {
		return err
	}

	touched := make(map[int]struct{})
	for _, slot := range slots {
		if slot.Status != instructor.StatusPending || slot.StudentID == nil {
			continue
		}
		if err := s.repo.Release(ctx, slot.ID, *slot.StudentID); err != nil {
			if errors.Is(err, instructor.ErrSlotNotPending) {
				continue
			}
			return err
		}
		touched[slot.InstructorID] = struct{}{}
	}

	for instructorID := range touched {
		s.bus.Publish(event.SlotsTopic(instructorID))
	}
	return nil
}

// UpdateStatusBatch is the payment collaborator's entry point, mirroring the
// update-slot-status contract: booked confirms, available reverts.
func (s *service) UpdateStatusBatch(ctx context.Context, req UpdateStatusRequest) error {
	switch instructor.SlotStatus(req.Status) {
	case instructor.StatusBooked:
		return s.ConfirmSlots(ctx, req.SlotIDs, req.PaymentID)
	case instructor.StatusAvailable:
		return s.ReleaseSlots(ctx, req.SlotIDs)
	default:
		return ErrBadTransition
	}
}

// ListForViewer returns an instructor's calendar projected for one viewer.
// viewerID 0 means anonymous.
func (s *service) ListForViewer(ctx context.Context, instructorID, viewerID int, fromDate, classType string) ([]SlotView, error) {
	slots, err := s.repo.ListSlotsByInstructor(ctx, instructorID, fromDate)
	if err != nil {
		return nil, err
	}

	var viewerCart map[string]struct{}
	if viewerID != 0 {
		viewerCart, err = s.carts.SlotKeySet(ctx, viewerID)
		if err != nil {
			// visibility degrades conservatively: without the cart we
			// cannot soft-release, so the viewer sees their own pendings
			// as pending.
			logger.Error("cart lookup failed for slot view", "user_id", viewerID, "error", err.Error())
			viewerCart = map[string]struct{}{}
			for _, slot := range slots {
				if slot.OccupiedBy(viewerID) {
					viewerCart[cart.ScopedKey(slot.InstructorID, slot.Key())] = struct{}{}
				}
			}
		}
	}

	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		if classType != "" && string(slot.ClassType) != classType {
			continue
		}
		views = append(views, NewSlotView(slot, viewerID, viewerCart))
	}
	return views, nil
}

func (s *service) resolveSlot(ctx context.Context, req ReserveRequest) (*instructor.Slot, error) {
	if req.SlotID != 0 {
		slot, err := s.repo.GetSlotByID(ctx, req.SlotID)
		if err != nil {
			return nil, ErrSlotNotFound
		}
		return slot, nil
	}

	if !instructor.ValidDate(req.Date) || !instructor.ValidTimeOfDay(req.Start) || !instructor.ValidTimeOfDay(req.End) {
		return nil, ErrSlotNotFound
	}

	slot, err := s.repo.GetSlotByKey(ctx, req.InstructorID, req.Date, req.Start, req.End)
	if err != nil {
		return nil, ErrSlotNotFound
	}
	return slot, nil
}
