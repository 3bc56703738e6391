package reservation

import (
	"driveslot/internal/cart"
	"driveslot/internal/instructor"
)

// Viewer-relative slot states. Persisted status is never exposed raw to
// calendars: what a slot looks like depends on who is asking.
const (
	ViewAvailable   = "available"
	ViewPending     = "pending"
	ViewReserved    = "reserved"
	ViewBooked      = "booked"
	ViewUnavailable = "unavailable"
)

// SlotView is a slot as one viewer sees it.
type SlotView struct {
	instructor.Slot
	EffectiveStatus string `json:"effective_status"`
	Mine            bool   `json:"mine"`
}

// EffectiveStatus computes the viewer-relative state of a slot.
//
// The soft-release rule: a slot the viewer holds as pending with online
// payment, whose key the viewer's live cart no longer references, reads as
// available to that viewer even though the persisted status is still
// pending. Everyone else keeps seeing it reserved until the TTL sweeper
// hard-releases it. Physical-payment pendings never soft-release; the
// student has committed to pay at the location and there is no cart entry
// to abandon.
func EffectiveStatus(s instructor.Slot, viewerID int, viewerCart map[string]struct{}) string {
	mine := viewerID != 0 && s.OccupiedBy(viewerID)

	switch s.Status {
	case instructor.StatusAvailable:
		return ViewAvailable
	case instructor.StatusCancelled:
		return ViewUnavailable
	case instructor.StatusPending:
		if !mine {
			return ViewReserved
		}
		if s.PaymentMethod == string(instructor.PayPhysical) {
			return ViewPending
		}
		if _, inCart := viewerCart[cart.ScopedKey(s.InstructorID, s.Key())]; !inCart {
			return ViewAvailable
		}
		return ViewPending
	case instructor.StatusBooked:
		if mine {
			return ViewBooked
		}
		return ViewUnavailable
	}
	return ViewUnavailable
}

// NewSlotView builds the viewer-relative projection of a slot. Occupant and
// payment details are stripped unless the slot belongs to the viewer.
func NewSlotView(s instructor.Slot, viewerID int, viewerCart map[string]struct{}) SlotView {
	mine := viewerID != 0 && s.OccupiedBy(viewerID)

	view := SlotView{
		Slot:            s,
		EffectiveStatus: EffectiveStatus(s, viewerID, viewerCart),
		Mine:            mine,
	}
	if !mine {
		view.StudentID = nil
		view.PaymentID = nil
		view.PickupLocation = nil
		view.DropoffLocation = nil
	}
	return view
}
