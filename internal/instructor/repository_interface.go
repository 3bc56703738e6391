package instructor

import (
	"context"
	"time"
)

type Repository interface {
	CreateInstructor(ctx context.Context, name, email string) (*Instructor, error)
	GetInstructorByID(ctx context.Context, id int) (*Instructor, error)
	ListInstructors(ctx context.Context) ([]Instructor, error)

	CreateSlot(ctx context.Context, instructorID int, date, start, end string, classType ClassType) (*Slot, error)
	GetSlotByID(ctx context.Context, id int) (*Slot, error)
	GetSlotByKey(ctx context.Context, instructorID int, date, start, end string) (*Slot, error)
	ListSlotsByInstructor(ctx context.Context, instructorID int, fromDate string) ([]Slot, error)
	ListSlotsByStudentOnDate(ctx context.Context, studentID int, date string) ([]Slot, error)
	ListSlotsByIDs(ctx context.Context, ids []int) ([]Slot, error)

	Reserve(ctx context.Context, p ReserveParams) error
	ConfirmBooked(ctx context.Context, slotID, studentID int, paymentID string) error
	Release(ctx context.Context, slotID, studentID int) error
	AdminRelease(ctx context.Context, slotID int) error
	ReleaseExpired(ctx context.Context, before time.Time) ([]int, error)
}

type ReserveParams struct {
	SlotID          int
	StudentID       int
	ClassType       ClassType
	PaymentMethod   PaymentMethod
	PickupLocation  *string
	DropoffLocation *string
}
