package instructor

import (
	"fmt"
	"regexp"
	"time"
)

type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusPending   SlotStatus = "pending"
	StatusBooked    SlotStatus = "booked"
	StatusCancelled SlotStatus = "cancelled"
)

type ClassType string

const (
	ClassDrivingLesson ClassType = "driving_lesson"
	ClassDrivingTest   ClassType = "driving_test"
	ClassTicket        ClassType = "ticket_class"
)

type PaymentMethod string

const (
	PayOnline   PaymentMethod = "online"
	PayPhysical PaymentMethod = "physical"
)

type Instructor struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Slot is one reservable interval on an instructor's calendar. Dates and
// times of day are stored as strings ("2006-01-02", "15:04") and validated
// at the API boundary; the date-start-end triple is the client-facing key.
type Slot struct {
	ID              int        `db:"id" json:"id"`
	InstructorID    int        `db:"instructor_id" json:"instructor_id"`
	SlotDate        string     `db:"slot_date" json:"date"`
	StartTime       string     `db:"start_time" json:"start"`
	EndTime         string     `db:"end_time" json:"end"`
	Status          SlotStatus `db:"status" json:"status"`
	StudentID       *int       `db:"student_id" json:"student_id,omitempty"`
	ClassType       ClassType  `db:"class_type" json:"class_type"`
	Paid            bool       `db:"paid" json:"paid"`
	PaymentMethod   string     `db:"payment_method" json:"payment_method,omitempty"`
	PaymentID       *string    `db:"payment_id" json:"payment_id,omitempty"`
	PickupLocation  *string    `db:"pickup_location" json:"pickup_location,omitempty"`
	DropoffLocation *string    `db:"dropoff_location" json:"dropoff_location,omitempty"`
	ReservedAt      *time.Time `db:"reserved_at" json:"reserved_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Key returns the client-facing slot identifier.
func (s Slot) Key() string {
	return SlotKey(s.SlotDate, s.StartTime, s.EndTime)
}

func SlotKey(date, start, end string) string {
	return fmt.Sprintf("%s-%s-%s", date, start, end)
}

// ParseSlotKey splits a "2006-01-02-15:04-15:04" key back into its parts.
func ParseSlotKey(key string) (date, start, end string, err error) {
	if len(key) != 22 || key[10] != '-' || key[16] != '-' {
		return "", "", "", fmt.Errorf("malformed slot key %q", key)
	}
	date, start, end = key[:10], key[11:16], key[17:]
	if !ValidDate(date) || !ValidTimeOfDay(start) || !ValidTimeOfDay(end) {
		return "", "", "", fmt.Errorf("malformed slot key %q", key)
	}
	return date, start, end, nil
}

// OccupiedBy reports whether the slot is held by the given student in a
// non-cancelled state.
func (s Slot) OccupiedBy(studentID int) bool {
	return s.StudentID != nil && *s.StudentID == studentID &&
		(s.Status == StatusPending || s.Status == StatusBooked)
}

// Overlaps reports whether two time-of-day ranges intersect. "15:04" strings
// compare correctly byte-wise.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func ValidTimeOfDay(s string) bool {
	if !timeRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func ValidClassType(s string) bool {
	switch ClassType(s) {
	case ClassDrivingLesson, ClassDrivingTest, ClassTicket:
		return true
	}
	return false
}

func ValidPaymentMethod(s string) bool {
	switch PaymentMethod(s) {
	case PayOnline, PayPhysical:
		return true
	}
	return false
}

type CreateInstructorRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
	ClassType string `json:"class_type" binding:"required"`
}
