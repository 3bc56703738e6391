package ticketclass

import (
	"strings"
	"time"
)

// ClassType is the internal form; clients display and sometimes send the
// dotted form ("A.D.I").
type ClassType string

const (
	ClassADI  ClassType = "adi"
	ClassBDI  ClassType = "bdi"
	ClassDATE ClassType = "date"
)

// NormalizeClassType maps a display form like "A.D.I" onto the internal
// form. Already-internal values pass through unchanged.
func NormalizeClassType(s string) (ClassType, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(s, ".", ""))
	switch ClassType(normalized) {
	case ClassADI, ClassBDI, ClassDATE:
		return ClassType(normalized), true
	}
	return "", false
}

func (t ClassType) Display() string {
	switch t {
	case ClassADI:
		return "A.D.I"
	case ClassBDI:
		return "B.D.I"
	case ClassDATE:
		return "D.A.T.E"
	}
	return string(t)
}

type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "pending"
	EnrollmentEnrolled EnrollmentStatus = "enrolled"
)

// TicketClass is a scheduled group class with a fixed capacity, as opposed
// to a one-on-one lesson slot.
type TicketClass struct {
	ID           int       `db:"id" json:"id"`
	InstructorID int       `db:"instructor_id" json:"instructor_id"`
	Title        string    `db:"title" json:"title"`
	ClassType    ClassType `db:"class_type" json:"class_type"`
	ClassDate    string    `db:"class_date" json:"date"`
	StartTime    string    `db:"start_time" json:"start"`
	EndTime      string    `db:"end_time" json:"end"`
	Capacity     int       `db:"capacity" json:"capacity"`
	PriceCents   int64     `db:"price_cents" json:"price_cents"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Enrollment struct {
	ClassID   int              `db:"class_id" json:"class_id"`
	StudentID int              `db:"student_id" json:"student_id"`
	Status    EnrollmentStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

// View is a class enriched with the viewer-dependent computed fields the
// live streams push.
type View struct {
	TicketClass
	AvailableSpots        int   `json:"available_spots"`
	EnrolledStudents      []int `json:"enrolled_students"`
	UserHasPendingRequest bool  `json:"user_has_pending_request"`
	UserIsEnrolled        bool  `json:"user_is_enrolled"`
}

type CreateRequest struct {
	InstructorID int    `json:"instructor_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	ClassType    string `json:"class_type" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Start        string `json:"start" binding:"required"`
	End          string `json:"end" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,gt=0"`
	PriceCents   int64  `json:"price_cents" binding:"gte=0"`
}
