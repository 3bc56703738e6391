package ticketclass

import (
	"context"
	"errors"

	"driveslot/internal/event"
)

var ErrBadClassType = errors.New("unknown class type")

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*TicketClass, error)
	RequestEnrollment(ctx context.Context, classID, studentID int) error
	ConfirmEnrollment(ctx context.Context, classID, studentID int) error
	DropStudent(ctx context.Context, classID, studentID int) error
	ListViews(ctx context.Context, instructorID, classID, viewerID int, classType string) ([]View, error)
}

type service struct {
	repo Repository
	bus  *event.Bus
}

func NewService(repo Repository, bus *event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*TicketClass, error) {
	classType, ok := NormalizeClassType(req.ClassType)
	if !ok {
		return nil, ErrBadClassType
	}

	tc, err := s.repo.Create(ctx, req, classType)
	if err != nil {
		return nil, err
	}

	s.publish(tc.ID)
	return tc, nil
}

func (s *service) RequestEnrollment(ctx context.Context, classID, studentID int) error {
	if err := s.repo.RequestEnrollment(ctx, classID, studentID); err != nil {
		return err
	}

	s.publish(classID)
	return nil
}

func (s *service) ConfirmEnrollment(ctx context.Context, classID, studentID int) error {
	if err := s.repo.ConfirmEnrollment(ctx, classID, studentID); err != nil {
		return err
	}

	s.publish(classID)
	return nil
}

func (s *service) DropStudent(ctx context.Context, classID, studentID int) error {
	if err := s.repo.DropStudent(ctx, classID, studentID); err != nil {
		return err
	}

	s.publish(classID)
	return nil
}

func (s *service) publish(classID int) {
	s.bus.Publish(event.ClassTopic(classID))
	s.bus.Publish(event.ClassesTopic())
}

// ListViews returns classes enriched with capacity and viewer-dependent
// fields. classID takes priority over instructorID when both are set.
// classType accepts the display form ("A.D.I") as well as the internal one.
func (s *service) ListViews(ctx context.Context, instructorID, classID, viewerID int, classType string) ([]View, error) {
	var filter ClassType
	if classType != "" {
		normalized, ok := NormalizeClassType(classType)
		if !ok {
			return nil, ErrBadClassType
		}
		filter = normalized
	}

	var classes []TicketClass
	if classID > 0 {
		tc, err := s.repo.GetByID(ctx, classID)
		if err != nil {
			return nil, err
		}
		classes = []TicketClass{*tc}
	} else {
		list, err := s.repo.ListByInstructor(ctx, instructorID, filter)
		if err != nil {
			return nil, err
		}
		classes = list
	}

	ids := make([]int, len(classes))
	for i, tc := range classes {
		ids[i] = tc.ID
	}

	enrollments, err := s.repo.ListEnrollments(ctx, ids)
	if err != nil {
		return nil, err
	}

	byClass := make(map[int][]Enrollment)
	for _, e := range enrollments {
		byClass[e.ClassID] = append(byClass[e.ClassID], e)
	}

	views := make([]View, 0, len(classes))
	for _, tc := range classes {
		view := View{TicketClass: tc, EnrolledStudents: []int{}}
		for _, e := range byClass[tc.ID] {
			switch e.Status {
			case EnrollmentEnrolled:
				view.EnrolledStudents = append(view.EnrolledStudents, e.StudentID)
				if e.StudentID == viewerID {
					view.UserIsEnrolled = true
				}
			case EnrollmentPending:
				if e.StudentID == viewerID {
					view.UserHasPendingRequest = true
				}
			}
		}
		view.AvailableSpots = tc.Capacity - len(view.EnrolledStudents)
		if view.AvailableSpots < 0 {
			view.AvailableSpots = 0
		}
		views = append(views, view)
	}

	return views, nil
}
