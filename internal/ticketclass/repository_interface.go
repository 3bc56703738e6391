package ticketclass

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateRequest, classType ClassType) (*TicketClass, error)
	GetByID(ctx context.Context, id int) (*TicketClass, error)
	ListByInstructor(ctx context.Context, instructorID int, classType ClassType) ([]TicketClass, error)
	ListEnrollments(ctx context.Context, classIDs []int) ([]Enrollment, error)

	RequestEnrollment(ctx context.Context, classID, studentID int) error
	ConfirmEnrollment(ctx context.Context, classID, studentID int) error
	DropStudent(ctx context.Context, classID, studentID int) error
}
