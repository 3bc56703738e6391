package ticketclass

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrClassNotFound    = errors.New("ticket class not found")
	ErrClassFull        = errors.New("ticket class is full")
	ErrAlreadyRequested = errors.New("student already requested this class")
	ErrNoRequest        = errors.New("student has no request for this class")
)

const classColumns = `id, instructor_id, title, class_type, class_date, start_time, end_time,
	capacity, price_cents, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateRequest, classType ClassType) (*TicketClass, error) {
	query := `
		INSERT INTO ticket_classes (instructor_id, title, class_type, class_date, start_time, end_time, capacity, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + classColumns

	var tc TicketClass
	err := r.db.GetContext(ctx, &tc, query,
		req.InstructorID, req.Title, classType, req.Date, req.Start, req.End, req.Capacity, req.PriceCents)
	if err != nil {
		return nil, err
	}

	return &tc, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*TicketClass, error) {
	query := `SELECT ` + classColumns + ` FROM ticket_classes WHERE id = $1`

	var tc TicketClass
	err := r.db.GetContext(ctx, &tc, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	return &tc, nil
}

func (r *repository) ListByInstructor(ctx context.Context, instructorID int, classType ClassType) ([]TicketClass, error) {
	query := `SELECT ` + classColumns + ` FROM ticket_classes WHERE instructor_id = $1`
	args := []interface{}{instructorID}

	if classType != "" {
		query += ` AND class_type = $2`
		args = append(args, classType)
	}
	query += ` ORDER BY class_date, start_time`

	classes := []TicketClass{}
	err := r.db.SelectContext(ctx, &classes, query, args...)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) ListEnrollments(ctx context.Context, classIDs []int) ([]Enrollment, error) {
	if len(classIDs) == 0 {
		return []Enrollment{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT class_id, student_id, status, created_at
		FROM ticket_class_students
		WHERE class_id IN (?)
		ORDER BY class_id, created_at
	`, classIDs)
	if err != nil {
		return nil, err
	}

	enrollments := []Enrollment{}
	err = r.db.SelectContext(ctx, &enrollments, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

// RequestEnrollment inserts a pending request only while enrolled students
// remain under capacity. The count runs inside the INSERT so two racing
// requests for the last spot cannot both land.
func (r *repository) RequestEnrollment(ctx context.Context, classID, studentID int) error {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM ticket_class_students WHERE class_id = $1 AND student_id = $2)`,
		classID, studentID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyRequested
	}

	var insertedID int
	err = r.db.GetContext(ctx, &insertedID, `
		INSERT INTO ticket_class_students (class_id, student_id, status)
		SELECT c.id, $2, 'pending'
		FROM ticket_classes c
		WHERE c.id = $1
		  AND (SELECT COUNT(*) FROM ticket_class_students s
		       WHERE s.class_id = c.id AND s.status = 'enrolled') < c.capacity
		ON CONFLICT (class_id, student_id) DO NOTHING
		RETURNING class_id
	`, classID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Zero rows means either the class is at capacity or it does
			// not exist at all. Tell them apart.
			var classExists bool
			if err := r.db.GetContext(ctx, &classExists,
				`SELECT EXISTS(SELECT 1 FROM ticket_classes WHERE id = $1)`, classID); err != nil {
				return err
			}
			if !classExists {
				return ErrClassNotFound
			}
			return ErrClassFull
		}
		return err
	}

	return nil
}

// ConfirmEnrollment flips pending -> enrolled. Repeating a confirmation for
// an already-enrolled student is a no-op success.
func (r *repository) ConfirmEnrollment(ctx context.Context, classID, studentID int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE ticket_class_students
		SET status = 'enrolled'
		WHERE class_id = $1 AND student_id = $2 AND status = 'pending'
	`, classID, studentID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 1 {
		return nil
	}

	var status EnrollmentStatus
	err = r.db.GetContext(ctx, &status,
		`SELECT status FROM ticket_class_students WHERE class_id = $1 AND student_id = $2`,
		classID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoRequest
		}
		return err
	}
	if status == EnrollmentEnrolled {
		return nil
	}

	return ErrNoRequest
}

func (r *repository) DropStudent(ctx context.Context, classID, studentID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM ticket_class_students WHERE class_id = $1 AND student_id = $2`,
		classID, studentID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNoRequest
	}

	return nil
}
