package instructor

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotUnavailable = errors.New("slot is not available")
	ErrSlotNotPending  = errors.New("slot is not pending for this student")
	ErrSlotNotBooked   = errors.New("slot is not booked")
	ErrDuplicateSlot   = errors.New("slot already exists for this time")
)

const slotColumns = `id, instructor_id, slot_date, start_time, end_time, status, student_id,
	class_type, paid, payment_method, payment_id, pickup_location, dropoff_location,
	reserved_at, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateInstructor(ctx context.Context, name, email string) (*Instructor, error) {
	query := `
		INSERT INTO instructors (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, created_at
	`

	var inst Instructor
	err := r.db.GetContext(ctx, &inst, query, name, email)
	if err != nil {
		return nil, err
	}

	return &inst, nil
}

func (r *repository) GetInstructorByID(ctx context.Context, id int) (*Instructor, error) {
	query := `
		SELECT id, name, email, created_at
		FROM instructors
		WHERE id = $1
	`

	var inst Instructor
	err := r.db.GetContext(ctx, &inst, query, id)
	if err != nil {
		return nil, err
	}

	return &inst, nil
}

func (r *repository) ListInstructors(ctx context.Context) ([]Instructor, error) {
	query := `
		SELECT id, name, email, created_at
		FROM instructors
		ORDER BY name ASC
	`

	var instructors []Instructor
	err := r.db.SelectContext(ctx, &instructors, query)
	if err != nil {
		return nil, err
	}

	return instructors, nil
}

func (r *repository) CreateSlot(ctx context.Context, instructorID int, date, start, end string, classType ClassType) (*Slot, error) {
	query := `
		INSERT INTO slots (instructor_id, slot_date, start_time, end_time, status, class_type)
		VALUES ($1, $2, $3, $4, 'available', $5)
		ON CONFLICT (instructor_id, slot_date, start_time, end_time) DO NOTHING
		RETURNING ` + slotColumns

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, instructorID, date, start, end, classType)
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row for duplicates.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetSlotByID(ctx context.Context, id int) (*Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, id)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetSlotByKey(ctx context.Context, instructorID int, date, start, end string) (*Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE instructor_id = $1 AND slot_date = $2 AND start_time = $3 AND end_time = $4
	`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, instructorID, date, start, end)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) ListSlotsByInstructor(ctx context.Context, instructorID int, fromDate string) ([]Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE instructor_id = $1
	`
	args := []interface{}{instructorID}

	if fromDate != "" {
		query += " AND slot_date >= $2"
		args = append(args, fromDate)
	}

	query += " ORDER BY slot_date ASC, start_time ASC"

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, args...)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) ListSlotsByStudentOnDate(ctx context.Context, studentID int, date string) ([]Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE student_id = $1 AND slot_date = $2 AND status IN ('pending', 'booked')
		ORDER BY start_time ASC
	`

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, studentID, date)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) ListSlotsByIDs(ctx context.Context, ids []int) ([]Slot, error) {
	if len(ids) == 0 {
		return []Slot{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+slotColumns+` FROM slots WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var slots []Slot
	err = r.db.SelectContext(ctx, &slots, query, args...)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

// Reserve transitions available -> pending. The status predicate in the
// UPDATE is the only double-booking guard; callers must not pre-check and
// assume the answer still holds.
func (r *repository) Reserve(ctx context.Context, p ReserveParams) error {
	query := `
		UPDATE slots
		SET status = 'pending',
		    student_id = $2,
		    class_type = $3,
		    payment_method = $4,
		    pickup_location = $5,
		    dropoff_location = $6,
		    reserved_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1 AND status = 'available'
	`

	result, err := r.db.ExecContext(ctx, query,
		p.SlotID, p.StudentID, p.ClassType, p.PaymentMethod, p.PickupLocation, p.DropoffLocation)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSlotUnavailable
	}

	return nil
}

// ConfirmBooked transitions pending -> booked for the occupying student.
func (r *repository) ConfirmBooked(ctx context.Context, slotID, studentID int, paymentID string) error {
	query := `
		UPDATE slots
		SET status = 'booked',
		    paid = TRUE,
		    payment_id = $3,
		    updated_at = NOW()
		WHERE id = $1 AND student_id = $2 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, slotID, studentID, paymentID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSlotNotPending
	}

	return nil
}

// Release reverts pending -> available and clears occupant and payment fields.
func (r *repository) Release(ctx context.Context, slotID, studentID int) error {
	query := `
		UPDATE slots
		SET status = 'available',
		    student_id = NULL,
		    paid = FALSE,
		    payment_method = '',
		    payment_id = NULL,
		    pickup_location = NULL,
		    dropoff_location = NULL,
		    reserved_at = NULL,
		    updated_at = NOW()
		WHERE id = $1 AND student_id = $2 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, slotID, studentID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSlotNotPending
	}

	return nil
}

// AdminRelease reverts a booked slot to available. Administrative override
// only; normal cancellation never touches booked slots.
func (r *repository) AdminRelease(ctx context.Context, slotID int) error {
	query := `
		UPDATE slots
		SET status = 'available',
		    student_id = NULL,
		    paid = FALSE,
		    payment_method = '',
		    payment_id = NULL,
		    pickup_location = NULL,
		    dropoff_location = NULL,
		    reserved_at = NULL,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'booked'
	`

	result, err := r.db.ExecContext(ctx, query, slotID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSlotNotBooked
	}

	return nil
}

// ReleaseExpired reverts online-payment pendings reserved before the cutoff.
// Physical-payment pendings are exempt: the student pays at the location, so
// there is no cart to abandon. Returns the affected instructor ids so the
// caller can notify their subscribers.
func (r *repository) ReleaseExpired(ctx context.Context, before time.Time) ([]int, error) {
	query := `
		UPDATE slots
		SET status = 'available',
		    student_id = NULL,
		    paid = FALSE,
		    payment_method = '',
		    payment_id = NULL,
		    pickup_location = NULL,
		    dropoff_location = NULL,
		    reserved_at = NULL,
		    updated_at = NOW()
		WHERE status = 'pending'
		  AND payment_method = 'online'
		  AND reserved_at < $1
		RETURNING instructor_id
	`

	var instructorIDs []int
	err := r.db.SelectContext(ctx, &instructorIDs, query, before)
	if err != nil {
		return nil, err
	}

	return instructorIDs, nil
}
