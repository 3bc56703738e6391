package instructor

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SlotStatsByDay struct {
	Date      string `db:"slot_date" json:"date"`
	Booked    int    `db:"booked" json:"booked"`
	Pending   int    `db:"pending" json:"pending"`
	Cancelled int    `db:"cancelled" json:"cancelled"`
	Available int    `db:"available" json:"available"`
}

type SlotStatsByInstructor struct {
	InstructorID   int    `db:"instructor_id" json:"instructor_id"`
	InstructorName string `db:"instructor_name" json:"instructor_name"`
	Booked         int    `db:"booked" json:"booked"`
	Pending        int    `db:"pending" json:"pending"`
	Cancelled      int    `db:"cancelled" json:"cancelled"`
	Available      int    `db:"available" json:"available"`
}

// AnalyticsRepo serves the admin reporting queries. Kept off the main
// Repository interface: read-only aggregates, no transition logic.
type AnalyticsRepo struct {
	db *sqlx.DB
}

func NewAnalyticsRepo(db *sqlx.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// StatsByDay buckets slot counts by calendar date. Dates are the stored
// YYYY-MM-DD strings, so the range comparison is lexicographic.
func (r *AnalyticsRepo) StatsByDay(ctx context.Context, from, to string) ([]SlotStatsByDay, error) {
	query := `
SELECT
  slot_date,
  COUNT(*) FILTER (WHERE status = 'booked')    AS booked,
  COUNT(*) FILTER (WHERE status = 'pending')   AS pending,
  COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
  COUNT(*) FILTER (WHERE status = 'available') AS available
FROM slots
WHERE slot_date BETWEEN $1 AND $2
GROUP BY slot_date
ORDER BY slot_date`

	stats := []SlotStatsByDay{}
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *AnalyticsRepo) StatsByInstructor(ctx context.Context, from, to string) ([]SlotStatsByInstructor, error) {
	query := `
SELECT
  i.id   AS instructor_id,
  i.name AS instructor_name,
  COUNT(s.id) FILTER (WHERE s.status = 'booked')    AS booked,
  COUNT(s.id) FILTER (WHERE s.status = 'pending')   AS pending,
  COUNT(s.id) FILTER (WHERE s.status = 'cancelled') AS cancelled,
  COUNT(s.id) FILTER (WHERE s.status = 'available') AS available
FROM instructors i
LEFT JOIN slots s ON s.instructor_id = i.id AND s.slot_date BETWEEN $1 AND $2
GROUP BY i.id, i.name
ORDER BY i.id`

	stats := []SlotStatsByInstructor{}
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}
