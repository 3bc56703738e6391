package instructor

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAnalytics(t *testing.T) (*AnalyticsRepo, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewAnalyticsRepo(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestStatsByDay(t *testing.T) {
	repo, mock, close := setupAnalytics(t)
	defer close()

	mock.ExpectQuery("FROM slots").
		WithArgs("2026-03-01", "2026-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"slot_date", "booked", "pending", "cancelled", "available"}).
			AddRow("2026-03-10", 4, 1, 0, 3).
			AddRow("2026-03-11", 2, 0, 1, 5))

	stats, err := repo.StatsByDay(context.Background(), "2026-03-01", "2026-03-31")

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2026-03-10", stats[0].Date)
	assert.Equal(t, 4, stats[0].Booked)
	assert.Equal(t, 5, stats[1].Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsByInstructor(t *testing.T) {
	repo, mock, close := setupAnalytics(t)
	defer close()

	mock.ExpectQuery("FROM instructors").
		WithArgs("2026-03-01", "2026-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"instructor_id", "instructor_name", "booked", "pending", "cancelled", "available"}).
			AddRow(3, "John", 6, 2, 1, 4))

	stats, err := repo.StatsByInstructor(context.Background(), "2026-03-01", "2026-03-31")

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "John", stats[0].InstructorName)
	assert.Equal(t, 6, stats[0].Booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
