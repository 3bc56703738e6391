package reservation

import (
	"context"
	"testing"
	"time"

	"driveslot/internal/event"
	"driveslot/internal/instructor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockInstructorRepo struct{ mock.Mock }

func (m *MockInstructorRepo) CreateInstructor(ctx context.Context, name, email string) (*instructor.Instructor, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instructor.Instructor), args.Error(1)
}

func (m *MockInstructorRepo) GetInstructorByID(ctx context.Context, id int) (*instructor.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instructor.Instructor), args.Error(1)
}

func (m *MockInstructorRepo) ListInstructors(ctx context.Context) ([]instructor.Instructor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]instructor.Instructor), args.Error(1)
}

func (m *MockInstructorRepo) CreateSlot(ctx context.Context, instructorID int, date, start, end string, classType instructor.ClassType) (*instructor.Slot, error) {
	args := m.Called(ctx, instructorID, date, start, end, classType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instructor.Slot), args.Error(1)
}

func (m *MockInstructorRepo) GetSlotByID(ctx context.Context, id int) (*instructor.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instructor.Slot), args.Error(1)
}

func (m *MockInstructorRepo) GetSlotByKey(ctx context.Context, instructorID int, date, start, end string) (*instructor.Slot, error) {
	args := m.Called(ctx, instructorID, date, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instructor.Slot), args.Error(1)
}

func (m *MockInstructorRepo) ListSlotsByInstructor(ctx context.Context, instructorID int, fromDate string) ([]instructor.Slot, error) {
	args := m.Called(ctx, instructorID, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]instructor.Slot), args.Error(1)
}

func (m *MockInstructorRepo) ListSlotsByStudentOnDate(ctx context.Context, studentID int, date string) ([]instructor.Slot, error) {
	args := m.Called(ctx, studentID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]instructor.Slot), args.Error(1)
}

func (m *MockInstructorRepo) ListSlotsByIDs(ctx context.Context, ids []int) ([]instructor.Slot, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]instructor.Slot), args.Error(1)
}

func (m *MockInstructorRepo) Reserve(ctx context.Context, p instructor.ReserveParams) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockInstructorRepo) ConfirmBooked(ctx context.Context, slotID, studentID int, paymentID string) error {
	return m.Called(ctx, slotID, studentID, paymentID).Error(0)
}

func (m *MockInstructorRepo) Release(ctx context.Context, slotID, studentID int) error {
	return m.Called(ctx, slotID, studentID).Error(0)
}

func (m *MockInstructorRepo) AdminRelease(ctx context.Context, slotID int) error {
	return m.Called(ctx, slotID).Error(0)
}

func (m *MockInstructorRepo) ReleaseExpired(ctx context.Context, before time.Time) ([]int, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func testSlot(id, instructorID int, status instructor.SlotStatus) *instructor.Slot {
	return &instructor.Slot{
		ID:           id,
		InstructorID: instructorID,
		SlotDate:     "2025-03-10",
		StartTime:    "09:00",
		EndTime:      "09:30",
		Status:       status,
		ClassType:    instructor.ClassDrivingLesson,
	}
}

func newTestService(repo instructor.Repository) Service {
	return NewService(repo, nil, event.NewBus())
}

func TestReserveHappyPath(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	available := testSlot(10, 3, instructor.StatusAvailable)
	student := 1
	pending := testSlot(10, 3, instructor.StatusPending)
	pending.StudentID = &student
	pending.PaymentMethod = "online"

	repo.On("GetSlotByKey", ctx, 3, "2025-03-10", "09:00", "09:30").Return(available, nil)
	repo.On("ListSlotsByStudentOnDate", ctx, 1, "2025-03-10").Return([]instructor.Slot{}, nil)
	repo.On("Reserve", ctx, mock.MatchedBy(func(p instructor.ReserveParams) bool {
		return p.SlotID == 10 && p.StudentID == 1 && p.PaymentMethod == instructor.PayOnline
	})).Return(nil)
	repo.On("GetSlotByID", ctx, 10).Return(pending, nil)

	slot, err := svc.Reserve(ctx, 1, ReserveRequest{
		InstructorID:  3,
		Date:          "2025-03-10",
		Start:         "09:00",
		End:           "09:30",
		ClassType:     "driving_lesson",
		PaymentMethod: "online",
	})

	assert.NoError(t, err)
	assert.Equal(t, instructor.StatusPending, slot.Status)
	assert.Equal(t, 1, *slot.StudentID)
	repo.AssertExpectations(t)
}

func TestReserveLosesRaceToConcurrentCaller(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	// the pre-check read saw the slot available, but the conditional write
	// finds it taken: exactly one of two concurrent callers wins
	available := testSlot(10, 3, instructor.StatusAvailable)

	repo.On("GetSlotByID", ctx, 10).Return(available, nil)
	repo.On("ListSlotsByStudentOnDate", ctx, 2, "2025-03-10").Return([]instructor.Slot{}, nil)
	repo.On("Reserve", ctx, mock.Anything).Return(instructor.ErrSlotUnavailable)

	_, err := svc.Reserve(ctx, 2, ReserveRequest{
		SlotID:        10,
		InstructorID:  3,
		ClassType:     "driving_lesson",
		PaymentMethod: "online",
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestReserveRejectsOverlap(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	available := testSlot(10, 3, instructor.StatusAvailable)
	student := 1
	existing := *testSlot(11, 3, instructor.StatusPending)
	existing.StartTime = "09:15"
	existing.EndTime = "09:45"
	existing.StudentID = &student

	repo.On("GetSlotByID", ctx, 10).Return(available, nil)
	repo.On("ListSlotsByStudentOnDate", ctx, 1, "2025-03-10").Return([]instructor.Slot{existing}, nil)

	_, err := svc.Reserve(ctx, 1, ReserveRequest{
		SlotID:        10,
		InstructorID:  3,
		ClassType:     "driving_lesson",
		PaymentMethod: "online",
	})

	assert.ErrorIs(t, err, ErrOverlap)
	repo.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestReserveRejectsPickupForNonLesson(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	slot := testSlot(10, 3, instructor.StatusAvailable)
	slot.ClassType = instructor.ClassDrivingTest
	repo.On("GetSlotByID", ctx, 10).Return(slot, nil)

	pickup := "main street"
	_, err := svc.Reserve(ctx, 1, ReserveRequest{
		SlotID:         10,
		InstructorID:   3,
		ClassType:      "driving_test",
		PaymentMethod:  "online",
		PickupLocation: &pickup,
	})

	assert.ErrorIs(t, err, ErrLessonFieldsOnly)
}

func TestConfirmSlotsTransitionsPendingToBooked(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	student := 1
	pending := *testSlot(10, 3, instructor.StatusPending)
	pending.StudentID = &student
	pending.PaymentMethod = "online"

	repo.On("ListSlotsByIDs", ctx, []int{10}).Return([]instructor.Slot{pending}, nil)
	repo.On("ConfirmBooked", ctx, 10, 1, "pay_abc").Return(nil)

	err := svc.ConfirmSlots(ctx, []int{10}, "pay_abc")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestConfirmSlotsIsIdempotent(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	// already booked with the same payment id: repeated confirmation is a no-op
	student := 1
	paymentID := "pay_abc"
	booked := *testSlot(10, 3, instructor.StatusBooked)
	booked.StudentID = &student
	booked.Paid = true
	booked.PaymentID = &paymentID

	repo.On("ListSlotsByIDs", ctx, []int{10}).Return([]instructor.Slot{booked}, nil)

	err := svc.ConfirmSlots(ctx, []int{10}, "pay_abc")
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "ConfirmBooked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmSlotsRejectsAvailableSlot(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("ListSlotsByIDs", ctx, []int{10}).Return([]instructor.Slot{*testSlot(10, 3, instructor.StatusAvailable)}, nil)

	err := svc.ConfirmSlots(ctx, []int{10}, "pay_abc")
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestReleaseSlotsRevertsPendingOnPaymentFailure(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	student := 1
	pending := *testSlot(10, 3, instructor.StatusPending)
	pending.StudentID = &student

	repo.On("ListSlotsByIDs", ctx, []int{10}).Return([]instructor.Slot{pending}, nil)
	repo.On("Release", ctx, 10, 1).Return(nil)

	err := svc.ReleaseSlots(ctx, []int{10})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReleaseSlotsSkipsAlreadyReleased(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	// sweeper or explicit cancel got there first
	repo.On("ListSlotsByIDs", ctx, []int{10}).Return([]instructor.Slot{*testSlot(10, 3, instructor.StatusAvailable)}, nil)

	err := svc.ReleaseSlots(ctx, []int{10})
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelRequiresOccupant(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	student := 1
	pending := testSlot(10, 3, instructor.StatusPending)
	pending.StudentID = &student

	repo.On("GetSlotByID", ctx, 10).Return(pending, nil)
	repo.On("Release", ctx, 10, 2).Return(instructor.ErrSlotNotPending)

	err := svc.Cancel(ctx, 2, 10)
	assert.ErrorIs(t, err, ErrNotOccupant)
}

func TestUpdateStatusBatchRoutesByStatus(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	err := svc.UpdateStatusBatch(ctx, UpdateStatusRequest{
		SlotIDs:      []int{10},
		InstructorID: 3,
		Status:       "cancelled",
	})
	assert.ErrorIs(t, err, ErrBadTransition)

	student := 1
	pending := *testSlot(10, 3, instructor.StatusPending)
	pending.StudentID = &student

	repo.On("ListSlotsByIDs", ctx, []int{10}).Return([]instructor.Slot{pending}, nil)
	repo.On("ConfirmBooked", ctx, 10, 1, "pay_1").Return(nil)

	err = svc.UpdateStatusBatch(ctx, UpdateStatusRequest{
		SlotIDs:      []int{10},
		InstructorID: 3,
		Status:       "booked",
		Paid:         true,
		PaymentID:    "pay_1",
	})
	assert.NoError(t, err)
}

func TestSweeperReleasesExpiredAndNotifies(t *testing.T) {
	repo := new(MockInstructorRepo)
	bus := event.NewBus()
	sweeper := NewSweeper(repo, bus, 30*time.Minute, time.Minute)

	sub := bus.Subscribe(event.SlotsTopic(3))

	repo.On("ReleaseExpired", mock.Anything, mock.AnythingOfType("time.Time")).Return([]int{3, 3}, nil)

	n := sweeper.SweepOnce(context.Background())
	assert.Equal(t, 2, n)

	select {
	case <-sub:
	case <-time.After(time.Second):
		t.Fatal("expected a slots signal after sweep")
	}
}
