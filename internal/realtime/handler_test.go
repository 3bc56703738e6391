package realtime

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driveslot/internal/cart"
	"driveslot/internal/event"
	"driveslot/internal/instructor"
	"driveslot/internal/reservation"
	"driveslot/internal/ticketclass"
)

type stubSlots struct {
	mu    sync.Mutex
	calls int
	fn    func(call int) ([]reservation.SlotView, error)
}

func (s *stubSlots) ListForViewer(ctx context.Context, instructorID, viewerID int, fromDate, classType string) ([]reservation.SlotView, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()
	return s.fn(call)
}

type stubClasses struct {
	fn func() ([]ticketclass.View, error)
}

func (s *stubClasses) ListViews(ctx context.Context, instructorID, classID, viewerID int, classType string) ([]ticketclass.View, error) {
	return s.fn()
}

type stubCarts struct {
	fn func() (*cart.Cart, error)
}

func (s *stubCarts) Get(ctx context.Context, userID int) (*cart.Cart, error) {
	return s.fn()
}

func sampleViews() []reservation.SlotView {
	return []reservation.SlotView{
		{
			Slot: instructor.Slot{
				ID: 1, InstructorID: 3, SlotDate: "2026-03-14",
				StartTime: "10:00", EndTime: "11:30",
				Status: instructor.StatusAvailable, ClassType: instructor.ClassDrivingLesson,
			},
			EffectiveStatus: reservation.ViewAvailable,
		},
	}
}

func newStreamContext(t *testing.T, target string, ctx context.Context) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	return c, w
}

func TestStreamSlotsRejectsBadInstructorID(t *testing.T) {
	h := NewHandler(event.NewBus(), &stubSlots{fn: func(int) ([]reservation.SlotView, error) { return nil, nil }}, nil, nil)

	c, w := newStreamContext(t, "/streams/slots?instructorId=abc", context.Background())
	h.StreamSlots(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamSlotsSetupFailureIs500(t *testing.T) {
	slots := &stubSlots{fn: func(int) ([]reservation.SlotView, error) { return nil, errors.New("db down") }}
	h := NewHandler(event.NewBus(), slots, nil, nil)

	c, w := newStreamContext(t, "/streams/slots?instructorId=3", context.Background())
	h.StreamSlots(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "data:")
}

func TestStreamSlotsInitialSnapshot(t *testing.T) {
	slots := &stubSlots{fn: func(int) ([]reservation.SlotView, error) { return sampleViews(), nil }}
	h := NewHandler(event.NewBus(), slots, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // one initial event, then the loop exits immediately

	c, w := newStreamContext(t, "/streams/slots?instructorId=3&userId=7", ctx)
	h.StreamSlots(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "data: "))
	assert.Contains(t, body, `"type":"initial"`)
	assert.Contains(t, body, `"effective_status":"available"`)
	assert.True(t, strings.HasSuffix(body, "\n\n"))
}

func TestStreamSlotsPushesUpdateOnPublish(t *testing.T) {
	bus := event.NewBus()
	slots := &stubSlots{fn: func(int) ([]reservation.SlotView, error) { return sampleViews(), nil }}
	h := NewHandler(bus, slots, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	c, w := newStreamContext(t, "/streams/slots?instructorId=3", ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.StreamSlots(c)
	}()

	// wait for the subscription before publishing
	require.Eventually(t, func() bool {
		return bus.Subscribers(event.SlotsTopic(3)) == 1
	}, time.Second, 5*time.Millisecond)

	bus.Publish(event.SlotsTopic(3))

	require.Eventually(t, func() bool {
		slots.mu.Lock()
		defer slots.mu.Unlock()
		return slots.calls >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	body := w.Body.String()
	assert.Contains(t, body, `"type":"initial"`)
	assert.Contains(t, body, `"type":"update"`)
}

func TestStreamSlotsTransientErrorKeepsConnection(t *testing.T) {
	bus := event.NewBus()
	slots := &stubSlots{fn: func(call int) ([]reservation.SlotView, error) {
		if call == 2 {
			return nil, errors.New("query timeout")
		}
		return sampleViews(), nil
	}}
	h := NewHandler(bus, slots, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	c, w := newStreamContext(t, "/streams/slots?instructorId=3", ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.StreamSlots(c)
	}()

	require.Eventually(t, func() bool {
		return bus.Subscribers(event.SlotsTopic(3)) == 1
	}, time.Second, 5*time.Millisecond)

	// second snapshot fails, third succeeds; the stream survives the failure
	bus.Publish(event.SlotsTopic(3))
	require.Eventually(t, func() bool {
		slots.mu.Lock()
		defer slots.mu.Unlock()
		return slots.calls >= 2
	}, time.Second, 5*time.Millisecond)

	bus.Publish(event.SlotsTopic(3))
	require.Eventually(t, func() bool {
		slots.mu.Lock()
		defer slots.mu.Unlock()
		return slots.calls >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	body := w.Body.String()
	assert.Contains(t, body, `"type":"error"`)
	assert.Contains(t, body, `"type":"update"`)
}

func TestStreamTicketClassesRequiresInstructorOrClass(t *testing.T) {
	h := NewHandler(event.NewBus(), nil, &stubClasses{fn: func() ([]ticketclass.View, error) { return nil, nil }}, nil)

	c, w := newStreamContext(t, "/streams/ticket-classes", context.Background())
	h.StreamTicketClasses(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamTicketClassesInitial(t *testing.T) {
	classes := &stubClasses{fn: func() ([]ticketclass.View, error) {
		return []ticketclass.View{
			{
				TicketClass:    ticketclass.TicketClass{ID: 5, InstructorID: 3, ClassType: ticketclass.ClassADI, Capacity: 10},
				AvailableSpots: 8,
			},
		}, nil
	}}
	h := NewHandler(event.NewBus(), nil, classes, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, w := newStreamContext(t, "/streams/ticket-classes?classId=5", ctx)
	h.StreamTicketClasses(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"ticketClasses"`)
	assert.Contains(t, body, `"available_spots":8`)
}

func TestStreamTicketClassesRejectsBadType(t *testing.T) {
	h := NewHandler(event.NewBus(), nil, &stubClasses{fn: func() ([]ticketclass.View, error) { return nil, nil }}, nil)

	c, w := newStreamContext(t, "/streams/ticket-classes?instructorId=3&type=zumba", context.Background())
	h.StreamTicketClasses(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamCartRequiresAuth(t *testing.T) {
	h := NewHandler(event.NewBus(), nil, nil, &stubCarts{fn: func() (*cart.Cart, error) { return nil, nil }})

	c, w := newStreamContext(t, "/streams/cart", context.Background())
	h.StreamCart(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStreamCartInitial(t *testing.T) {
	carts := &stubCarts{fn: func() (*cart.Cart, error) {
		return &cart.Cart{ID: 1, UserID: 7, Items: []cart.Item{}}, nil
	}}
	h := NewHandler(event.NewBus(), nil, nil, carts)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, w := newStreamContext(t, "/streams/cart", ctx)
	c.Set("user_id", 7)
	h.StreamCart(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"type":"initial"`)
	assert.Contains(t, body, `"cart"`)
}
