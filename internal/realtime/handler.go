package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"driveslot/internal/api"
	"driveslot/internal/auth"
	"driveslot/internal/cart"
	"driveslot/internal/event"
	"driveslot/internal/instructor"
	"driveslot/internal/logger"
	"driveslot/internal/metrics"
	"driveslot/internal/reservation"
	"driveslot/internal/ticketclass"
)

// SlotSource recomputes the viewer-relative slot snapshot a stream pushes.
type SlotSource interface {
	ListForViewer(ctx context.Context, instructorID, viewerID int, fromDate, classType string) ([]reservation.SlotView, error)
}

type ClassSource interface {
	ListViews(ctx context.Context, instructorID, classID, viewerID int, classType string) ([]ticketclass.View, error)
}

type CartSource interface {
	Get(ctx context.Context, userID int) (*cart.Cart, error)
}

type Handler struct {
	bus     *event.Bus
	slots   SlotSource
	classes ClassSource
	carts   CartSource
}

func NewHandler(bus *event.Bus, slots SlotSource, classes ClassSource, carts CartSource) *Handler {
	return &Handler{bus: bus, slots: slots, classes: classes, carts: carts}
}

type slotsEvent struct {
	Type    string                 `json:"type"`
	Slots   []reservation.SlotView `json:"slots,omitempty"`
	Message string                 `json:"message,omitempty"`
}

type classesEvent struct {
	Type          string             `json:"type"`
	TicketClasses []ticketclass.View `json:"ticketClasses,omitempty"`
	Message       string             `json:"message,omitempty"`
}

type cartEvent struct {
	Type    string     `json:"type"`
	Cart    *cart.Cart `json:"cart,omitempty"`
	Message string     `json:"message,omitempty"`
}

// stream wraps the response writer with a closed flag. Once a write fails
// the client is gone; every later send becomes a silent no-op instead of an
// error that could tear down the handler mid-loop.
type stream struct {
	w      gin.ResponseWriter
	name   string
	closed bool
}

func (s *stream) send(eventType string, payload interface{}) bool {
	if s.closed {
		return false
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal stream event", "stream", s.name, "error", err)
		return false
	}

	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		s.closed = true
		return false
	}
	s.w.Flush()

	metrics.RecordSSEEvent(s.name, eventType)
	return true
}

func sseHeaders(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
}

// viewerID prefers the authenticated user and falls back to the userId
// query parameter, which anonymous calendar views pass explicitly.
func viewerID(c *gin.Context) int {
	if id, ok := auth.GetUserID(c); ok {
		return id
	}
	id, _ := strconv.Atoi(c.Query("userId"))
	return id
}

// StreamSlots godoc
// @Summary      Slot availability stream
// @Description  Pushes the full viewer-relative slot snapshot as SSE: an initial event on open, an update event after every mutation.
// @Tags         streams
// @Produce      text/event-stream
// @Param        instructorId  query  int     true   "Instructor ID"
// @Param        type          query  string  false  "Class type filter"
// @Param        from          query  string  false  "Earliest date (2006-01-02)"
// @Param        userId        query  int     false  "Viewer for effective-status computation"
// @Success      200  {string}  string  "event stream"
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /streams/slots [get]
func (h *Handler) StreamSlots(c *gin.Context) {
	instructorID, err := strconv.Atoi(c.Query("instructorId"))
	if err != nil || instructorID <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid instructor ID"})
		return
	}

	classType := c.Query("type")
	if classType != "" && !instructor.ValidClassType(classType) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class type"})
		return
	}

	viewer := viewerID(c)
	fromDate := c.Query("from")
	ctx := c.Request.Context()

	snapshot := func() ([]reservation.SlotView, error) {
		return h.slots.ListForViewer(ctx, instructorID, viewer, fromDate, classType)
	}

	// Setup failure is terminal: no stream is opened, the client gets a
	// plain 500 and retries from scratch.
	initial, err := snapshot()
	if err != nil {
		logger.Error("slot stream setup failed", "instructor_id", instructorID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load slots"})
		return
	}

	topic := event.SlotsTopic(instructorID)
	ch := h.bus.Subscribe(topic)
	defer h.bus.Unsubscribe(topic, ch)

	metrics.SSESubscribers.WithLabelValues("slots").Inc()
	defer metrics.SSESubscribers.WithLabelValues("slots").Dec()

	sseHeaders(c)
	st := &stream{w: c.Writer, name: "slots"}
	if !st.send("initial", slotsEvent{Type: "initial", Slots: initial}) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			views, err := snapshot()
			if err != nil {
				// transient: report and stay subscribed, the next
				// mutation retries the recompute
				logger.Error("slot snapshot recompute failed", "instructor_id", instructorID, "error", err)
				st.send("error", slotsEvent{Type: "error", Message: "Failed to refresh slots"})
				continue
			}
			if !st.send("update", slotsEvent{Type: "update", Slots: views}) {
				return
			}
		}
	}
}

// StreamTicketClasses godoc
// @Summary      Ticket class stream
// @Description  Pushes ticket classes with capacity and viewer-dependent fields as SSE full snapshots.
// @Tags         streams
// @Produce      text/event-stream
// @Param        instructorId  query  int     false  "Instructor ID (required unless classId given)"
// @Param        classId       query  int     false  "Single class filter, takes priority"
// @Param        type          query  string  false  "Class type filter (adi, bdi, date, or display form)"
// @Param        userId        query  int     false  "Viewer for enrollment flags"
// @Success      200  {string}  string  "event stream"
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /streams/ticket-classes [get]
func (h *Handler) StreamTicketClasses(c *gin.Context) {
	classID, _ := strconv.Atoi(c.Query("classId"))

	var instructorID int
	if classID <= 0 {
		var err error
		instructorID, err = strconv.Atoi(c.Query("instructorId"))
		if err != nil || instructorID <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid instructor ID"})
			return
		}
	}

	classType := c.Query("type")
	if classType != "" {
		if _, ok := ticketclass.NormalizeClassType(classType); !ok {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class type"})
			return
		}
	}

	viewer := viewerID(c)
	ctx := c.Request.Context()

	snapshot := func() ([]ticketclass.View, error) {
		return h.classes.ListViews(ctx, instructorID, classID, viewer, classType)
	}

	initial, err := snapshot()
	if err != nil {
		logger.Error("ticket class stream setup failed", "instructor_id", instructorID, "class_id", classID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load ticket classes"})
		return
	}

	topic := event.ClassesTopic()
	if classID > 0 {
		topic = event.ClassTopic(classID)
	}
	ch := h.bus.Subscribe(topic)
	defer h.bus.Unsubscribe(topic, ch)

	metrics.SSESubscribers.WithLabelValues("ticket-classes").Inc()
	defer metrics.SSESubscribers.WithLabelValues("ticket-classes").Dec()

	sseHeaders(c)
	st := &stream{w: c.Writer, name: "ticket-classes"}
	if !st.send("initial", classesEvent{Type: "initial", TicketClasses: initial}) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			views, err := snapshot()
			if err != nil {
				logger.Error("ticket class snapshot recompute failed", "class_id", classID, "error", err)
				st.send("error", classesEvent{Type: "error", Message: "Failed to refresh ticket classes"})
				continue
			}
			if !st.send("update", classesEvent{Type: "update", TicketClasses: views}) {
				return
			}
		}
	}
}

// StreamCart godoc
// @Summary      Cart stream
// @Description  Pushes the authenticated user's server-side cart as SSE full snapshots.
// @Tags         streams
// @Security     BearerAuth
// @Produce      text/event-stream
// @Success      200  {string}  string  "event stream"
// @Failure      401  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /streams/cart [get]
func (h *Handler) StreamCart(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	ctx := c.Request.Context()

	snapshot := func() (*cart.Cart, error) {
		return h.carts.Get(ctx, userID)
	}

	initial, err := snapshot()
	if err != nil {
		logger.Error("cart stream setup failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load cart"})
		return
	}

	topic := event.CartTopic(userID)
	ch := h.bus.Subscribe(topic)
	defer h.bus.Unsubscribe(topic, ch)

	metrics.SSESubscribers.WithLabelValues("cart").Inc()
	defer metrics.SSESubscribers.WithLabelValues("cart").Dec()

	sseHeaders(c)
	st := &stream{w: c.Writer, name: "cart"}
	if !st.send("initial", cartEvent{Type: "initial", Cart: initial}) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			current, err := snapshot()
			if err != nil {
				logger.Error("cart snapshot recompute failed", "user_id", userID, "error", err)
				st.send("error", cartEvent{Type: "error", Message: "Failed to refresh cart"})
				continue
			}
			if !st.send("update", cartEvent{Type: "update", Cart: current}) {
				return
			}
		}
	}
}
