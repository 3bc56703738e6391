package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"driveslot/internal/api"
	"driveslot/internal/auth"
	"driveslot/internal/instructor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Reserve godoc
// @Summary      Reserve slot
// @Description  Transitions a slot from available to pending for the current
// @Description  student. The slot can be addressed by id or by its
// @Description  instructor/date/start/end key.
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ReserveRequest  true  "Reservation data"
// @Success      201      {object}  instructor.Slot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /slots/reserve [post]
func (h *Handler) Reserve(c *gin.Context) {
	studentID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if !instructor.ValidClassType(req.ClassType) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid class type"})
		return
	}
	if !instructor.ValidPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "payment_method must be online or physical"})
		return
	}

	slot, err := h.service.Reserve(c.Request.Context(), studentID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		case errors.Is(err, ErrSlotTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Slot is no longer available"})
		case errors.Is(err, ErrOverlap):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Slot overlaps one of your existing reservations"})
		case errors.Is(err, ErrLessonFieldsOnly):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Pickup and dropoff apply to driving lessons only"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to reserve slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// Cancel godoc
// @Summary      Cancel reservation
// @Description  Releases the student's own pending slot back to available.
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        slotID  path      int  true  "Slot ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      409     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /slots/{slotID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	studentID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	slotID, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), studentID, slotID); err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		case errors.Is(err, ErrNotOccupant):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Slot is not pending for you"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel reservation"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Reservation cancelled"})
}

// AdminCancel godoc
// @Summary      Cancel booked slot
// @Description  Administrative override releasing a booked slot. Admin only.
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        slotID  path      int  true  "Slot ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /admin/slots/{slotID}/cancel [post]
func (h *Handler) AdminCancel(c *gin.Context) {
	slotID, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	if err := h.service.AdminCancel(c.Request.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		case errors.Is(err, instructor.ErrSlotNotBooked):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Slot is not booked"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking cancelled"})
}

// VerifyStatus godoc
// @Summary      Verify slot status
// @Description  Returns the persisted reservation state of a slot; used by
// @Description  the payment flow before and after confirmation.
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        slotId  query     int  true  "Slot ID"
// @Success      200     {object}  api.StatusResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /slots/verify-status [get]
func (h *Handler) VerifyStatus(c *gin.Context) {
	slotID, err := strconv.Atoi(c.Query("slotId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	slot, err := h.service.VerifyStatus(c.Request.Context(), slotID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		return
	}

	c.JSON(http.StatusOK, api.StatusResponse{
		SlotID: slot.ID,
		Status: string(slot.Status),
		Paid:   slot.Paid,
	})
}

// UpdateStatus godoc
// @Summary      Batch update slot status
// @Description  Payment collaborator endpoint: confirms (booked) or reverts
// @Description  (available) a batch of slots for one instructor. Admin only.
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateStatusRequest  true  "Batch update"
// @Success      200      {object}  api.MessageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/slots/update-status [post]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.UpdateStatusBatch(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "One or more slots not found"})
		case errors.Is(err, ErrBadTransition):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Unsupported status transition"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update slot status"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Slot status updated"})
}

// ListSlots godoc
// @Summary      List instructor slots
// @Description  Returns an instructor's calendar with viewer-relative
// @Description  effective status (soft-released slots read as available to
// @Description  their abandoning owner).
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        instructorID  path      int     true   "Instructor ID"
// @Param        from          query     string  false  "Earliest date (YYYY-MM-DD)"
// @Param        type          query     string  false  "Class type filter"
// @Success      200           {array}   SlotView
// @Failure      400           {object}  api.ErrorResponse
// @Failure      500           {object}  api.ErrorResponse
// @Router       /instructors/{instructorID}/slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
	viewerID, _ := auth.GetUserID(c)

	instructorID, err := strconv.Atoi(c.Param("instructorID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid instructor ID"})
		return
	}

	fromDate := c.Query("from")
	if fromDate != "" && !instructor.ValidDate(fromDate) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from must be YYYY-MM-DD"})
		return
	}

	classType := c.Query("type")
	if classType != "" && !instructor.ValidClassType(classType) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid class type"})
		return
	}

	views, err := h.service.ListForViewer(c.Request.Context(), instructorID, viewerID, fromDate, classType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch slots"})
		return
	}

	c.JSON(http.StatusOK, views)
}
