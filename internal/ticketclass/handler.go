package ticketclass

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"driveslot/internal/api"
	"driveslot/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateClass godoc
// @Summary      Create ticket class
// @Description  Creates a scheduled group class with a fixed capacity. Admin only.
// @Tags         ticket-classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Class data"
// @Success      201      {object}  TicketClass
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/ticket-classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrBadClassType) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown class type"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create ticket class"})
		return
	}

	c.JSON(http.StatusCreated, tc)
}

// ListClasses godoc
// @Summary      List ticket classes
// @Description  Returns classes for an instructor with capacity and viewer-dependent fields.
// @Tags         ticket-classes
// @Security     BearerAuth
// @Produce      json
// @Param        instructorId  query     int     true   "Instructor ID"
// @Param        type          query     string  false  "Class type filter (adi, bdi, date, or display form)"
// @Success      200           {array}   View
// @Failure      400           {object}  api.ErrorResponse
// @Failure      500           {object}  api.ErrorResponse
// @Router       /ticket-classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	instructorID, err := strconv.Atoi(c.Query("instructorId"))
	if err != nil || instructorID <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid instructor ID"})
		return
	}

	viewerID, _ := auth.GetUserID(c)

	views, err := h.service.ListViews(c.Request.Context(), instructorID, 0, viewerID, c.Query("type"))
	if err != nil {
		if errors.Is(err, ErrBadClassType) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown class type"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list ticket classes"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// RequestEnrollment godoc
// @Summary      Request enrollment
// @Description  Places a pending enrollment request if the class still has open spots.
// @Tags         ticket-classes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Class ID"
// @Success      201  {object}  api.MessageResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      401  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /ticket-classes/{id}/requests [post]
func (h *Handler) RequestEnrollment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	if err := h.service.RequestEnrollment(c.Request.Context(), classID, userID); err != nil {
		switch {
		case errors.Is(err, ErrClassFull):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Class is full"})
		case errors.Is(err, ErrAlreadyRequested):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Already requested"})
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to request enrollment"})
		}
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "Enrollment requested"})
}

// DropEnrollment godoc
// @Summary      Drop enrollment
// @Description  Removes the authenticated student's request or enrollment from a class.
// @Tags         ticket-classes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Class ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /ticket-classes/{id}/requests [delete]
func (h *Handler) DropEnrollment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	if err := h.service.DropStudent(c.Request.Context(), classID, userID); err != nil {
		if errors.Is(err, ErrNoRequest) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No request for this class"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to drop enrollment"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Enrollment dropped"})
}

// ConfirmEnrollment godoc
// @Summary      Confirm enrollment
// @Description  Promotes a pending request to enrolled after payment. Admin only. Safe to retry.
// @Tags         ticket-classes
// @Security     BearerAuth
// @Produce      json
// @Param        id         path      int  true  "Class ID"
// @Param        studentId  path      int  true  "Student ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/ticket-classes/{id}/students/{studentId}/confirm [post]
func (h *Handler) ConfirmEnrollment(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	studentID, err := strconv.Atoi(c.Param("studentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	if err := h.service.ConfirmEnrollment(c.Request.Context(), classID, studentID); err != nil {
		if errors.Is(err, ErrNoRequest) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No pending request for this student"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to confirm enrollment"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Enrollment confirmed"})
}
