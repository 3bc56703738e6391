package instructor

import (
	"net/http"
	"strconv"

	"driveslot/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo      Repository
	analytics *AnalyticsRepo
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db), analytics: NewAnalyticsRepo(db)}
}

// CreateInstructor godoc
// @Summary      Create instructor
// @Description  Registers a new instructor. Admin only.
// @Tags         instructors
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateInstructorRequest  true  "Instructor data"
// @Success      201      {object}  Instructor
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/instructors [post]
func (h *Handler) CreateInstructor(c *gin.Context) {
	var req CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	inst, err := h.repo.CreateInstructor(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create instructor"})
		return
	}

	c.JSON(http.StatusCreated, inst)
}

// ListInstructors godoc
// @Summary      List instructors
// @Tags         instructors
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Instructor
// @Failure      500  {object}  api.ErrorResponse
// @Router       /instructors [get]
func (h *Handler) ListInstructors(c *gin.Context) {
	instructors, err := h.repo.ListInstructors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch instructors"})
		return
	}

	c.JSON(http.StatusOK, instructors)
}

// CreateSlot godoc
// @Summary      Create schedule slot
// @Description  Adds an available slot to an instructor's calendar. Admin only.
// @Tags         instructors
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        instructorID  path      int                true  "Instructor ID"
// @Param        request       body      CreateSlotRequest  true  "Slot data"
// @Success      201           {object}  Slot
// @Failure      400           {object}  api.ErrorResponse
// @Failure      404           {object}  api.ErrorResponse
// @Failure      409           {object}  api.ErrorResponse
// @Failure      500           {object}  api.ErrorResponse
// @Router       /admin/instructors/{instructorID}/slots [post]
func (h *Handler) CreateSlot(c *gin.Context) {
	instructorID, err := strconv.Atoi(c.Param("instructorID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid instructor ID"})
		return
	}

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if !ValidDate(req.Date) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}
	if !ValidTimeOfDay(req.Start) || !ValidTimeOfDay(req.End) || req.Start >= req.End {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "start and end must be HH:MM with start before end"})
		return
	}
	if !ValidClassType(req.ClassType) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid class type"})
		return
	}

	if _, err := h.repo.GetInstructorByID(c.Request.Context(), instructorID); err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Instructor not found"})
		return
	}

	slot, err := h.repo.CreateSlot(c.Request.Context(), instructorID, req.Date, req.Start, req.End, ClassType(req.ClassType))
	if err != nil {
		if err == ErrDuplicateSlot {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Slot already exists for this time"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create slot"})
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// SlotStats godoc
// @Summary      Slot statistics
// @Description  Aggregated slot counts per status over a date range, bucketed
// @Description  by day or by instructor. Admin only.
// @Tags         instructors
// @Security     BearerAuth
// @Produce      json
// @Param        from  query     string  true   "Start date (YYYY-MM-DD)"
// @Param        to    query     string  true   "End date (YYYY-MM-DD)"
// @Param        by    query     string  false  "Bucket: day (default) or instructor"
// @Success      200   {array}   SlotStatsByDay
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /admin/stats/slots [get]
func (h *Handler) SlotStats(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if !ValidDate(from) || !ValidDate(to) || from > to {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from and to must be YYYY-MM-DD with from not after to"})
		return
	}

	switch c.DefaultQuery("by", "day") {
	case "day":
		stats, err := h.analytics.StatsByDay(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	case "instructor":
		stats, err := h.analytics.StatsByInstructor(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "by must be day or instructor"})
	}
}
