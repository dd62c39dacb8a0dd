package api

import (
	"context"
	"errors"
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewAdminHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List bookings
// @Description List all bookings with optional phone/status filter and sorting
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param phone query string false "Phone substring filter"
// @Param status query string false "Status filter (pending/confirmed/completed/cancelled/all)"
// @Param sort query string false "Sort key (date/status/created)"
// @Param order query string false "Sort order (asc/desc)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	filter, err := queries.NewListFilter(
		c.Query("phone"),
		c.Query("status"),
		c.Query("sort"),
		c.Query("order"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.bookingQueries.ListAll(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Booking stats
// @Description Status counters for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.BookingStats
// @Failure 401 {object} map[string]string
// @Router /admin/bookings/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.bookingQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Confirm booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/confirm [post]
func (h *AdminHandler) ConfirmBooking(c *gin.Context) {
	h.changeStatus(c, h.bookingCommands.ConfirmBooking)
}

// @Summary Complete booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/complete [post]
func (h *AdminHandler) CompleteBooking(c *gin.Context) {
	h.changeStatus(c, h.bookingCommands.CompleteBooking)
}

// @Summary Cancel booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/cancel [post]
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	h.changeStatus(c, h.bookingCommands.CancelBooking)
}

func (h *AdminHandler) changeStatus(c *gin.Context, command func(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := command(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrIllegalTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking status does not allow this transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
