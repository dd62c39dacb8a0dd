package api

import (
	"errors"
	"net/http"

	"salon-booking/internal/domain/booking"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a slot for a service
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": validationMessage(err),
			})
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, commands.ErrServiceUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Service is not currently offered",
			})
		case errors.Is(err, commands.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": conflictMessage(err),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Lookup bookings by phone
// @Description List a customer's bookings, newest appointment first
// @Tags bookings
// @Produce json
// @Param phone query string true "Customer phone number"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetBookingsByPhone(c *gin.Context) {
	phoneStr := c.Query("phone")
	phone, err := booking.NewPhone(phoneStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid phone number",
		})
		return
	}

	views, err := h.bookingQueries.ListByPhone(c.Request.Context(), phone.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// validationMessage surfaces the domain rule that was broken; these errors
// are safe to show verbatim.
func validationMessage(err error) string {
	for _, domainErr := range []error{
		booking.ErrInvalidDate,
		booking.ErrDateOutsideWindow,
		booking.ErrInvalidTime,
		booking.ErrTimeOffGrid,
		booking.ErrEmptyCustomerName,
		booking.ErrNameTooLong,
		booking.ErrInvalidPhone,
		booking.ErrNotesTooLong,
	} {
		if errors.Is(err, domainErr) {
			return domainErr.Error()
		}
	}
	return "Invalid booking data"
}

func conflictMessage(err error) string {
	var taken *commands.SlotTakenError
	if errors.As(err, &taken) && taken.ServiceName != "" {
		return "This slot is already booked for " + taken.ServiceName
	}
	return "This slot is already booked"
}
