package api

import (
	"log/slog"
	"net/http"

	"salon-booking/internal/domain/booking"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get slot availability
// @Description List booked times for a date alongside the full slot grid
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	date, err := booking.NewAppointmentDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	booked, err := h.availabilityQueries.OccupiedSlots(c.Request.Context(), date)
	if err != nil {
		// A failed read must not block the booking flow; the unique index
		// still rejects double bookings on submit.
		slog.Warn("availability read failed, returning empty occupancy", "date", date.String(), "error", err.Error())
		booked = []string{}
	}

	grid := booking.SlotGrid()
	allSlots := make([]string, len(grid))
	for i, slot := range grid {
		allSlots[i] = slot.String()
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Date:        date.String(),
		AllSlots:    allSlots,
		BookedTimes: booked,
	})
}
