package api

import (
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	serviceQueries queries.ServiceQueries
}

func NewServiceHandler(serviceQueries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{
		serviceQueries: serviceQueries,
	}
}

// @Summary List services
// @Description List active salon services ordered by name
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Failure 500 {object} map[string]string
// @Router /services [get]
func (h *ServiceHandler) GetServices(c *gin.Context) {
	views, err := h.serviceQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}
