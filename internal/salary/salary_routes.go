package salary

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the salary endpoints. No auth middleware here:
// the reporting routes are open in this phase.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	salary := r.Group("/salary")
	{
		salary.POST("/driver/list", h.ListDrivers)
	}
}
