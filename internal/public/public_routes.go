package public

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/public", h.Hello)
}
