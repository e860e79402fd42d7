package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const Greeting = "Hello y'all from Seryu :3"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Hello is the liveness probe. The body is a bare JSON string.
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, Greeting)
}
