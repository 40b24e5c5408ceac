package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const fetchFailedError = "Failed to fetch Instagram profile"

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, successResponse{Success: true, Data: data})
}

func fail(c *gin.Context, status int, errText, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Success: false, Error: errText, Message: message})
}
