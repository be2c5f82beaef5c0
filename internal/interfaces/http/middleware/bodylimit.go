package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
				dto.ErrCodeBodyTooLarge, "Request body exceeds maximum allowed size",
			))
			return
		}

		// Chunked bodies have no Content-Length, so also cap the reader
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
