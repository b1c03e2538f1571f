package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/medicare-api/internal/render"
)

// DefaultMaxBodyBytes bounds form posts.
const DefaultMaxBodyBytes = 1 << 20

func LimitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// AbortIfTooLarge answers 413 when err came from exceeding the body cap.
func AbortIfTooLarge(c *gin.Context, err error) bool {
	var maxErr *http.MaxBytesError
	if !errors.As(err, &maxErr) {
		return false
	}
	c.Data(http.StatusRequestEntityTooLarge, render.ContentTypeHTML, []byte(render.PayloadTooLargePage))
	c.Abort()
	return true
}
