package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/utils"
)

const (
	ContextBookingClaims    = "booking_claims"
	ContextBookingReference = "booking_reference"
)

type ReferenceVerifier interface {
	Verify(reference string) (*utils.BookingClaims, error)
}

// BookingReference verifies the posted "reference" form field and puts its
// claims in the context. Requests without a valid reference pass through
// untouched so the handler can fall back to the plain page.
func BookingReference(v ReferenceVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			if AbortIfTooLarge(c, err) {
				return
			}
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		reference := utils.FormValue(string(body), "reference")
		if reference == "" {
			c.Next()
			return
		}

		claims, err := v.Verify(reference)
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(ContextRequestID)).Msg("booking reference rejected")
			c.Next()
			return
		}

		c.Set(ContextBookingClaims, claims)
		c.Set(ContextBookingReference, reference)
		c.Next()
	}
}

// BookingClaimsFrom returns the claims set by BookingReference, if any.
func BookingClaimsFrom(c *gin.Context) (*utils.BookingClaims, bool) {
	v, ok := c.Get(ContextBookingClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.BookingClaims)
	return claims, ok
}
