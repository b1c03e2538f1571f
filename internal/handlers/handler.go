package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/metrics"
	"github.com/harentsoaR/medicare-api/internal/middleware"
	"github.com/harentsoaR/medicare-api/internal/render"
	"github.com/harentsoaR/medicare-api/internal/services"
	"github.com/harentsoaR/medicare-api/internal/utils"
)

// Handler holds everything the route handlers need.
type Handler struct {
	Doctors         *services.DoctorDirectory
	Analyzer        *services.SymptomAnalyzer
	Appointments    *services.AppointmentLog
	NotificationSvc *services.NotificationService
	References      *utils.ReferenceIssuer
	Metrics         *metrics.Metrics
	LandingPage     string
}

func NewHandler(
	doctors *services.DoctorDirectory,
	analyzer *services.SymptomAnalyzer,
	appointments *services.AppointmentLog,
	notificationSvc *services.NotificationService,
	references *utils.ReferenceIssuer,
	m *metrics.Metrics,
	landingPage string,
) *Handler {
	return &Handler{
		Doctors:         doctors,
		Analyzer:        analyzer,
		Appointments:    appointments,
		NotificationSvc: notificationSvc,
		References:      references,
		Metrics:         m,
		LandingPage:     landingPage,
	}
}

// Home serves the landing page from disk, or a minimal page when it is missing.
func (h *Handler) Home(c *gin.Context) {
	page, err := os.ReadFile(h.LandingPage)
	if err != nil {
		log.Warn().Err(err).Str("path", h.LandingPage).Msg("landing page not readable, serving fallback")
		page = []byte(render.FallbackLandingPage)
	}
	c.Data(http.StatusOK, render.ContentTypeHTML, page)
}

func (h *Handler) NotFound(c *gin.Context) {
	c.Data(http.StatusNotFound, render.ContentTypeHTML, []byte(render.NotFoundPage))
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// formBody returns the raw urlencoded body, or "" if it cannot be read. It
// reports false after answering 413 for a body over the size cap.
func formBody(c *gin.Context) (string, bool) {
	body, err := c.GetRawData()
	if err != nil {
		if middleware.AbortIfTooLarge(c, err) {
			log.Warn().Str("request_id", c.GetString(middleware.ContextRequestID)).Msg("request body over size limit")
			return "", false
		}
		log.Warn().Err(err).Str("request_id", c.GetString(middleware.ContextRequestID)).Msg("could not read request body")
		return "", true
	}
	return string(body), true
}
