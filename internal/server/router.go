package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/harentsoaR/medicare-api/internal/config"
	"github.com/harentsoaR/medicare-api/internal/handlers"
	"github.com/harentsoaR/medicare-api/internal/metrics"
	"github.com/harentsoaR/medicare-api/internal/middleware"
	"github.com/harentsoaR/medicare-api/internal/render"
)

// NewRouter wires the middleware chain and the route table.
func NewRouter(cfg *config.Config, h *handlers.Handler, m *metrics.Metrics) (*gin.Engine, error) {
	tmpl, err := render.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.SetHTMLTemplate(tmpl)

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimit.RPS),
		Burst: cfg.RateLimit.Burst,
	})

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(m),
		limiter.RateLimit(),
		middleware.LimitBodySize(middleware.DefaultMaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: allowedMethods,
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/", h.Home)
	router.POST("/analyze", h.Analyze)
	router.POST("/book", h.Book)
	router.POST("/confirm-booking", middleware.BookingReference(h.References), h.ConfirmBooking)

	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.NoRoute(h.NotFound)

	return router, nil
}

var allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
