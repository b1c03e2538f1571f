package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/medicare-api/internal/render"
	"github.com/harentsoaR/medicare-api/internal/services"
	"github.com/harentsoaR/medicare-api/internal/utils"
)

// Analyze runs the symptom analysis for the submitted form and recommends
// up to three doctors for the suggested specialties.
func (h *Handler) Analyze(c *gin.Context) {
	body, ok := formBody(c)
	if !ok {
		return
	}

	symptoms := utils.FormValue(body, "symptoms")
	duration := utils.FormValue(body, "duration")
	severity := services.ParseSeverity(utils.FormValue(body, "severity"))

	analysis := h.Analyzer.Analyze(c.Request.Context(), symptoms, duration, severity)
	doctors := h.Doctors.Recommend(analysis.SuggestedSpecialties, render.MaxRecommendedDoctors)

	c.HTML(http.StatusOK, render.AnalysisTemplate, render.NewAnalysisPage(analysis, doctors))
}
