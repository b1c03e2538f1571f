package services

import (
	"context"
	"fmt"

	"github.com/harentsoaR/medicare-api/internal/metrics"
	"github.com/harentsoaR/medicare-api/internal/models"
)

// Asker is the outbound AI boundary. Implementations return "" on failure.
type Asker interface {
	Ask(ctx context.Context, prompt string) string
}

type SymptomAnalyzer struct {
	ai      Asker
	metrics *metrics.Metrics
}

func NewSymptomAnalyzer(ai Asker, m *metrics.Metrics) *SymptomAnalyzer {
	return &SymptomAnalyzer{ai: ai, metrics: m}
}

// Analyze asks the AI about the symptoms and runs the keyword heuristic over
// the patient's text and the AI's raw answer.
func (s *SymptomAnalyzer) Analyze(ctx context.Context, symptoms, duration string, severity int) models.SymptomAnalysis {
	raw := ""
	if s.ai != nil {
		raw = s.ai.Ask(ctx, BuildPrompt(symptoms, duration, severity))
	}

	analysis := AnalyzeSymptoms(symptoms, duration, severity, raw)
	analysis.MainAIText = ExtractText(raw)

	if s.metrics != nil {
		s.metrics.Analyses.Inc()
	}
	return analysis
}

func BuildPrompt(symptoms, duration string, severity int) string {
	if duration == "" {
		duration = "Not specified"
	}
	return fmt.Sprintf("As a medical AI assistant, analyze these symptoms:\n\n"+
		"Symptoms: %s\n"+
		"Duration: %s\n"+
		"Severity (1-10): %d\n\n"+
		"Provide analysis with possible conditions, recommendations, warning signs, and suggested specialties.",
		symptoms, duration, severity)
}
