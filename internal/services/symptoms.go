package services

import (
	"strconv"
	"strings"

	"github.com/harentsoaR/medicare-api/internal/models"
)

const DefaultSeverity = 5

type symptomRule struct {
	keywords    []string
	aiKeywords  []string
	condition   string
	description string
	confidence  int
	specialties []string
}

var (
	symptomRules = []symptomRule{
		{
			keywords:    []string{"cough", "breathing"},
			aiKeywords:  []string{"respiratory"},
			condition:   "Respiratory Infection",
			description: "Possible viral or bacterial respiratory infection",
			confidence:  75,
			specialties: []string{"Pulmonology", "Internal Medicine"},
		},
		{
			keywords:    []string{"headache", "head"},
			condition:   "Tension Headache",
			description: "Common type of headache caused by stress or muscle tension",
			confidence:  80,
			specialties: []string{"Neurology", "Family Medicine"},
		},
		{
			keywords:    []string{"chest", "heart"},
			condition:   "Chest Discomfort",
			description: "Could be related to cardiac or respiratory issues",
			confidence:  70,
			specialties: []string{"Cardiology", "Internal Medicine"},
		},
		{
			keywords:    []string{"fever", "temperature"},
			condition:   "Viral Infection",
			description: "Common viral illness with fever symptoms",
			confidence:  85,
			specialties: []string{"Internal Medicine", "Family Medicine"},
		},
	}

	generalRecommendations = []string{
		"Consult with a healthcare professional for proper diagnosis",
		"Monitor symptoms closely and note any changes",
		"Rest and stay hydrated",
		"Take over-the-counter medication if needed for symptom relief",
	}

	warningSigns = []string{
		"Difficulty breathing or shortness of breath",
		"Severe or worsening pain",
		"High fever above 102°F",
		"Loss of consciousness or confusion",
	}

	fallbackRule = symptomRule{
		condition:   "General Medical Assessment",
		description: "Symptoms require professional medical evaluation",
		confidence:  75,
		specialties: []string{"Internal Medicine", "Family Medicine"},
	}
)

// AnalyzeSymptoms runs the keyword heuristic over the patient's text. aiRaw
// is the untouched AI response, which can also trigger the respiratory rule.
// Matching is case-sensitive.
func AnalyzeSymptoms(symptoms, duration string, severity int, aiRaw string) models.SymptomAnalysis {
	analysis := models.SymptomAnalysis{
		Symptoms:      symptoms,
		Duration:      duration,
		Severity:      severity,
		RawAIResponse: aiRaw,
	}

	for _, rule := range symptomRules {
		if containsAny(symptoms, rule.keywords) || containsAny(aiRaw, rule.aiKeywords) {
			analysis.AddCondition(rule.condition, rule.description, rule.confidence)
			analysis.AddSpecialties(rule.specialties...)
		}
	}

	analysis.Recommendations = append(analysis.Recommendations, generalRecommendations...)
	analysis.Warnings = append(analysis.Warnings, warningSigns...)

	if len(analysis.SuggestedSpecialties) == 0 {
		analysis.AddCondition(fallbackRule.condition, fallbackRule.description, fallbackRule.confidence)
		analysis.AddSpecialties(fallbackRule.specialties...)
	}

	return analysis
}

// ParseSeverity turns the submitted field into a 1-10 score. Empty or
// non-numeric input yields DefaultSeverity.
func ParseSeverity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultSeverity
	}
	switch {
	case n < 1:
		return 1
	case n > 10:
		return 10
	}
	return n
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
