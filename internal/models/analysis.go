package models

// Condition is a candidate diagnosis with a heuristic confidence in [0,100].
type Condition struct {
	Name        string `json:"condition"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
}

type SymptomAnalysis struct {
	Symptoms             string      `json:"symptoms"`
	Duration             string      `json:"duration"`
	Severity             int         `json:"severity"`
	Conditions           []Condition `json:"possibleConditions"`
	Recommendations      []string    `json:"recommendations"`
	Warnings             []string    `json:"warningSigns"`
	SuggestedSpecialties []string    `json:"suggestedSpecialties"`
	RawAIResponse        string      `json:"rawAiResponse"`
	MainAIText           string      `json:"mainAiText"`
}

func (a *SymptomAnalysis) AddCondition(name, description string, confidence int) {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	a.Conditions = append(a.Conditions, Condition{Name: name, Description: description, Confidence: confidence})
}

func (a *SymptomAnalysis) AddSpecialties(specialties ...string) {
	a.SuggestedSpecialties = append(a.SuggestedSpecialties, specialties...)
}
