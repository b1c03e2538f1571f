package render

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/harentsoaR/medicare-api/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names registered by Templates.
const (
	AnalysisTemplate     = "analysis.html"
	BookingFormTemplate  = "booking_form.html"
	ConfirmationTemplate = "booking_confirmed.html"
)

const ContentTypeHTML = "text/html; charset=utf-8"

// Fixed pages that are not worth a template.
const (
	NotFoundPage        = "<h1>404 - Page Not Found</h1>"
	DoctorNotFoundPage  = "<h1>Doctor not found</h1>"
	FallbackLandingPage = "<h1>MediCare AI</h1><p>Index file not found</p>"
	ServerErrorPage     = "<h1>500 - Internal Server Error</h1><p>Something went wrong. Please try again.</p><a href='/'>← Back to Home</a>"
	BookingFailedPage   = "<h1>We could not record your appointment</h1><p>Please try again in a moment.</p><a href='/'>← Back to Home</a>"
	TooManyRequestsPage = "<h1>429 - Too Many Requests</h1><p>Please slow down and try again shortly.</p>"
	PayloadTooLargePage = "<h1>413 - Request Too Large</h1><p>The submitted form is too large.</p><a href='/'>← Back to Home</a>"
)

// MaxRecommendedDoctors caps the doctor cards on the analysis page.
const MaxRecommendedDoctors = 3

var (
	TimeSlots  = []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM", "4:00 PM"}
	VisitTypes = []VisitType{
		{Value: "in-person", Label: "In-Person Visit"},
		{Value: "video", Label: "Video Consultation"},
	}
)

type VisitType struct {
	Value string
	Label string
}

// Templates parses the embedded pages with the helpers they rely on.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"fee":             FeeDisplay,
		"markup":          Markup,
		"confidenceClass": ConfidenceClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// FeeDisplay converts a fee in minor units to whole currency units.
func FeeDisplay(minor int) int {
	return minor / 100
}

// ConfidenceClass buckets a confidence score for styling.
func ConfidenceClass(confidence int) string {
	switch {
	case confidence >= 70:
		return "high"
	case confidence >= 50:
		return "medium"
	default:
		return "low"
	}
}

type DoctorCard struct {
	models.Doctor
	Recommended bool
}

type AnalysisPage struct {
	Analysis models.SymptomAnalysis
	Doctors  []DoctorCard
}

// NewAnalysisPage keeps at most MaxRecommendedDoctors and marks the first one.
func NewAnalysisPage(analysis models.SymptomAnalysis, doctors []models.Doctor) AnalysisPage {
	if len(doctors) > MaxRecommendedDoctors {
		doctors = doctors[:MaxRecommendedDoctors]
	}

	cards := make([]DoctorCard, 0, len(doctors))
	for i, d := range doctors {
		cards = append(cards, DoctorCard{Doctor: d, Recommended: i == 0})
	}
	return AnalysisPage{Analysis: analysis, Doctors: cards}
}

type BookingFormPage struct {
	Doctor     models.Doctor
	TimeSlots  []string
	VisitTypes []VisitType
}

func NewBookingFormPage(doctor models.Doctor) BookingFormPage {
	return BookingFormPage{Doctor: doctor, TimeSlots: TimeSlots, VisitTypes: VisitTypes}
}

// ConfirmationPage is shown after a booking is recorded and when a booking
// reference is presented back. Details is nil for the plain confirmation.
type ConfirmationPage struct {
	Reference string
	Details   *BookingDetails
}

type BookingDetails struct {
	DoctorName  string
	PatientName string
	Date        string
	Time        string
	VisitType   string
}
