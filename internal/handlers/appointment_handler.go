package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/middleware"
	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/render"
	"github.com/harentsoaR/medicare-api/internal/utils"
)

// Book shows the booking form for a doctor, or records the appointment when
// the form comes back with the patient's details.
func (h *Handler) Book(c *gin.Context) {
	body, ok := formBody(c)
	if !ok {
		return
	}

	doctor, ok := h.doctorFromForm(body)
	if !ok {
		c.Data(http.StatusNotFound, render.ContentTypeHTML, []byte(render.DoctorNotFoundPage))
		return
	}

	if !utils.HasField(body, "patient_name") {
		c.HTML(http.StatusOK, render.BookingFormTemplate, render.NewBookingFormPage(doctor))
		return
	}

	rec := models.AppointmentRecord{
		DoctorID:     doctor.ID,
		PatientName:  utils.FormValue(body, "patient_name"),
		PatientEmail: utils.FormValue(body, "patient_email"),
		PatientPhone: utils.FormValue(body, "patient_phone"),
		Date:         utils.FormValue(body, "appointment_date"),
		Time:         utils.FormValue(body, "appointment_time"),
		VisitType:    utils.FormValue(body, "appointment_type"),
		Notes:        utils.FormValue(body, "notes"),
	}

	if err := h.Appointments.Append(doctor, rec); err != nil {
		log.Error().Err(err).
			Str("request_id", c.GetString(middleware.ContextRequestID)).
			Int("doctor_id", doctor.ID).
			Msg("failed to record appointment")
		if h.Metrics != nil {
			h.Metrics.BookingFailures.Inc()
		}
		c.Data(http.StatusInternalServerError, render.ContentTypeHTML, []byte(render.BookingFailedPage))
		return
	}
	if h.Metrics != nil {
		h.Metrics.Bookings.Inc()
	}
	log.Info().
		Str("request_id", c.GetString(middleware.ContextRequestID)).
		Int("doctor_id", doctor.ID).
		Msg("appointment recorded")

	if h.NotificationSvc != nil {
		h.NotificationSvc.NotifyAsync(doctor, rec)
	}

	page := render.ConfirmationPage{
		Details: &render.BookingDetails{
			DoctorName:  doctor.Name,
			PatientName: rec.PatientName,
			Date:        rec.Date,
			Time:        rec.Time,
			VisitType:   rec.VisitType,
		},
	}
	if h.References != nil {
		ref, err := h.References.Issue(doctor, rec)
		if err != nil {
			log.Warn().Err(err).Msg("could not issue booking reference")
		}
		page.Reference = ref
	}

	c.HTML(http.StatusOK, render.ConfirmationTemplate, page)
}

// ConfirmBooking shows a booking back to the patient from its reference.
// Nothing is recorded here.
func (h *Handler) ConfirmBooking(c *gin.Context) {
	claims, ok := middleware.BookingClaimsFrom(c)
	if !ok {
		c.HTML(http.StatusOK, render.ConfirmationTemplate, render.ConfirmationPage{})
		return
	}

	c.HTML(http.StatusOK, render.ConfirmationTemplate, render.ConfirmationPage{
		Reference: c.GetString(middleware.ContextBookingReference),
		Details: &render.BookingDetails{
			DoctorName:  claims.DoctorName,
			PatientName: claims.PatientName,
			Date:        claims.Date,
			Time:        claims.Time,
			VisitType:   claims.VisitType,
		},
	})
}

func (h *Handler) doctorFromForm(body string) (models.Doctor, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(utils.FormValue(body, "doctor_id")))
	if err != nil {
		return models.Doctor{}, false
	}
	return h.Doctors.ByID(id)
}
