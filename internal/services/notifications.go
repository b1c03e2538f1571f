package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/config"
	"github.com/harentsoaR/medicare-api/internal/metrics"
	"github.com/harentsoaR/medicare-api/internal/models"
)

var ErrSMSRejected = errors.New("sms rejected by provider")

// SMS outcomes recorded on the notifications counter.
const (
	smsSent    = "sent"
	smsFailed  = "failed"
	smsSkipped = "skipped"
)

// NotificationService sends booking confirmations over Textbelt. It does
// nothing when no API key is configured.
type NotificationService struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	metrics    *metrics.Metrics
}

func NewNotificationService(cfg config.TextbeltConfig, m *metrics.Metrics) *NotificationService {
	return &NotificationService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		metrics:    m,
	}
}

func (s *NotificationService) Enabled() bool {
	return s.apiKey != ""
}

// NotifyAsync sends the confirmation in the background so the booking
// response is never held up by the SMS provider.
func (s *NotificationService) NotifyAsync(doctor models.Doctor, rec models.AppointmentRecord) {
	if !s.Enabled() || rec.PatientPhone == "" {
		s.record(smsSkipped)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.SendBookingConfirmation(ctx, doctor, rec); err != nil {
			log.Warn().Err(err).Int("doctor_id", doctor.ID).Msg("booking confirmation SMS not sent")
		}
	}()
}

// SendBookingConfirmation texts the patient. A missing key or phone number
// is not an error.
func (s *NotificationService) SendBookingConfirmation(ctx context.Context, doctor models.Doctor, rec models.AppointmentRecord) error {
	if !s.Enabled() || rec.PatientPhone == "" {
		s.record(smsSkipped)
		return nil
	}

	message := fmt.Sprintf("Appointment Confirmed: %s with %s on %s at %s.",
		rec.VisitType, doctor.Name, rec.Date, rec.Time)

	postBody, err := json.Marshal(map[string]string{
		"phone":   rec.PatientPhone,
		"message": message,
		"key":     s.apiKey,
	})
	if err != nil {
		return fmt.Errorf("marshal sms: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(postBody))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.record(smsFailed)
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.record(smsFailed)
		return fmt.Errorf("decode sms response (status %d): %w", resp.StatusCode, err)
	}

	if !result.Success {
		s.record(smsFailed)
		return fmt.Errorf("%w: %s", ErrSMSRejected, result.Error)
	}

	s.record(smsSent)
	log.Info().Int("doctor_id", doctor.ID).Msg("booking confirmation SMS sent")
	return nil
}

func (s *NotificationService) record(status string) {
	if s.metrics != nil {
		s.metrics.NotificationsSMS.WithLabelValues(status).Inc()
	}
}
