package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"

	"github.com/harentsoaR/medicare-api/internal/models"
)

var ErrInvalidReference = errors.New("invalid booking reference")

const referenceIssuer = "medicare-api"

// BookingClaims is what a patient's booking reference carries.
type BookingClaims struct {
	DoctorID    int    `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	VisitType   string `json:"visitType"`
	jwt.RegisteredClaims
}

// ReferenceIssuer signs and verifies booking references as HS256 tokens.
type ReferenceIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewReferenceIssuer derives the signing key from secret. An empty secret
// yields a random key, so references only verify within this process.
func NewReferenceIssuer(secret string, ttl time.Duration) (*ReferenceIssuer, error) {
	ikm := []byte(secret)
	if len(ikm) == 0 {
		ikm = make([]byte, 32)
		if _, err := rand.Read(ikm); err != nil {
			return nil, fmt.Errorf("generate reference secret: %w", err)
		}
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, []byte("booking-reference")), key); err != nil {
		return nil, fmt.Errorf("derive reference key: %w", err)
	}

	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &ReferenceIssuer{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue creates a reference for a booking that has just been recorded.
func (r *ReferenceIssuer) Issue(doctor models.Doctor, rec models.AppointmentRecord) (string, error) {
	now := r.now()
	claims := &BookingClaims{
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		PatientName: rec.PatientName,
		Date:        rec.Date,
		Time:        rec.Time,
		VisitType:   rec.VisitType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    referenceIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(r.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.key)
}

// Verify parses a reference and returns its claims.
func (r *ReferenceIssuer) Verify(reference string) (*BookingClaims, error) {
	if reference == "" {
		return nil, ErrInvalidReference
	}

	claims := &BookingClaims{}
	token, err := jwt.ParseWithClaims(reference, claims, func(token *jwt.Token) (interface{}, error) {
		return r.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(referenceIssuer),
		jwt.WithTimeFunc(r.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	if !token.Valid {
		return nil, ErrInvalidReference
	}

	return claims, nil
}
