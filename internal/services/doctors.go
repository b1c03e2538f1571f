package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/harentsoaR/medicare-api/internal/models"
)

var ErrInvalidRoster = errors.New("invalid doctor roster")

// DoctorDirectory is the read-only roster owned by the process.
type DoctorDirectory struct {
	doctors []models.Doctor
}

func NewDoctorDirectory(roster []models.Doctor) (*DoctorDirectory, error) {
	seen := make(map[int]struct{}, len(roster))
	for _, d := range roster {
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate doctor id %d", ErrInvalidRoster, d.ID)
		}
		if d.Fee < 0 {
			return nil, fmt.Errorf("%w: negative fee for doctor %d", ErrInvalidRoster, d.ID)
		}
		seen[d.ID] = struct{}{}
	}

	doctors := make([]models.Doctor, len(roster))
	copy(doctors, roster)
	return &DoctorDirectory{doctors: doctors}, nil
}

func (dir *DoctorDirectory) All() []models.Doctor {
	out := make([]models.Doctor, len(dir.doctors))
	copy(out, dir.doctors)
	return out
}

func (dir *DoctorDirectory) ByID(id int) (models.Doctor, bool) {
	return lo.Find(dir.doctors, func(d models.Doctor) bool {
		return d.ID == id
	})
}

// BySpecialty returns matching doctors in roster order.
func (dir *DoctorDirectory) BySpecialty(query string) []models.Doctor {
	return lo.Filter(dir.doctors, func(d models.Doctor, _ int) bool {
		return MatchesSpecialty(d, query)
	})
}

// Recommend collects doctors for each specialty in order, drops repeats by id
// and keeps at most limit of them.
func (dir *DoctorDirectory) Recommend(specialties []string, limit int) []models.Doctor {
	var found []models.Doctor
	for _, s := range specialties {
		found = append(found, dir.BySpecialty(s)...)
	}

	found = lo.UniqBy(found, func(d models.Doctor) int {
		return d.ID
	})
	if limit >= 0 && len(found) > limit {
		found = found[:limit]
	}
	return found
}

// MatchesSpecialty reports whether query and one of the doctor's
// specializations or primary specialty contain each other.
func MatchesSpecialty(d models.Doctor, query string) bool {
	for _, s := range d.Specializations {
		if containsEither(s, query) {
			return true
		}
	}
	return containsEither(d.Specialty, query)
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
