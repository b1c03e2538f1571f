package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/medicare-api/internal/models"
)

func newDirectory(t *testing.T) *DoctorDirectory {
	t.Helper()
	dir, err := NewDoctorDirectory(models.DefaultRoster())
	require.NoError(t, err)
	return dir
}

func ids(doctors []models.Doctor) []int {
	out := make([]int, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.ID)
	}
	return out
}

func TestNewDoctorDirectoryValidates(t *testing.T) {
	_, err := NewDoctorDirectory([]models.Doctor{{ID: 1}, {ID: 1}})
	assert.ErrorIs(t, err, ErrInvalidRoster)

	_, err = NewDoctorDirectory([]models.Doctor{{ID: 1, Fee: -1}})
	assert.ErrorIs(t, err, ErrInvalidRoster)
}

func TestByID(t *testing.T) {
	dir := newDirectory(t)

	for _, want := range models.DefaultRoster() {
		got, ok := dir.ByID(want.ID)
		require.True(t, ok, "doctor %d", want.ID)
		assert.Equal(t, want, got)
	}

	_, ok := dir.ByID(42)
	assert.False(t, ok)
	_, ok = dir.ByID(0)
	assert.False(t, ok)
}

func TestBySpecialty(t *testing.T) {
	dir := newDirectory(t)

	assert.Equal(t, []int{5}, ids(dir.BySpecialty("Neurology")))
	assert.Equal(t, []int{1}, ids(dir.BySpecialty("Internal Medicine")))
	assert.Equal(t, []int{1, 3}, ids(dir.BySpecialty("Respiratory")))
	assert.Equal(t, []int{4}, ids(dir.BySpecialty("Chest Pain and Fatigue")))
	assert.Empty(t, dir.BySpecialty("Dermatology"))
	assert.Empty(t, dir.BySpecialty("neurology"))
}

func TestBySpecialtyAlwaysIncludesExactMatch(t *testing.T) {
	dir := newDirectory(t)

	for _, d := range models.DefaultRoster() {
		assert.Contains(t, ids(dir.BySpecialty(d.Specialty)), d.ID, "specialty %q", d.Specialty)
	}
}

func TestBySpecialtyPreservesOrderWithoutDuplicates(t *testing.T) {
	dir := newDirectory(t)

	// "Care" hits several tags on doctor 1 but must list it once.
	got := ids(dir.BySpecialty("Care"))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestRecommend(t *testing.T) {
	dir := newDirectory(t)

	got := dir.Recommend([]string{"Pulmonology", "Internal Medicine", "Internal Medicine", "Family Medicine"}, 3)
	assert.Equal(t, []int{3, 1, 2}, ids(got))

	got = dir.Recommend([]string{"Neurology", "Family Medicine"}, 3)
	assert.Equal(t, []int{5, 2}, ids(got))

	got = dir.Recommend([]string{"Cardiology", "Internal Medicine", "Neurology", "Family Medicine"}, 3)
	assert.Equal(t, []int{4, 1, 5}, ids(got))

	assert.Empty(t, dir.Recommend(nil, 3))
}

func TestMatchesSpecialtyIsBidirectional(t *testing.T) {
	d := models.Doctor{Specialty: "Cardiology", Specializations: []string{"Heart Disease"}}

	assert.True(t, MatchesSpecialty(d, "Cardio"))
	assert.True(t, MatchesSpecialty(d, "Pediatric Cardiology"))
	assert.True(t, MatchesSpecialty(d, "Heart"))
	assert.False(t, MatchesSpecialty(d, "Oncology"))
}
