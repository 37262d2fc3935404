package geo

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/school_locator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func school(name string, lat, lng float64) *models.School {
	return &models.School{
		ID:        uuid.New(),
		Name:      name,
		Address:   name + " street",
		Latitude:  lat,
		Longitude: lng,
	}
}

func names(ranked []models.RankedSchool) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Name
	}
	return out
}

func TestRank_OriginScenario(t *testing.T) {
	schools := []*models.School{
		school("B", 0, 1),
		school("A", 0, 0),
		school("C", 1, 0),
	}

	ranked, err := Rank(pt(0, 0), schools)

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(ranked))
	assert.Equal(t, 0.0, ranked[0].DistanceKm)
	assert.Equal(t, 111.19, ranked[1].DistanceKm)
	assert.Equal(t, 111.19, ranked[2].DistanceKm)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	schools := []*models.School{
		school("first", 10, 10),
		school("near", 0.5, 0),
		school("second", 10, 10),
		school("third", 10, 10),
	}

	ranked, err := Rank(pt(0, 0), schools)

	require.NoError(t, err)
	assert.Equal(t, []string{"near", "first", "second", "third"}, names(ranked))
}

func TestRank_EmptyInput(t *testing.T) {
	ranked, err := Rank(pt(0, 0), nil)

	require.NoError(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRank_InvalidReference(t *testing.T) {
	schools := []*models.School{school("A", 0, 0)}

	ranked, err := Rank(pt(100, 0), schools)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, ranked)
}

func TestRank_InvalidStoredLocation(t *testing.T) {
	schools := []*models.School{
		school("ok", 1, 1),
		school("broken", 0, 200),
	}

	ranked, err := Rank(pt(0, 0), schools)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorContains(t, err, schools[1].ID.String())
	assert.Nil(t, ranked)
}

func TestRank_NilSchool(t *testing.T) {
	ranked, err := Rank(pt(0, 0), []*models.School{school("A", 0, 0), nil})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, ranked)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	schools := []*models.School{
		school("far", 40, 40),
		school("near", 1, 1),
	}
	before := *schools[0]

	_, err := Rank(pt(0, 0), schools)

	require.NoError(t, err)
	assert.Equal(t, "far", schools[0].Name)
	assert.Equal(t, before, *schools[0])
}

func TestRank_SortedAndComplete(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	schools := make([]*models.School, 0, 300)
	for i := 0; i < 300; i++ {
		p := randomPoint(rnd)
		schools = append(schools, school("s", p.Latitude, p.Longitude))
	}
	reference := randomPoint(rnd)

	ranked, err := Rank(reference, schools)

	require.NoError(t, err)
	require.Len(t, ranked, len(schools))
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
	}
	for _, r := range ranked {
		assert.Equal(t, DistanceKm(reference, r.Location()), r.DistanceKm)
	}
}

func TestWithinRadius(t *testing.T) {
	ranked, err := Rank(pt(0, 0), []*models.School{
		school("C", 0, 3),
		school("A", 0, 0),
		school("B", 0, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, names(WithinRadius(ranked, 111.19)))
	assert.Equal(t, []string{"A"}, names(WithinRadius(ranked, 50)))
	assert.Equal(t, []string{"A", "B", "C"}, names(WithinRadius(ranked, 1000)))
	assert.Empty(t, WithinRadius(nil, 10))
}
