package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/school_locator/internal/geo"
	"github.com/shenikar/school_locator/internal/models"
	"github.com/shenikar/school_locator/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schoolRowColumns = []string{"id", "name", "address", "latitude", "longitude", "created_at", "updated_at"}

func newTestRepository(t *testing.T) (pgxmock.PgxPoolIface, service.SchoolRepository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewSchoolRepository(mock)
}

func TestCreate_Success(t *testing.T) {
	mock, repo := newTestRepository(t)
	id := uuid.New()
	now := time.Now().UTC()
	school := &models.School{Name: "Greenwood High", Address: "12 Park Lane", Latitude: 12.97, Longitude: 77.59}

	mock.ExpectQuery("INSERT INTO schools").
		WithArgs("Greenwood High", "12 Park Lane", 12.97, 77.59).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

	err := repo.Create(context.Background(), school)

	require.NoError(t, err)
	assert.Equal(t, id, school.ID)
	assert.Equal(t, now, school.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Error(t *testing.T) {
	mock, repo := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO schools").
		WithArgs("A", "B", 1.0, 2.0).
		WillReturnError(errors.New("insert failed"))

	err := repo.Create(context.Background(), &models.School{Name: "A", Address: "B", Latitude: 1, Longitude: 2})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to create school")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_Success(t *testing.T) {
	mock, repo := newTestRepository(t)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("FROM schools WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(schoolRowColumns).
			AddRow(id.String(), "Riverside", "1 River Rd", 10.5, 20.25, now, now))

	school, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, school.ID)
	assert.Equal(t, "Riverside", school.Name)
	assert.Equal(t, models.GeoPoint{Latitude: 10.5, Longitude: 20.25}, school.Location())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	mock, repo := newTestRepository(t)
	id := uuid.New()

	mock.ExpectQuery("FROM schools WHERE id").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	school, err := repo.GetByID(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, school)
	assert.ErrorIs(t, err, service.ErrSchoolNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLocation_Found(t *testing.T) {
	mock, repo := newTestRepository(t)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`ABS\(latitude - \$1\) < \$3`).
		WithArgs(10.0, 20.0, 0.0001).
		WillReturnRows(pgxmock.NewRows(schoolRowColumns).
			AddRow(id.String(), "Existing", "Addr 1", 10.00005, 20.00005, now, now))

	school, err := repo.FindByLocation(context.Background(), 10, 20, 0.0001)

	require.NoError(t, err)
	require.NotNil(t, school)
	assert.Equal(t, id, school.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLocation_NotFound(t *testing.T) {
	mock, repo := newTestRepository(t)

	mock.ExpectQuery(`ABS\(latitude - \$1\) < \$3`).
		WithArgs(10.0, 20.0, 0.0001).
		WillReturnError(pgx.ErrNoRows)

	school, err := repo.FindByLocation(context.Background(), 10, 20, 0.0001)

	require.NoError(t, err)
	assert.Nil(t, school)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll_Success(t *testing.T) {
	mock, repo := newTestRepository(t)
	now := time.Now().UTC()
	id1, id2 := uuid.New(), uuid.New()

	mock.ExpectQuery("FROM schools ORDER BY created_at").
		WillReturnRows(pgxmock.NewRows(schoolRowColumns).
			AddRow(id1.String(), "One", "Addr 1", 1.0, 1.0, now, now).
			AddRow(id2.String(), "Two", "Addr 2", 2.0, 2.0, now, now))

	schools, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, schools, 2)
	assert.Equal(t, id1, schools[0].ID)
	assert.Equal(t, "Two", schools[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll_Empty(t *testing.T) {
	mock, repo := newTestRepository(t)

	mock.ExpectQuery("FROM schools ORDER BY created_at").
		WillReturnRows(pgxmock.NewRows(schoolRowColumns))

	schools, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, schools)
	assert.Empty(t, schools)
}

func TestListAll_QueryError(t *testing.T) {
	mock, repo := newTestRepository(t)

	mock.ExpectQuery("FROM schools ORDER BY created_at").
		WillReturnError(errors.New("connection refused"))

	schools, err := repo.ListAll(context.Background())

	require.Error(t, err)
	assert.Nil(t, schools)
	assert.ErrorContains(t, err, "failed to list schools")
}

func TestListWithinBox_PassesBounds(t *testing.T) {
	mock, repo := newTestRepository(t)
	now := time.Now().UTC()
	box := geo.Box{MinLat: -1, MaxLat: 1, MinLng: -2, MaxLng: 2}

	mock.ExpectQuery(`latitude BETWEEN \$1 AND \$2`).
		WithArgs(-1.0, 1.0, -2.0, 2.0).
		WillReturnRows(pgxmock.NewRows(schoolRowColumns).
			AddRow(uuid.New().String(), "Inside", "Addr", 0.5, 0.5, now, now))

	schools, err := repo.ListWithinBox(context.Background(), box)

	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, "Inside", schools[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_Success(t *testing.T) {
	mock, repo := newTestRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM schools;`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestSaveSearch_Success(t *testing.T) {
	mock, repo := newTestRepository(t)
	now := time.Now().UTC()
	search := &models.SchoolSearch{Latitude: 1, Longitude: 2, RadiusKm: 5, ResultCount: 3}

	mock.ExpectQuery("INSERT INTO school_searches").
		WithArgs(1.0, 2.0, 5.0, 3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "searched_at"}).AddRow(int64(99), now))

	err := repo.SaveSearch(context.Background(), search)

	require.NoError(t, err)
	assert.Equal(t, int64(99), search.ID)
	assert.Equal(t, now, search.SearchedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSearches_Success(t *testing.T) {
	mock, repo := newTestRepository(t)

	mock.ExpectQuery("FROM school_searches").
		WithArgs(60).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountSearches(context.Background(), 60)

	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSearches_Error(t *testing.T) {
	mock, repo := newTestRepository(t)

	mock.ExpectQuery("FROM school_searches").
		WithArgs(60).
		WillReturnError(errors.New("timeout"))

	_, err := repo.CountSearches(context.Background(), 60)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to count school searches")
}
