package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/shenikar/school_locator/internal/geo"
	"github.com/shenikar/school_locator/internal/models"
	"github.com/shenikar/school_locator/internal/service"
	"github.com/shenikar/school_locator/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTolerance = 0.0001

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestLoad(t *testing.T) {
	records, err := Load(strings.NewReader(`[
		{"name": "Greenwood High", "address": "12 Park Lane", "latitude": 12.97, "longitude": 77.59},
		{"name": "Riverside School", "address": "4 River Road", "latitude": -33.86, "longitude": 151.2}
	]`))

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Riverside School", records[1].Name)
	assert.Equal(t, 151.2, records[1].Longitude)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"name": "not an array"}`))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSchoolService(ctrl)

	records := []Record{
		{Name: "A", Address: "Addr A", Latitude: 1, Longitude: 1},
		{Name: "B", Address: "Addr B", Latitude: 2, Longitude: 2},
		{Name: "C", Address: "Addr C", Latitude: 95, Longitude: 1},
	}

	svc.EXPECT().AddSchool(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.School) error {
		switch s.Name {
		case "B":
			return fmt.Errorf("service: %w", service.ErrDuplicateLocation)
		case "C":
			return fmt.Errorf("service: %w", geo.ErrInvalidArgument)
		}
		return nil
	}).Times(3)

	res, err := Run(context.Background(), svc, records, 2, testTolerance, quietLogger())

	require.NoError(t, err)
	assert.Equal(t, Result{Added: 1, Skipped: 2}, res)
}

func TestRun_StopsOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSchoolService(ctrl)

	svc.EXPECT().AddSchool(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(1)

	res, err := Run(context.Background(), svc, []Record{{Name: "A", Address: "Addr A"}}, 1, testTolerance, quietLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 0, res.Added)
}

func TestRun_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSchoolService(ctrl)

	res, err := Run(context.Background(), svc, nil, 4, testTolerance, quietLogger())

	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestRun_SameLocationInBatchAddedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSchoolService(ctrl)

	records := []Record{
		{Name: "First", Address: "Addr 1", Latitude: 1, Longitude: 1},
		{Name: "Second", Address: "Addr 2", Latitude: 1, Longitude: 1},
		{Name: "Third", Address: "Addr 3", Latitude: 1.00005, Longitude: 0.99995},
		{Name: "Fourth", Address: "Addr 4", Latitude: 1, Longitude: 1},
		{Name: "Elsewhere", Address: "Addr 5", Latitude: 1.001, Longitude: 1},
	}

	var mu sync.Mutex
	var names []string
	svc.EXPECT().AddSchool(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.School) error {
		mu.Lock()
		defer mu.Unlock()
		names = append(names, s.Name)
		return nil
	}).Times(2)

	res, err := Run(context.Background(), svc, records, 4, testTolerance, quietLogger())

	require.NoError(t, err)
	assert.Equal(t, Result{Added: 2, Skipped: 3}, res)
	assert.ElementsMatch(t, []string{"First", "Elsewhere"}, names)
}
