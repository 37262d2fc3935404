package v1

import (
	"github.com/shenikar/school_locator/internal/geo"
	"github.com/shenikar/school_locator/internal/models"
)

// DTOToSchoolModel преобразует DTO добавления в доменную модель.
// Вызывается после валидации, координаты не nil.
func DTOToSchoolModel(dto AddSchoolRequest) *models.School {
	return &models.School{
		Name:      dto.Name,
		Address:   dto.Address,
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
	}
}

// ModelToSchoolResponse преобразует доменную модель в DTO для ответа
func ModelToSchoolResponse(model *models.School) *SchoolResponse {
	return &SchoolResponse{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// RankedToResponses преобразует результат ранжирования в DTO, добавляя мили и азимут от reference
func RankedToResponses(reference models.GeoPoint, ranked []models.RankedSchool) []*RankedSchoolResponse {
	responses := make([]*RankedSchoolResponse, len(ranked))
	for i := range ranked {
		school := &ranked[i].School
		responses[i] = &RankedSchoolResponse{
			SchoolResponse: *ModelToSchoolResponse(school),
			Distance:       ranked[i].DistanceKm,
			DistanceMiles:  geo.MilesFromKm(ranked[i].DistanceKm),
			Bearing:        geo.BearingDegrees(reference, school.Location()),
		}
	}
	return responses
}
