package geo

import (
	"fmt"
	"sort"

	"github.com/shenikar/school_locator/internal/models"
)

// Rank вычисляет расстояние от reference до каждой школы и сортирует по возрастанию.
// Сортировка стабильная: школы на одинаковом расстоянии сохраняют порядок входного слайса.
// Если reference или координаты любой школы недопустимы, возвращается ErrInvalidArgument
// и частичный результат не возвращается.
func Rank(reference models.GeoPoint, schools []*models.School) ([]models.RankedSchool, error) {
	if err := ValidatePoint(reference); err != nil {
		return nil, fmt.Errorf("reference point: %w", err)
	}

	ranked := make([]models.RankedSchool, 0, len(schools))
	for i, school := range schools {
		if school == nil {
			return nil, fmt.Errorf("%w: nil school at index %d", ErrInvalidArgument, i)
		}
		location := school.Location()
		if err := ValidatePoint(location); err != nil {
			return nil, fmt.Errorf("school %s: %w", school.ID, err)
		}
		ranked = append(ranked, models.RankedSchool{
			School:     *school,
			DistanceKm: DistanceKm(reference, location),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked, nil
}

// WithinRadius обрезает отсортированный результат Rank до школ не дальше radiusKm
func WithinRadius(ranked []models.RankedSchool, radiusKm float64) []models.RankedSchool {
	n := sort.Search(len(ranked), func(i int) bool {
		return ranked[i].DistanceKm > radiusKm
	})
	return ranked[:n]
}
