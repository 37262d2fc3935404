package geo

import (
	"math"

	"github.com/shenikar/school_locator/internal/models"
)

// boxMarginKm покрывает округление расстояний до 0.01 км
const boxMarginKm = 0.005

// Box - прямоугольник в координатах широта/долгота для предварительной фильтрации в бд
type Box struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Contains проверяет, попадает ли точка в прямоугольник
func (b Box) Contains(p models.GeoPoint) bool {
	return p.Latitude >= b.MinLat && p.Latitude <= b.MaxLat &&
		p.Longitude >= b.MinLng && p.Longitude <= b.MaxLng
}

// BoundingBox возвращает прямоугольник, который содержит все точки не дальше radiusKm от center.
// Если круг захватывает полюс или пересекает 180-й меридиан, диапазон долгот расширяется до полного.
func BoundingBox(center models.GeoPoint, radiusKm float64) Box {
	angular := (radiusKm + boxMarginKm) / EarthRadiusKm
	deltaLat := toDegrees(angular)

	box := Box{
		MinLat: center.Latitude - deltaLat,
		MaxLat: center.Latitude + deltaLat,
		MinLng: -180,
		MaxLng: 180,
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 {
		box.MinLat = math.Max(box.MinLat, -90)
		box.MaxLat = math.Min(box.MaxLat, 90)
		return box
	}

	ratio := math.Sin(angular) / math.Cos(toRadians(center.Latitude))
	if ratio >= 1 {
		return box
	}
	deltaLng := toDegrees(math.Asin(ratio))

	minLng := center.Longitude - deltaLng
	maxLng := center.Longitude + deltaLng
	if minLng < -180 || maxLng > 180 {
		return box
	}
	box.MinLng = minLng
	box.MaxLng = maxLng
	return box
}
