package geo

import (
	"math"

	"github.com/shenikar/school_locator/internal/models"
)

const (
	// EarthRadiusKm - средний радиус Земли
	EarthRadiusKm = 6371.0
	// MaxDistanceKm - расстояние между антиподами (π·R)
	MaxDistanceKm = math.Pi * EarthRadiusKm

	kmToMiles = 0.621371
)

// DistanceKm возвращает расстояние по большому кругу между двумя точками (формула гаверсинусов).
// Результат округлен до 2 знаков, см. round2.
func DistanceKm(a, b models.GeoPoint) float64 {
	phi1 := toRadians(a.Latitude)
	phi2 := toRadians(b.Latitude)
	deltaPhi := toRadians(b.Latitude - a.Latitude)
	deltaLambda := toRadians(b.Longitude - a.Longitude)

	sinPhi := math.Sin(deltaPhi / 2)
	sinLambda := math.Sin(deltaLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// Погрешность округления может дать h чуть больше 1 для антиподов
	h = math.Min(h, 1)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return round2(EarthRadiusKm * c)
}

// BearingDegrees возвращает начальный азимут из a в b, в диапазоне [0, 360)
func BearingDegrees(a, b models.GeoPoint) float64 {
	phi1 := toRadians(a.Latitude)
	phi2 := toRadians(b.Latitude)
	deltaLambda := toRadians(b.Longitude - a.Longitude)

	y := math.Sin(deltaLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)

	bearing := round2(math.Mod(toDegrees(math.Atan2(y, x))+360, 360))
	// 359.996 округляется до 360.00, что равно северу
	if bearing >= 360 {
		bearing = 0
	}
	return bearing
}

// MilesFromKm переводит километры в мили
func MilesFromKm(km float64) float64 {
	return round2(km * kmToMiles)
}

// DistanceMiles возвращает расстояние между точками в милях
func DistanceMiles(a, b models.GeoPoint) float64 {
	return MilesFromKm(DistanceKm(a, b))
}

// round2 округляет до 2 знаков после запятой, половина округляется от нуля (math.Round).
// Все расстояния и азимуты неотрицательны, поэтому это совпадает с округлением половины вверх.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
