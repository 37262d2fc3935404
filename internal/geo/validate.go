package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/shenikar/school_locator/internal/models"
)

// ErrInvalidArgument возвращается, если координаты вне допустимого диапазона
var ErrInvalidArgument = errors.New("invalid argument")

// IsValid проверяет, что пара чисел является допустимыми широтой и долготой
func IsValid(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) || math.IsInf(latitude, 0) || math.IsInf(longitude, 0) {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// ValidatePoint возвращает ошибку ErrInvalidArgument для недопустимой точки
func ValidatePoint(p models.GeoPoint) error {
	if !IsValid(p.Latitude, p.Longitude) {
		return fmt.Errorf("%w: coordinates (%v, %v) out of range", ErrInvalidArgument, p.Latitude, p.Longitude)
	}
	return nil
}
