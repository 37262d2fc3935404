package models

import (
	"time"

	"github.com/google/uuid"
)

// GeoPoint - географическая точка в градусах (WGS 84)
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type School struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location возвращает координаты школы
func (s *School) Location() GeoPoint {
	return GeoPoint{Latitude: s.Latitude, Longitude: s.Longitude}
}

// RankedSchool - школа с расстоянием до точки запроса, в км.
// Не хранится в бд, пересчитывается на каждый запрос.
type RankedSchool struct {
	School
	DistanceKm float64 `json:"distance"`
}
