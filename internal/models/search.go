package models

import (
	"time"
)

// SchoolSearch представляет запись о поиске ближайших школ
type SchoolSearch struct {
	ID          int64     `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	RadiusKm    float64   `json:"radius_km"`
	ResultCount int       `json:"result_count"`
	SearchedAt  time.Time `json:"searched_at"`
}

// Stats - агрегированная статистика сервиса
type Stats struct {
	TotalSchools  int `json:"total_schools"`
	SearchCount   int `json:"search_count"`
	WindowMinutes int `json:"window_minutes"`
}
