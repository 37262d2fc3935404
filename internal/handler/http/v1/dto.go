package v1

import (
	"time"

	"github.com/google/uuid"
)

// AddSchoolRequest DTO для добавления школы
// @Description DTO для добавления школы
type AddSchoolRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=255,schoolname" example:"Greenwood High School"`
	Address   string   `json:"address" validate:"required,min=5,max=500" example:"12 Park Lane, Bengaluru"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude" example:"12.9716"`
	Longitude *float64 `json:"longitude" validate:"required,longitude" example:"77.5946"`
}

// ListSchoolsQuery параметры запроса списка школ
type ListSchoolsQuery struct {
	Latitude  *float64 `form:"latitude" validate:"required,latitude"`
	Longitude *float64 `form:"longitude" validate:"required,longitude"`
	Radius    float64  `form:"radius" validate:"omitempty,gt=0,lte=20016"`
}

// SchoolResponse DTO для ответа с информацией о школе
// @Description DTO для ответа с информацией о школе
type SchoolResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RankedSchoolResponse школа с расстоянием до точки запроса
// @Description школа с расстоянием (км) до точки запроса
type RankedSchoolResponse struct {
	SchoolResponse
	Distance      float64 `json:"distance"`
	DistanceMiles float64 `json:"distance_miles"`
	Bearing       float64 `json:"bearing"`
}

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIResponse общий конверт ответа
// @Description общий конверт ответа
type APIResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// SchoolEnvelope ответ с одной школой
type SchoolEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *SchoolResponse `json:"data"`
}

// ListSchoolsResponse ответ со списком школ, отсортированных по расстоянию
type ListSchoolsResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    []*RankedSchoolResponse `json:"data"`
	Count   int                     `json:"count"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TotalSchools  int    `json:"total_schools"`
	SearchCount   int    `json:"search_count"`
	WindowMinutes int    `json:"window_minutes"`
}

// HealthResponse ответ health-check
type HealthResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// NotFoundResponse ответ для неизвестного маршрута
type NotFoundResponse struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}
