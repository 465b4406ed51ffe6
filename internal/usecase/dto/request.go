package dto

import "time"

// CoverageQuery - параметры запроса покрытия
type CoverageQuery struct {
	Window int `query:"window" validate:"omitempty,gt=0,even"`
}

// RideListQuery - фильтр списка поездок, даты в RFC3339
type RideListQuery struct {
	Since string `query:"since" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Until string `query:"until" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=10000"`
}

// CreateRideRequest - запрос на сохранение поездки
type CreateRideRequest struct {
	ID            int64     `json:"id" validate:"required,gt=0"`
	Title         string    `json:"title" validate:"required,max=255"`
	Distance      float64   `json:"dist" validate:"omitempty,min=0"`
	StartDate     time.Time `json:"date" validate:"required"`
	MaxSpeed      float64   `json:"max" validate:"omitempty,min=0"`
	AverageSpeed  float64   `json:"avg" validate:"omitempty,min=0"`
	MovingTime    int       `json:"net" validate:"omitempty,min=0"`
	ElapsedTime   int       `json:"gross" validate:"omitempty,min=0"`
	ElevationGain float64   `json:"elev"`
	Polyline      string    `json:"polyline" validate:"required"`
}

// SyncRequest - запрос на синхронизацию; нужен либо токен, либо OAuth код
type SyncRequest struct {
	AccessToken string `json:"access_token" validate:"required_without=Code"`
	Code        string `json:"code" validate:"required_without=AccessToken"`
}
