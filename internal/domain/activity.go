package domain

import "time"

// ActivityTypeRide - тип активности, который синхронизируется
const ActivityTypeRide = "Ride"

// Activity - элемент списка активностей атлета во внешнем API
type Activity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ActivityMap holds the encoded route of an activity.
type ActivityMap struct {
	Polyline        string `json:"polyline"`
	SummaryPolyline string `json:"summary_polyline"`
}

// ActivityDetail - детальная информация об активности
type ActivityDetail struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Type               string      `json:"type"`
	Distance           float64     `json:"distance"`
	StartDateLocal     time.Time   `json:"start_date_local"`
	MaxSpeed           float64     `json:"max_speed"`
	AverageSpeed       float64     `json:"average_speed"`
	MovingTime         int         `json:"moving_time"`
	ElapsedTime        int         `json:"elapsed_time"`
	TotalElevationGain float64     `json:"total_elevation_gain"`
	Map                ActivityMap `json:"map"`
}

// ToRide converts the detail into a stored ride.
func (a *ActivityDetail) ToRide() *Ride {
	poly := a.Map.Polyline
	if poly == "" {
		poly = a.Map.SummaryPolyline
	}
	return &Ride{
		ID:            a.ID,
		Title:         a.Name,
		Distance:      a.Distance,
		StartDate:     a.StartDateLocal,
		MaxSpeed:      a.MaxSpeed,
		AverageSpeed:  a.AverageSpeed,
		MovingTime:    a.MovingTime,
		ElapsedTime:   a.ElapsedTime,
		ElevationGain: a.TotalElevationGain,
		Polyline:      poly,
	}
}
