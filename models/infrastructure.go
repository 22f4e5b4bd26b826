package models

import "time"

// SportsInfrastructure описывает спортивный объект с галереей изображений.
type SportsInfrastructure struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Area      string    `json:"area" db:"area"`
	Images    []string  `json:"images" db:"images"`
	Amenities []string  `json:"amenities" db:"amenities"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
