package models

import "time"

// Sport представляет вид спорта, отображаемый на публичной странице.
type Sport struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
