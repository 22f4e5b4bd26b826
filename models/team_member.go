package models

import "time"

type TeamMember struct {
	ID              int       `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Role            string    `json:"role" db:"role"`
	Description     string    `json:"description" db:"description"`
	ImageURL        string    `json:"image_url" db:"image_url"`
	YearsExperience int       `json:"years_experience" db:"years_experience"`
	SortOrder       int       `json:"sort_order" db:"sort_order"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
