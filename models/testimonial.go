package models

import "time"

// Testimonial — отзыв участника сообщества.
type Testimonial struct {
	ID         int       `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Membership string    `json:"membership" db:"membership"`
	Comment    string    `json:"comment" db:"comment"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
