package models

import "time"

// ApplicationStatus представляет статусы заявки, соответствующие ENUM в БД.
type ApplicationStatus string

const (
	ApplicationApplied  ApplicationStatus = "APPLIED"
	ApplicationReviewed ApplicationStatus = "REVIEWED"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationApplied, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

type JobPosition struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Type        string    `json:"type" db:"type"`
	IsOpen      bool      `json:"is_open" db:"is_open"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type JobApplication struct {
	ID         int               `json:"id" db:"id"`
	PositionID int               `json:"position_id" db:"position_id"`
	Name       string            `json:"name" db:"name"`
	Email      string            `json:"email" db:"email"`
	Phone      string            `json:"phone" db:"phone"`
	ResumeURL  *string           `json:"resume_url,omitempty" db:"resume_url"`
	Status     ApplicationStatus `json:"status" db:"status"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`

	// Опциональная связанная вакансия (не мапится напрямую)
	Position *JobPosition `json:"position,omitempty" db:"-"`
}
