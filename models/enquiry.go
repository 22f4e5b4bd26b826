package models

import "time"

// EnquiryStatus представляет статусы обращения, соответствующие ENUM в БД.
type EnquiryStatus string

const (
	EnquiryNew        EnquiryStatus = "NEW"
	EnquiryInProgress EnquiryStatus = "IN_PROGRESS"
	EnquiryResolved   EnquiryStatus = "RESOLVED"
	EnquiryClosed     EnquiryStatus = "CLOSED"
)

func (s EnquiryStatus) IsValid() bool {
	switch s {
	case EnquiryNew, EnquiryInProgress, EnquiryResolved, EnquiryClosed:
		return true
	}
	return false
}

type Enquiry struct {
	ID        int           `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Phone     *string       `json:"phone,omitempty" db:"phone"`
	Message   string        `json:"message" db:"message"`
	Status    EnquiryStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}
