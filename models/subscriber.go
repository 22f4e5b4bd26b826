package models

import "time"

// Subscriber хранит ровно один контакт: email или телефон, второе поле NULL.
type Subscriber struct {
	ID        int       `json:"id" db:"id"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
