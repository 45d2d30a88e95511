package domain

import "time"

// Contact is a message submitted by a visitor through the public contact form.
type Contact struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
