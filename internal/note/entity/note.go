package entity

import "time"

// Note is a personal note owned by the account identified by UserEmail.
type Note struct {
	ID        int64
	UserEmail string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
