package seeker

import "github.com/google/uuid"

type Profile struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	FullName string
	Skills   string
}
