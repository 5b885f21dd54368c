package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a member account as stored in the persistence layer.
// Discipline names the course track the member belongs to; Category is the
// highest material level unlocked within that track. Both are empty/zero for
// admins, whose access is not gated by them.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Discipline   string    `json:"discipline,omitempty"`
	Category     int       `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
