package models

import (
	"time"
)

// User is a registered participant. Password and identity-store mechanics
// live with the external identity provider; this table only carries what
// the conversation aggregate and the token issuer need.
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Role      string    `gorm:"not null;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
