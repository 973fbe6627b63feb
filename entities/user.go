package entities

import "time"

const (
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"
)

type User struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // farmer|admin
	CreatedAt    time.Time
}
