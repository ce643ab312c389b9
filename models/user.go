package models

import "time"

type Role string

const (
	RolePlayer  Role = "player"
	RoleCreator Role = "creator"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	MobileNumber string    `json:"mobile_number"`
	Role         Role      `gorm:"type:varchar(20);default:player" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsCreator() bool {
	return u.Role == RoleCreator
}
