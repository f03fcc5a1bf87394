package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RolePatient UserRole = "Patient"
	RoleAdmin   UserRole = "Admin"
)

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"not null"`
	Role             UserRole  `json:"role" gorm:"not null;default:'Patient'"`
	IsVerified       bool      `json:"is_verified" gorm:"default:true"`
	RegistrationDate time.Time `json:"registration_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
