package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. The first account ever registered becomes ADMIN,
// every later registration gets USER.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	Name      string    `gorm:"default:''" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Role      string    `gorm:"default:'USER'" json:"role"`
	Password  string    `gorm:"not null" json:"password,omitempty"`
	Pin       string    `gorm:"not null" json:"pin,omitempty"`
	Balance   float64   `gorm:"default:0" json:"balance"`
	LastLogin time.Time `gorm:"default:NULL" json:"lastLogin"`
	IsDeleted bool      `gorm:"default:false" json:"isDeleted"`
}

// Sanitize blanks credential fields before the record leaves the API.
func (u *User) Sanitize() {
	u.Password = ""
	u.Pin = ""
}
