package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Name     string `json:"name"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"default:'staff'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
