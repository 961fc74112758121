package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username  string         `gorm:"unique;not null" json:"username"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`

	Contributions []Contribution `json:"contributions" gorm:"foreignKey:AuthorID"`
}
