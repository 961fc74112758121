package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Place struct {
	gorm.Model
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Categories  pq.StringArray `json:"categories" gorm:"type:text[]"`
	Address     string         `json:"address" gorm:"not null"`
	Latitude    float64        `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude   float64        `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	Rating      float64        `json:"rating" gorm:"not null;default:0;type:decimal(3,2)"`
	PlaceType   string         `json:"placeType" gorm:"not null"`
	PlaceImage  string         `json:"placeImage"`
	Website     string         `json:"website"`
	Features    pq.StringArray `json:"features" gorm:"type:text[]"` // ["wifi", "parking", "outdoor_seating"]
	IsVerified  bool           `json:"isVerified" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	Contributions []Contribution `json:"contributions" gorm:"foreignKey:PlaceID"`
}
