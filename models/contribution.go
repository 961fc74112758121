package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	VisibilityPublic        = "public"
	VisibilityFollowersOnly = "followers_only"
	VisibilityPrivate       = "private"
)

const (
	ContributionApproved = "approved"
	ContributionPending  = "pending"
	ContributionRemoved  = "removed"
)

// Contribution is a user-authored place review/tip. Visibility controls which
// viewers may see it; Status reflects moderation, and anything other than
// approved is shown to the author only.
type Contribution struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	AuthorID   uint           `gorm:"not null;index" json:"author_id"`
	PlaceID    uint           `gorm:"not null;index" json:"place_id"`
	Body       string         `gorm:"type:text" json:"body"`
	PhotoURL   string         `json:"photo_url"`
	Rating     int            `gorm:"default:0" json:"rating"`
	Visibility string         `gorm:"not null;default:'public';type:varchar(20)" json:"visibility"`
	Status     string         `gorm:"not null;default:'approved';type:varchar(20)" json:"status"`

	Author User `gorm:"foreignKey:AuthorID" json:"author"`
}
