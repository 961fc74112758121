package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/wanderlist/api-go/models"
	"gorm.io/gorm"
)

// Notifier persists in-app notifications. Delivery is best-effort: a failed
// write is logged and swallowed so it can never fail or delay the mutation
// that triggered it.
type Notifier struct {
	db *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

func (n *Notifier) Notify(ctx context.Context, notificationType string, actorID, recipientID uint, message string) {
	notification := models.Notification{
		Type:        notificationType,
		ActorID:     actorID,
		RecipientID: recipientID,
		DedupeKey:   uuid.New().String(),
		Message:     message,
	}
	if err := n.db.WithContext(ctx).Create(&notification).Error; err != nil {
		log.Printf("dropping %s notification to user %d: %v", notificationType, recipientID, err)
	}
}
