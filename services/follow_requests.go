package services

import (
	"context"
	"errors"
	"time"

	"github.com/wanderlist/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRequestManager runs the approval state machine for private accounts.
// Rows only ever hold pending or rejected: approval converts the row into a
// follow edge and deletes it, cancellation deletes it outright.
type FollowRequestManager struct {
	db       *gorm.DB
	graph    *FollowGraph
	blocks   *BlockRegistry
	privacy  *PrivacySettingsStore
	users    *UserDirectory
	notifier *Notifier
}

func NewFollowRequestManager(db *gorm.DB, graph *FollowGraph, blocks *BlockRegistry, privacy *PrivacySettingsStore, users *UserDirectory, notifier *Notifier) *FollowRequestManager {
	return &FollowRequestManager{
		db:       db,
		graph:    graph,
		blocks:   blocks,
		privacy:  privacy,
		users:    users,
		notifier: notifier,
	}
}

// Request is the single entry point for "follow this user". Public targets
// get a follow edge directly; private targets get a pending request. Both
// paths are idempotent: repeating the call reports the existing state.
func (m *FollowRequestManager) Request(ctx context.Context, requesterID, targetID uint) (FollowStatus, error) {
	if requesterID == targetID {
		return "", ValidationError("Cannot follow yourself")
	}
	blocked, err := m.blocks.HasBlockBetween(ctx, requesterID, targetID)
	if err != nil {
		return "", err
	}
	if blocked {
		return "", ForbiddenError("You cannot follow this user")
	}
	exists, err := m.users.Exists(ctx, targetID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", NotFoundError("User not found")
	}

	// An existing edge always wins, even when the account has since gone
	// private; it also keeps repeated follow calls from re-notifying.
	following, err := m.graph.IsFollowing(ctx, requesterID, targetID)
	if err != nil {
		return "", err
	}
	if following {
		return StatusFollowing, nil
	}

	settings, err := m.privacy.Get(ctx, targetID)
	if err != nil {
		return "", err
	}
	if !settings.IsPrivateAccount {
		if err := m.graph.Create(ctx, requesterID, targetID); err != nil {
			return "", err
		}
		m.notifier.Notify(ctx, models.NotificationFollow, requesterID, targetID, "started following you")
		return StatusFollowing, nil
	}

	var existing models.FollowRequest
	err = m.db.WithContext(ctx).
		Where("requester_id = ? AND target_user_id = ?", requesterID, targetID).
		First(&existing).Error
	switch {
	case err == nil && existing.Status == models.FollowRequestPending:
		return StatusRequested, nil
	case err == nil:
		// Rejected earlier; resubmission flips the same row back to pending.
		err = m.db.WithContext(ctx).Model(&models.FollowRequest{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"status":     models.FollowRequestPending,
				"created_at": time.Now(),
			}).Error
		if err != nil {
			return "", err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		request := models.FollowRequest{
			RequesterID:  requesterID,
			TargetUserID: targetID,
			Status:       models.FollowRequestPending,
		}
		if err := m.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&request).Error; err != nil {
			return "", err
		}
	default:
		return "", err
	}

	m.notifier.Notify(ctx, models.NotificationFollowRequest, requesterID, targetID, "requested to follow you")
	return StatusRequested, nil
}

// Approve converts the request into a follow edge and removes the row, all in
// one transaction. Only the request's target may approve.
func (m *FollowRequestManager) Approve(ctx context.Context, requestID, approverID uint) error {
	request, err := m.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.TargetUserID != approverID {
		return ForbiddenError("Only the request recipient can respond")
	}
	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertFollow(tx, request.RequesterID, request.TargetUserID); err != nil {
			return err
		}
		return tx.Delete(&models.FollowRequest{}, request.ID).Error
	})
	if err != nil {
		return err
	}
	m.notifier.Notify(ctx, models.NotificationFollowAccepted, approverID, request.RequesterID, "accepted your follow request")
	return nil
}

// Reject keeps the row with status rejected so the requester can resubmit
// later without creating a duplicate.
func (m *FollowRequestManager) Reject(ctx context.Context, requestID, approverID uint) error {
	request, err := m.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.TargetUserID != approverID {
		return ForbiddenError("Only the request recipient can respond")
	}
	return m.db.WithContext(ctx).Model(&models.FollowRequest{}).
		Where("id = ?", request.ID).
		Update("status", models.FollowRequestRejected).Error
}

// Cancel lets the requester withdraw a still-pending request. Reports whether
// a row was removed.
func (m *FollowRequestManager) Cancel(ctx context.Context, requesterID, targetID uint) (bool, error) {
	result := m.db.WithContext(ctx).
		Where("requester_id = ? AND target_user_id = ? AND status = ?",
			requesterID, targetID, models.FollowRequestPending).
		Delete(&models.FollowRequest{})
	return result.RowsAffected > 0, result.Error
}

// IncomingRequest is one entry of the approval inbox.
type IncomingRequest struct {
	RequestID   uint      `json:"requestId"`
	RequesterID uint      `json:"requesterId"`
	Username    string    `json:"username"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Avatar      string    `json:"avatar"`
	RequestedAt time.Time `json:"requestedAt"`
}

// ListIncoming returns the pending requests targeting userID, newest first.
func (m *FollowRequestManager) ListIncoming(ctx context.Context, userID uint, limit, offset int) ([]IncomingRequest, error) {
	var requests []IncomingRequest
	err := m.db.WithContext(ctx).Model(&models.FollowRequest{}).
		Select("follow_requests.id as request_id, follow_requests.requester_id, users.username, users.first_name, users.last_name, users.avatar, follow_requests.created_at as requested_at").
		Joins("JOIN users ON users.id = follow_requests.requester_id").
		Where("follow_requests.target_user_id = ? AND follow_requests.status = ?", userID, models.FollowRequestPending).
		Order("follow_requests.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&requests).Error
	return requests, err
}

func (m *FollowRequestManager) getRequest(ctx context.Context, requestID uint) (models.FollowRequest, error) {
	var request models.FollowRequest
	err := m.db.WithContext(ctx).First(&request, requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FollowRequest{}, NotFoundError("Follow request not found")
	}
	return request, err
}
