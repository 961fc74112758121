package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlist/api-go/models"
)

func TestGetCreatesDefaultPublicRow(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "alice")
	ctx := context.Background()

	settings, err := env.privacy.Get(ctx, users[0].ID)
	require.NoError(t, err)
	assert.False(t, settings.IsPrivateAccount)
	assert.True(t, settings.ShowInSearch)
	assert.False(t, settings.HideFollowersList)
	assert.False(t, settings.HideFollowingList)

	// Second read reuses the lazily created row.
	again, err := env.privacy.Get(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	var count int64
	require.NoError(t, env.db.Model(&models.PrivacySettings{}).
		Where("user_id = ?", users[0].ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "alice")
	ctx := context.Background()
	env.makePrivate(t, users[0].ID)

	hide := true
	settings, autoApproved, err := env.privacy.Update(ctx, users[0].ID, PrivacyPatch{HideFollowersList: &hide})
	require.NoError(t, err)
	assert.EqualValues(t, 0, autoApproved)
	assert.True(t, settings.HideFollowersList)
	assert.True(t, settings.IsPrivateAccount, "untouched field must keep its value")
	assert.False(t, settings.HideFollowingList)
}

func TestEmptyPatchIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "alice")

	settings, autoApproved, err := env.privacy.Update(context.Background(), users[0].ID, PrivacyPatch{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, autoApproved)
	assert.False(t, settings.IsPrivateAccount)
}

func TestGoingPublicAutoApprovesPendingRequests(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "alice", "bob", "carol", "dave")
	ctx := context.Background()
	alice := users[0]
	env.makePrivate(t, alice.ID)

	for _, requester := range users[1:] {
		_, err := env.requests.Request(ctx, requester.ID, alice.ID)
		require.NoError(t, err)
	}

	public := false
	settings, autoApproved, err := env.privacy.Update(ctx, alice.ID, PrivacyPatch{IsPrivateAccount: &public})
	require.NoError(t, err)
	assert.False(t, settings.IsPrivateAccount)
	assert.EqualValues(t, 3, autoApproved)

	for _, requester := range users[1:] {
		assert.EqualValues(t, 1, env.followCount(t, requester.ID, alice.ID))
		assert.EqualValues(t, 0, env.requestCount(t, requester.ID, alice.ID))
	}

	// Same update again converts nothing.
	_, autoApproved, err = env.privacy.Update(ctx, alice.ID, PrivacyPatch{IsPrivateAccount: &public})
	require.NoError(t, err)
	assert.EqualValues(t, 0, autoApproved)
}

func TestGoingPublicSkipsRejectedRequests(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "alice", "bob")
	ctx := context.Background()
	alice, bob := users[0], users[1]
	env.makePrivate(t, alice.ID)

	_, err := env.requests.Request(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	var request models.FollowRequest
	require.NoError(t, env.db.Where("requester_id = ?", bob.ID).First(&request).Error)
	require.NoError(t, env.requests.Reject(ctx, request.ID, alice.ID))

	public := false
	_, autoApproved, err := env.privacy.Update(ctx, alice.ID, PrivacyPatch{IsPrivateAccount: &public})
	require.NoError(t, err)
	assert.EqualValues(t, 0, autoApproved)
	assert.EqualValues(t, 0, env.followCount(t, bob.ID, alice.ID))
	assert.EqualValues(t, 1, env.requestCount(t, bob.ID, alice.ID))
}

func TestGoingPublicToleratesExistingFollow(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "alice", "bob")
	ctx := context.Background()
	alice, bob := users[0], users[1]
	env.makePrivate(t, alice.ID)

	// A stale pending row alongside an existing edge must not break the
	// conversion or duplicate the edge.
	require.NoError(t, env.db.Create(&models.Follow{FollowerUserID: bob.ID, FollowingUserID: alice.ID}).Error)
	require.NoError(t, env.db.Create(&models.FollowRequest{
		RequesterID:  bob.ID,
		TargetUserID: alice.ID,
		Status:       models.FollowRequestPending,
	}).Error)

	public := false
	_, autoApproved, err := env.privacy.Update(ctx, alice.ID, PrivacyPatch{IsPrivateAccount: &public})
	require.NoError(t, err)
	assert.EqualValues(t, 1, autoApproved)
	assert.EqualValues(t, 1, env.followCount(t, bob.ID, alice.ID))
	assert.EqualValues(t, 0, env.requestCount(t, bob.ID, alice.ID))
}
