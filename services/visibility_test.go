package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlist/api-go/models"
)

func (e *testEnv) seedContribution(t *testing.T, authorID uint, visibility, status string) models.Contribution {
	t.Helper()
	contribution := models.Contribution{
		AuthorID:   authorID,
		PlaceID:    1,
		Body:       "great view from the north ridge",
		Visibility: visibility,
		Status:     status,
	}
	if err := e.db.Create(&contribution).Error; err != nil {
		t.Fatalf("seed contribution: %v", err)
	}
	return contribution
}

func TestCanSeeFullProfile(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "owner", "follower", "stranger", "blocked")
	ctx := context.Background()
	owner, follower, stranger, blocked := users[0], users[1], users[2], users[3]

	require.NoError(t, env.graph.Create(ctx, follower.ID, owner.ID))
	require.NoError(t, env.blocks.Block(ctx, owner.ID, blocked.ID))

	check := func(viewerID uint, want bool, label string) {
		t.Helper()
		got, err := env.resolver.CanSeeFullProfile(ctx, viewerID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got, label)
	}

	// Public account: everyone but a blocked pair.
	check(owner.ID, true, "owner, public")
	check(stranger.ID, true, "stranger, public")
	check(0, true, "anonymous, public")
	check(blocked.ID, false, "blocked viewer, public")

	env.makePrivate(t, owner.ID)

	check(owner.ID, true, "owner, private")
	check(follower.ID, true, "follower, private")
	check(stranger.ID, false, "stranger, private")
	check(0, false, "anonymous, private")
	check(blocked.ID, false, "blocked viewer, private")
}

func TestFollowStatusResolution(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "owner", "follower", "requester", "rejected", "stranger")
	ctx := context.Background()
	owner := users[0]
	env.makePrivate(t, owner.ID)

	require.NoError(t, env.db.Create(&models.Follow{FollowerUserID: users[1].ID, FollowingUserID: owner.ID}).Error)
	_, err := env.requests.Request(ctx, users[2].ID, owner.ID)
	require.NoError(t, err)
	require.NoError(t, env.db.Create(&models.FollowRequest{
		RequesterID:  users[3].ID,
		TargetUserID: owner.ID,
		Status:       models.FollowRequestRejected,
	}).Error)

	cases := []struct {
		viewerID uint
		want     FollowStatus
		label    string
	}{
		{users[1].ID, StatusFollowing, "follower"},
		{users[2].ID, StatusRequested, "pending requester"},
		{users[3].ID, StatusNotFollowing, "rejected requester"},
		{users[4].ID, StatusNotFollowing, "stranger"},
		{0, StatusNotFollowing, "anonymous"},
		{owner.ID, StatusNotFollowing, "owner against self"},
	}
	for _, tc := range cases {
		status, err := env.resolver.FollowStatus(ctx, tc.viewerID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, status, tc.label)
	}
}

func TestFollowStatusBlockedPairReadsNotFollowing(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "owner", "viewer")
	ctx := context.Background()

	require.NoError(t, env.graph.Create(ctx, users[1].ID, users[0].ID))
	// Block from the owner's side; the cascade clears the edge and the
	// resolver must agree.
	require.NoError(t, env.blocks.Block(ctx, users[0].ID, users[1].ID))

	status, err := env.resolver.FollowStatus(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, StatusNotFollowing, status)
}

func TestContributionVisible(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "author", "follower", "stranger", "blocked")
	ctx := context.Background()
	author, follower, stranger, blocked := users[0], users[1], users[2], users[3]

	require.NoError(t, env.graph.Create(ctx, follower.ID, author.ID))
	require.NoError(t, env.blocks.Block(ctx, blocked.ID, author.ID))

	public := env.seedContribution(t, author.ID, models.VisibilityPublic, models.ContributionApproved)
	followersOnly := env.seedContribution(t, author.ID, models.VisibilityFollowersOnly, models.ContributionApproved)
	private := env.seedContribution(t, author.ID, models.VisibilityPrivate, models.ContributionApproved)
	inModeration := env.seedContribution(t, author.ID, models.VisibilityPublic, models.ContributionPending)

	cases := []struct {
		viewerID     uint
		contribution models.Contribution
		want         bool
		label        string
	}{
		{author.ID, public, true, "author sees own public"},
		{author.ID, private, true, "author sees own private"},
		{author.ID, inModeration, true, "author sees own in-moderation"},
		{follower.ID, public, true, "follower sees public"},
		{follower.ID, followersOnly, true, "follower sees followers_only"},
		{follower.ID, private, false, "follower blocked from private"},
		{follower.ID, inModeration, false, "moderation hides from follower"},
		{stranger.ID, public, true, "stranger sees public"},
		{stranger.ID, followersOnly, false, "stranger blocked from followers_only"},
		{0, public, true, "anonymous sees public"},
		{0, followersOnly, false, "anonymous blocked from followers_only"},
		{blocked.ID, public, false, "block overrides public"},
	}
	for _, tc := range cases {
		visible, err := env.resolver.ContributionVisible(ctx, tc.viewerID, tc.contribution)
		require.NoError(t, err)
		assert.Equal(t, tc.want, visible, tc.label)
	}
}

func TestVisibleContributionsListing(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "author", "follower", "stranger", "blocked")
	ctx := context.Background()
	author, follower, stranger, blocked := users[0], users[1], users[2], users[3]

	require.NoError(t, env.graph.Create(ctx, follower.ID, author.ID))
	require.NoError(t, env.blocks.Block(ctx, author.ID, blocked.ID))

	env.seedContribution(t, author.ID, models.VisibilityPublic, models.ContributionApproved)
	env.seedContribution(t, author.ID, models.VisibilityFollowersOnly, models.ContributionApproved)
	env.seedContribution(t, author.ID, models.VisibilityPrivate, models.ContributionApproved)
	env.seedContribution(t, author.ID, models.VisibilityPublic, models.ContributionPending)

	counts := []struct {
		viewerID uint
		want     int
		label    string
	}{
		{author.ID, 4, "author sees everything"},
		{follower.ID, 2, "follower sees public + followers_only"},
		{stranger.ID, 1, "stranger sees public only"},
		{0, 1, "anonymous sees public only"},
		{blocked.ID, 0, "blocked viewer sees nothing"},
	}
	for _, tc := range counts {
		contributions, err := env.resolver.VisibleContributions(ctx, tc.viewerID, author.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, contributions, tc.want, tc.label)
	}
}

func TestListVisibility(t *testing.T) {
	env := newTestEnv(t)
	users := env.seedUsers(t, "owner", "viewer", "blocked")
	ctx := context.Background()
	owner, viewer, blockedUser := users[0], users[1], users[2]

	hide := true
	_, _, err := env.privacy.Update(ctx, owner.ID, PrivacyPatch{HideFollowersList: &hide})
	require.NoError(t, err)
	require.NoError(t, env.blocks.Block(ctx, owner.ID, blockedUser.ID))

	followers, following, err := env.resolver.ListVisibility(ctx, owner.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, followers, "owner always sees own lists")
	assert.True(t, following)

	followers, following, err = env.resolver.ListVisibility(ctx, viewer.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, followers, "hidden per flag")
	assert.True(t, following)

	followers, following, err = env.resolver.ListVisibility(ctx, blockedUser.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, followers)
	assert.False(t, following, "block hides both lists")
}
