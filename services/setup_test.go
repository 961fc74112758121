package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/wanderlist/api-go/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	users    *UserDirectory
	graph    *FollowGraph
	blocks   *BlockRegistry
	privacy  *PrivacySettingsStore
	requests *FollowRequestManager
	resolver *VisibilityResolver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	// One named in-memory database per test; a plain ":memory:" would give
	// each pooled connection its own empty schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Contribution{},
		&models.Follow{},
		&models.FollowRequest{},
		&models.Block{},
		&models.PrivacySettings{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	users := NewUserDirectory(db)
	notifier := NewNotifier(db)
	blocks := NewBlockRegistry(db)
	privacy := NewPrivacySettingsStore(db)
	graph := NewFollowGraph(db, users)
	requests := NewFollowRequestManager(db, graph, blocks, privacy, users, notifier)
	resolver := NewVisibilityResolver(db, graph, blocks, privacy)

	return &testEnv{
		db:       db,
		users:    users,
		graph:    graph,
		blocks:   blocks,
		privacy:  privacy,
		requests: requests,
		resolver: resolver,
	}
}

func (e *testEnv) seedUsers(t *testing.T, usernames ...string) []models.User {
	t.Helper()
	seeded := make([]models.User, len(usernames))
	for i, username := range usernames {
		seeded[i] = models.User{
			Username: username,
			Email:    username + "@example.com",
		}
	}
	if err := e.db.Create(&seeded).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}
	return seeded
}

func (e *testEnv) makePrivate(t *testing.T, userID uint) {
	t.Helper()
	private := true
	if _, _, err := e.privacy.Update(context.Background(), userID, PrivacyPatch{IsPrivateAccount: &private}); err != nil {
		t.Fatalf("make user %d private: %v", userID, err)
	}
}

func (e *testEnv) followCount(t *testing.T, followerID, followingID uint) int64 {
	t.Helper()
	var count int64
	err := e.db.Model(&models.Follow{}).
		Where("follower_user_id = ? AND following_user_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count follows: %v", err)
	}
	return count
}

func (e *testEnv) requestCount(t *testing.T, requesterID, targetID uint) int64 {
	t.Helper()
	var count int64
	err := e.db.Model(&models.FollowRequest{}).
		Where("requester_id = ? AND target_user_id = ?", requesterID, targetID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count requests: %v", err)
	}
	return count
}
