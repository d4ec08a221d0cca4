package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatflow/config"
	"chatflow/pkg/cache"
	"chatflow/pkg/repo/driver/store"
)

func newChatRepo(t *testing.T) ChatRepoImpl {
	t.Helper()
	cache.Init()
	return NewChatRepo(store.NewMemoryStore(), &config.ChatflowConfModel{})
}

func TestBlockUser(t *testing.T) {
	chatRepo := newChatRepo(t)
	ctx := context.Background()

	chatRepo.BlockUser(ctx, "u-me", "u-alice")
	chatRepo.BlockUser(ctx, "u-me", "u-alice") // repeat is a no-op
	chatRepo.BlockUser(ctx, "u-me", "u-bob")

	assert.Equal(t, []string{"u-alice", "u-bob"}, chatRepo.GetBlockedUsers(ctx, "u-me"))
	assert.True(t, chatRepo.IsBlockedUser(ctx, "u-me", "u-alice"))
	assert.False(t, chatRepo.IsBlockedUser(ctx, "u-me", "u-carol"))

	// per-user lists are independent
	assert.Empty(t, chatRepo.GetBlockedUsers(ctx, "u-alice"))
}

func TestUnblockUser(t *testing.T) {
	chatRepo := newChatRepo(t)
	ctx := context.Background()

	chatRepo.BlockUser(ctx, "u-me", "u-alice")
	chatRepo.UnblockUser(ctx, "u-me", "u-alice")
	chatRepo.UnblockUser(ctx, "u-me", "u-never-blocked")

	assert.Empty(t, chatRepo.GetBlockedUsers(ctx, "u-me"))
	assert.False(t, chatRepo.IsBlockedUser(ctx, "u-me", "u-alice"))
}

func TestIsBlockedUserFillsCacheLazily(t *testing.T) {
	cache.Init()
	db := store.NewMemoryStore()
	ctx := context.Background()

	// simulate state written by an earlier process
	seeded := NewChatRepo(db, &config.ChatflowConfModel{})
	seeded.BlockUser(ctx, "u-me", "u-alice")

	// fresh cache, same store
	cache.Init()
	chatRepo := NewChatRepo(db, &config.ChatflowConfModel{})
	require.True(t, chatRepo.IsBlockedUser(ctx, "u-me", "u-alice"))
}
