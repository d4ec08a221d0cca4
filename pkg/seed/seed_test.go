package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatflow/config"
	"chatflow/pkg/entities"
	"chatflow/pkg/repo"
	"chatflow/pkg/repo/driver/store"
)

func TestDemoUsers(t *testing.T) {
	ctx := context.Background()
	userRepo := repo.NewUserRepo(store.NewMemoryStore(), &config.ChatflowConfModel{})

	DemoUsers(ctx, userRepo)

	users := userRepo.GetUsers(ctx)
	require.Len(t, users, 4)

	var usernames []string
	for _, user := range users {
		usernames = append(usernames, user.Username)
		assert.NotEmpty(t, user.ProfilePicture)
	}
	assert.Equal(t, []string{"alice_smith", "bob_wilson", "emma_davis", "john_doe"}, usernames)
}

func TestDemoUsersSkipsPopulatedStore(t *testing.T) {
	ctx := context.Background()
	userRepo := repo.NewUserRepo(store.NewMemoryStore(), &config.ChatflowConfModel{})

	existing := []entities.User{{ID: "u-real", Username: "real_person", Email: "real@example.com"}}
	userRepo.SaveUsers(ctx, existing)

	DemoUsers(ctx, userRepo)
	assert.Equal(t, existing, userRepo.GetUsers(ctx))
}
