package usecases

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

type userEnv struct {
	user    UserUseCaseImply
	repo    repo.UserRepoImply
	session *entities.Session
	db      store.Store
}

func newUserEnv(t *testing.T) *userEnv {
	t.Helper()

	conf := &config.ChatflowConfModel{}
	conf.Auth.SentinelPassword = "password"

	db := store.NewMemoryStore()
	userRepo := repo.NewUserRepo(db, conf)
	userRepo.SaveUsers(context.Background(), []entities.User{
		{ID: "u-alice", Username: "alice_smith", Email: "alice@example.com", Name: "Alice Smith"},
	})

	session := &entities.Session{}
	return &userEnv{
		user:    NewUserUseCases(userRepo, conf, session),
		repo:    userRepo,
		session: session,
		db:      db,
	}
}

func TestLogin(t *testing.T) {
	env := newUserEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{name: "valid credentials", email: "alice@example.com", password: "password", want: true},
		{name: "wrong password", email: "alice@example.com", password: "hunter2", want: false},
		{name: "unknown email", email: "nobody@example.com", password: "password", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env.session.IsAuthenticated = false
			env.session.CurrentUser = nil

			got := env.user.Login(ctx, test.email, test.password)
			assert.Equal(t, test.want, got)
			assert.Equal(t, test.want, env.session.IsAuthenticated)
		})
	}
}

func TestLoginMarksUserOnline(t *testing.T) {
	env := newUserEnv(t)
	ctx := context.Background()

	require.True(t, env.user.Login(ctx, "alice@example.com", "password"))

	stored, ok := env.repo.FindUserByEmail(ctx, "alice@example.com")
	require.True(t, ok)
	assert.True(t, stored.IsOnline)
	assert.False(t, stored.LastSeen.IsZero())

	require.NotNil(t, env.session.CurrentUser)
	assert.Equal(t, "u-alice", env.session.CurrentUser.ID)
}

func TestSessionSurvivesRestart(t *testing.T) {
	env := newUserEnv(t)
	ctx := context.Background()

	require.True(t, env.user.Login(ctx, "alice@example.com", "password"))

	// a fresh usecase over the same store stands in for a process restart
	restarted := &entities.Session{}
	conf := &config.ChatflowConfModel{}
	conf.Auth.SentinelPassword = "password"
	fresh := NewUserUseCases(repo.NewUserRepo(env.db, conf), conf, restarted)
	fresh.RestoreSession(ctx)

	assert.True(t, restarted.IsAuthenticated)
	require.NotNil(t, restarted.CurrentUser)
	assert.Equal(t, "u-alice", restarted.CurrentUser.ID)
}

func TestSignup(t *testing.T) {
	env := newUserEnv(t)
	ctx := context.Background()

	ok := env.user.Signup(ctx, entities.SignupRequest{
		Username: "carol_jones", Email: "carol@example.com", Name: "Carol Jones", Password: "whatever",
	})
	require.True(t, ok)

	assert.True(t, env.session.IsAuthenticated)
	require.NotNil(t, env.session.CurrentUser)
	assert.NotEmpty(t, env.session.CurrentUser.ID)
	assert.NotEmpty(t, env.session.CurrentUser.ProfilePicture)

	stored, ok := env.repo.FindUserByEmail(ctx, "carol@example.com")
	require.True(t, ok)
	assert.Equal(t, env.session.CurrentUser.ID, stored.ID)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	env := newUserEnv(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		request entities.SignupRequest
	}{
		{name: "duplicate email", request: entities.SignupRequest{Username: "someone_new", Email: "alice@example.com", Name: "Someone"}},
		{name: "duplicate username", request: entities.SignupRequest{Username: "alice_smith", Email: "new@example.com", Name: "Someone"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.False(t, env.user.Signup(ctx, test.request))
			assert.False(t, env.session.IsAuthenticated)
			assert.Len(t, env.repo.GetUsers(ctx), 1)
		})
	}
}

func TestLogout(t *testing.T) {
	env := newUserEnv(t)
	ctx := context.Background()

	require.True(t, env.user.Login(ctx, "alice@example.com", "password"))
	env.user.Logout(ctx)

	assert.False(t, env.session.IsAuthenticated)
	assert.Nil(t, env.session.CurrentUser)

	stored, _ := env.repo.FindUserByEmail(ctx, "alice@example.com")
	assert.False(t, stored.IsOnline)

	// a restart after logout stays logged out
	assert.False(t, env.repo.LoadSession(ctx).IsAuthenticated)
}

func TestUpdateProfileMergesNonEmptyFields(t *testing.T) {
	env := newUserEnv(t)
	ctx := context.Background()

	require.True(t, env.user.Login(ctx, "alice@example.com", "password"))

	env.user.UpdateProfile(ctx, entities.ProfileUpdate{Name: "Alice B. Smith"})

	assert.Equal(t, "Alice B. Smith", env.session.CurrentUser.Name)
	assert.Equal(t, "alice_smith", env.session.CurrentUser.Username)

	stored, _ := env.repo.FindUserByEmail(ctx, "alice@example.com")
	assert.Equal(t, "Alice B. Smith", stored.Name)
}

func TestUpdateProfileWithoutSessionIsNoOp(t *testing.T) {
	env := newUserEnv(t)

	env.user.UpdateProfile(context.Background(), entities.ProfileUpdate{Name: "Ghost"})
	assert.Nil(t, env.session.CurrentUser)
}
