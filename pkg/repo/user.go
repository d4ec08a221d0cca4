package repo

import (
	"context"

	"chatflow/config"
	"chatflow/pkg/consts"
	"chatflow/pkg/entities"
	"chatflow/pkg/repo/driver/store"
)

type UserRepo struct {
	Db   store.Store
	Conf *config.ChatflowConfModel
}

// GetUsers returns the full user collection; absent key yields an empty slice.
func (u UserRepo) GetUsers(_ context.Context) []entities.User {
	var users []entities.User
	u.Db.Get(consts.UsersKey, &users)
	return users
}

func (u UserRepo) SaveUsers(_ context.Context, users []entities.User) {
	u.Db.Set(consts.UsersKey, users)
}

// UpsertUser replaces the matching user in the collection, appending when the
// id is not yet present.
func (u UserRepo) UpsertUser(ctx context.Context, user entities.User) {
	users := u.GetUsers(ctx)

	found := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			found = true
			break
		}
	}
	if !found {
		users = append(users, user)
	}

	u.SaveUsers(ctx, users)
}

func (u UserRepo) FindUserByEmail(ctx context.Context, email string) (entities.User, bool) {
	for _, user := range u.GetUsers(ctx) {
		if user.Email == email {
			return user, true
		}
	}
	return entities.User{}, false
}

// UserExists reports whether any user carries the given email or username.
// Signup collision is checked through this single combined lookup.
func (u UserRepo) UserExists(ctx context.Context, email, username string) bool {
	for _, user := range u.GetUsers(ctx) {
		if user.Email == email || user.Username == username {
			return true
		}
	}
	return false
}

func (u UserRepo) SaveSession(_ context.Context, session entities.Session) {
	u.Db.Set(consts.AuthKey, session.IsAuthenticated)
	u.Db.Set(consts.CurrentUserKey, session.CurrentUser)
}

// LoadSession restores the persisted session; missing or inconsistent keys
// yield an unauthenticated session.
func (u UserRepo) LoadSession(_ context.Context) entities.Session {
	var (
		authenticated bool
		currentUser   *entities.User
	)

	u.Db.Get(consts.AuthKey, &authenticated)
	u.Db.Get(consts.CurrentUserKey, &currentUser)

	if !authenticated || currentUser == nil {
		return entities.Session{}
	}

	return entities.Session{IsAuthenticated: true, CurrentUser: currentUser}
}

type UserRepoImply interface {
	GetUsers(ctx context.Context) []entities.User
	SaveUsers(ctx context.Context, users []entities.User)
	UpsertUser(ctx context.Context, user entities.User)
	FindUserByEmail(ctx context.Context, email string) (entities.User, bool)
	UserExists(ctx context.Context, email, username string) bool
	SaveSession(ctx context.Context, session entities.Session)
	LoadSession(ctx context.Context) entities.Session
}

func NewUserRepo(db store.Store, conf *config.ChatflowConfModel) UserRepoImply {
	return &UserRepo{Db: db, Conf: conf}
}
