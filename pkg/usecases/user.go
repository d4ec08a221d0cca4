package usecases

import (
	"context"
	"math/rand"

	uuidLib "github.com/google/uuid"

	"chatflow/config"
	"chatflow/pkg/entities"
	"chatflow/pkg/repo"
	"chatflow/utilities"
)

var defaultAvatars = []string{
	"https://images.pexels.com/photos/771742/pexels-photo-771742.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	"https://images.pexels.com/photos/697509/pexels-photo-697509.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	"https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	"https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	"https://images.pexels.com/photos/769745/pexels-photo-769745.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
}

type UserUseCases struct {
	repo    repo.UserRepoImply
	conf    *config.ChatflowConfModel
	session *entities.Session
}

type UserUseCaseImply interface {
	RestoreSession(ctx context.Context)
	Login(ctx context.Context, email, password string) bool
	Signup(ctx context.Context, request entities.SignupRequest) bool
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, updates entities.ProfileUpdate)
	Session() *entities.Session
}

// NewUserUseCases builds the identity provider around an externally owned
// session object so chat usecases observe the same session.
func NewUserUseCases(userRepo repo.UserRepoImply, conf *config.ChatflowConfModel, session *entities.Session) UserUseCaseImply {
	return &UserUseCases{
		repo:    userRepo,
		conf:    conf,
		session: session,
	}
}

func (user *UserUseCases) Session() *entities.Session {
	return user.session
}

// RestoreSession loads any persisted session at startup; absent keys leave the
// session unauthenticated.
func (user *UserUseCases) RestoreSession(ctx context.Context) {
	restored := user.repo.LoadSession(ctx)
	user.session.IsAuthenticated = restored.IsAuthenticated
	user.session.CurrentUser = restored.CurrentUser
}

// Login succeeds only when a user with the given email exists and the password
// equals the configured sentinel. No distinction between "not found" and
// "wrong password" is surfaced.
func (user *UserUseCases) Login(ctx context.Context, email, password string) bool {
	log := utilities.NewLogger("Login")

	found, ok := user.repo.FindUserByEmail(ctx, email)
	if !ok || password != user.conf.Auth.SentinelPassword {
		log.Debugf("login rejected for %s", email)
		return false
	}

	found.IsOnline = true
	found.LastSeen = utilities.TimeNow()
	user.repo.UpsertUser(ctx, found)

	user.session.IsAuthenticated = true
	user.session.CurrentUser = &found
	user.repo.SaveSession(ctx, *user.session)

	log.Infof("user %s logged in", found.ID)
	return true
}

// Signup rejects an email or username collision and otherwise creates the
// user, persists it and establishes the session.
func (user *UserUseCases) Signup(ctx context.Context, request entities.SignupRequest) bool {
	log := utilities.NewLogger("Signup")

	if user.repo.UserExists(ctx, request.Email, request.Username) {
		log.Debugf("signup rejected, identity taken: %s/%s", request.Email, request.Username)
		return false
	}

	newUser := entities.User{
		ID:             uuidLib.NewString(),
		Username:       request.Username,
		Email:          request.Email,
		Name:           request.Name,
		ProfilePicture: defaultAvatars[rand.Intn(len(defaultAvatars))],
		IsOnline:       true,
		LastSeen:       utilities.TimeNow(),
	}
	user.repo.UpsertUser(ctx, newUser)

	user.session.IsAuthenticated = true
	user.session.CurrentUser = &newUser
	user.repo.SaveSession(ctx, *user.session)

	log.Infof("user %s signed up", newUser.ID)
	return true
}

// Logout marks the current user offline and tears the session down. A no-op
// when unauthenticated.
func (user *UserUseCases) Logout(ctx context.Context) {
	if user.session.CurrentUser != nil {
		current := *user.session.CurrentUser
		current.IsOnline = false
		current.LastSeen = utilities.TimeNow()
		user.repo.UpsertUser(ctx, current)
	}

	user.session.IsAuthenticated = false
	user.session.CurrentUser = nil
	user.repo.SaveSession(ctx, *user.session)
}

// UpdateProfile merges the non-empty fields into the current user and
// persists both the session copy and the collection entry.
func (user *UserUseCases) UpdateProfile(ctx context.Context, updates entities.ProfileUpdate) {
	if user.session.CurrentUser == nil {
		return
	}

	current := *user.session.CurrentUser
	if updates.Name != "" {
		current.Name = updates.Name
	}
	if updates.Username != "" {
		current.Username = updates.Username
	}
	if updates.Email != "" {
		current.Email = updates.Email
	}
	if updates.ProfilePicture != "" {
		current.ProfilePicture = updates.ProfilePicture
	}

	user.session.CurrentUser = &current
	user.repo.SaveSession(ctx, *user.session)
	user.repo.UpsertUser(ctx, current)
}
