package seed

import (
	"context"
	"time"

	"chatflow/pkg/entities"
	"chatflow/pkg/repo"
	"chatflow/utilities"
)

// Demo contacts written at startup when the user collection is empty, so a
// fresh install has someone to talk to.
func DemoUsers(ctx context.Context, userRepo repo.UserRepoImply) {
	log := utilities.NewLogger("seed.DemoUsers")

	if len(userRepo.GetUsers(ctx)) > 0 {
		log.Debug("user collection already populated, skipping seed")
		return
	}

	now := utilities.TimeNow()
	demoUsers := []entities.User{
		{
			ID:             "demo-user-1",
			Username:       "alice_smith",
			Email:          "alice@example.com",
			Name:           "Alice Smith",
			ProfilePicture: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			IsOnline:       true,
			LastSeen:       now,
		},
		{
			ID:             "demo-user-2",
			Username:       "bob_wilson",
			Email:          "bob@example.com",
			Name:           "Bob Wilson",
			ProfilePicture: "https://images.pexels.com/photos/697509/pexels-photo-697509.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			IsOnline:       false,
			LastSeen:       now.Add(-2 * time.Hour),
		},
		{
			ID:             "demo-user-3",
			Username:       "emma_davis",
			Email:          "emma@example.com",
			Name:           "Emma Davis",
			ProfilePicture: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			IsOnline:       true,
			LastSeen:       now,
		},
		{
			ID:             "demo-user-4",
			Username:       "john_doe",
			Email:          "john@example.com",
			Name:           "John Doe",
			ProfilePicture: "https://images.pexels.com/photos/769745/pexels-photo-769745.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			IsOnline:       false,
			LastSeen:       now.Add(-24 * time.Hour),
		},
	}

	userRepo.SaveUsers(ctx, demoUsers)
	log.Infof("seeded %d demo users", len(demoUsers))
}
