package usecases

import (
	"context"
	"sort"
	"time"

	"chatflow/pkg/entities"
	"chatflow/utilities"
)

// Derived read views. Pure over the loaded state, nothing here persists.

const groupAvatar = "https://images.pexels.com/photos/1181673/pexels-photo-1181673.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop"

// ChatList returns the current user's chats, search-filtered and ordered by
// most recent message. Group chats match on name; private chats match on the
// other participant's name or username. Chats without a lastMessage sink to
// the bottom.
func (c *ChatUseCases) ChatList(ctx context.Context, search string) []entities.ChatView {
	current := c.session.CurrentUser
	if current == nil {
		return nil
	}

	users := c.userRepo.GetUsers(ctx)
	messages := c.repo.GetMessages(ctx)

	var views []entities.ChatView
	for _, chat := range c.repo.GetChats(ctx) {
		if !utilities.ContainsString(chat.Participants, current.ID) {
			continue
		}
		if !c.matchesSearch(chat, users, current.ID, search) {
			continue
		}

		view := entities.ChatView{Chat: chat}
		view.DisplayName, view.ProfilePicture, view.IsOnline = displayInfo(chat, users, current.ID)
		view.UnreadCount = unreadCount(messages[chat.ID], current.ID)
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return lastMessageTime(views[i].Chat).After(lastMessageTime(views[j].Chat))
	})

	return views
}

// ChatMessages returns the chat's full message sequence, tombstones included;
// rendering deleted messages as placeholders is the presentation layer's job.
func (c *ChatUseCases) ChatMessages(ctx context.Context, chatID string) []entities.Message {
	return c.repo.GetMessages(ctx)[chatID]
}

// UnreadCount counts messages not sent by the current user and not yet seen.
func (c *ChatUseCases) UnreadCount(ctx context.Context, chatID string) int {
	current := c.session.CurrentUser
	if current == nil {
		return 0
	}
	return unreadCount(c.repo.GetMessages(ctx)[chatID], current.ID)
}

// NewChatCandidates lists every known user except the current user and anyone
// the current user has blocked, narrowed by a case-insensitive substring match
// on name or username.
func (c *ChatUseCases) NewChatCandidates(ctx context.Context, search string) []entities.User {
	current := c.session.CurrentUser
	if current == nil {
		return nil
	}

	var candidates []entities.User
	for _, user := range c.userRepo.GetUsers(ctx) {
		if user.ID == current.ID {
			continue
		}
		if c.repo.IsBlockedUser(ctx, current.ID, user.ID) {
			continue
		}
		if search != "" && !utilities.ContainsFold(user.Name, search) &&
			!utilities.ContainsFold(user.Username, search) {
			continue
		}
		candidates = append(candidates, user)
	}

	return candidates
}

func (c *ChatUseCases) matchesSearch(chat entities.Chat, users []entities.User, currentID, search string) bool {
	if search == "" {
		return true
	}

	if chat.Type == entities.ChatTypeGroup && chat.Name != "" {
		return utilities.ContainsFold(chat.Name, search)
	}

	other, ok := otherParticipant(chat, users, currentID)
	if !ok {
		return false
	}
	return utilities.ContainsFold(other.Name, search) || utilities.ContainsFold(other.Username, search)
}

func unreadCount(messages []entities.Message, currentID string) int {
	count := 0
	for _, msg := range messages {
		if msg.SenderID != currentID && msg.Status != entities.MsgSeen {
			count++
		}
	}
	return count
}

func lastMessageTime(chat entities.Chat) time.Time {
	if chat.LastMessage == nil {
		return time.Time{}
	}
	return chat.LastMessage.Timestamp
}

func displayInfo(chat entities.Chat, users []entities.User, currentID string) (name, avatar string, online bool) {
	if chat.Type == entities.ChatTypeGroup {
		name = chat.Name
		if name == "" {
			name = "Group Chat"
		}
		return name, groupAvatar, false
	}

	other, ok := otherParticipant(chat, users, currentID)
	if !ok {
		return "Unknown User", defaultAvatars[0], false
	}

	avatar = other.ProfilePicture
	if avatar == "" {
		avatar = defaultAvatars[0]
	}
	return other.Name, avatar, other.IsOnline
}

func otherParticipant(chat entities.Chat, users []entities.User, currentID string) (entities.User, bool) {
	for _, id := range chat.Participants {
		if id == currentID {
			continue
		}
		for _, user := range users {
			if user.ID == id {
				return user, true
			}
		}
		// participant exists but the user record is gone
		return entities.User{}, false
	}
	return entities.User{}, false
}
