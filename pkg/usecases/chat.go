package usecases

import (
	"context"

	uuidLib "github.com/google/uuid"

	"chatflow/pkg/consts"
	"chatflow/pkg/entities"
	"chatflow/pkg/repo"
	"chatflow/utilities"
)

// EventSink receives a change event after every state mutation. The websocket
// fan-out implements it; tests plug in a recorder.
type EventSink interface {
	Broadcast(event entities.ChangeEvent)
}

// NotifierImply is the permission-gated local notification facility.
type NotifierImply interface {
	Notify(title, body string)
}

type ChatUseCases struct {
	repo     repo.ChatRepoImpl
	userRepo repo.UserRepoImply
	session  *entities.Session
	notifier NotifierImply
	events   EventSink
}

type ChatUseCaseImply interface {
	SendMessage(ctx context.Context, chatID, content, msgType string) (*entities.Message, bool)
	DeleteMessage(ctx context.Context, messageID, chatID string)
	CreateChat(ctx context.Context, participantIDs []string, chatType, name string) (string, bool)
	BlockUser(ctx context.Context, userID string)
	UnblockUser(ctx context.Context, userID string)
	MuteChat(ctx context.Context, chatID string)
	UnmuteChat(ctx context.Context, chatID string)
	MarkMessagesAsSeen(ctx context.Context, chatID string)

	ChatList(ctx context.Context, search string) []entities.ChatView
	ChatMessages(ctx context.Context, chatID string) []entities.Message
	UnreadCount(ctx context.Context, chatID string) int
	NewChatCandidates(ctx context.Context, search string) []entities.User
	BlockedUsers(ctx context.Context) []string
}

func NewChatUseCases(
	chatRepo repo.ChatRepoImpl, userRepo repo.UserRepoImply, session *entities.Session,
	notifier NotifierImply, events EventSink,
) ChatUseCaseImply {
	return &ChatUseCases{
		repo:     chatRepo,
		userRepo: userRepo,
		session:  session,
		notifier: notifier,
		events:   events,
	}
}

// SendMessage appends a freshly built message to the chat's sequence, updates
// the owning chat's lastMessage and fires a notification unless the chat is
// muted. Messages are born delivered; there is no transmission delay to
// simulate a sending phase.
func (c *ChatUseCases) SendMessage(ctx context.Context, chatID, content, msgType string) (*entities.Message, bool) {
	current := c.session.CurrentUser
	if current == nil || content == "" {
		return nil, false
	}

	if msgType != entities.MsgTypeImage {
		msgType = entities.MsgTypeText
	}

	message := entities.Message{
		ID:        uuidLib.NewString(),
		SenderID:  current.ID,
		ChatID:    chatID,
		Content:   content,
		Type:      msgType,
		Timestamp: utilities.TimeNow(),
		Status:    entities.MsgDelivered,
	}

	messages := c.repo.GetMessages(ctx)
	messages[chatID] = append(messages[chatID], message)
	c.repo.SaveMessages(ctx, messages)

	chats := c.repo.GetChats(ctx)
	var owner *entities.Chat
	for i := range chats {
		if chats[i].ID == chatID {
			lastMessage := message
			chats[i].LastMessage = &lastMessage
			owner = &chats[i]
			break
		}
	}
	c.repo.SaveChats(ctx, chats)

	if owner != nil && !owner.IsMuted {
		c.notifier.Notify(consts.NotificationTitle, content)
	}

	c.events.Broadcast(entities.ChangeEvent{Kind: entities.EventMessageSent, ChatID: chatID})
	return &message, true
}

// DeleteMessage tombstones the matching message. Unknown ids are a no-op and
// repeating the call leaves the state unchanged.
func (c *ChatUseCases) DeleteMessage(ctx context.Context, messageID, chatID string) {
	messages := c.repo.GetMessages(ctx)

	sequence, ok := messages[chatID]
	if !ok {
		return
	}

	for i := range sequence {
		if sequence[i].ID == messageID {
			sequence[i].DeletedForMe = true
		}
	}

	messages[chatID] = sequence
	c.repo.SaveMessages(ctx, messages)

	c.events.Broadcast(entities.ChangeEvent{Kind: entities.EventMessageDeleted, ChatID: chatID})
}

// CreateChat unions the given participants with the current user, persists the
// chat and returns its fresh id. Group chats require a name; participant
// counts beyond that are the caller's concern.
func (c *ChatUseCases) CreateChat(ctx context.Context, participantIDs []string, chatType, name string) (string, bool) {
	current := c.session.CurrentUser
	if current == nil {
		return "", false
	}

	if chatType == entities.ChatTypeGroup && name == "" {
		return "", false
	}

	chat := entities.Chat{
		ID:           uuidLib.NewString(),
		Type:         chatType,
		Name:         name,
		Participants: utilities.UnionStrings(participantIDs, current.ID),
		IsMuted:      false,
		CreatedAt:    utilities.TimeNow(),
	}

	chats := append(c.repo.GetChats(ctx), chat)
	c.repo.SaveChats(ctx, chats)

	c.events.Broadcast(entities.ChangeEvent{Kind: entities.EventChatCreated, ChatID: chat.ID})
	return chat.ID, true
}

func (c *ChatUseCases) BlockUser(ctx context.Context, userID string) {
	current := c.session.CurrentUser
	if current == nil {
		return
	}

	c.repo.BlockUser(ctx, current.ID, userID)
	c.events.Broadcast(entities.ChangeEvent{Kind: entities.EventUserBlocked, UserID: userID})
}

func (c *ChatUseCases) UnblockUser(ctx context.Context, userID string) {
	current := c.session.CurrentUser
	if current == nil {
		return
	}

	c.repo.UnblockUser(ctx, current.ID, userID)
	c.events.Broadcast(entities.ChangeEvent{Kind: entities.EventUserUnblocked, UserID: userID})
}

func (c *ChatUseCases) MuteChat(ctx context.Context, chatID string) {
	c.setMuted(ctx, chatID, true)
	c.events.Broadcast(entities.ChangeEvent{Kind: entities.EventChatMuted, ChatID: chatID})
}

func (c *ChatUseCases) UnmuteChat(ctx context.Context, chatID string) {
	c.setMuted(ctx, chatID, false)
	c.events.Broadcast(entities.ChangeEvent{Kind: entities.EventChatUnmuted, ChatID: chatID})
}

func (c *ChatUseCases) setMuted(ctx context.Context, chatID string, muted bool) {
	chats := c.repo.GetChats(ctx)
	for i := range chats {
		if chats[i].ID == chatID {
			chats[i].IsMuted = muted
		}
	}
	c.repo.SaveChats(ctx, chats)
}

// MarkMessagesAsSeen promotes every message in the chat not sent by the
// current user to seen. Idempotent.
func (c *ChatUseCases) MarkMessagesAsSeen(ctx context.Context, chatID string) {
	current := c.session.CurrentUser
	if current == nil {
		return
	}

	messages := c.repo.GetMessages(ctx)
	sequence, ok := messages[chatID]
	if !ok {
		return
	}

	for i := range sequence {
		if sequence[i].SenderID != current.ID && sequence[i].Status != entities.MsgSeen {
			sequence[i].Status = entities.MsgSeen
		}
	}

	messages[chatID] = sequence
	c.repo.SaveMessages(ctx, messages)

	c.events.Broadcast(entities.ChangeEvent{Kind: entities.EventMessagesSeen, ChatID: chatID})
}

func (c *ChatUseCases) BlockedUsers(ctx context.Context) []string {
	current := c.session.CurrentUser
	if current == nil {
		return nil
	}
	return c.repo.GetBlockedUsers(ctx, current.ID)
}
