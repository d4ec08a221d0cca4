package repo

import (
	"context"

	"chatflow/config"
	"chatflow/pkg/cache"
	"chatflow/pkg/consts"
	"chatflow/pkg/entities"
	"chatflow/pkg/repo/driver/store"
)

type ChatRepo struct {
	Db   store.Store
	Conf *config.ChatflowConfModel
}

func (c ChatRepo) GetChats(_ context.Context) []entities.Chat {
	var chats []entities.Chat
	c.Db.Get(consts.ChatsKey, &chats)
	return chats
}

func (c ChatRepo) SaveChats(_ context.Context, chats []entities.Chat) {
	c.Db.Set(consts.ChatsKey, chats)
}

// GetMessages returns the chat-id keyed message map; absent key yields an
// empty map.
func (c ChatRepo) GetMessages(_ context.Context) map[string][]entities.Message {
	messages := make(map[string][]entities.Message)
	c.Db.Get(consts.MessagesKey, &messages)
	return messages
}

func (c ChatRepo) SaveMessages(_ context.Context, messages map[string][]entities.Message) {
	c.Db.Set(consts.MessagesKey, messages)
}

func (c ChatRepo) GetBlockedUsers(_ context.Context, user string) []string {
	var blockedUsers []string
	c.Db.Get(consts.BlockedUsersKey+user, &blockedUsers)
	cache.BlockedUserCache.SetBlockedUsers(user, blockedUsers)
	return blockedUsers
}

func (c ChatRepo) BlockUser(ctx context.Context, user, blockedUser string) {
	blockedUsers := c.GetBlockedUsers(ctx, user)
	for _, each := range blockedUsers {
		if each == blockedUser {
			return
		}
	}

	blockedUsers = append(blockedUsers, blockedUser)
	c.Db.Set(consts.BlockedUsersKey+user, blockedUsers)
	cache.BlockedUserCache.AddBlockedUserCache(user, blockedUser)
}

func (c ChatRepo) UnblockUser(ctx context.Context, user, blockedUser string) {
	blockedUsers := c.GetBlockedUsers(ctx, user)

	updated := make([]string, 0, len(blockedUsers))
	for _, each := range blockedUsers {
		if each == blockedUser {
			continue
		}
		updated = append(updated, each)
	}

	c.Db.Set(consts.BlockedUsersKey+user, updated)
	cache.BlockedUserCache.RemoveBlockedUserCache(user, blockedUser)
}

func (c ChatRepo) IsBlockedUser(ctx context.Context, user, blockedUser string) bool {
	if !cache.BlockedUserCache.HasUser(user) {
		c.GetBlockedUsers(ctx, user)
	}
	return cache.BlockedUserCache.IsBlockedUserInCache(user, blockedUser)
}

type ChatRepoImpl interface {
	GetChats(ctx context.Context) []entities.Chat
	SaveChats(ctx context.Context, chats []entities.Chat)
	GetMessages(ctx context.Context) map[string][]entities.Message
	SaveMessages(ctx context.Context, messages map[string][]entities.Message)
	GetBlockedUsers(ctx context.Context, user string) []string
	BlockUser(ctx context.Context, user, blockedUser string)
	UnblockUser(ctx context.Context, user, blockedUser string)
	IsBlockedUser(ctx context.Context, user, blockedUser string) bool
}

func NewChatRepo(db store.Store, conf *config.ChatflowConfModel) ChatRepoImpl {
	return &ChatRepo{Db: db, Conf: conf}
}
