package cache

import (
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// BlockedUserCacheModel mirrors the per-user block sets held in the store so
// candidate filtering does not re-read the store on every lookup. The repo
// writes through on block/unblock and seeds the owning user's set at session
// start.
type BlockedUserCacheModel struct {
	cache *gocache.Cache
}

var BlockedUserCache *BlockedUserCacheModel

func InitBlockedUserCache() *BlockedUserCacheModel {
	BlockedUserCache = &BlockedUserCacheModel{
		cache: gocache.New(gocache.NoExpiration, 0),
	}

	log.Info("Successfully initialised blocked users cache")
	return BlockedUserCache
}

func (c *BlockedUserCacheModel) SetBlockedUsers(user string, blockedUsers []string) {
	set := make(map[string]bool, len(blockedUsers))
	for _, each := range blockedUsers {
		set[each] = true
	}
	c.cache.Set(user, set, gocache.NoExpiration)
}

func (c *BlockedUserCacheModel) AddBlockedUserCache(user, blockedUser string) {
	set := c.getSet(user)
	set[blockedUser] = true
	c.cache.Set(user, set, gocache.NoExpiration)
}

func (c *BlockedUserCacheModel) RemoveBlockedUserCache(user, blockedUser string) {
	set := c.getSet(user)
	delete(set, blockedUser)
	c.cache.Set(user, set, gocache.NoExpiration)
}

func (c *BlockedUserCacheModel) IsBlockedUserInCache(user, blockedUser string) bool {
	return c.getSet(user)[blockedUser]
}

// HasUser reports whether the user's block set has been seeded.
func (c *BlockedUserCacheModel) HasUser(user string) bool {
	_, ok := c.cache.Get(user)
	return ok
}

func (c *BlockedUserCacheModel) getSet(user string) map[string]bool {
	if val, ok := c.cache.Get(user); ok {
		if set, ok := val.(map[string]bool); ok {
			return set
		}
	}
	return make(map[string]bool)
}
