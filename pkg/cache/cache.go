package cache

func Init() {
	_ = InitBlockedUserCache()
}
