package consts

const (
	AppName = "chatflow"
)

// gin context keys
const (
	UserID       = "USER_ID"
	UserLoggedIn = "USER_LOGGED_IN"
)

// Persisted store keys. Each key holds a whole collection which is read and
// rewritten in full on every mutation.
const (
	AuthKey         = "auth"
	CurrentUserKey  = "currentUser"
	UsersKey        = "users"
	ChatsKey        = "chats"
	MessagesKey     = "messages"
	BlockedUsersKey = "blockedUsers_" // suffixed with the owning user id
)

// Notification permission states
const (
	PermissionGranted = "granted"
	PermissionDefault = "default"
	PermissionDenied  = "denied"
)

const (
	NotificationTitle = "New message"
)
