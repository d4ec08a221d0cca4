package entities

import "time"

const (
	MsgSending   = "sending"
	MsgDelivered = "delivered"
	MsgSeen      = "seen"

	MsgTypeText  = "text"
	MsgTypeImage = "image"

	ChatTypePrivate = "private"
	ChatTypeGroup   = "group"
)

type Message struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	ChatID       string    `json:"chat_id"`
	Content      string    `json:"content"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
	DeletedForMe bool      `json:"deleted_for_me,omitempty"`
}

type Chat struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	Participants []string  `json:"participants"`
	LastMessage  *Message  `json:"last_message,omitempty"`
	IsMuted      bool      `json:"is_muted"`
	CreatedAt    time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Type    string `json:"type"`
}

type CreateChatRequest struct {
	ParticipantIDs []string `json:"participant_ids" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	Name           string   `json:"name,omitempty"`
}

// ChatView is a chat decorated with the display fields the chat list renders.
type ChatView struct {
	Chat
	DisplayName    string `json:"display_name"`
	ProfilePicture string `json:"profile_picture"`
	IsOnline       bool   `json:"is_online"`
	UnreadCount    int    `json:"unread_count"`
}

const (
	EventMessageSent    = "message_sent"
	EventMessageDeleted = "message_deleted"
	EventChatCreated    = "chat_created"
	EventChatMuted      = "chat_muted"
	EventChatUnmuted    = "chat_unmuted"
	EventMessagesSeen   = "messages_seen"
	EventUserBlocked    = "user_blocked"
	EventUserUnblocked  = "user_unblocked"
)

// ChangeEvent is emitted after every state mutation so subscribers can
// re-render without polling.
type ChangeEvent struct {
	Kind   string `json:"kind"`
	ChatID string `json:"chat_id,omitempty"`
	UserID string `json:"user_id,omitempty"`
}
