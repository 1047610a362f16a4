package models

import "time"

// ChatRole distinguishes who authored a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "ai"
)

// ChatMessage is one entry in the assistant conversation history.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
