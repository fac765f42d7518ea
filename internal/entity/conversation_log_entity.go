package entity

import (
	"time"
)

// ConversationLog is the durable, ordered message history for one
// (session, game) pair. SessionId and GameId never change after the log is
// materialized; Messages is append-only.
type ConversationLog struct {
	SessionId string    `json:"session_id"`
	GameId    string    `json:"game_id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewConversationLog materializes an empty log for a key that has no
// persisted record yet.
func NewConversationLog(sessionId, gameId string, now time.Time) *ConversationLog {
	return &ConversationLog{
		SessionId: sessionId,
		GameId:    gameId,
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
