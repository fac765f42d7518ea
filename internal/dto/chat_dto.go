package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Chat string `json:"chat" validate:"required"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Chat      string    `json:"chat"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	GameId string               `json:"game_id"`
	Sent   *ChatMessageResponse `json:"sent"`
	Reply  *ChatMessageResponse `json:"reply"`
}

type GetChatHistoryResponse struct {
	GameId    string                 `json:"game_id"`
	Messages  []*ChatMessageResponse `json:"messages"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
