package service

import (
	"context"
	"strings"
	"time"

	"gamechat-be/internal/constant"
	"gamechat-be/internal/dto"
	"gamechat-be/internal/entity"
	"gamechat-be/internal/pkg/apperr"
	"gamechat-be/internal/pkg/logger"
	"gamechat-be/internal/repository/contract"
	"gamechat-be/pkg/llm"

	"github.com/google/uuid"
)

// IChatService produces the next assistant message for a
// (session, game, user input) triple and serves the stored history.
type IChatService interface {
	GetHistory(ctx context.Context, sessionId, gameId string) (*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, sessionId, gameId string, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	ClearHistory(ctx context.Context, sessionId, gameId string) error
}

type chatService struct {
	logs        contract.ConversationLogRepository
	gameService IGameService
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewChatService(
	logs contract.ConversationLogRepository,
	gameService IGameService,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		logs:        logs,
		gameService: gameService,
		llmProvider: llmProvider,
		logger:      sysLogger,
	}
}

func (cs *chatService) GetHistory(ctx context.Context, sessionId, gameId string) (*dto.GetChatHistoryResponse, error) {
	if _, err := cs.gameService.GetGameById(ctx, gameId); err != nil {
		return nil, err
	}

	log, err := cs.logs.Load(ctx, sessionId, gameId)
	if err != nil {
		return nil, err
	}

	messages := make([]*dto.ChatMessageResponse, 0, len(log.Messages))
	for _, msg := range log.Messages {
		messages = append(messages, &dto.ChatMessageResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return &dto.GetChatHistoryResponse{
		GameId:    gameId,
		Messages:  messages,
		CreatedAt: log.CreatedAt,
		UpdatedAt: log.UpdatedAt,
	}, nil
}

// SendChat persists the user message, asks the provider for a reply with
// the full stored history as context, and persists the reply. On provider
// failure the user message stays persisted; a retry sees it in history.
func (cs *chatService) SendChat(ctx context.Context, sessionId, gameId string, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	text := strings.TrimSpace(request.Chat)
	if text == "" {
		return nil, apperr.Validation("chat message must not be empty")
	}

	game, err := cs.gameService.GetGameById(ctx, gameId)
	if err != nil {
		return nil, err
	}

	userMessage := entity.Message{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleUser,
		Content:   text,
		CreatedAt: time.Now(),
	}

	log, err := cs.logs.Append(ctx, sessionId, gameId, userMessage)
	if err != nil {
		return nil, err
	}

	// The system instruction is always the single leading entry; stored
	// history follows untouched, the new user message already last.
	history := make([]llm.Message, 0, len(log.Messages)+1)
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: game.SystemInstruction,
	})
	for _, msg := range log.Messages {
		if msg.Role == constant.ChatMessageRoleSystem {
			continue
		}
		history = append(history, llm.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	reply, err := cs.llmProvider.Chat(ctx, history)
	if err != nil {
		cs.logger.Error("chat", "LLM provider call failed", map[string]interface{}{
			"game_id": gameId,
			"error":   err.Error(),
		})
		return nil, apperr.Provider("completion provider failed", err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, apperr.Provider("completion provider returned empty content", nil)
	}

	assistantMessage := entity.Message{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}

	if _, err := cs.logs.Append(ctx, sessionId, gameId, assistantMessage); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		GameId: gameId,
		Sent: &dto.ChatMessageResponse{
			Id:        userMessage.Id,
			Role:      userMessage.Role,
			Chat:      userMessage.Content,
			CreatedAt: userMessage.CreatedAt,
		},
		Reply: &dto.ChatMessageResponse{
			Id:        assistantMessage.Id,
			Role:      assistantMessage.Role,
			Chat:      assistantMessage.Content,
			CreatedAt: assistantMessage.CreatedAt,
		},
	}, nil
}

func (cs *chatService) ClearHistory(ctx context.Context, sessionId, gameId string) error {
	if _, err := cs.gameService.GetGameById(ctx, gameId); err != nil {
		return err
	}
	return cs.logs.Delete(ctx, sessionId, gameId)
}
