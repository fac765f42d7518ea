package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"gamechat-be/internal/dto"
	"gamechat-be/internal/entity"
	"gamechat-be/internal/pkg/apperr"
	"gamechat-be/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"
)

// IGameService is the read-only game catalog. Constructed once at
// bootstrap and injected; Reload swaps the catalog in place.
type IGameService interface {
	GetAll(ctx context.Context) ([]*dto.GameResponse, error)
	GetGameById(ctx context.Context, id string) (*entity.Game, error)
	Reload() error
}

type gameService struct {
	catalogFile string
	validate    *validator.Validate
	logger      logger.ILogger

	games *cache.Cache // id -> *entity.Game

	mu  sync.RWMutex
	ids []string // catalog file order, for stable listings
}

func NewGameService(catalogFile string, sysLogger logger.ILogger) (IGameService, error) {
	gs := &gameService{
		catalogFile: catalogFile,
		validate:    validator.New(),
		logger:      sysLogger,
		games:       cache.New(cache.NoExpiration, cache.NoExpiration),
	}
	if err := gs.Reload(); err != nil {
		return nil, err
	}
	return gs, nil
}

// Reload re-reads and re-validates the catalog file. On any failure the
// previous snapshot keeps serving.
func (gs *gameService) Reload() error {
	raw, err := os.ReadFile(gs.catalogFile)
	if err != nil {
		return fmt.Errorf("failed to read game catalog %s: %w", gs.catalogFile, err)
	}

	var games []*entity.Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return fmt.Errorf("game catalog %s is not valid JSON: %w", gs.catalogFile, err)
	}

	seen := make(map[string]bool, len(games))
	ids := make([]string, 0, len(games))
	for i, game := range games {
		if err := gs.validate.Struct(game); err != nil {
			return fmt.Errorf("game catalog entry %d is invalid: %w", i, err)
		}
		if seen[game.Id] {
			return fmt.Errorf("game catalog contains duplicate id %q", game.Id)
		}
		seen[game.Id] = true
		ids = append(ids, game.Id)
	}

	for _, game := range games {
		gs.games.Set(game.Id, game, cache.NoExpiration)
	}
	// Drop entries removed from the file
	for id := range gs.games.Items() {
		if !seen[id] {
			gs.games.Delete(id)
		}
	}

	gs.mu.Lock()
	gs.ids = ids
	gs.mu.Unlock()

	gs.logger.Info("game_catalog", "Game catalog loaded", map[string]interface{}{
		"file":  gs.catalogFile,
		"games": len(ids),
	})
	return nil
}

func (gs *gameService) GetAll(ctx context.Context) ([]*dto.GameResponse, error) {
	gs.mu.RLock()
	ids := gs.ids
	gs.mu.RUnlock()

	response := make([]*dto.GameResponse, 0, len(ids))
	for _, id := range ids {
		item, found := gs.games.Get(id)
		if !found {
			continue
		}
		game := item.(*entity.Game)
		response = append(response, &dto.GameResponse{
			Id:          game.Id,
			DisplayName: game.DisplayName,
			Description: game.Description,
			Thumbnail:   game.Thumbnail,
		})
	}
	return response, nil
}

func (gs *gameService) GetGameById(ctx context.Context, id string) (*entity.Game, error) {
	item, found := gs.games.Get(id)
	if !found {
		return nil, apperr.NotFound(fmt.Sprintf("game %q not found", id))
	}
	return item.(*entity.Game), nil
}
