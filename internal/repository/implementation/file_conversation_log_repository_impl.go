package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"gamechat-be/internal/entity"
	"gamechat-be/internal/pkg/apperr"
	"gamechat-be/internal/repository/contract"
	"gamechat-be/internal/repository/keylock"
)

type FileConversationLogRepositoryImpl struct {
	locator *Locator
	locks   *keylock.KeyLock
}

func NewFileConversationLogRepository(dataDir string) contract.ConversationLogRepository {
	return &FileConversationLogRepositoryImpl{
		locator: NewLocator(dataDir),
		locks:   keylock.New(),
	}
}

func (r *FileConversationLogRepositoryImpl) Load(ctx context.Context, sessionId, gameId string) (*entity.ConversationLog, error) {
	return r.read(sessionId, gameId), nil
}

// read never fails: absent or unparsable records materialize as an empty
// log. That trades silent loss of a corrupt record for availability.
func (r *FileConversationLogRepositoryImpl) read(sessionId, gameId string) *entity.ConversationLog {
	location := r.locator.LocationFor(sessionId, gameId)

	raw, err := os.ReadFile(location)
	if err != nil {
		return entity.NewConversationLog(sessionId, gameId, time.Now())
	}

	var log entity.ConversationLog
	if err := json.Unmarshal(raw, &log); err != nil {
		return entity.NewConversationLog(sessionId, gameId, time.Now())
	}

	// The key in the path is authoritative over whatever the record claims
	log.SessionId = sessionId
	log.GameId = gameId
	if log.Messages == nil {
		log.Messages = []entity.Message{}
	}
	return &log
}

func (r *FileConversationLogRepositoryImpl) Save(ctx context.Context, log *entity.ConversationLog) error {
	log.UpdatedAt = time.Now()
	location := r.locator.LocationFor(log.SessionId, log.GameId)

	if err := r.locator.EnsureScope(location); err != nil {
		return apperr.Storage("failed to create conversation scope", err)
	}

	raw, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return apperr.Storage("failed to encode conversation log", err)
	}

	// Write to a temp file in the same directory, then rename over the
	// record so a concurrent reader sees either the old or the new file.
	tmp, err := os.CreateTemp(filepath.Dir(location), ".conversation-*.tmp")
	if err != nil {
		return apperr.Storage("failed to create temp record", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperr.Storage("failed to write conversation log", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperr.Storage("failed to flush conversation log", err)
	}
	if err := os.Rename(tmpName, location); err != nil {
		os.Remove(tmpName)
		return apperr.Storage("failed to replace conversation log", err)
	}
	return nil
}

func (r *FileConversationLogRepositoryImpl) Append(ctx context.Context, sessionId, gameId string, message entity.Message) (*entity.ConversationLog, error) {
	key := r.locator.LocationFor(sessionId, gameId)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	log := r.read(sessionId, gameId)
	log.Messages = append(log.Messages, message)

	if err := r.Save(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (r *FileConversationLogRepositoryImpl) Delete(ctx context.Context, sessionId, gameId string) error {
	key := r.locator.LocationFor(sessionId, gameId)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	if err := os.Remove(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperr.Storage("failed to delete conversation log", err)
	}
	return nil
}
