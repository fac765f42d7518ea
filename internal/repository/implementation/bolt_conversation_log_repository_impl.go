package implementation

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gamechat-be/internal/entity"
	"gamechat-be/internal/pkg/apperr"
	"gamechat-be/internal/repository/contract"
	"gamechat-be/internal/repository/keylock"

	bolt "go.etcd.io/bbolt"
)

// BoltConversationLogRepositoryImpl stores one bucket per session with one
// record per game key. Same contract as the file store, different engine.
type BoltConversationLogRepositoryImpl struct {
	db    *bolt.DB
	locks *keylock.KeyLock
}

var _ contract.ConversationLogRepository = &BoltConversationLogRepositoryImpl{}

func NewBoltConversationLogRepository(path string) (*BoltConversationLogRepositoryImpl, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	return &BoltConversationLogRepositoryImpl{
		db:    db,
		locks: keylock.New(),
	}, nil
}

func (r *BoltConversationLogRepositoryImpl) Close() error {
	return r.db.Close()
}

func lockKey(sessionId, gameId string) string {
	return sessionId + "\x00" + gameId
}

func (r *BoltConversationLogRepositoryImpl) Load(ctx context.Context, sessionId, gameId string) (*entity.ConversationLog, error) {
	return r.read(sessionId, gameId), nil
}

func (r *BoltConversationLogRepositoryImpl) read(sessionId, gameId string) *entity.ConversationLog {
	fresh := entity.NewConversationLog(sessionId, gameId, time.Now())

	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionId))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(gameId)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return fresh
	}

	var log entity.ConversationLog
	if err := json.Unmarshal(raw, &log); err != nil {
		// Malformed record reads as no history
		return fresh
	}
	log.SessionId = sessionId
	log.GameId = gameId
	if log.Messages == nil {
		log.Messages = []entity.Message{}
	}
	return &log
}

func (r *BoltConversationLogRepositoryImpl) Save(ctx context.Context, log *entity.ConversationLog) error {
	log.UpdatedAt = time.Now()

	raw, err := json.Marshal(log)
	if err != nil {
		return apperr.Storage("failed to encode conversation log", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(log.SessionId))
		if err != nil {
			return err
		}
		return b.Put([]byte(log.GameId), raw)
	})
	if err != nil {
		return apperr.Storage("failed to persist conversation log", err)
	}
	return nil
}

func (r *BoltConversationLogRepositoryImpl) Append(ctx context.Context, sessionId, gameId string, message entity.Message) (*entity.ConversationLog, error) {
	key := lockKey(sessionId, gameId)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	log := r.read(sessionId, gameId)
	log.Messages = append(log.Messages, message)

	if err := r.Save(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (r *BoltConversationLogRepositoryImpl) Delete(ctx context.Context, sessionId, gameId string) error {
	key := lockKey(sessionId, gameId)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionId))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(gameId))
	})
	if err != nil {
		return apperr.Storage("failed to delete conversation log", err)
	}
	return nil
}
