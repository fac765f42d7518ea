package contract

import (
	"context"

	"gamechat-be/internal/entity"
)

// ConversationLogRepository owns the durable read/modify/write cycle of a
// ConversationLog keyed by (sessionId, gameId). Implementations must be
// safe for concurrent use; appends on the same key are serialized, appends
// on different keys never block each other.
type ConversationLogRepository interface {
	// Load returns the persisted log, or a freshly materialized empty log
	// when nothing (or nothing parsable) is stored for the key.
	Load(ctx context.Context, sessionId, gameId string) (*entity.ConversationLog, error)

	// Save stamps UpdatedAt and durably replaces the whole record. A
	// concurrent Load observes either the old or the new record, never a
	// partial one.
	Save(ctx context.Context, log *entity.ConversationLog) error

	// Append is the only supported mutation path: load, push the message,
	// save, return the updated log.
	Append(ctx context.Context, sessionId, gameId string, message entity.Message) (*entity.ConversationLog, error)

	// Delete removes the persisted record. Deleting an absent record is
	// not an error.
	Delete(ctx context.Context, sessionId, gameId string) error
}
