package implementation

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gamechat-be/internal/constant"
	"gamechat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessage(role, content string) entity.Message {
	return entity.Message{
		Id:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func TestFileRepositoryLoadUnknownKey(t *testing.T) {
	repo := NewFileConversationLogRepository(t.TempDir())

	log, err := repo.Load(context.Background(), "s1", "fantasy-quest")
	require.NoError(t, err)

	assert.Equal(t, "s1", log.SessionId)
	assert.Equal(t, "fantasy-quest", log.GameId)
	assert.Empty(t, log.Messages)
	assert.Equal(t, log.CreatedAt, log.UpdatedAt)
}

func TestFileRepositoryAppendKeepsOrder(t *testing.T) {
	repo := NewFileConversationLogRepository(t.TempDir())
	ctx := context.Background()

	_, err := repo.Append(ctx, "s1", "g1", newMessage(constant.ChatMessageRoleUser, "first"))
	require.NoError(t, err)
	_, err = repo.Append(ctx, "s1", "g1", newMessage(constant.ChatMessageRoleAssistant, "second"))
	require.NoError(t, err)
	log, err := repo.Append(ctx, "s1", "g1", newMessage(constant.ChatMessageRoleUser, "third"))
	require.NoError(t, err)

	require.Len(t, log.Messages, 3)
	assert.Equal(t, "first", log.Messages[0].Content)
	assert.Equal(t, "second", log.Messages[1].Content)
	assert.Equal(t, "third", log.Messages[2].Content)
}

func TestFileRepositorySaveLoadRoundTrip(t *testing.T) {
	repo := NewFileConversationLogRepository(t.TempDir())
	ctx := context.Background()

	userMsg := newMessage(constant.ChatMessageRoleUser, "Hello")
	assistantMsg := newMessage(constant.ChatMessageRoleAssistant, "Greetings, traveler.")

	_, err := repo.Append(ctx, "s1", "g1", userMsg)
	require.NoError(t, err)
	_, err = repo.Append(ctx, "s1", "g1", assistantMsg)
	require.NoError(t, err)

	log, err := repo.Load(ctx, "s1", "g1")
	require.NoError(t, err)

	require.Len(t, log.Messages, 2)
	assert.Equal(t, userMsg.Id, log.Messages[0].Id)
	assert.Equal(t, userMsg.Content, log.Messages[0].Content)
	assert.Equal(t, constant.ChatMessageRoleUser, log.Messages[0].Role)
	assert.Equal(t, assistantMsg.Id, log.Messages[1].Id)
	assert.Equal(t, assistantMsg.Content, log.Messages[1].Content)
	assert.False(t, log.UpdatedAt.Before(log.CreatedAt))
}

func TestFileRepositoryKeysAreIsolated(t *testing.T) {
	repo := NewFileConversationLogRepository(t.TempDir())
	ctx := context.Background()

	_, err := repo.Append(ctx, "s1", "g1", newMessage(constant.ChatMessageRoleUser, "for s1/g1"))
	require.NoError(t, err)

	other, err := repo.Load(ctx, "s1", "g2")
	require.NoError(t, err)
	assert.Empty(t, other.Messages)

	other, err = repo.Load(ctx, "s2", "g1")
	require.NoError(t, err)
	assert.Empty(t, other.Messages)
}

func TestFileRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := NewFileConversationLogRepository(t.TempDir())
	ctx := context.Background()

	// Never-existing key
	assert.NoError(t, repo.Delete(ctx, "s1", "g1"))

	_, err := repo.Append(ctx, "s1", "g1", newMessage(constant.ChatMessageRoleUser, "hi"))
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, "s1", "g1"))
	// Already deleted
	assert.NoError(t, repo.Delete(ctx, "s1", "g1"))

	log, err := repo.Load(ctx, "s1", "g1")
	require.NoError(t, err)
	assert.Empty(t, log.Messages)
}

func TestFileRepositoryCorruptRecordReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileConversationLogRepository(dir)
	ctx := context.Background()

	_, err := repo.Append(ctx, "s1", "g1", newMessage(constant.ChatMessageRoleUser, "hi"))
	require.NoError(t, err)

	location := NewLocator(dir).LocationFor("s1", "g1")
	require.NoError(t, os.WriteFile(location, []byte("{not json"), 0o644))

	log, err := repo.Load(ctx, "s1", "g1")
	require.NoError(t, err)
	assert.Empty(t, log.Messages)
	assert.Equal(t, log.CreatedAt, log.UpdatedAt)
}

func TestFileRepositoryConcurrentAppendsLoseNothing(t *testing.T) {
	repo := NewFileConversationLogRepository(t.TempDir())
	ctx := context.Background()

	const writers = 10
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Append(ctx, "s1", "g1", newMessage(constant.ChatMessageRoleUser, "msg"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	log, err := repo.Load(ctx, "s1", "g1")
	require.NoError(t, err)
	assert.Len(t, log.Messages, writers)
}

func TestLocatorIsDeterministicAndCollisionFree(t *testing.T) {
	loc := NewLocator("/data")

	assert.Equal(t, loc.LocationFor("s1", "g1"), loc.LocationFor("s1", "g1"))

	// Keys with path-hostile characters must not alias each other
	pairs := [][2]string{
		{"s1", "g1"},
		{"s1/g1", ""},
		{"s1", "../g1"},
		{"s1%2Fg1", "g1"},
		{"..", "g1"},
	}
	seen := make(map[string]bool)
	for _, p := range pairs {
		location := loc.LocationFor(p[0], p[1])
		assert.False(t, seen[location], "collision for %q/%q", p[0], p[1])
		seen[location] = true
		assert.Equal(t, "/data", filepath.Dir(filepath.Dir(location)))
	}
}
