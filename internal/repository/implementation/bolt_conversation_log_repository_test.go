package implementation

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"gamechat-be/internal/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoltRepo(t *testing.T) *BoltConversationLogRepositoryImpl {
	t.Helper()
	repo, err := NewBoltConversationLogRepository(filepath.Join(t.TempDir(), "conversations.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestBoltRepositoryLoadUnknownKey(t *testing.T) {
	repo := newBoltRepo(t)

	log, err := repo.Load(context.Background(), "s1", "fantasy-quest")
	require.NoError(t, err)

	assert.Empty(t, log.Messages)
	assert.Equal(t, log.CreatedAt, log.UpdatedAt)
}

func TestBoltRepositoryAppendRoundTrip(t *testing.T) {
	repo := newBoltRepo(t)
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
	assert.Equal(t, "Hello", log.Messages[0].Content)
	assert.Equal(t, assistantMsg.Id, log.Messages[1].Id)

	// Other keys stay untouched
	other, err := repo.Load(ctx, "s2", "g1")
	require.NoError(t, err)
	assert.Empty(t, other.Messages)
}

func TestBoltRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := newBoltRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Delete(ctx, "s1", "g1"))

	_, err := repo.Append(ctx, "s1", "g1", newMessage(constant.ChatMessageRoleUser, "hi"))
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, "s1", "g1"))
	assert.NoError(t, repo.Delete(ctx, "s1", "g1"))

	log, err := repo.Load(ctx, "s1", "g1")
	require.NoError(t, err)
	assert.Empty(t, log.Messages)
}

func TestBoltRepositoryConcurrentAppendsLoseNothing(t *testing.T) {
	repo := newBoltRepo(t)
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
