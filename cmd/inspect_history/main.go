package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gamechat-be/internal/repository/implementation"

	"github.com/joho/godotenv"
)

// Operator tool: dump the stored conversation log for one session/game.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	if len(os.Args) != 3 {
		log.Fatalf("Usage: %s <session-id> <game-id>", os.Args[0])
	}
	sessionId, gameId := os.Args[1], os.Args[2]

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data/conversations"
	}

	repo := implementation.NewFileConversationLogRepository(dataDir)
	conv, err := repo.Load(context.Background(), sessionId, gameId)
	if err != nil {
		log.Fatal("Error: Failed to load conversation:", err)
	}

	fmt.Printf("🔍 CONVERSATION %s / %s\n", sessionId, gameId)
	fmt.Printf("Created: %s  Updated: %s  Messages: %d\n\n",
		conv.CreatedAt.Format("2006-01-02 15:04:05"),
		conv.UpdatedAt.Format("2006-01-02 15:04:05"),
		len(conv.Messages))

	for i, msg := range conv.Messages {
		fmt.Printf("[%03d] %-9s %s\n", i, msg.Role, msg.CreatedAt.Format("15:04:05"))
		fmt.Println(msg.Content)
		fmt.Println()
	}
}
