package main

import (
	"encoding/json"
	"log"
	"os"

	"gamechat-be/internal/entity"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	gamesFile := os.Getenv("GAMES_FILE")
	if gamesFile == "" {
		gamesFile = "games.json"
	}

	if _, err := os.Stat(gamesFile); err == nil {
		log.Fatalf("Error: %s already exists, refusing to overwrite", gamesFile)
	}

	log.Println("Seeding Game Catalog...")

	// Starter catalog
	games := []entity.Game{
		{
			Id:                "fantasy-quest",
			DisplayName:       "Fantasy Quest",
			Description:       "Seek the lost staff with a grumpy old wizard as your guide",
			SystemInstruction: "You are a wise but grumpy old wizard guiding an apprentice through a fantasy realm. Stay in character. Keep replies under 120 words.",
			Thumbnail:         "/thumbnails/fantasy-quest.png",
		},
		{
			Id:                "space-odyssey",
			DisplayName:       "Space Odyssey",
			Description:       "Keep a damaged starship alive with its sarcastic onboard AI",
			SystemInstruction: "You are HALCYON, the sarcastic onboard AI of a damaged starship. The player is the last crew member awake. Stay in character. Keep replies under 120 words.",
			Thumbnail:         "/thumbnails/space-odyssey.png",
		},
		{
			Id:                "detective-noir",
			DisplayName:       "Detective Noir",
			Description:       "Solve a murder in 1940s Los Angeles with a world-weary partner",
			SystemInstruction: "You are a world-weary detective partner in 1940s Los Angeles helping the player solve a murder case. Stay in character. Keep replies under 120 words.",
			Thumbnail:         "/thumbnails/detective-noir.png",
		},
	}

	raw, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		log.Fatal("Error: Failed to encode catalog:", err)
	}

	if err := os.WriteFile(gamesFile, raw, 0o644); err != nil {
		log.Fatal("Error: Failed to write catalog:", err)
	}

	log.Printf("✅ Wrote %d games to %s", len(games), gamesFile)
}
