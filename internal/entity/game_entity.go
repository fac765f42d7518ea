package entity

// Game describes one conversational scenario. Loaded from the catalog
// file at startup and treated as read-only afterwards; identity is Id.
type Game struct {
	Id                string `json:"id" validate:"required"`
	DisplayName       string `json:"display_name" validate:"required"`
	Description       string `json:"description"`
	SystemInstruction string `json:"system_instruction" validate:"required"`
	Thumbnail         string `json:"thumbnail"`
}
