package dto

// GameResponse deliberately omits the system instruction: the persona
// prompt is server-side only.
type GameResponse struct {
	Id          string `json:"id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}
