package request

// CreatePlayerRequest is the request body for creating a player
type CreatePlayerRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// UpdatePlayerRequest is the request body for updating a player
type UpdatePlayerRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// ScoreEntry is a single player delta within a round submission
type ScoreEntry struct {
	PlayerID string `json:"player_id"`
	Delta    int    `json:"delta"`
}

// CommitRoundRequest is the request body for committing a round
type CommitRoundRequest struct {
	Scores     []ScoreEntry `json:"scores"`
	RecorderID string       `json:"recorder_id"`
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	Name string `json:"name"`
}

// RenameSessionRequest is the request body for renaming a session
type RenameSessionRequest struct {
	Name string `json:"name"`
}

// VerifySecretRequest is the request body for verifying the admin secret
type VerifySecretRequest struct {
	Code string `json:"code"`
}

// ChangeSecretRequest is the request body for changing the admin secret
type ChangeSecretRequest struct {
	OldCode string `json:"old_code"`
	NewCode string `json:"new_code"`
}
