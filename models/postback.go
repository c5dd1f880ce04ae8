package models

// PostbackData is the JSON payload carried by imagemap and button postbacks.
// The client echoes it back untouched, so it is the only conversational state
// the bot ever sees.
type PostbackData struct {
	Action   string `json:"action"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Category string `json:"category,omitempty"`
	Page     int    `json:"page,omitempty"`
}
