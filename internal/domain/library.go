package domain

import "time"

// SavedTemplate is a reusable message body stored under a title.
type SavedTemplate struct {
	Title string   `json:"title" yaml:"title"`
	Body  Template `json:"body" yaml:"body"`
}

// DraftKeyLength is how many leading characters of a draft form its key.
const DraftKeyLength = 30

// Draft is an unsent message kept for later.
type Draft struct {
	Key     string    `json:"key"`
	Message string    `json:"message"`
	SavedAt time.Time `json:"saved_at"`
}

// DraftKey is the first DraftKeyLength characters of message.
func DraftKey(message string) string {
	runes := []rune(message)
	if len(runes) <= DraftKeyLength {
		return message
	}
	return string(runes[:DraftKeyLength])
}
