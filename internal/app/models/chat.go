package models

// ChatMessage is one turn of a model conversation, OpenAI-compatible.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
