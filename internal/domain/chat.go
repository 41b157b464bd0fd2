package domain

import "context"

// ChatRequest is the chatbot endpoint body
type ChatRequest struct {
	Message string `json:"message" binding:"not_blank,no_control"`
}

type ChatLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ChatResponse is a canned reply; Suggestions is never empty
type ChatResponse struct {
	Message     string     `json:"message"`
	Suggestions []string   `json:"suggestions"`
	Links       []ChatLink `json:"links,omitempty"`
}

type ChatUsecase interface {
	Reply(ctx context.Context, viewer Viewer, message string) ChatResponse
}
