package usecase

import (
	"context"

	"hirehub-backend/internal/domain"
	"hirehub-backend/pkg/logger"
)

// ChatResponder is satisfied by *chatbot.Responder
type ChatResponder interface {
	Respond(message, displayName string) domain.ChatResponse
	Classify(message string) string
}

type chatUsecase struct {
	responder ChatResponder
}

func NewChatUsecase(responder ChatResponder) domain.ChatUsecase {
	return &chatUsecase{responder: responder}
}

// Reply answers one message. Signed-in callers are greeted by username.
func (u *chatUsecase) Reply(ctx context.Context, viewer domain.Viewer, message string) domain.ChatResponse {
	logger.Log.DebugContext(ctx, "Chatbot message classified",
		"rule", u.responder.Classify(message),
		"authenticated", viewer.IsAuthenticated(),
	)
	return u.responder.Respond(message, viewer.Username)
}
