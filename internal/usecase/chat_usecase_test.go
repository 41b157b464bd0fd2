package usecase_test

import (
	"context"
	"strings"
	"testing"

	"hirehub-backend/internal/chatbot"
	"hirehub-backend/internal/domain"
	"hirehub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockResponder struct {
	mock.Mock
}

func (m *MockResponder) Respond(message, displayName string) domain.ChatResponse {
	return m.Called(message, displayName).Get(0).(domain.ChatResponse)
}

func (m *MockResponder) Classify(message string) string {
	return m.Called(message).String(0)
}

func TestChatReplyPassesUsername(t *testing.T) {
	r := new(MockResponder)
	uc := usecase.NewChatUsecase(r)

	want := domain.ChatResponse{Message: "ok", Suggestions: []string{"x"}}
	r.On("Classify", "hello").Return("greeting")
	r.On("Respond", "hello", "alice").Return(want)

	got := uc.Reply(context.Background(), seeker, "hello")
	assert.Equal(t, want, got)
	r.AssertExpectations(t)
}

func TestChatReplyWithDefaultResponder(t *testing.T) {
	uc := usecase.NewChatUsecase(chatbot.Default())

	anon := uc.Reply(context.Background(), domain.Viewer{}, "Hi there!")
	assert.True(t, strings.HasPrefix(anon.Message, "Hello there!"))

	named := uc.Reply(context.Background(), seeker, "hello")
	assert.True(t, strings.HasPrefix(named.Message, "Hello alice!"))

	fallback := uc.Reply(context.Background(), seeker, "asdkjalksd")
	assert.NotEmpty(t, fallback.Suggestions)
}
