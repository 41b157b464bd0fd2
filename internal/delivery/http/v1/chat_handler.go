package v1

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"hirehub-backend/internal/delivery/http/middleware"
	"hirehub-backend/internal/delivery/http/response"
	"hirehub-backend/internal/domain"
	"hirehub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC    domain.ChatUsecase
	maxLength int
}

func NewChatHandler(r *gin.RouterGroup, chatUC domain.ChatUsecase, maxLength int, limiter gin.HandlerFunc) {
	handler := &ChatHandler{chatUC: chatUC, maxLength: maxLength}
	r.POST("/chatbot", limiter, handler.Reply)
}

// ChatbotReply godoc
// @Summary      Ask the help assistant
// @Description  Keyword-based assistant. Signed-in users are greeted by username.
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ChatRequest  true  "Message"
// @Success      200   {object}  response.Response{data=domain.ChatResponse}
// @Failure      400   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /chatbot [post]
func (h *ChatHandler) Reply(c *gin.Context) {
	var req domain.ChatRequest
	if !bindJSON(c, &req) {
		return
	}
	if h.maxLength > 0 && utf8.RuneCountInString(req.Message) > h.maxLength {
		c.Error(apperror.BadRequest(fmt.Sprintf("Message must be at most %d characters", h.maxLength)))
		return
	}

	reply := h.chatUC.Reply(c.Request.Context(), middleware.ViewerFromContext(c), req.Message)
	response.Success(c, http.StatusOK, "OK", reply)
}
