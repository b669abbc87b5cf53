package handlers

import (
	"context"
	"net/http"

	"github.com/rohits-web03/medrecords/internal/utils"
)

type Chatter interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

type ChatHandler struct {
	chat Chatter
}

func NewChatHandler(chat Chatter) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// POST /api/chat
// Chat godoc
// @Summary Ask the language model
// @Description The model's streamed answer is collected and returned in one piece.
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body handlers.ChatInput true "Prompt"
// @Success 200 {object} handlers.ChatReply
// @Failure 400 {object} utils.ErrorBody
// @Failure 502 {object} utils.ErrorBody "Model service unavailable"
// @Failure 504 {object} utils.ErrorBody "Model did not answer in time"
// @Router /api/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var input ChatInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.chat.Chat(r.Context(), input.Prompt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ChatReply{Response: reply})
}

type ChatInput struct {
	Prompt string `json:"prompt"`
}

type ChatReply struct {
	Response string `json:"response"`
}
