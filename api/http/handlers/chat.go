package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/career/api/http/presenter"
	"github.com/artem13815/career/pkg/chat"
)

type ChatHandler struct {
	svc *chat.Service
}

func NewChatHandler(svc *chat.Service) *ChatHandler { return &ChatHandler{svc: svc} }

type chatRequest struct {
	Message string `json:"message" validate:"required"`
	Type    string `json:"type"`
}

// Send asks the career advisor and stores the exchange.
// @Summary Career chat
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body chatRequest true "question and optional topic"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req chatRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	m, src, err := h.svc.Send(c.Context(), uid, req.Message, req.Type)
	if err != nil {
		return presenter.Fail(c, err, "Failed to process chat message")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"response":    m.Response,
		"chatMessage": m,
		"source":      src,
	})
}

// @Summary Chat history
// @Tags    chat
// @Produce json
// @Param   limit query int false "page size (max 200)"
// @Param   offset query int false "offset"
// @Success 200 {array} chat.Message
// @Router  /chat/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.svc.History(c.Context(), uid)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch chat history")
	}
	return presenter.JSON(c, http.StatusOK, page(c, items))
}
