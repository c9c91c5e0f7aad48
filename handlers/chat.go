package handlers

import (
	"net/http"

	"chat-schedule-api/models"
	"chat-schedule-api/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	parser     *services.CommandParser
	dispatcher *services.Dispatcher
	gateway    *services.GatewayService
}

func NewChatHandler(parser *services.CommandParser, dispatcher *services.Dispatcher, gateway *services.GatewayService) *ChatHandler {
	return &ChatHandler{
		parser:     parser,
		dispatcher: dispatcher,
		gateway:    gateway,
	}
}

type sendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// SendMessage принимает текст команды и возвращает сообщение
// пользователя вместе с ответом бота. Любая команда получает ровно
// один ответ — диспетчер не пропускает ошибок наружу.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "text is required",
			Message: err.Error(),
		})
		return
	}

	userMessage := models.NewUserMessage(req.Text)
	intent := h.parser.Parse(req.Text)
	reply := h.dispatcher.Handle(c.Request.Context(), intent)

	c.JSON(http.StatusOK, gin.H{
		"message": userMessage,
		"reply":   reply,
		"intent":  intent,
	})
}

// Suggest — подсказки автокомплита для строки ввода. Справочники
// берутся из кэша шлюза; если API недоступен, остаются только
// статические команды.
func (h *ChatHandler) Suggest(c *gin.Context) {
	query := c.Query("q")

	var groups, teachers []models.Option
	if h.gateway.Ready() {
		if matched, err := h.gateway.FindGroup(c.Request.Context(), query); err == nil {
			groups = matched
		}
		if raw, err := h.gateway.GetTeachers(c.Request.Context()); err == nil {
			teachers = services.ToOptions(raw)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": services.Suggest(query, groups, teachers),
	})
}

// Examples возвращает примеры команд для экрана приветствия.
func (h *ChatHandler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"examples": h.parser.Examples(),
	})
}
