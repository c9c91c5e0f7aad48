package handlers

import (
	"errors"
	"net/http"
	"time"

	"chat-schedule-api/models"
	"chat-schedule-api/services"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	gateway    *services.GatewayService
	dispatcher *services.Dispatcher
}

func NewScheduleHandler(gateway *services.GatewayService, dispatcher *services.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{
		gateway:    gateway,
		dispatcher: dispatcher,
	}
}

// GetGroups отдаёт справочник групп: API колледжа, при сбое —
// локальный список (через диспетчер).
func (h *ScheduleHandler) GetGroups(c *gin.Context) {
	message := h.dispatcher.Handle(c.Request.Context(), models.Intent{Type: models.IntentListGroups, Confidence: 1.0})
	c.JSON(http.StatusOK, gin.H{
		"contentType": message.ContentType,
		"data":        message.Data,
	})
}

func (h *ScheduleHandler) GetTeachers(c *gin.Context) {
	message := h.dispatcher.Handle(c.Request.Context(), models.Intent{Type: models.IntentListTeachers, Confidence: 1.0})
	c.JSON(http.StatusOK, gin.H{
		"contentType": message.ContentType,
		"data":        message.Data,
	})
}

func (h *ScheduleHandler) GetCabs(c *gin.Context) {
	raw, err := h.gateway.GetCabs(c.Request.Context())
	if err != nil {
		h.gatewayError(c, "failed to list cabs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": services.ToOptions(raw)})
}

// itemFromQuery собирает объект справочника из query-параметров.
func itemFromQuery(c *gin.Context) (models.Option, bool) {
	item := models.Option{
		Label: c.Query("label"),
		Value: c.Query("value"),
	}
	if item.Label == "" || item.Value == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "label and value parameters are required",
		})
		return models.Option{}, false
	}
	return item, true
}

// GetWeekSchedule — неделя пн–сб вокруг даты date (по умолчанию
// сегодня). Частичные сбои не валят ответ: каждый день несёт данные
// либо ошибку.
func (h *ScheduleHandler) GetWeekSchedule(c *gin.Context) {
	item, ok := itemFromQuery(c)
	if !ok {
		return
	}

	scheduleType := c.DefaultQuery("type", "groups")

	anchor := time.Now()
	if date := c.Query("date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "date must be in YYYY-MM-DD format",
			})
			return
		}
		anchor = parsed
	}

	week := h.gateway.GetWeekSchedule(c.Request.Context(), item, anchor, scheduleType)
	c.JSON(http.StatusOK, gin.H{"data": week})
}

func (h *ScheduleHandler) GetDaySchedule(c *gin.Context) {
	item, ok := itemFromQuery(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "date parameter is required",
		})
		return
	}

	scheduleType := c.DefaultQuery("type", "groups")

	data, err := h.gateway.GetSchedule(c.Request.Context(), item, date, scheduleType)
	if err != nil {
		h.gatewayError(c, "failed to fetch schedule", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    data,
		"lessons": services.NormalizeLessonList(data),
	})
}

func (h *ScheduleHandler) GetDateRangeSchedule(c *gin.Context) {
	item, ok := itemFromQuery(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "from and to parameters are required",
		})
		return
	}

	data, err := h.gateway.GetDateRangeSchedule(c.Request.Context(), item, from, to)
	if err != nil {
		h.gatewayError(c, "failed to fetch date range", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// InvalidateCache сбрасывает кэш шлюза: с параметром group — только
// расписания этой группы, без него — весь кэш.
func (h *ScheduleHandler) InvalidateCache(c *gin.Context) {
	if group := c.Query("group"); group != "" {
		h.gateway.ClearGroupCache(group)
		c.JSON(http.StatusOK, gin.H{
			"message": "group cache invalidated successfully",
		})
		return
	}

	h.gateway.ClearAllCache()
	c.JSON(http.StatusOK, gin.H{
		"message": "cache invalidated successfully",
	})
}

func (h *ScheduleHandler) gatewayError(c *gin.Context, what string, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, services.ErrNotReady) || errors.Is(err, services.ErrSessionExpired) {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, models.ErrorResponse{
		Error:   what,
		Message: err.Error(),
	})
}
