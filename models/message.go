package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы контента, которые понимает слой отображения.
const (
	ContentWelcome         = "welcome"
	ContentError           = "error"
	ContentSchedule        = "schedule"
	ContentDaySchedule     = "day-schedule"
	ContentTeacherSchedule = "teacher-schedule"
	ContentFreeSlots       = "free-slots"
	ContentGroupsList      = "groups-list"
	ContentTeachersList    = "teachers-list"
	ContentAPIGroupsList   = "api-groups-list"
	ContentAPITeachersList = "api-teachers-list"
	ContentAPIWeekSchedule = "api-week-schedule"
)

// Message — сообщение чата. Пустой ContentType означает обычный текст.
type Message struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"` // "bot" | "user"
	ContentType string      `json:"contentType,omitempty"`
	Data        interface{} `json:"data,omitempty"`
	Text        string      `json:"text,omitempty"`
	Timestamp   int64       `json:"timestamp"`
}

func NewUserMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Type:      "user",
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
}

func NewBotText(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Type:      "bot",
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
}

func NewBotError(text string) Message {
	m := NewBotText(text)
	m.ContentType = ContentError
	return m
}

func NewBotData(contentType string, data interface{}) Message {
	return Message{
		ID:          uuid.NewString(),
		Type:        "bot",
		ContentType: contentType,
		Data:        data,
		Timestamp:   time.Now().UnixMilli(),
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
