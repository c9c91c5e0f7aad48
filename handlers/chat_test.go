package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chat-schedule-api/config"
	"chat-schedule-api/services"

	"github.com/gin-gonic/gin"
)

// newTestRouter собирает чат поверх шлюза, указывающего в никуда:
// Init не вызывался, Ready() == false, все команды идут по локальным
// данным. Это штатный режим "сайт колледжа недоступен".
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		RemoteBaseURL:  "http://127.0.0.1:1",
		RequestTimeout: time.Second,
	}
	gateway, err := services.NewGatewayService(cfg,
		services.NewCacheService(time.Minute, time.Minute),
		services.NewCacheService(time.Minute, time.Minute))
	if err != nil {
		t.Fatalf("NewGatewayService: %v", err)
	}

	parser := services.NewCommandParser()
	dispatcher := services.NewDispatcher(gateway, services.NewScheduleRepository())
	chat := NewChatHandler(parser, dispatcher, gateway)
	schedule := NewScheduleHandler(gateway, dispatcher)

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/chat/message", chat.SendMessage)
	api.GET("/chat/suggest", chat.Suggest)
	api.GET("/chat/examples", chat.Examples)
	api.GET("/groups", schedule.GetGroups)
	api.POST("/cache/invalidate", schedule.InvalidateCache)
	return router
}

func TestSendMessageGroupsListFallback(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"text": "список групп"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/message", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var response struct {
		Message struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"message"`
		Reply struct {
			Type        string `json:"type"`
			ContentType string `json:"contentType"`
			Data        []struct {
				Name string `json:"name"`
			} `json:"data"`
		} `json:"reply"`
		Intent struct {
			Type string `json:"type"`
		} `json:"intent"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("bad response json: %v", err)
	}

	if response.Message.Type != "user" || response.Message.Text != "список групп" {
		t.Errorf("message = %+v", response.Message)
	}
	if response.Intent.Type != "LIST_GROUPS" {
		t.Errorf("intent = %q, want LIST_GROUPS", response.Intent.Type)
	}
	if response.Reply.ContentType != "groups-list" {
		t.Fatalf("reply contentType = %q, want groups-list", response.Reply.ContentType)
	}

	names := make([]string, 0, len(response.Reply.Data))
	for _, g := range response.Reply.Data {
		names = append(names, g.Name)
	}
	if len(names) != 2 || names[0] != "ПИ-301" || names[1] != "ПИ-201" {
		t.Errorf("groups = %v, want [ПИ-301 ПИ-201]", names)
	}
}

func TestSendMessageRequiresText(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/message", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSuggestWithoutGateway(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/suggest?q=список", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var response struct {
		Suggestions []struct {
			Command string `json:"command"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("bad response json: %v", err)
	}

	// API недоступен — остаются только статические команды
	if len(response.Suggestions) != 2 {
		t.Fatalf("suggestions = %+v, want 2 static commands", response.Suggestions)
	}
	if response.Suggestions[0].Command != "список групп" {
		t.Errorf("suggestions[0] = %+v", response.Suggestions[0])
	}
}

func TestExamples(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/examples", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var response struct {
		Examples []string `json:"examples"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("bad response json: %v", err)
	}
	if len(response.Examples) == 0 {
		t.Error("examples are empty")
	}
}
