package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"chat-schedule-api/config"
	"chat-schedule-api/models"
)

var (
	ErrNotReady       = errors.New("gateway не инициализирован: вызовите Init перед запросами")
	ErrSessionExpired = errors.New("сессия истекла, авторизуйтесь заново")
)

const xsrfCookieName = "XSRF-TOKEN"

// GatewayService — клиент API расписания колледжа. Сессия держится на
// куках (Laravel), каждый запрос несёт XSRF-токен из куки. Состояния:
// не инициализирован → готов → (готов | сессия истекла). Ответ 401
// переводит клиент в "не готов" до повторного Init или Login.
type GatewayService struct {
	cfg           *config.Config
	client        *http.Client
	baseURL       *url.URL
	scheduleCache *CacheService
	listCache     *CacheService

	mu    sync.Mutex
	ready bool
	xsrf  string
}

func NewGatewayService(cfg *config.Config, scheduleCache, listCache *CacheService) (*GatewayService, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	baseURL, err := url.Parse(cfg.RemoteBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	return &GatewayService{
		cfg: cfg,
		client: &http.Client{
			Jar:     jar,
			Timeout: cfg.RequestTimeout,
		},
		baseURL:       baseURL,
		scheduleCache: scheduleCache,
		listCache:     listCache,
	}, nil
}

func (s *GatewayService) endpoint(path string) string {
	return strings.TrimSuffix(s.cfg.RemoteBaseURL, "/") + path
}

// Init загружает страницу расписания, чтобы получить сессионные куки и
// XSRF-токен. Вызывается один раз перед любыми запросами.
func (s *GatewayService) Init(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint("/schedule"), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/html")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway init: %w", err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("gateway init: %s", res.Status)
	}

	s.mu.Lock()
	s.xsrf = s.cookieXSRF()
	s.ready = true
	s.mu.Unlock()

	log.Println("GatewayService - initialized")
	return nil
}

func (s *GatewayService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// cookieXSRF читает токен из куки. Laravel может обновить токен в любом
// ответе, поэтому кука перечитывается перед каждым запросом.
func (s *GatewayService) cookieXSRF() string {
	for _, cookie := range s.client.Jar.Cookies(s.baseURL) {
		if cookie.Name == xsrfCookieName {
			if value, err := url.QueryUnescape(cookie.Value); err == nil {
				return value
			}
			return cookie.Value
		}
	}
	return ""
}

func (s *GatewayService) currentXSRF() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token := s.cookieXSRF(); token != "" {
		s.xsrf = token
	}
	return s.xsrf
}

func (s *GatewayService) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
	req.Header.Set("X-XSRF-TOKEN", s.currentXSRF())
	req.Header.Set("Referer", s.cfg.RemoteReferer)
}

// fetch — общий GET с кэшем. Пустое тело ответа (день без пар) — это
// валидные "нет данных", они кэшируются как nil, а не как ошибка.
func (s *GatewayService) fetch(ctx context.Context, rawURL string, params url.Values, cache *CacheService, cacheKey string, ttl time.Duration) (interface{}, error) {
	if !s.Ready() {
		return nil, ErrNotReady
	}

	fullURL := rawURL
	if len(params) > 0 {
		fullURL = rawURL + "?" + params.Encode()
	}

	key := cacheKey
	if key == "" {
		key = fullURL
	}

	if cached, found := cache.Get(key); found {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway fetch %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		s.mu.Lock()
		s.ready = false
		s.mu.Unlock()
		return nil, ErrSessionExpired
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("gateway fetch %s: %s", rawURL, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway fetch %s: %w", rawURL, err)
	}

	var data interface{}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &data); err != nil {
			return nil, fmt.Errorf("gateway fetch %s: malformed response: %w", rawURL, err)
		}
	}

	cache.Set(key, data, ttl)
	return data, nil
}

// ── Справочники (кэш 30 минут) ──────────────────────────────────────

func (s *GatewayService) GetGroups(ctx context.Context) (interface{}, error) {
	return s.fetch(ctx, s.endpoint("/api/frontend/schedule/get/lists/groups"), nil, s.listCache, "groups", s.cfg.ListCacheTTL)
}

func (s *GatewayService) GetTeachers(ctx context.Context) (interface{}, error) {
	return s.fetch(ctx, s.endpoint("/api/frontend/schedule/get/lists/teachers"), nil, s.listCache, "teachers", s.cfg.ListCacheTTL)
}

func (s *GatewayService) GetCabs(ctx context.Context) (interface{}, error) {
	return s.fetch(ctx, s.endpoint("/api/frontend/schedule/get/lists/cabs"), nil, s.listCache, "cabs", s.cfg.ListCacheTTL)
}

func (s *GatewayService) GetUser(ctx context.Context) (interface{}, error) {
	return s.fetch(ctx, s.endpoint("/api/frontend/user"), nil, s.listCache, "user", s.cfg.ListCacheTTL)
}

// FindGroup ищет группы по части названия.
func (s *GatewayService) FindGroup(ctx context.Context, query string) ([]models.Option, error) {
	raw, err := s.GetGroups(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matched []models.Option
	for _, option := range ToOptions(raw) {
		if strings.Contains(strings.ToLower(option.Label), q) {
			matched = append(matched, option)
		}
	}
	return matched, nil
}

// ── Расписание (кэш 5 минут) ────────────────────────────────────────

// GetSchedule — расписание на одну дату. scheduleType: groups,
// teachers или cabs.
func (s *GatewayService) GetSchedule(ctx context.Context, item models.Option, date, scheduleType string) (interface{}, error) {
	params := url.Values{}
	params.Set("type", scheduleType)
	params.Set("item[label]", item.Label)
	params.Set("item[value]", item.Value)
	params.Set("date", date)

	cacheKey := fmt.Sprintf("schedule:%s:%s:%s", scheduleType, item.Value, date)
	return s.fetch(ctx, s.endpoint("/api/frontend/schedule/get"), params, s.scheduleCache, cacheKey, s.cfg.ScheduleCacheTTL)
}

// GetWeekSchedule — расписание на неделю (пн–сб). Все шесть дней
// запрашиваются параллельно; сбой одного дня не валит неделю — каждый
// день несёт свои данные либо свою ошибку.
func (s *GatewayService) GetWeekSchedule(ctx context.Context, item models.Option, anyDateInWeek time.Time, scheduleType string) models.WeekSchedule {
	dates := WeekDates(anyDateInWeek)
	entries := make([]models.DayEntry, len(dates))

	var wg sync.WaitGroup
	for i, date := range dates {
		wg.Add(1)
		go func(i int, date string) {
			defer wg.Done()
			data, err := s.GetSchedule(ctx, item, date, scheduleType)
			if err != nil {
				entries[i] = models.DayEntry{Error: err.Error()}
				return
			}
			entries[i] = models.DayEntry{Data: data}
		}(i, date)
	}
	wg.Wait()

	week := make(models.WeekSchedule, len(dates))
	for i, date := range dates {
		week[date] = entries[i]
	}
	return week
}

// GetDateRangeSchedule — расписание на диапазон дат включительно.
func (s *GatewayService) GetDateRangeSchedule(ctx context.Context, item models.Option, from, to string) (map[string]interface{}, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}

	var dates []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, cur.Format("2006-01-02"))
	}

	results := make([]interface{}, len(dates))
	var wg sync.WaitGroup
	for i, date := range dates {
		wg.Add(1)
		go func(i int, date string) {
			defer wg.Done()
			data, err := s.GetSchedule(ctx, item, date, "groups")
			if err != nil {
				return
			}
			results[i] = data
		}(i, date)
	}
	wg.Wait()

	schedule := make(map[string]interface{}, len(dates))
	for i, date := range dates {
		schedule[date] = results[i]
	}
	return schedule, nil
}

// ── Авторизация ─────────────────────────────────────────────────────

type loginErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// Login авторизует студента. Успешный вход меняет сессию — весь кэш
// сбрасывается, чтобы чужие данные не достались новому пользователю.
func (s *GatewayService) Login(ctx context.Context, email, password string) (interface{}, error) {
	if !s.Ready() {
		if err := s.Init(ctx); err != nil {
			return nil, err
		}
	}

	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint("/login"), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway login: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnprocessableEntity {
		var body loginErrorBody
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("ошибка входа: %s", res.Status)
		}
		var msgs []string
		for _, fieldErrors := range body.Errors {
			msgs = append(msgs, fieldErrors...)
		}
		if len(msgs) == 0 && body.Message != "" {
			msgs = append(msgs, body.Message)
		}
		return nil, fmt.Errorf("ошибка входа: %s", strings.Join(msgs, ", "))
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("gateway login: %s", res.Status)
	}

	s.mu.Lock()
	if token := s.cookieXSRF(); token != "" {
		s.xsrf = token
	}
	s.ready = true
	s.mu.Unlock()

	// Сессия сменилась — старый кэш не должен пережить логин
	s.ClearAllCache()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway login: %w", err)
	}

	var data interface{}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &data); err != nil {
			return nil, fmt.Errorf("gateway login: malformed response: %w", err)
		}
	}

	log.Println("GatewayService - logged in")
	return data, nil
}

func (s *GatewayService) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint("/logout"), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-XSRF-TOKEN", s.currentXSRF())

	res, err := s.client.Do(req)

	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
	s.ClearAllCache()

	if err != nil {
		return fmt.Errorf("gateway logout: %w", err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	log.Println("GatewayService - logged out")
	return nil
}

// ── Управление кэшем ────────────────────────────────────────────────

// ClearGroupCache сбрасывает кэш расписаний одной группы.
func (s *GatewayService) ClearGroupCache(groupValue string) {
	s.scheduleCache.ClearPrefix(fmt.Sprintf("schedule:groups:%s:", groupValue))
}

func (s *GatewayService) ClearAllCache() {
	s.scheduleCache.Flush()
	s.listCache.Flush()
}

// WeekDates — шесть дат пн–сб той недели, в которую попадает anchor.
// Воскресенье относится к предыдущей неделе (закончившейся субботой).
func WeekDates(anchor time.Time) []string {
	offset := (int(anchor.Weekday()) + 6) % 7
	monday := anchor.AddDate(0, 0, -offset)

	dates := make([]string, 6)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}
