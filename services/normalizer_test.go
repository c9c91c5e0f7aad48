package services

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var data interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	return data
}

func TestToArray(t *testing.T) {
	if got := ToArray(nil); len(got) != 0 {
		t.Errorf("ToArray(nil) = %v, want empty", got)
	}

	if got := ToArray(decode(t, `[1, 2, 3]`)); len(got) != 3 {
		t.Errorf("ToArray(array) len = %d, want 3", len(got))
	}

	if got := ToArray(decode(t, `{"data": [1, 2]}`)); len(got) != 2 {
		t.Errorf("ToArray({data}) len = %d, want 2", len(got))
	}

	// Неизвестный ключ — берётся первое попавшееся значение-массив
	if got := ToArray(decode(t, `{"something": [1]}`)); len(got) != 1 {
		t.Errorf("ToArray({something}) len = %d, want 1", len(got))
	}

	if got := ToArray(decode(t, `{"no": "arrays"}`)); len(got) != 0 {
		t.Errorf("ToArray without arrays = %v, want empty", got)
	}

	if got := ToArray("not a container"); len(got) != 0 {
		t.Errorf("ToArray(string) = %v, want empty", got)
	}
}

func TestAdaptLessonListRobustness(t *testing.T) {
	// Мусорные входы дают пустой список, не панику
	for name, raw := range map[string]interface{}{
		"nil":     nil,
		"object":  decode(t, `{}`),
		"scalars": decode(t, `[1, 2, 3]`),
		"string":  "oops",
	} {
		if got := AdaptLessonList(raw); len(got) != 0 {
			t.Errorf("AdaptLessonList(%s) = %v, want empty", name, got)
		}
	}
}

func TestAdaptLessonListKeys(t *testing.T) {
	primary := decode(t, `{"success": true, "schedules": [{"number": 1}, {"number": 2}]}`)
	if got := AdaptLessonList(primary); len(got) != 2 {
		t.Errorf("primary key: len = %d, want 2", len(got))
	}

	legacy := decode(t, `{"lessons": [{"number": 1}]}`)
	if got := AdaptLessonList(legacy); len(got) != 1 {
		t.Errorf("legacy key: len = %d, want 1", len(got))
	}

	bare := decode(t, `[{"number": 1}]`)
	if got := AdaptLessonList(bare); len(got) != 1 {
		t.Errorf("bare array: len = %d, want 1", len(got))
	}
}

func TestNormalizeLessonRealAPIShape(t *testing.T) {
	raw := decode(t, `{
		"number": 2,
		"type": "Лекции",
		"time": {"start": "10:45", "end": "12:15"},
		"discipline": {"name": "Базы данных"},
		"teacher": {"name": "Иванова А.И.", "link": "https://zoom.us/j/123"},
		"cab": {"cab": "320", "name": "Корпус А, 320"},
		"do": true
	}`)

	lesson := NormalizeLesson(raw)

	if lesson.Time != "10:45 – 12:15" {
		t.Errorf("time = %q", lesson.Time)
	}
	if lesson.Subject != "Базы данных" {
		t.Errorf("subject = %q", lesson.Subject)
	}
	if lesson.Teacher != "Иванова А.И." {
		t.Errorf("teacher = %q", lesson.Teacher)
	}
	if lesson.Room != "320" {
		t.Errorf("room = %q", lesson.Room)
	}
	if lesson.Number == nil || *lesson.Number != 2 {
		t.Errorf("number = %v, want 2", lesson.Number)
	}
	if !lesson.IsOnline {
		t.Error("isOnline = false, want true")
	}
	if lesson.MeetingLink != "https://zoom.us/j/123" {
		t.Errorf("meetingLink = %q", lesson.MeetingLink)
	}
}

func TestNormalizeLessonFallbackChains(t *testing.T) {
	raw := decode(t, `{
		"time_start": "9:00",
		"time_end": "10:30",
		"subject": "Математика",
		"teacher_name": "Волкова Е.А.",
		"room": "201",
		"pair_type": "Лекция"
	}`)

	lesson := NormalizeLesson(raw)

	if lesson.Time != "9:00 – 10:30" {
		t.Errorf("time = %q", lesson.Time)
	}
	if lesson.Subject != "Математика" {
		t.Errorf("subject = %q", lesson.Subject)
	}
	if lesson.Teacher != "Волкова Е.А." {
		t.Errorf("teacher = %q", lesson.Teacher)
	}
	if lesson.Room != "201" {
		t.Errorf("room = %q", lesson.Room)
	}
	if lesson.Type != "Лекция" {
		t.Errorf("type = %q", lesson.Type)
	}
	if lesson.Number != nil {
		t.Errorf("number = %v, want nil", lesson.Number)
	}
}

func TestNormalizeLessonOnlineLinkGating(t *testing.T) {
	// Ссылка на профиль преподавателя не должна стать кнопкой
	// "Подключиться", даже когда пара онлайн
	profile := decode(t, `{
		"do": true,
		"teacher": {"name": "Петров П.П.", "link": "https://example.com/profile"}
	}`)

	lesson := NormalizeLesson(profile)
	if !lesson.IsOnline {
		t.Error("isOnline = false, want true")
	}
	if lesson.MeetingLink != "" {
		t.Errorf("meetingLink = %q, want empty", lesson.MeetingLink)
	}

	// MAX — тоже конференц-платформа, её ссылки проходят фильтр
	maxCall := decode(t, `{
		"do": true,
		"teacher": {"name": "Петров П.П.", "link": "https://max.ru/call/abc"}
	}`)

	lesson = NormalizeLesson(maxCall)
	if lesson.MeetingLink != "https://max.ru/call/abc" {
		t.Errorf("meetingLink = %q, want max.ru link", lesson.MeetingLink)
	}

	// Без явного do=true пара не онлайн, ссылка не показывается
	noFlag := decode(t, `{
		"teacher": {"name": "Петров П.П.", "link": "https://zoom.us/j/123"}
	}`)

	lesson = NormalizeLesson(noFlag)
	if lesson.IsOnline {
		t.Error("isOnline = true without explicit do flag")
	}
	if lesson.MeetingLink != "" {
		t.Errorf("meetingLink = %q, want empty", lesson.MeetingLink)
	}
}

func TestNormalizeLessonCabFallsBackToName(t *testing.T) {
	raw := decode(t, `{"cab": {"cab": "  ", "name": "Спортзал"}}`)
	if lesson := NormalizeLesson(raw); lesson.Room != "Спортзал" {
		t.Errorf("room = %q, want Спортзал", lesson.Room)
	}
}

func TestNormalizeLessonNonObject(t *testing.T) {
	lesson := NormalizeLesson("garbage")
	if lesson.Subject != "" || lesson.Time != "" {
		t.Errorf("non-object input produced %+v", lesson)
	}
}

func TestToOptions(t *testing.T) {
	options := ToOptions(decode(t, `[
		{"label": "ПИ-301", "value": 42},
		{"label": "ПИ-201", "value": "17"},
		{"value": "no-label"},
		"garbage"
	]`))

	if len(options) != 2 {
		t.Fatalf("len = %d, want 2", len(options))
	}
	if options[0].Label != "ПИ-301" || options[0].Value != "42" {
		t.Errorf("options[0] = %+v", options[0])
	}
	if options[1].Value != "17" {
		t.Errorf("options[1] = %+v", options[1])
	}
}
