package services

import (
	"testing"

	"chat-schedule-api/models"
)

func TestParseNeverFails(t *testing.T) {
	parser := NewCommandParser()

	inputs := []string{
		"",
		"   ",
		"фывап ролджэ",
		"!!!???",
		"group schedule please",
		"у а б",
	}

	for _, input := range inputs {
		intent := parser.Parse(input)
		if intent.Type == "" {
			t.Errorf("Parse(%q) returned empty intent type", input)
		}
	}

	unknown := parser.Parse("")
	if unknown.Type != models.IntentUnknown {
		t.Errorf("Parse(\"\") = %s, want UNKNOWN", unknown.Type)
	}
	if unknown.Confidence != 0 {
		t.Errorf("Parse(\"\") confidence = %v, want 0", unknown.Confidence)
	}
}

func TestParseGroupScheduleSpecificity(t *testing.T) {
	parser := NewCommandParser()

	tests := []struct {
		input      string
		group      string
		confidence float64
	}{
		{"расписание группа ПИ-301", "ПИ-301", 0.95},
		{"покажи группу 9ССА-37-23", "9ССА-37-23", 0.95},
		{"группа пи301", "ПИ-301", 0.88},
		{"Группа ПИ-301", "ПИ-301", 0.88},
		{"расписание 10ИТ-22", "10ИТ-22", 0.85},
		{"хочу пи301", "ПИ-301", 0.85},
	}

	for _, tt := range tests {
		intent := parser.Parse(tt.input)
		if intent.Type != models.IntentGroupSchedule {
			t.Errorf("Parse(%q) = %s, want GROUP_SCHEDULE", tt.input, intent.Type)
			continue
		}
		if intent.GroupName != tt.group {
			t.Errorf("Parse(%q) group = %q, want %q", tt.input, intent.GroupName, tt.group)
		}
		if intent.Confidence != tt.confidence {
			t.Errorf("Parse(%q) confidence = %v, want %v", tt.input, intent.Confidence, tt.confidence)
		}
	}
}

func TestParseGroupBeatsTeacherAndDay(t *testing.T) {
	parser := NewCommandParser()

	// Команда с явным словом "группа" не должна уходить ни в ветку
	// преподавателя, ни в ветку дня
	intent := parser.Parse("расписание группа ПИ-301")
	if intent.Type != models.IntentGroupSchedule {
		t.Fatalf("intent = %s, want GROUP_SCHEDULE", intent.Type)
	}
	if intent.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", intent.Confidence)
	}
}

func TestParseTeacherSchedule(t *testing.T) {
	parser := NewCommandParser()

	tests := []struct {
		input   string
		teacher string
	}{
		{"расписание преподавателя иванова", "иванова"},
		{"преподаватель петров", "петров"},
		{"у смирновой пары", "смирновой"},
	}

	for _, tt := range tests {
		intent := parser.Parse(tt.input)
		if intent.Type != models.IntentTeacherSchedule {
			t.Errorf("Parse(%q) = %s, want TEACHER_SCHEDULE", tt.input, intent.Type)
			continue
		}
		if intent.TeacherName != tt.teacher {
			t.Errorf("Parse(%q) teacher = %q, want %q", tt.input, intent.TeacherName, tt.teacher)
		}
		if intent.Confidence != 0.85 {
			t.Errorf("Parse(%q) confidence = %v, want 0.85", tt.input, intent.Confidence)
		}
	}
}

func TestParseTeacherRejectsShortResidual(t *testing.T) {
	parser := NewCommandParser()

	// После удаления шумовых слов остаётся слишком короткое имя
	intent := parser.Parse("преподаватель ив")
	if intent.Type == models.IntentTeacherSchedule {
		t.Errorf("short residual name accepted: %+v", intent)
	}
}

func TestParseDaySchedule(t *testing.T) {
	parser := NewCommandParser()

	intent := parser.Parse("9сса-37-23 в понедельник")
	if intent.Type != models.IntentDaySchedule {
		t.Fatalf("intent = %s, want DAY_SCHEDULE", intent.Type)
	}
	if intent.GroupName != "9ССА-37-23" {
		t.Errorf("group = %q, want 9ССА-37-23", intent.GroupName)
	}
	if intent.DayName != "Понедельник" {
		t.Errorf("day = %q, want Понедельник", intent.DayName)
	}
	if intent.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", intent.Confidence)
	}

	// Короткая форма дня
	intent = parser.Parse("9ит-22 в ср")
	if intent.Type != models.IntentDaySchedule || intent.DayName != "Среду" {
		t.Errorf("Parse short day form = %+v, want DAY_SCHEDULE/Среду", intent)
	}
}

func TestParseFreeSlots(t *testing.T) {
	parser := NewCommandParser()

	intent := parser.Parse("когда свободен петров в четверг")
	if intent.Type != models.IntentTeacherFreeSlots {
		t.Fatalf("intent = %s, want TEACHER_FREE_SLOTS", intent.Type)
	}
	if intent.TeacherName != "петров" {
		t.Errorf("teacher = %q, want петров", intent.TeacherName)
	}
	if intent.DayName != "Четверг" {
		t.Errorf("day = %q, want Четверг", intent.DayName)
	}

	// Без дня — день остаётся пустым, диспетчер подставит понедельник
	intent = parser.Parse("окна иванова")
	if intent.Type != models.IntentTeacherFreeSlots {
		t.Fatalf("intent = %s, want TEACHER_FREE_SLOTS", intent.Type)
	}
	if intent.TeacherName != "иванова" {
		t.Errorf("teacher = %q, want иванова", intent.TeacherName)
	}
	if intent.DayName != "" {
		t.Errorf("day = %q, want empty", intent.DayName)
	}
}

func TestParseListRequests(t *testing.T) {
	parser := NewCommandParser()

	for _, input := range []string{"список групп", "покажи группы", "все группы"} {
		if intent := parser.Parse(input); intent.Type != models.IntentListGroups {
			t.Errorf("Parse(%q) = %s, want LIST_GROUPS", input, intent.Type)
		}
	}

	for _, input := range []string{"список преподавателей", "все преподаватели"} {
		if intent := parser.Parse(input); intent.Type != models.IntentListTeachers {
			t.Errorf("Parse(%q) = %s, want LIST_TEACHERS", input, intent.Type)
		}
	}
}

func TestParseGreetingAndHelp(t *testing.T) {
	parser := NewCommandParser()

	if intent := parser.Parse("Привет!"); intent.Type != models.IntentGreeting {
		t.Errorf("greeting intent = %s", intent.Type)
	}
	if intent := parser.Parse("помощь"); intent.Type != models.IntentHelp {
		t.Errorf("help intent = %s", intent.Type)
	}
	if intent := parser.Parse("что ты умеешь?"); intent.Type != models.IntentHelp {
		t.Errorf("help intent = %s", intent.Type)
	}
}

func TestParseUnknownKeepsOriginalInput(t *testing.T) {
	parser := NewCommandParser()

	intent := parser.Parse("абракадабра")
	if intent.Type != models.IntentUnknown {
		t.Fatalf("intent = %s, want UNKNOWN", intent.Type)
	}
	if intent.OriginalInput != "абракадабра" {
		t.Errorf("original input = %q", intent.OriginalInput)
	}
}
