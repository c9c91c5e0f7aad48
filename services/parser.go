package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"chat-schedule-api/models"
)

// CommandParser превращает свободный текст пользователя в типизированное
// намерение. Чистая функция от текста: всегда возвращает ровно один
// Intent и никогда не падает — нераспознанный ввод даёт IntentUnknown.

const namePattern = `[а-яa-zё0-9][а-яa-zё0-9-]+`

var (
	greetingWords = []string{
		"привет", "здравствуй", "добрый день", "добрый вечер",
		"доброе утро", "хай", "hello", "hi", "hey",
	}

	helpWords = []string{
		"помощь", "помоги", "help", "команды", "что ты умеешь",
		"как пользоваться", "инструкция", "справка",
	}

	// Расписание группы: от самого специфичного шаблона к эвристике.
	groupWithKeywordRe = regexp.MustCompile(`(?:расписание|покажи|найди)\s+групп[а-яё]*\s+(` + namePattern + `)`)
	groupWordRe        = regexp.MustCompile(`групп[а-яё]*\s+(` + namePattern + `)`)
	codeAfterKeywordRe = regexp.MustCompile(`(?:расписание|покажи|найди)\s+(\d[а-яa-zё0-9-]+|[а-яёa-z]+-\d[\d-]*)`)
	piCodeRe           = regexp.MustCompile(`(пи-?\d+)`)
	piHyphenRe         = regexp.MustCompile(`^(ПИ)(\d+)$`)

	teacherPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:расписание|покажи|найди)\s+(?:преподавател[ья]|препода?)\s+(.+)`),
		regexp.MustCompile(`(?:преподавател[ья]|препода?)\s+(.+)`),
		regexp.MustCompile(`у\s+(.+)\s+(?:расписание|пары)`),
	}
	teacherNoiseRe = regexp.MustCompile(`расписание|пары|занятия`)

	// Полные формы дней перебираются раньше коротких, иначе "вт"
	// перехватит "вторник".
	dayKeys = []struct{ key, day string }{
		{"понедельник", "Понедельник"},
		{"вторник", "Вторник"},
		{"среда", "Среду"},
		{"четверг", "Четверг"},
		{"пятница", "Пятницу"},
		{"суббота", "Субботу"},
		{"пн", "Понедельник"},
		{"вт", "Вторник"},
		{"ср", "Среду"},
		{"чт", "Четверг"},
		{"пт", "Пятницу"},
		{"сб", "Субботу"},
	}
	dayGroupPatterns = []*regexp.Regexp{
		regexp.MustCompile(`групп[а-яё]*\s+(` + namePattern + `)`),
		regexp.MustCompile(`\b(\d+[а-яa-zё][а-яa-zё0-9-]+)`),
		regexp.MustCompile(`(пи-?\d+)`),
	}

	freeSlotTriggers = []string{"свободн", "окна", "когда свободен", "консультация"}
	freeSlotNameRe   = regexp.MustCompile(`^(?:у\s+)?(.+?)(?:\s+в\s+|\s+на\s+|$)`)
	freeSlotNoiseRe  = regexp.MustCompile(`преподавател[ья]|препода?|свобод[а-яё]*|окна|когда`)
	freeSlotDays     = []struct{ key, day string }{
		{"понедельник", "Понедельник"},
		{"вторник", "Вторник"},
		{"среда", "Среду"},
		{"четверг", "Четверг"},
		{"пятница", "Пятницу"},
		{"суббота", "Субботу"},
	}

	groupListPhrases   = []string{"список групп", "какие группы", "все группы", "покажи группы"}
	teacherListPhrases = []string{"список преподавателей", "какие преподаватели", "все преподаватели", "покажи преподавателей"}
)

type CommandParser struct{}

func NewCommandParser() *CommandParser {
	return &CommandParser{}
}

// Parse разбирает команду. Порядок веток кодирует специфичность:
// команда с днём и группой должна проверяться раньше жадного захвата
// имени преподавателя, иначе возможны ложные срабатывания.
func (p *CommandParser) Parse(userInput string) models.Intent {
	text := strings.ToLower(strings.TrimSpace(userInput))

	if containsAny(text, greetingWords) {
		return models.Intent{Type: models.IntentGreeting, Confidence: 1.0}
	}

	if containsAny(text, helpWords) {
		return models.Intent{Type: models.IntentHelp, Confidence: 1.0}
	}

	if intent, ok := p.parseGroupSchedule(text); ok {
		return intent
	}

	if intent, ok := p.parseTeacherSchedule(text); ok {
		return intent
	}

	if intent, ok := p.parseDaySchedule(text); ok {
		return intent
	}

	if intent, ok := p.parseFreeSlots(text); ok {
		return intent
	}

	if containsAny(text, groupListPhrases) {
		return models.Intent{Type: models.IntentListGroups, Confidence: 1.0}
	}

	if containsAny(text, teacherListPhrases) {
		return models.Intent{Type: models.IntentListTeachers, Confidence: 1.0}
	}

	return models.Intent{
		Type:          models.IntentUnknown,
		OriginalInput: userInput,
		Confidence:    0,
	}
}

// parseGroupSchedule поддерживает ПИ-301, 9ССА-37-23, 10ИТ-22 и прочие
// форматы шифров групп колледжа.
func (p *CommandParser) parseGroupSchedule(text string) (models.Intent, bool) {
	// 1. Явно: "расписание группа НАЗВАНИЕ" — слово "группа" обязательно
	if m := groupWithKeywordRe.FindStringSubmatch(text); m != nil {
		return groupIntent(m[1], 0.95), true
	}

	// 2. "группа НАЗВАНИЕ" без ведущего ключевого слова
	if m := groupWordRe.FindStringSubmatch(text); m != nil {
		return groupIntent(m[1], 0.88), true
	}

	// 3. "расписание КОД" — только если КОД похож на шифр группы:
	//    начинается с цифры (9ССА-37-23) или буквы-дефис-цифры (ПИ-301)
	if m := codeAfterKeywordRe.FindStringSubmatch(text); m != nil {
		return groupIntent(m[1], 0.85), true
	}

	// 4. Последняя надежда: ПИ-301 / ПИ301 где угодно в строке
	if m := piCodeRe.FindStringSubmatch(text); m != nil {
		return groupIntent(m[1], 0.85), true
	}

	return models.Intent{}, false
}

func (p *CommandParser) parseTeacherSchedule(text string) (models.Intent, bool) {
	for _, pattern := range teacherPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		name := strings.TrimSpace(teacherNoiseRe.ReplaceAllString(m[1], ""))
		if utf8.RuneCountInString(name) > 2 {
			return models.Intent{
				Type:        models.IntentTeacherSchedule,
				TeacherName: name,
				Confidence:  0.85,
			}, true
		}
	}

	return models.Intent{}, false
}

func (p *CommandParser) parseDaySchedule(text string) (models.Intent, bool) {
	for _, entry := range dayKeys {
		if !strings.Contains(text, entry.key) {
			continue
		}

		for _, re := range dayGroupPatterns {
			if m := re.FindStringSubmatch(text); m != nil {
				return models.Intent{
					Type:       models.IntentDaySchedule,
					GroupName:  normalizeGroupCode(m[1]),
					DayName:    entry.day,
					Confidence: 0.9,
				}, true
			}
		}
	}

	return models.Intent{}, false
}

func (p *CommandParser) parseFreeSlots(text string) (models.Intent, bool) {
	if !containsAny(text, freeSlotTriggers) {
		return models.Intent{}, false
	}

	m := freeSlotNameRe.FindStringSubmatch(text)
	if m == nil {
		return models.Intent{}, false
	}

	dayName := ""
	for _, entry := range freeSlotDays {
		if strings.Contains(text, entry.key) {
			dayName = entry.day
			break
		}
	}

	name := strings.TrimSpace(freeSlotNoiseRe.ReplaceAllString(m[1], ""))
	if utf8.RuneCountInString(name) <= 2 {
		return models.Intent{}, false
	}

	return models.Intent{
		Type:        models.IntentTeacherFreeSlots,
		TeacherName: name,
		DayName:     dayName,
		Confidence:  0.85,
	}, true
}

// Examples возвращает примеры команд для экрана приветствия.
func (p *CommandParser) Examples() []string {
	return []string{
		"📅 Расписание группы ПИ-301",
		"👨‍🏫 Расписание преподавателя Иванова",
		"📆 Расписание ПИ-301 в понедельник",
		"🕐 Когда свободен Петров в четверг",
		"📋 Список групп",
		"👥 Список преподавателей",
		"❓ Помощь",
	}
}

func groupIntent(name string, confidence float64) models.Intent {
	return models.Intent{
		Type:       models.IntentGroupSchedule,
		GroupName:  normalizeGroupCode(name),
		Confidence: confidence,
	}
}

// normalizeGroupCode: шифры групп регистронезависимы, канонически —
// верхний регистр; ПИ301 приводится к дефисной форме ПИ-301.
func normalizeGroupCode(name string) string {
	code := strings.ToUpper(name)
	if !strings.Contains(code, "-") {
		code = piHyphenRe.ReplaceAllString(code, "$1-$2")
	}
	return code
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
