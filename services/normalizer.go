package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"chat-schedule-api/models"
)

// Нормализация ответов API колледжа. Форма ответа задана нестрого:
// одно и то же поле может приходить объектом, строкой или под другим
// именем, поэтому каждое поле извлекается цепочкой запасных вариантов.
// Ни одна из функций не возвращает ошибку — худший случай это пустой
// результат.

// Ссылка считается конференц-ссылкой только если совпадает со списком
// известных доменов. Иначе ссылка из профиля преподавателя превратится
// в кнопку "Подключиться".
var meetingLinkRe = regexp.MustCompile(`(?i)zoom\.us|meet\.|teams\.|bigbluebutton|conf\.|maks|max`)

// ToArray приводит ответ API произвольной формы к массиву: сначала
// известные ключи-контейнеры, затем первое попавшееся значение-массив.
func ToArray(response interface{}) []interface{} {
	if response == nil {
		return []interface{}{}
	}

	if arr, ok := response.([]interface{}); ok {
		return arr
	}

	obj, ok := response.(map[string]interface{})
	if !ok {
		return []interface{}{}
	}

	for _, key := range []string{"data", "items", "groups", "teachers", "cabs", "list"} {
		if arr, ok := obj[key].([]interface{}); ok {
			return arr
		}
	}

	for _, value := range obj {
		if arr, ok := value.([]interface{}); ok {
			return arr
		}
	}

	return []interface{}{}
}

// AdaptLessonList извлекает массив пар из ответа на запрос расписания.
// Основной ключ API колледжа — "schedules"; остальные ключи оставлены
// на случай изменения API. Элементы, не являющиеся объектами, молча
// выбрасываются.
func AdaptLessonList(raw interface{}) []interface{} {
	if raw == nil {
		return []interface{}{}
	}

	if arr, ok := raw.([]interface{}); ok {
		return onlyObjects(arr)
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return []interface{}{}
	}

	if arr, ok := obj["schedules"].([]interface{}); ok {
		return onlyObjects(arr)
	}

	for _, key := range []string{"lessons", "pairs", "schedule", "timetable", "items", "data"} {
		if arr, ok := obj[key].([]interface{}); ok {
			return onlyObjects(arr)
		}
	}

	return []interface{}{}
}

func onlyObjects(arr []interface{}) []interface{} {
	result := make([]interface{}, 0, len(arr))
	for _, item := range arr {
		if _, ok := item.(map[string]interface{}); ok {
			result = append(result, item)
		}
	}
	return result
}

// NormalizeLesson приводит пару к каноническому виду.
// Реальная структура API: { number, type, time:{start,end},
// discipline:{name}, teacher:{name,link}, cab:{cab,name}, do }.
func NormalizeLesson(raw interface{}) models.Lesson {
	lesson := models.Lesson{}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return lesson
	}

	// Время: объект {start, end} или пара плоских полей
	if timeObj, ok := obj["time"].(map[string]interface{}); ok {
		lesson.Time = fmt.Sprintf("%s – %s", asString(timeObj["start"]), asString(timeObj["end"]))
	} else if start, end := asString(obj["time_start"]), asString(obj["time_end"]); start != "" && end != "" {
		lesson.Time = fmt.Sprintf("%s – %s", start, end)
	} else {
		lesson.Time = asString(obj["time"])
	}

	// Предмет: объект {name} или строка под разными именами
	if discObj, ok := obj["discipline"].(map[string]interface{}); ok {
		lesson.Subject = asString(discObj["name"])
	} else {
		lesson.Subject = firstString(obj, "discipline", "subject", "name", "pair")
	}

	// Преподаватель: объект {name, link} или строка
	link := ""
	if teachObj, ok := obj["teacher"].(map[string]interface{}); ok {
		lesson.Teacher = asString(teachObj["name"])
		link = asString(teachObj["link"])
	} else {
		lesson.Teacher = firstString(obj, "teacher", "teacher_name")
	}

	// Кабинет: объект {cab, name} — предпочитаем короткое обозначение
	if cabObj, ok := obj["cab"].(map[string]interface{}); ok {
		if cab := strings.TrimSpace(asString(cabObj["cab"])); cab != "" {
			lesson.Room = asString(cabObj["cab"])
		} else {
			lesson.Room = asString(cabObj["name"])
		}
	} else {
		lesson.Room = firstString(obj, "room", "cabinet", "cab")
	}

	lesson.Type = firstString(obj, "type", "pair_type")

	if number, ok := obj["number"].(float64); ok {
		n := int(number)
		lesson.Number = &n
	}

	if groupObj, ok := obj["group"].(map[string]interface{}); ok {
		lesson.Group = asString(groupObj["name"])
	} else {
		lesson.Group = asString(obj["group"])
	}

	// Онлайн — только явный флаг do=true. Косвенные признаки
	// игнорируются, чтобы не вешать ложный бейдж "Онлайн".
	lesson.IsOnline = obj["do"] == true

	if lesson.IsOnline && link != "" && meetingLinkRe.MatchString(link) {
		lesson.MeetingLink = link
	}

	return lesson
}

// NormalizeLessonList — массив пар сразу в каноническом виде.
func NormalizeLessonList(raw interface{}) []models.Lesson {
	adapted := AdaptLessonList(raw)
	lessons := make([]models.Lesson, 0, len(adapted))
	for _, item := range adapted {
		lessons = append(lessons, NormalizeLesson(item))
	}
	return lessons
}

// ToOptions превращает ответ справочника в список {label, value}.
// Value может приходить и числом — приводим к строке.
func ToOptions(response interface{}) []models.Option {
	items := ToArray(response)
	options := make([]models.Option, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		label := asString(obj["label"])
		if label == "" {
			continue
		}
		options = append(options, models.Option{
			Label: label,
			Value: asString(obj["value"]),
		})
	}
	return options
}

func firstString(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value := asString(obj[key]); value != "" {
			return value
		}
	}
	return ""
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
