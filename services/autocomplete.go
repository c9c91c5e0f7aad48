package services

import (
	"strings"

	"chat-schedule-api/models"
)

const maxSuggestions = 5

type Suggestion struct {
	Command     string `json:"command"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var staticCommands = []Suggestion{
	{Command: "список групп", Description: "Все группы колледжа", Icon: "📋"},
	{Command: "список преподавателей", Description: "Все преподаватели", Icon: "👥"},
	{Command: "помощь", Description: "Список доступных команд", Icon: "❓"},
}

// Suggest — до пяти подсказок для строки ввода: сначала статические
// команды, затем совпавшие группы и преподаватели. Запросы короче двух
// символов подсказок не дают.
func Suggest(query string, groups, teachers []models.Option) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < 2 {
		return []Suggestion{}
	}

	results := make([]Suggestion, 0, maxSuggestions)

	for _, cmd := range staticCommands {
		if strings.Contains(cmd.Command, q) {
			results = append(results, cmd)
		}
	}

	for _, g := range groups {
		if len(results) >= maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(g.Label), q) {
			results = append(results, Suggestion{
				Command:     "расписание группа " + g.Label,
				Description: "Расписание группы",
				Icon:        "📅",
			})
		}
	}

	for _, t := range teachers {
		if len(results) >= maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(t.Label), q) {
			results = append(results, Suggestion{
				Command:     "расписание преподаватель " + t.Label,
				Description: "Расписание преподавателя",
				Icon:        "👨‍🏫",
			})
		}
	}

	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	return results
}
