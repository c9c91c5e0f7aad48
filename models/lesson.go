package models

// Option — элемент справочника групп/преподавателей/кабинетов из API
// колледжа. Идентичность определяется Value, Label используется для
// поиска по подстроке.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Lesson — пара в каноническом виде после нормализации ответа API.
// MeetingLink непустой только для онлайн-пар с настоящей
// конференц-ссылкой.
type Lesson struct {
	Time        string `json:"time"`
	Subject     string `json:"subject"`
	Teacher     string `json:"teacher"`
	Room        string `json:"room"`
	Type        string `json:"type"`
	Number      *int   `json:"number"`
	Group       string `json:"group"`
	IsOnline    bool   `json:"isOnline"`
	MeetingLink string `json:"link"`
}

// DayEntry — результат загрузки одного дня недели. Data и Error
// взаимоисключающие: либо данные (возможно nil — день без пар), либо
// текст ошибки.
type DayEntry struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error,omitempty"`
}

// WeekSchedule — расписание на неделю: ISO-дата (пн–сб) → день.
type WeekSchedule map[string]DayEntry
