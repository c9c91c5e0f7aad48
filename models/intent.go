package models

type IntentType string

const (
	IntentGreeting         IntentType = "GREETING"
	IntentHelp             IntentType = "HELP"
	IntentGroupSchedule    IntentType = "GROUP_SCHEDULE"
	IntentTeacherSchedule  IntentType = "TEACHER_SCHEDULE"
	IntentDaySchedule      IntentType = "DAY_SCHEDULE"
	IntentTeacherFreeSlots IntentType = "TEACHER_FREE_SLOTS"
	IntentListGroups       IntentType = "LIST_GROUPS"
	IntentListTeachers     IntentType = "LIST_TEACHERS"
	IntentUnknown          IntentType = "UNKNOWN"
)

// Intent — распознанная команда пользователя.
// Confidence отражает специфичность совпадения: явное ключевое слово
// даёт больше, чем голый шаблон или эвристика последней надежды.
type Intent struct {
	Type          IntentType `json:"type"`
	GroupName     string     `json:"groupName,omitempty"`
	TeacherName   string     `json:"teacherName,omitempty"`
	DayName       string     `json:"dayName,omitempty"`
	OriginalInput string     `json:"originalInput,omitempty"`
	Confidence    float64    `json:"confidence"`
}
