package models

// Типы локального статичного расписания — запасной источник данных,
// когда API колледжа недоступен.

type StaticLesson struct {
	ID       int    `json:"id"`
	Time     string `json:"time"` // "9:00-10:30"
	Subject  string `json:"subject"`
	Teacher  string `json:"teacher,omitempty"`
	Group    string `json:"group,omitempty"`
	Room     string `json:"room"`
	Building string `json:"building"`
	Type     string `json:"type"`
}

type StaticDay struct {
	Day     string         `json:"day"`
	Lessons []StaticLesson `json:"lessons"`
}

type StaticGroup struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Specialty string      `json:"specialty"`
	Course    int         `json:"course"`
	Schedule  []StaticDay `json:"schedule"`
}

type StaticTeacher struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	ShortName        string      `json:"shortName"`
	Position         string      `json:"position"`
	Department       string      `json:"department"`
	Subjects         []string    `json:"subjects"`
	Email            string      `json:"email"`
	ConsultationTime string      `json:"consultationTime"`
	Schedule         []StaticDay `json:"schedule"`
}

type StaticData struct {
	Groups   []StaticGroup   `json:"groups"`
	Teachers []StaticTeacher `json:"teachers"`
	Metadata StaticMetadata  `json:"metadata"`
}

type StaticMetadata struct {
	LastUpdated  string `json:"lastUpdated"`
	Semester     string `json:"semester"`
	AcademicYear string `json:"academicYear"`
}

type GroupSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Course    int    `json:"course"`
}

type TeacherSummary struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	ShortName  string   `json:"shortName"`
	Department string   `json:"department"`
	Subjects   []string `json:"subjects"`
}

// FreeSlot — окно не короче 30 минут между двумя соседними парами.
type FreeSlot struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration"` // минуты
}

// FreeSlotsResult — ответ на запрос свободных окон. Message
// заполняется, когда в этот день занятий нет вовсе (полностью
// свободен) — это не то же самое, что пустой список окон.
type FreeSlotsResult struct {
	Teacher   string     `json:"teacher"`
	Day       string     `json:"day"`
	FreeSlots []FreeSlot `json:"freeSlots,omitempty"`
	Message   string     `json:"message,omitempty"`
}
