package services

import (
	"sort"
	"strconv"
	"strings"

	"chat-schedule-api/models"
)

// ScheduleRepository — запасной источник расписания: чистые выборки по
// вкомпилированному набору данных.
type ScheduleRepository struct {
	data models.StaticData
}

func NewScheduleRepository() *ScheduleRepository {
	return NewScheduleRepositoryWithData(defaultScheduleData)
}

func NewScheduleRepositoryWithData(data models.StaticData) *ScheduleRepository {
	return &ScheduleRepository{data: data}
}

// GetGroupSchedule — группа по точному названию без учёта регистра.
func (r *ScheduleRepository) GetGroupSchedule(groupName string) *models.StaticGroup {
	for i := range r.data.Groups {
		if strings.EqualFold(r.data.Groups[i].Name, groupName) {
			group := r.data.Groups[i]
			return &group
		}
	}
	return nil
}

// GetTeacherSchedule — преподаватель по подстроке полного или короткого
// имени.
func (r *ScheduleRepository) GetTeacherSchedule(teacherName string) *models.StaticTeacher {
	query := strings.ToLower(teacherName)
	for i := range r.data.Teachers {
		t := &r.data.Teachers[i]
		if strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.ShortName), query) {
			teacher := *t
			return &teacher
		}
	}
	return nil
}

// GetScheduleForDay — расписание группы на конкретный день.
func (r *ScheduleRepository) GetScheduleForDay(groupName, dayName string) *models.StaticDay {
	group := r.GetGroupSchedule(groupName)
	if group == nil {
		return nil
	}
	return findDay(group.Schedule, dayName)
}

// FindTeacherFreeSlots ищет окна преподавателя: пары сортируются по
// началу, окном считается разрыв не короче 30 минут между соседними
// парами. До первой и после последней пары окна не отмечаются. День
// без занятий — отдельный случай "полностью свободен", а не пустой
// список окон.
func (r *ScheduleRepository) FindTeacherFreeSlots(teacherName, dayName string) *models.FreeSlotsResult {
	teacher := r.GetTeacherSchedule(teacherName)
	if teacher == nil {
		return nil
	}

	daySchedule := findDay(teacher.Schedule, dayName)
	if daySchedule == nil {
		return &models.FreeSlotsResult{
			Teacher: teacher.ShortName,
			Day:     dayName,
			Message: "В этот день нет занятий - полностью свободен!",
		}
	}

	lessons := make([]models.StaticLesson, len(daySchedule.Lessons))
	copy(lessons, daySchedule.Lessons)
	sort.SliceStable(lessons, func(i, j int) bool {
		return parseTimeMinutes(startOf(lessons[i].Time)) < parseTimeMinutes(startOf(lessons[j].Time))
	})

	freeSlots := make([]models.FreeSlot, 0)
	for i := 0; i < len(lessons)-1; i++ {
		currentEnd := endOf(lessons[i].Time)
		nextStart := startOf(lessons[i+1].Time)

		gap := parseTimeMinutes(nextStart) - parseTimeMinutes(currentEnd)
		if gap >= 30 {
			freeSlots = append(freeSlots, models.FreeSlot{
				Start:    currentEnd,
				End:      nextStart,
				Duration: gap,
			})
		}
	}

	return &models.FreeSlotsResult{
		Teacher:   teacher.ShortName,
		Day:       dayName,
		FreeSlots: freeSlots,
	}
}

func (r *ScheduleRepository) GetAllGroups() []models.GroupSummary {
	groups := make([]models.GroupSummary, 0, len(r.data.Groups))
	for _, g := range r.data.Groups {
		groups = append(groups, models.GroupSummary{
			ID:        g.ID,
			Name:      g.Name,
			Specialty: g.Specialty,
			Course:    g.Course,
		})
	}
	return groups
}

func (r *ScheduleRepository) GetAllTeachers() []models.TeacherSummary {
	teachers := make([]models.TeacherSummary, 0, len(r.data.Teachers))
	for _, t := range r.data.Teachers {
		teachers = append(teachers, models.TeacherSummary{
			ID:         t.ID,
			Name:       t.Name,
			ShortName:  t.ShortName,
			Department: t.Department,
			Subjects:   t.Subjects,
		})
	}
	return teachers
}

func (r *ScheduleRepository) Metadata() models.StaticMetadata {
	return r.data.Metadata
}

// findDay сравнивает названия дней без учёта регистра и падежа:
// команда приходит в винительном ("Среду"), данные хранятся в
// именительном ("Среда").
func findDay(schedule []models.StaticDay, dayName string) *models.StaticDay {
	want := normalizeDayName(dayName)
	for i := range schedule {
		if normalizeDayName(schedule[i].Day) == want {
			day := schedule[i]
			return &day
		}
	}
	return nil
}

var accusativeDays = map[string]string{
	"среду":   "среда",
	"пятницу": "пятница",
	"субботу": "суббота",
}

func normalizeDayName(day string) string {
	lower := strings.ToLower(strings.TrimSpace(day))
	if nominative, ok := accusativeDays[lower]; ok {
		return nominative
	}
	return lower
}

// parseTimeMinutes: "9:00" → 540. Некорректное время даёт 0 — выборка
// из статичных данных, формат фиксирован.
func parseTimeMinutes(timeString string) int {
	parts := strings.Split(strings.TrimSpace(timeString), ":")
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

func startOf(lessonTime string) string {
	return strings.SplitN(lessonTime, "-", 2)[0]
}

func endOf(lessonTime string) string {
	parts := strings.SplitN(lessonTime, "-", 2)
	if len(parts) < 2 {
		return parts[0]
	}
	return parts[1]
}
