package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"chat-schedule-api/models"
)

// RemoteSchedule — то, что диспетчеру нужно от шлюза API колледжа.
// Интерфейс позволяет подменить шлюз в тестах.
type RemoteSchedule interface {
	Ready() bool
	GetGroups(ctx context.Context) (interface{}, error)
	GetTeachers(ctx context.Context) (interface{}, error)
	GetWeekSchedule(ctx context.Context, item models.Option, anyDateInWeek time.Time, scheduleType string) models.WeekSchedule
}

// Dispatcher превращает намерение в ровно один ответ. Политика для
// команд с данными: если шлюз готов — пробуем API колледжа, любая
// ошибка логируется и молча уводит на локальные данные. Наружу ошибки
// не выходят никогда: диспетчер — единственная граница, где сбой
// становится типизированным сообщением.
type Dispatcher struct {
	api  RemoteSchedule
	repo *ScheduleRepository

	mu        sync.Mutex
	lastGroup string

	now func() time.Time
}

func NewDispatcher(api RemoteSchedule, repo *ScheduleRepository) *Dispatcher {
	return &Dispatcher{
		api:  api,
		repo: repo,
		now:  time.Now,
	}
}

// Handle обрабатывает команду. Паника внутри обработчика не валит
// сервис — превращается в общее сообщение об ошибке.
func (d *Dispatcher) Handle(ctx context.Context, intent models.Intent) (message models.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Dispatcher - panic while handling %s: %v", intent.Type, r)
			message = models.NewBotError("Произошла ошибка при обработке команды")
		}
	}()

	switch intent.Type {
	case models.IntentGreeting:
		return models.NewBotText(`Привет! Чем могу помочь? Напиши "помощь" для списка команд.`)

	case models.IntentHelp:
		return d.helpMessage()

	case models.IntentGroupSchedule:
		return d.handleGroupSchedule(ctx, intent)

	case models.IntentTeacherSchedule:
		return d.handleTeacherSchedule(ctx, intent)

	case models.IntentDaySchedule:
		return d.handleDaySchedule(intent)

	case models.IntentTeacherFreeSlots:
		return d.handleFreeSlots(intent)

	case models.IntentListGroups:
		return d.handleListGroups(ctx)

	case models.IntentListTeachers:
		return d.handleListTeachers(ctx)

	default:
		return models.NewBotError(`Команда не распознана. Напиши "помощь" для списка команд.`)
	}
}

func (d *Dispatcher) handleGroupSchedule(ctx context.Context, intent models.Intent) models.Message {
	if d.api.Ready() {
		raw, err := d.api.GetGroups(ctx)
		if err == nil {
			if group, ok := matchOption(ToOptions(raw), intent.GroupName); ok {
				week := d.api.GetWeekSchedule(ctx, group, d.now(), "groups")
				d.setLastGroup(group.Label)
				return models.NewBotData(models.ContentAPIWeekSchedule, map[string]interface{}{
					"group":    group,
					"weekData": week,
				})
			}
			// Группы нет в справочнике — пробуем локальные данные
		} else {
			log.Printf("Dispatcher - remote group schedule failed, fallback: %v", err)
		}
	}

	if schedule := d.repo.GetGroupSchedule(intent.GroupName); schedule != nil {
		return models.NewBotData(models.ContentSchedule, schedule)
	}
	return models.NewBotError(fmt.Sprintf("Группа %q не найдена", intent.GroupName))
}

func (d *Dispatcher) handleTeacherSchedule(ctx context.Context, intent models.Intent) models.Message {
	if d.api.Ready() {
		raw, err := d.api.GetTeachers(ctx)
		if err == nil {
			if teacher, ok := matchOption(ToOptions(raw), intent.TeacherName); ok {
				week := d.api.GetWeekSchedule(ctx, teacher, d.now(), "teachers")
				return models.NewBotData(models.ContentAPIWeekSchedule, map[string]interface{}{
					"group":        teacher,
					"weekData":     week,
					"scheduleType": "teachers",
				})
			}
		} else {
			log.Printf("Dispatcher - remote teacher schedule failed, fallback: %v", err)
		}
	}

	if schedule := d.repo.GetTeacherSchedule(intent.TeacherName); schedule != nil {
		return models.NewBotData(models.ContentTeacherSchedule, schedule)
	}
	return models.NewBotError(fmt.Sprintf("Преподаватель %q не найден", intent.TeacherName))
}

func (d *Dispatcher) handleDaySchedule(intent models.Intent) models.Message {
	if day := d.repo.GetScheduleForDay(intent.GroupName, intent.DayName); day != nil {
		return models.NewBotData(models.ContentDaySchedule, map[string]interface{}{
			"groupName": intent.GroupName,
			"day":       day,
		})
	}
	return models.NewBotError(fmt.Sprintf("Расписание для группы %q на %s не найдено", intent.GroupName, intent.DayName))
}

func (d *Dispatcher) handleFreeSlots(intent models.Intent) models.Message {
	dayName := intent.DayName
	if dayName == "" {
		dayName = "Понедельник"
	}

	if result := d.repo.FindTeacherFreeSlots(intent.TeacherName, dayName); result != nil {
		return models.NewBotData(models.ContentFreeSlots, result)
	}
	return models.NewBotError(fmt.Sprintf("Информация о преподавателе %q не найдена", intent.TeacherName))
}

func (d *Dispatcher) handleListGroups(ctx context.Context) models.Message {
	if d.api.Ready() {
		raw, err := d.api.GetGroups(ctx)
		if err == nil {
			return models.NewBotData(models.ContentAPIGroupsList, ToOptions(raw))
		}
		log.Printf("Dispatcher - remote groups list failed, fallback: %v", err)
	}
	return models.NewBotData(models.ContentGroupsList, d.repo.GetAllGroups())
}

func (d *Dispatcher) handleListTeachers(ctx context.Context) models.Message {
	if d.api.Ready() {
		raw, err := d.api.GetTeachers(ctx)
		if err == nil {
			return models.NewBotData(models.ContentAPITeachersList, ToOptions(raw))
		}
		log.Printf("Dispatcher - remote teachers list failed, fallback: %v", err)
	}
	return models.NewBotData(models.ContentTeachersList, d.repo.GetAllTeachers())
}

func (d *Dispatcher) helpMessage() models.Message {
	groupExample := d.LastGroup()
	if groupExample == "" {
		groupExample = "9ИСП-1-25"
	}

	return models.NewBotText(fmt.Sprintf(`Доступные команды:

📅 "расписание группа %s"
   → расписание на неделю

📋 "список групп"
   → все группы колледжа

👥 "список преподавателей"
   → список преподавателей

👨‍🏫 "расписание преподаватель Иванова"
   → расписание конкретного преподавателя

🕐 "когда свободен Петров в четверг"
   → свободные окна для консультаций

Данные с сайта колледжа обновляются в реальном времени.`, groupExample))
}

// LastGroup — последняя успешно найденная группа; используется как
// пример в подсказках.
func (d *Dispatcher) LastGroup() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastGroup
}

func (d *Dispatcher) setLastGroup(label string) {
	d.mu.Lock()
	d.lastGroup = label
	d.mu.Unlock()
}

// matchOption — поиск по подстроке названия без учёта регистра.
func matchOption(options []models.Option, query string) (models.Option, bool) {
	q := strings.ToLower(query)
	for _, option := range options {
		if strings.Contains(strings.ToLower(option.Label), q) {
			return option, true
		}
	}
	return models.Option{}, false
}
