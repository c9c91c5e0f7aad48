package services

import "chat-schedule-api/models"

// Локальный набор данных — запасной источник, когда сайт колледжа
// недоступен. Должен работать без единой внешней системы, поэтому
// вкомпилирован, а не загружается откуда-либо.
var defaultScheduleData = models.StaticData{
	Groups: []models.StaticGroup{
		{
			ID:        1,
			Name:      "ПИ-301",
			Specialty: "Программирование в компьютерных системах",
			Course:    3,
			Schedule: []models.StaticDay{
				{
					Day: "Понедельник",
					Lessons: []models.StaticLesson{
						{ID: 1, Time: "9:00-10:30", Subject: "Базы данных", Teacher: "Иванова А.И.", Room: "320", Building: "Корпус А", Type: "Лекция"},
						{ID: 2, Time: "10:45-12:15", Subject: "Веб-программирование", Teacher: "Петров П.П.", Room: "215", Building: "Корпус А", Type: "Практика"},
						{ID: 3, Time: "13:00-14:30", Subject: "Английский язык", Teacher: "Смирнова О.В.", Room: "105", Building: "Корпус Б", Type: "Практика"},
					},
				},
				{
					Day: "Вторник",
					Lessons: []models.StaticLesson{
						{ID: 4, Time: "10:45-12:15", Subject: "Разработка мобильных приложений", Teacher: "Петров П.П.", Room: "215", Building: "Корпус А", Type: "Лекция"},
						{ID: 5, Time: "13:00-14:30", Subject: "Разработка мобильных приложений", Teacher: "Петров П.П.", Room: "215", Building: "Корпус А", Type: "Практика"},
						{ID: 6, Time: "14:45-16:15", Subject: "Физическая культура", Teacher: "Кузнецов В.М.", Room: "Спортзал", Building: "Корпус С", Type: "Практика"},
					},
				},
				{
					Day: "Среда",
					Lessons: []models.StaticLesson{
						{ID: 7, Time: "9:00-10:30", Subject: "Базы данных", Teacher: "Иванова А.И.", Room: "320", Building: "Корпус А", Type: "Практика"},
						{ID: 8, Time: "10:45-12:15", Subject: "Системное программирование", Teacher: "Сидоров С.С.", Room: "312", Building: "Корпус А", Type: "Лекция"},
					},
				},
				{
					Day: "Четверг",
					Lessons: []models.StaticLesson{
						{ID: 9, Time: "11:00-12:30", Subject: "Веб-программирование", Teacher: "Петров П.П.", Room: "215", Building: "Корпус А", Type: "Лекция"},
						{ID: 10, Time: "13:00-14:30", Subject: "Английский язык", Teacher: "Смирнова О.В.", Room: "105", Building: "Корпус Б", Type: "Практика"},
						{ID: 11, Time: "14:45-16:15", Subject: "Системное программирование", Teacher: "Сидоров С.С.", Room: "312", Building: "Корпус А", Type: "Практика"},
					},
				},
				{
					Day: "Пятница",
					Lessons: []models.StaticLesson{
						{ID: 12, Time: "9:00-10:30", Subject: "Разработка мобильных приложений", Teacher: "Петров П.П.", Room: "215", Building: "Корпус А", Type: "Практика"},
						{ID: 13, Time: "10:45-12:15", Subject: "Классный час", Teacher: "Иванова А.И.", Room: "320", Building: "Корпус А", Type: "Организационное"},
					},
				},
			},
		},
		{
			ID:        2,
			Name:      "ПИ-201",
			Specialty: "Программирование в компьютерных системах",
			Course:    2,
			Schedule: []models.StaticDay{
				{
					Day: "Понедельник",
					Lessons: []models.StaticLesson{
						{ID: 14, Time: "10:45-12:15", Subject: "Основы алгоритмизации", Teacher: "Сидоров С.С.", Room: "312", Building: "Корпус А", Type: "Лекция"},
						{ID: 15, Time: "13:00-14:30", Subject: "Математика", Teacher: "Волкова Е.А.", Room: "201", Building: "Корпус Б", Type: "Лекция"},
					},
				},
			},
		},
	},
	Teachers: []models.StaticTeacher{
		{
			ID:               1,
			Name:             "Иванова Анна Ивановна",
			ShortName:        "Иванова А.И.",
			Position:         "Преподаватель",
			Department:       "Информационные технологии",
			Subjects:         []string{"Базы данных"},
			Email:            "ivanova@college.ru",
			ConsultationTime: "Среда 15:00-17:00",
			Schedule: []models.StaticDay{
				{
					Day: "Понедельник",
					Lessons: []models.StaticLesson{
						{ID: 1, Time: "9:00-10:30", Subject: "Базы данных", Group: "ПИ-301", Room: "320", Building: "Корпус А", Type: "Лекция"},
					},
				},
				{
					Day: "Среда",
					Lessons: []models.StaticLesson{
						{ID: 7, Time: "9:00-10:30", Subject: "Базы данных", Group: "ПИ-301", Room: "320", Building: "Корпус А", Type: "Практика"},
					},
				},
				{
					Day: "Пятница",
					Lessons: []models.StaticLesson{
						{ID: 13, Time: "10:45-12:15", Subject: "Классный час", Group: "ПИ-301", Room: "320", Building: "Корпус А", Type: "Организационное"},
					},
				},
			},
		},
		{
			ID:               2,
			Name:             "Петров Пётр Петрович",
			ShortName:        "Петров П.П.",
			Position:         "Старший преподаватель",
			Department:       "Информационные технологии",
			Subjects:         []string{"Веб-программирование", "Разработка мобильных приложений"},
			Email:            "petrov@college.ru",
			ConsultationTime: "Четверг 16:30-18:00",
			Schedule: []models.StaticDay{
				{
					Day: "Понедельник",
					Lessons: []models.StaticLesson{
						{ID: 2, Time: "10:45-12:15", Subject: "Веб-программирование", Group: "ПИ-301", Room: "215", Building: "Корпус А", Type: "Практика"},
					},
				},
				{
					Day: "Вторник",
					Lessons: []models.StaticLesson{
						{ID: 4, Time: "10:45-12:15", Subject: "Разработка мобильных приложений", Group: "ПИ-301", Room: "215", Building: "Корпус А", Type: "Лекция"},
						{ID: 5, Time: "13:00-14:30", Subject: "Разработка мобильных приложений", Group: "ПИ-301", Room: "215", Building: "Корпус А", Type: "Практика"},
					},
				},
				{
					Day: "Четверг",
					Lessons: []models.StaticLesson{
						{ID: 9, Time: "11:00-12:30", Subject: "Веб-программирование", Group: "ПИ-301", Room: "215", Building: "Корпус А", Type: "Лекция"},
					},
				},
				{
					Day: "Пятница",
					Lessons: []models.StaticLesson{
						{ID: 12, Time: "9:00-10:30", Subject: "Разработка мобильных приложений", Group: "ПИ-301", Room: "215", Building: "Корпус А", Type: "Практика"},
					},
				},
			},
		},
		{
			ID:               3,
			Name:             "Смирнова Ольга Викторовна",
			ShortName:        "Смирнова О.В.",
			Position:         "Преподаватель",
			Department:       "Иностранные языки",
			Subjects:         []string{"Английский язык"},
			Email:            "smirnova@college.ru",
			ConsultationTime: "Вторник 14:00-15:00",
			Schedule: []models.StaticDay{
				{
					Day: "Понедельник",
					Lessons: []models.StaticLesson{
						{ID: 3, Time: "13:00-14:30", Subject: "Английский язык", Group: "ПИ-301", Room: "105", Building: "Корпус Б", Type: "Практика"},
					},
				},
				{
					Day: "Четверг",
					Lessons: []models.StaticLesson{
						{ID: 10, Time: "13:00-14:30", Subject: "Английский язык", Group: "ПИ-301", Room: "105", Building: "Корпус Б", Type: "Практика"},
					},
				},
			},
		},
	},
	Metadata: models.StaticMetadata{
		LastUpdated:  "2026-02-16",
		Semester:     "Весенний 2025-2026",
		AcademicYear: "2025-2026",
	},
}
