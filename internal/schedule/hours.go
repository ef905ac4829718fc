package schedule

import "time"

// Нумерация дней недели: 0 = понедельник ... 6 = воскресенье.
// Так же хранится weekday у учеников в базе.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayIndex переводит time.Weekday в нашу нумерацию (0 = понедельник)
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayWindow рабочие часы одного дня, минуты всегда нулевые
type DayWindow struct {
	OpenHour  int
	CloseHour int
}

// BusinessHours возвращает рабочие часы студии для дня недели.
// Второе значение false — студия закрыта весь день (пятница и воскресенье).
func BusinessHours(weekday int) (DayWindow, bool) {
	switch weekday {
	case Monday, Tuesday, Wednesday, Thursday:
		return DayWindow{OpenHour: 9, CloseHour: 21}, true
	case Saturday:
		return DayWindow{OpenHour: 9, CloseHour: 13}, true
	default:
		return DayWindow{}, false
	}
}

// WindowOn проецирует рабочие часы на конкретную дату
func (w DayWindow) WindowOn(date time.Time) Interval {
	y, m, d := date.Date()
	return Interval{
		Start: time.Date(y, m, d, w.OpenHour, 0, 0, 0, date.Location()),
		End:   time.Date(y, m, d, w.CloseHour, 0, 0, 0, date.Location()),
	}
}
