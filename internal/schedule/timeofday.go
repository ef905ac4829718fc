package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timeOfDayRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay проверяет строку времени суток формата "HH:MM"
func ValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

// ParseTimeOfDay разбирает "HH:MM" на часы и минуты
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	if !timeOfDayRe.MatchString(s) {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	parts := strings.SplitN(s, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute, nil
}

// ProjectTimeOfDay проецирует время суток на дату. Слоты учеников хранят
// только "HH:MM", поэтому перед сравнением с абсолютными интервалами их
// нужно привязать к конкретному дню.
func ProjectTimeOfDay(date time.Time, s string) (time.Time, error) {
	hour, minute, err := ParseTimeOfDay(s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, date.Location()), nil
}
