// Package hours normalizes free-text weekly-hours lines into a
// queryable schedule.
package hours

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chicagofoodaccess/pantry-terminal/internal/models"
)

// lineRegex matches lines like "Monday 2:00 PM - 4:00 PM" or
// "Saturday: 9:30 AM - 11:30 AM". Matching is prefix-based, so trailing
// qualifiers like "(2nd, 4th of Month)" are tolerated and ignored.
var lineRegex = regexp.MustCompile(
	`(?i)^(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s*:?\s+(\d{1,2}:\d{2}\s*[AP]M)\s*-\s*(\d{1,2}:\d{2}\s*[AP]M)`)

// timeRegex matches 12-hour time labels like "2:00 PM" or "11:30 am".
var timeRegex = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*([AP]M)$`)

// now is a test seam; the package otherwise never reaches for the clock.
var now = time.Now

// BuildWeeklySchedule parses the given hours lines into a weekly
// schedule. Lines that do not match the expected pattern are skipped.
// When two lines target the same weekday the later one wins. Returns
// nil when no line matched.
func BuildWeeklySchedule(lines []string) models.WeeklySchedule {
	var week models.WeeklySchedule

	for _, line := range lines {
		dayKey, window, ok := parseLine(line)
		if !ok {
			continue
		}
		if week == nil {
			week = make(models.WeeklySchedule, len(models.DayKeys))
		}
		week[dayKey] = window
	}

	return week
}

// parseLine extracts a weekday key and open/close window from a single
// hours line. Returns ok=false when the line does not match or either
// time label is malformed.
func parseLine(line string) (string, models.DayWindow, bool) {
	match := lineRegex.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return "", models.DayWindow{}, false
	}

	dayKey := strings.ToLower(match[1])
	open, okOpen := to24Hour(match[2])
	close, okClose := to24Hour(match[3])
	if !okOpen || !okClose {
		return "", models.DayWindow{}, false
	}

	return dayKey, models.DayWindow{Open: open, Close: close, IsOpen: true}, true
}

// to24Hour converts a "H:MM AM/PM" label to zero-padded "HH:MM".
// 12 AM maps to 00, 12 PM stays 12, other PM hours gain 12.
func to24Hour(label string) (string, bool) {
	match := timeRegex.FindStringSubmatch(strings.TrimSpace(label))
	if match == nil {
		return "", false
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil || hour < 1 || hour > 12 {
		return "", false
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil || minute > 59 {
		return "", false
	}

	ampm := strings.ToUpper(match[3])
	if ampm == "PM" && hour != 12 {
		hour += 12
	} else if ampm == "AM" && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// HasHoursToday reports whether the schedule has a window for the
// current local weekday. It does not check the current time of day.
func HasHoursToday(week models.WeeklySchedule) bool {
	if week == nil {
		return false
	}
	window, ok := week[models.DayKeyFor(now().Weekday())]
	return ok && window.IsOpen
}

// IsOpenNow reports whether the current local time falls inside today's
// window, boundaries inclusive.
func IsOpenNow(week models.WeeklySchedule) bool {
	if week == nil {
		return false
	}
	t := now()
	window, ok := week[models.DayKeyFor(t.Weekday())]
	if !ok || !window.IsOpen {
		return false
	}

	current := t.Hour()*60 + t.Minute()
	open, okOpen := minutesOfDay(window.Open)
	close, okClose := minutesOfDay(window.Close)
	if !okOpen || !okClose {
		return false
	}
	return current >= open && current <= close
}

// TodayLabel returns a short "HH:MM – HH:MM" label for today's window,
// or the empty string when there is none.
func TodayLabel(week models.WeeklySchedule) string {
	if week == nil {
		return ""
	}
	window, ok := week[models.DayKeyFor(now().Weekday())]
	if !ok || !window.IsOpen {
		return ""
	}
	return fmt.Sprintf("%s – %s", window.Open, window.Close)
}

// minutesOfDay converts "HH:MM" to minutes since midnight.
func minutesOfDay(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
