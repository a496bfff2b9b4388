package mensafeed

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

// Weekdays lists the days of the week in canonical order, Monday first.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ServiceDays are the weekdays a canteen is expected to serve meals.
var ServiceDays = Weekdays[:5]

// WeekdayName returns the German name of d.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// ParseWeekday returns the weekday whose German name starts text as a whole
// word, ignoring case and leading whitespace.
func ParseWeekday(text string) (time.Weekday, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, d := range Weekdays {
		rest, ok := strings.CutPrefix(text, strings.ToLower(weekdayNames[d]))
		if !ok {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(rest); rest == "" || !unicode.IsLetter(r) {
			return d, true
		}
	}
	return 0, false
}

// WeekdayIndex returns the position of d in canonical order (Monday = 0).
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Week identifies a menu week by its Monday.
type Week struct {
	Monday time.Time
}

// WeekOf returns the week containing t.
func WeekOf(t time.Time) Week {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Week{Monday: day.AddDate(0, 0, -WeekdayIndex(t.Weekday()))}
}

// IsZero reports whether the week is unset.
func (w Week) IsZero() bool {
	return w.Monday.IsZero()
}

// Date returns the calendar date of weekday d within the week.
func (w Week) Date(d time.Weekday) time.Time {
	return w.Monday.AddDate(0, 0, WeekdayIndex(d))
}

// Sunday returns the last day of the week.
func (w Week) Sunday() time.Time {
	return w.Date(time.Sunday)
}

// WeekResolver derives the menu week from the week heading on the page.
type WeekResolver interface {
	// ResolveWeek parses info (e.g. "13. bis 17. Oktober 2025") and returns
	// the week it denotes. now anchors headings without a year.
	// Returns EINVALID if no date can be found.
	ResolveWeek(info string, now time.Time) (Week, error)
}
