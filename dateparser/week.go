// Package dateparser resolves the week a menu page covers from its week
// heading, using github.com/markusmobius/go-dateparser for German month names.
package dateparser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/mensafeed"
	"github.com/markusmobius/go-dateparser"
)

var (
	// numericRe matches "13.10.2025", "13.10.25" and "13.10.". Two digits
	// followed by a dot are the next date of a range, not a year.
	numericRe = regexp.MustCompile(`\b(\d{1,2})\.\s*(\d{1,2})\.(?:\s*(\d{4})\b|\s*(\d{2})(?:[^.\d]|$))?`)
	dayRe     = regexp.MustCompile(`\b(\d{1,2})\.`)
	yearRe    = regexp.MustCompile(`\b(\d{4})\b`)
	monthRe   = regexp.MustCompile(`(?i)\b(jänner|januar|feber|februar|märz|april|mai|juni|juli|august|september|oktober|november|dezember)\b`)
)

// Austrian month names the parser does not know.
var monthAliases = map[string]string{
	"jänner": "Januar",
	"feber":  "Februar",
}

// Ensure WeekResolver implements mensafeed.WeekResolver at compile time.
var _ mensafeed.WeekResolver = (*WeekResolver)(nil)

// WeekResolver reads the first date mentioned in a week heading.
type WeekResolver struct{}

// NewWeekResolver creates a new WeekResolver.
func NewWeekResolver() *WeekResolver {
	return &WeekResolver{}
}

// ResolveWeek returns the week containing the first date in info.
// Headings without a year take the year that puts the date closest to now.
func (r *WeekResolver) ResolveWeek(info string, now time.Time) (mensafeed.Week, error) {
	if t, ok := numericDate(info, now); ok {
		return mensafeed.WeekOf(t), nil
	}
	if t, ok := textDate(info, now); ok {
		return mensafeed.WeekOf(t), nil
	}
	return mensafeed.Week{}, mensafeed.Errorf(mensafeed.EINVALID, "no date in week heading %q", info)
}

func numericDate(info string, now time.Time) (time.Time, bool) {
	m := numericRe.FindStringSubmatch(info)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	year, ok := explicitYear(m[3]+m[4], info)
	if !ok {
		return nearest(day, time.Month(month), now), true
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// explicitYear returns the year right after the date, or the first
// four-digit year elsewhere in info.
func explicitYear(after, info string) (int, bool) {
	switch len(after) {
	case 4:
		y, _ := strconv.Atoi(after)
		return y, true
	case 2:
		y, _ := strconv.Atoi(after)
		return 2000 + y, true
	}
	if m := yearRe.FindStringSubmatch(info); m != nil {
		y, _ := strconv.Atoi(m[1])
		return y, true
	}
	return 0, false
}

// nearest returns the date with the given day and month closest to now.
func nearest(day int, month time.Month, now time.Time) time.Time {
	var best time.Time
	var bestDiff time.Duration
	for y := now.Year() - 1; y <= now.Year()+1; y++ {
		t := time.Date(y, month, day, 0, 0, 0, 0, time.UTC)
		diff := t.Sub(now)
		if diff < 0 {
			diff = -diff
		}
		if best.IsZero() || diff < bestDiff {
			best, bestDiff = t, diff
		}
	}
	return best
}

// textDate parses headings like "13. bis 17. Oktober 2025" by handing the
// first day number and the month name to go-dateparser.
func textDate(info string, now time.Time) (time.Time, bool) {
	month := monthRe.FindString(info)
	day := dayRe.FindStringSubmatch(info)
	if month == "" || day == nil {
		return time.Time{}, false
	}
	if alias, ok := monthAliases[strings.ToLower(month)]; ok {
		month = alias
	}

	text := day[1] + ". " + month
	if y := yearRe.FindString(info); y != "" {
		text += " " + y
	}

	cfg := &dateparser.Configuration{
		Languages:   []string{"de"},
		CurrentTime: now,
	}
	d, err := dateparser.Parse(cfg, text)
	if err != nil || d.Time.IsZero() {
		return time.Time{}, false
	}
	if !yearRe.MatchString(info) {
		dm := d.Time
		return nearest(dm.Day(), dm.Month(), now), true
	}
	return d.Time, true
}
