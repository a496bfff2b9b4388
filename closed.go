package mensafeed

import (
	"regexp"
	"strings"
)

// ClosedMarkers are words that mark a weekday as closed on the menu page,
// matched case-insensitively as whole words.
var ClosedMarkers = []string{
	"geschlossen",
	"feiertag",
	"closed",
}

var closedRe = regexp.MustCompile(`(?i)\b(?:` + strings.Join(ClosedMarkers, "|") + `)\b`)

// IsClosedNotice reports whether line announces that the canteen is closed.
// "Feiertagsbraten" is not a notice; "Feiertag – geschlossen" is.
func IsClosedNotice(line string) bool {
	return closedRe.MatchString(line)
}
