// Package goquery implements mensafeed.Extractor over the HTML of a menu page.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mensafeed"
)

// Ensure Extractor implements mensafeed.Extractor at compile time.
var _ mensafeed.Extractor = (*Extractor)(nil)

const (
	menuHeading   = "Menüplan"
	weeklyHeading = "Wochenteller"

	// headingSelector matches elements that may open a weekday section.
	headingSelector = "p, h1, h2, h3, h4, h5, h6, dt"

	// maxHeadingLen bounds weekday headings such as "Montag, 13. Oktober 2025".
	maxHeadingLen = 40
)

// Extractor reads weekday sections and their meals from a menu page.
//
// A weekday section starts at a heading whose text begins with a German
// weekday name and runs until the next such heading. Meals are taken from
// list items, or from text lines when the section has no list. Each meal's
// category comes from an inline marker such as "(vegan)", a "Vegan:" prefix,
// or a preceding category block label, in that order.
type Extractor struct {
	defaultCategory mensafeed.Category
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithDefaultCategory assigns c to meals that carry no category label.
// Without it such lines are reported as unclassified.
func WithDefaultCategory(c mensafeed.Category) Option {
	return func(e *Extractor) {
		e.defaultCategory = c
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the menu page and returns its meals in document order.
func (e *Extractor) Extract(html string) (*mensafeed.Menu, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mensafeed.Errorf(mensafeed.EINVALID, "failed to parse HTML: %v", err)
	}
	normalize(doc)

	headings := doc.Find(headingSelector).FilterFunction(isWeekdayHeading)
	if headings.Length() == 0 {
		return nil, mensafeed.Errorf(mensafeed.EMENUSTRUCTURE, "no weekday sections found on menu page")
	}

	menu := &mensafeed.Menu{WeekInfo: weekInfo(doc)}
	e.parseWeekly(menu, headings.First())

	headings.Each(func(_ int, h *goquery.Selection) {
		heading := collapse(h.Text())
		day, _ := mensafeed.ParseWeekday(heading)
		menu.Days = append(menu.Days, day)

		n := len(menu.Meals)
		closed := e.parseSection(menu, day, h.NextUntilSelection(headings))
		if (closed || mensafeed.IsClosedNotice(heading)) && len(menu.Meals) == n {
			menu.Closed = append(menu.Closed, day)
		}
	})

	return menu, nil
}

// isWeekdayHeading reports whether s is a short block starting with a weekday name.
func isWeekdayHeading(_ int, s *goquery.Selection) bool {
	if s.Closest("li").Length() > 0 {
		return false
	}
	text := collapse(s.Text())
	if len([]rune(text)) > maxHeadingLen {
		return false
	}
	_, ok := mensafeed.ParseWeekday(text)
	return ok
}

// weekInfo returns the week heading that follows the "Menüplan" title.
func weekInfo(doc *goquery.Document) string {
	title := doc.Find("h1, h2, h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), menuHeading)
	}).First()
	if title.Length() == 0 {
		return ""
	}

	p := title.NextAllFiltered("p").First()
	info := collapse(p.Find("strong").First().Text())
	if info == "" {
		info = collapse(p.Text())
	}

	if _, ok := mensafeed.ParseWeekday(info); ok || strings.Contains(info, weeklyHeading) {
		return ""
	}
	return info
}

// parseWeekly looks for the weekly special listed before the first weekday.
func (e *Extractor) parseWeekly(menu *mensafeed.Menu, firstDay *goquery.Selection) {
	heading := firstDay.PrevAll().FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), weeklyHeading)
	}).First()
	if heading.Length() == 0 {
		return
	}

	line := collapse(heading.Next().Find("li").First().Text())
	if line == "" {
		// "Wochenteller: Ofengemüse (vegan)" on a single line.
		_, rest, _ := strings.Cut(collapse(heading.Text()), weeklyHeading)
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
	}
	if line == "" {
		return
	}

	r, ok := e.parseMeal(line, "")
	if !ok {
		menu.Unclassified = append(menu.Unclassified, line)
		return
	}
	if r.Description == "" {
		return
	}
	r.Weekly = true
	menu.Weekly = &r
}

// parseSection adds the meals of one weekday section to menu and reports
// whether the section contains a closed notice.
func (e *Extractor) parseSection(menu *mensafeed.Menu, day time.Weekday, section *goquery.Selection) bool {
	var (
		block  mensafeed.Category
		closed bool
	)

	add := func(line string) {
		if isClosedLine(line) {
			closed = true
			return
		}
		e.addLine(menu, day, &block, line)
	}

	hasList := section.Filter("li").Length() > 0 || section.Find("li").Length() > 0
	section.Each(func(_ int, s *goquery.Selection) {
		if !hasList {
			for _, line := range lines(s) {
				add(line)
			}
			return
		}

		items := s.Find("li")
		if goquery.NodeName(s) == "li" {
			items = s
		}
		if items.Length() == 0 {
			// Outside of lists only block labels and closed notices matter.
			for _, line := range lines(s) {
				if c, ok := mensafeed.MatchCategoryLabel(line); ok {
					block = c
				} else if isClosedLine(line) {
					closed = true
				}
			}
			return
		}

		items.Each(func(_ int, li *goquery.Selection) {
			if li.Find("li").Length() > 0 {
				return
			}
			add(collapse(li.Text()))
		})
	})

	return closed
}

// addLine classifies a line as a category block label, a meal or neither.
func (e *Extractor) addLine(menu *mensafeed.Menu, day time.Weekday, block *mensafeed.Category, line string) {
	if line == "" {
		return
	}
	if c, ok := mensafeed.MatchCategoryLabel(line); ok {
		*block = c
		return
	}

	r, ok := e.parseMeal(line, *block)
	if !ok {
		menu.Unclassified = append(menu.Unclassified, line)
		return
	}
	// Labels without meal text are dropped.
	if r.Description == "" {
		return
	}
	r.Weekday = day
	menu.Meals = append(menu.Meals, r)
}

// lines returns the non-empty, whitespace-collapsed text lines of s.
func lines(s *goquery.Selection) []string {
	var out []string
	for _, line := range strings.Split(s.Text(), "\n") {
		if line = collapse(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// collapse replaces runs of whitespace, including non-breaking spaces, with
// a single space and trims the result.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
