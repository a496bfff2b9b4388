// Package ical renders the week's menu as an iCalendar file using
// github.com/arran4/golang-ical. Each served day becomes an all-day event.
package ical

import (
	"fmt"
	"strings"
	"unicode"

	ics "github.com/arran4/golang-ical"
	"github.com/fwojciec/mensafeed"
)

// ProductID identifies the generator in the calendar's PRODID.
const ProductID = "-//mensafeed//Menu Calendar//DE"

// Ensure FeedBuilder implements mensafeed.FeedBuilder at compile time.
var _ mensafeed.FeedBuilder = (*FeedBuilder)(nil)

// FeedBuilder renders meal records as an iCalendar document.
type FeedBuilder struct{}

// NewFeedBuilder creates a new FeedBuilder.
func NewFeedBuilder() *FeedBuilder {
	return &FeedBuilder{}
}

// Build validates and prices records and returns the calendar.
func (b *FeedBuilder) Build(records []mensafeed.MealRecord, prices mensafeed.PriceTable, meta mensafeed.FeedMetadata) (string, error) {
	if err := meta.Validate(); err != nil {
		return "", err
	}
	days, err := mensafeed.Plan(records, prices)
	if err != nil {
		return "", err
	}
	days = mensafeed.WithClosedDays(days, meta.ClosedDays)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName(meta.Canteen.Name)

	stamp := meta.GeneratedAt
	if stamp.IsZero() {
		stamp = meta.Week.Monday
	}
	host := slug(meta.Canteen.Name)

	for _, day := range days {
		date := meta.Week.Date(day.Weekday)
		event := cal.AddEvent(fmt.Sprintf("%s@%s", date.Format("20060102"), host))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		if meta.Canteen.Address != "" {
			event.SetLocation(meta.Canteen.Address)
		}
		if day.Closed {
			event.SetSummary(meta.Canteen.Name + ": geschlossen")
			continue
		}
		event.SetSummary(fmt.Sprintf("%s: %s", meta.Canteen.Name, mensafeed.WeekdayName(day.Weekday)))
		event.SetDescription(describe(day))
	}

	return cal.Serialize(), nil
}

// describe lists a day's meals, one per line, e.g. "Vegan: Linsendal (4.00)".
func describe(day mensafeed.DayMenu) string {
	var sb strings.Builder
	for _, group := range day.Categories {
		for _, meal := range group.Meals {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "%s: %s", group.Name, meal.Description)
			if price, ok := firstPrice(meal.Prices); ok {
				fmt.Fprintf(&sb, " (%s)", price)
			}
		}
	}
	return sb.String()
}

// firstPrice returns the price of the first role, in role order, that has one.
func firstPrice(p mensafeed.Prices) (mensafeed.Price, bool) {
	for _, role := range mensafeed.Roles {
		if price, ok := p[role]; ok {
			return price, true
		}
	}
	return 0, false
}

// slug lowercases name and replaces everything but letters and digits with
// dashes, for use in event UIDs.
func slug(name string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, name)
	s = strings.Trim(s, "-")
	if s == "" {
		return "mensafeed"
	}
	return s
}
