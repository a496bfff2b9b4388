// Package etree renders OpenMensa feeds using github.com/beevik/etree.
package etree

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/fwojciec/mensafeed"
)

// OpenMensa feed v2 constants.
const (
	FeedVersion    = "2.1"
	Namespace      = "http://openmensa.org/open-mensa-v2"
	SchemaLocation = "http://openmensa.org/open-mensa-v2 http://openmensa.org/open-mensa-v2.xsd"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
)

// MaxNameLength is the longest meal name the feed schema accepts.
const MaxNameLength = 250

const dateLayout = "2006-01-02"

// Ensure FeedBuilder implements mensafeed.FeedBuilder at compile time.
var _ mensafeed.FeedBuilder = (*FeedBuilder)(nil)

// FeedBuilder renders meal records as an OpenMensa v2 XML feed.
type FeedBuilder struct {
	indent int
}

// Option configures a FeedBuilder.
type Option func(*FeedBuilder)

// WithIndent sets the number of spaces per nesting level. Defaults to 2.
func WithIndent(n int) Option {
	return func(b *FeedBuilder) {
		b.indent = n
	}
}

// NewFeedBuilder creates a new FeedBuilder.
func NewFeedBuilder(opts ...Option) *FeedBuilder {
	b := &FeedBuilder{indent: 2}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates and prices records and returns the feed document.
// Days without meals are left out unless meta lists them as closed.
func (b *FeedBuilder) Build(records []mensafeed.MealRecord, prices mensafeed.PriceTable, meta mensafeed.FeedMetadata) (string, error) {
	if err := meta.Validate(); err != nil {
		return "", err
	}
	days, err := mensafeed.Plan(records, prices)
	if err != nil {
		return "", err
	}
	days = mensafeed.WithClosedDays(days, meta.ClosedDays)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("openmensa")
	root.CreateAttr("version", FeedVersion)
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("xmlns:xsi", xsiNamespace)
	root.CreateAttr("xsi:schemaLocation", SchemaLocation)

	if meta.Version != "" {
		root.CreateElement("version").SetText(meta.Version)
	}
	if !meta.GeneratedAt.IsZero() {
		root.CreateComment(fmt.Sprintf(" generated %s, valid %s to %s ",
			meta.GeneratedAt.UTC().Format(time.RFC3339),
			meta.Week.Monday.Format(dateLayout),
			meta.Week.Sunday().Format(dateLayout)))
	}

	canteen := root.CreateElement("canteen")
	writeCanteen(canteen, meta.Canteen)

	for _, day := range days {
		el := canteen.CreateElement("day")
		el.CreateAttr("date", meta.Week.Date(day.Weekday).Format(dateLayout))
		if day.Closed {
			el.CreateElement("closed")
			continue
		}
		for _, group := range day.Categories {
			cat := el.CreateElement("category")
			cat.CreateAttr("name", group.Name)
			for _, meal := range group.Meals {
				writeMeal(cat, meal)
			}
		}
	}

	doc.Indent(b.indent)
	return doc.WriteToString()
}

func writeCanteen(el *etree.Element, c mensafeed.Canteen) {
	// Element order follows the feed schema.
	optionalText(el, "name", c.Name)
	optionalText(el, "address", c.Address)
	optionalText(el, "city", c.City)
	optionalText(el, "phone", c.Phone)
	optionalText(el, "email", c.Email)
	if c.Location != nil {
		loc := el.CreateElement("location")
		loc.CreateAttr("latitude", strconv.FormatFloat(c.Location.Latitude, 'f', -1, 64))
		loc.CreateAttr("longitude", strconv.FormatFloat(c.Location.Longitude, 'f', -1, 64))
	}
	optionalText(el, "availability", c.Availability)
	if c.Feed != nil {
		writeFeedSource(el, c.Feed)
	}
}

func writeFeedSource(parent *etree.Element, f *mensafeed.FeedSource) {
	el := parent.CreateElement("feed")
	el.CreateAttr("name", f.Name)
	el.CreateAttr("priority", strconv.Itoa(f.Priority))
	if s := f.Schedule; s != nil {
		sched := el.CreateElement("schedule")
		optionalAttr(sched, "dayOfMonth", s.DayOfMonth)
		optionalAttr(sched, "dayOfWeek", s.DayOfWeek)
		optionalAttr(sched, "month", s.Month)
		optionalAttr(sched, "hour", s.Hour)
		optionalAttr(sched, "minute", s.Minute)
		optionalAttr(sched, "retry", s.Retry)
	}
	el.CreateElement("url").SetText(f.URL)
	optionalText(el, "source", f.Source)
}

func writeMeal(parent *etree.Element, meal mensafeed.Meal) {
	el := parent.CreateElement("meal")
	name, full := shorten(meal.Description)
	el.CreateElement("name").SetText(name)
	if full {
		el.CreateElement("note").SetText(meal.Description)
	}
	for _, code := range meal.Allergens {
		el.CreateElement("note").SetText(mensafeed.AllergenNote(code))
	}
	for _, role := range mensafeed.Roles {
		price, ok := meal.Prices[role]
		if !ok {
			continue
		}
		p := el.CreateElement("price")
		p.CreateAttr("role", string(role))
		p.SetText(price.String())
	}
}

// shorten truncates s to MaxNameLength runes and reports whether it did.
func shorten(s string) (string, bool) {
	if utf8.RuneCountInString(s) <= MaxNameLength {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:MaxNameLength-3]) + "...", true
}

func optionalText(parent *etree.Element, tag, text string) {
	if text != "" {
		parent.CreateElement(tag).SetText(text)
	}
}

func optionalAttr(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}
