package mensafeed

import (
	"strings"
	"time"
)

// MealRecord is a single meal offered on a weekday.
type MealRecord struct {
	Weekday     time.Weekday `json:"weekday"`
	Category    Category     `json:"category"`
	Description string       `json:"description"`

	// Allergens holds allergen codes listed after the meal, e.g. "A", "G".
	Allergens []string `json:"allergens,omitempty"`

	// Weekly marks the weekly special offered on every serving day.
	Weekly bool `json:"weekly,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *MealRecord) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return Errorf(EINVALID, "meal description required")
	}
	if !r.Category.Valid() {
		return Errorf(EINVALID, "meal %q has unknown category %q", r.Description, r.Category)
	}
	return nil
}

// CategoryName returns the name of the feed category the record belongs to.
func (r *MealRecord) CategoryName() string {
	if r.Weekly {
		return "Wochenteller " + r.Category.Label()
	}
	return r.Category.Label()
}

// Menu is the content extracted from one menu page.
type Menu struct {
	// WeekInfo is the raw text of the week heading. Empty if the page has none.
	WeekInfo string

	// Days lists the weekday sections found on the page in document order.
	Days []time.Weekday

	// Meals holds the meals of all weekday sections in document order.
	Meals []MealRecord

	// Weekly is the weekly special, if the page lists one.
	// Its Weekday is not meaningful.
	Weekly *MealRecord

	// Closed lists weekday sections without meals that the page explicitly
	// marks as closed, e.g. "Feiertag".
	Closed []time.Weekday

	// Unclassified holds lines inside weekday sections that carried no
	// recognizable category and were therefore not turned into meals.
	Unclassified []string
}

// Records returns the meals with the weekly special appended once to every
// weekday that has at least one meal.
func (m *Menu) Records() []MealRecord {
	if m.Weekly == nil {
		return m.Meals
	}

	// Index of the last meal per weekday, so the special follows that day's meals.
	last := make(map[time.Weekday]int)
	for i, r := range m.Meals {
		last[r.Weekday] = i
	}

	records := make([]MealRecord, 0, len(m.Meals)+len(last))
	for i, r := range m.Meals {
		records = append(records, r)
		if last[r.Weekday] == i {
			weekly := *m.Weekly
			weekly.Weekday = r.Weekday
			weekly.Weekly = true
			records = append(records, weekly)
		}
	}
	return records
}

// MissingDays returns the service days without any record.
func MissingDays(records []MealRecord) []time.Weekday {
	served := make(map[time.Weekday]bool)
	for _, r := range records {
		served[r.Weekday] = true
	}

	var missing []time.Weekday
	for _, d := range ServiceDays {
		if !served[d] {
			missing = append(missing, d)
		}
	}
	return missing
}
