package mensafeed

import (
	"sort"
	"time"
)

// Meal is a record with its resolved prices.
type Meal struct {
	MealRecord
	Prices Prices
}

// MealGroup holds the meals of one feed category on one day.
type MealGroup struct {
	Name  string
	Meals []Meal
}

// DayMenu holds the meals of one weekday grouped by category.
type DayMenu struct {
	Weekday    time.Weekday
	Closed     bool
	Categories []MealGroup
}

// MealCount returns the number of meals on the day.
func (d *DayMenu) MealCount() int {
	var n int
	for _, g := range d.Categories {
		n += len(g.Meals)
	}
	return n
}

// Plan validates records, resolves their prices and groups them by weekday.
//
// Days follow canonical weekday order and only days with at least one record
// are returned. Within a day, categories and meals keep the order in which
// they first appear in records. Any invalid record or missing price aborts
// the whole plan.
func Plan(records []MealRecord, prices PriceTable) ([]DayMenu, error) {
	days := make([]DayMenu, 0, len(Weekdays))
	dayIndex := make(map[time.Weekday]int)
	groupIndex := make(map[time.Weekday]map[string]int)

	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		p, err := prices.Lookup(r)
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, Errorf(EPRICECONFIG, "%s: %s", r.CategoryName(), ErrorMessage(err))
		}

		di, ok := dayIndex[r.Weekday]
		if !ok {
			di = len(days)
			dayIndex[r.Weekday] = di
			groupIndex[r.Weekday] = make(map[string]int)
			days = append(days, DayMenu{Weekday: r.Weekday})
		}
		day := &days[di]

		name := r.CategoryName()
		gi, ok := groupIndex[r.Weekday][name]
		if !ok {
			gi = len(day.Categories)
			groupIndex[r.Weekday][name] = gi
			day.Categories = append(day.Categories, MealGroup{Name: name})
		}
		day.Categories[gi].Meals = append(day.Categories[gi].Meals, Meal{MealRecord: r, Prices: p})
	}

	sort.SliceStable(days, func(i, j int) bool {
		return WeekdayIndex(days[i].Weekday) < WeekdayIndex(days[j].Weekday)
	})
	return days, nil
}

// WithClosedDays adds a closed entry for every day in closed that has no
// meals in days, keeping canonical weekday order.
func WithClosedDays(days []DayMenu, closed []time.Weekday) []DayMenu {
	if len(closed) == 0 {
		return days
	}

	served := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		served[d.Weekday] = true
	}

	out := append([]DayMenu(nil), days...)
	for _, d := range closed {
		if !served[d] {
			served[d] = true
			out = append(out, DayMenu{Weekday: d, Closed: true})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return WeekdayIndex(out[i].Weekday) < WeekdayIndex(out[j].Weekday)
	})
	return out
}
