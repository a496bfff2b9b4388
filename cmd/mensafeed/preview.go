package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/mensafeed"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	wm, err := loadMenu(deps, c.SourceFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mensafeed.ErrorMessage(err))
		return err
	}

	days, err := mensafeed.Plan(wm.Records, deps.Config.Prices)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mensafeed.ErrorMessage(err))
		return err
	}
	days = mensafeed.WithClosedDays(days, wm.Menu.Closed)

	fmt.Fprintln(deps.Stdout, deps.Config.Canteen.Name)
	fmt.Fprintf(deps.Stdout, "Woche %s bis %s", wm.Week.Monday.Format("02.01.2006"), wm.Week.Sunday().Format("02.01.2006"))
	if wm.Menu.WeekInfo != "" {
		fmt.Fprintf(deps.Stdout, " (%s)", wm.Menu.WeekInfo)
	}
	fmt.Fprintln(deps.Stdout)

	if len(days) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo meals found.")
	}
	for _, day := range days {
		date := wm.Week.Date(day.Weekday)
		if day.Closed {
			fmt.Fprintf(deps.Stdout, "\n%s: geschlossen\n", dayTitle(day.Weekday, date))
			continue
		}
		fmt.Fprintf(deps.Stdout, "\n%s\n", dayTitle(day.Weekday, date))
		for _, group := range day.Categories {
			fmt.Fprintf(deps.Stdout, "  %s\n", group.Name)
			for _, meal := range group.Meals {
				fmt.Fprintf(deps.Stdout, "    %s%s  %s\n", meal.Description, allergens(meal.Allergens), formatPrices(meal.Prices))
			}
		}
	}

	if n := len(wm.Menu.Unclassified); n > 0 {
		fmt.Fprintf(deps.Stdout, "\n%d lines without category:\n", n)
		for _, line := range wm.Menu.Unclassified {
			fmt.Fprintf(deps.Stdout, "  %s\n", line)
		}
	}

	return nil
}

func dayTitle(d time.Weekday, date time.Time) string {
	return mensafeed.WeekdayName(d) + ", " + date.Format("02.01.2006")
}

func allergens(codes []string) string {
	if len(codes) == 0 {
		return ""
	}
	return " [" + strings.Join(codes, ", ") + "]"
}

func formatPrices(p mensafeed.Prices) string {
	var parts []string
	for _, role := range mensafeed.Roles {
		if price, ok := p[role]; ok {
			parts = append(parts, string(role)+" "+price.String())
		}
	}
	return strings.Join(parts, "  ")
}
