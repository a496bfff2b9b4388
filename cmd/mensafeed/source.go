package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/mensafeed"
)

// weekMenu is the menu of one page with the week it belongs to.
type weekMenu struct {
	Menu    *mensafeed.Menu
	Week    mensafeed.Week
	Records []mensafeed.MealRecord
}

// loadMenu reads the menu page, extracts its meals and resolves its week.
func loadMenu(deps *Dependencies, source SourceFlags) (*weekMenu, error) {
	html, err := readPage(deps, source)
	if err != nil {
		return nil, err
	}

	menu, err := deps.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	now := deps.Now()
	week, err := deps.Weeks.ResolveWeek(menu.WeekInfo, now)
	if err != nil {
		week = mensafeed.WeekOf(now)
		deps.Logger.WarnContext(deps.Ctx, "using current week",
			"heading", menu.WeekInfo,
			"week", week.Monday.Format(time.DateOnly),
			"err", err,
		)
	}

	if menu.Weekly != nil && len(deps.Config.Prices.Weekly) == 0 {
		deps.Logger.InfoContext(deps.Ctx, "skipping weekly special without price", "meal", menu.Weekly.Description)
		menu.Weekly = nil
	}

	records := menu.Records()
	warnMissingDays(deps, menu, records)

	return &weekMenu{Menu: menu, Week: week, Records: records}, nil
}

func readPage(deps *Dependencies, source SourceFlags) (string, error) {
	if source.Input != "" {
		b, err := os.ReadFile(source.Input)
		if err != nil {
			return "", fmt.Errorf("reading menu page: %w", err)
		}
		return string(b), nil
	}
	return deps.Fetcher.Fetch(deps.Ctx, deps.Config.SourceURL)
}

// warnMissingDays logs service days without meals that the page does not
// mark as closed. These days are left out of the feed.
func warnMissingDays(deps *Dependencies, menu *mensafeed.Menu, records []mensafeed.MealRecord) {
	closed := make(map[time.Weekday]bool, len(menu.Closed))
	for _, d := range menu.Closed {
		closed[d] = true
	}
	var names []string
	for _, d := range mensafeed.MissingDays(records) {
		if !closed[d] {
			names = append(names, mensafeed.WeekdayName(d))
		}
	}
	if len(names) == 0 {
		return
	}
	deps.Logger.WarnContext(deps.Ctx, "no meals found",
		"days", names,
		"unclassified", len(menu.Unclassified),
	)
}
