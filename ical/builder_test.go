package ical_test

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/fwojciec/mensafeed"
	"github.com/fwojciec/mensafeed/ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeta() mensafeed.FeedMetadata {
	return mensafeed.FeedMetadata{
		Canteen:     mensafeed.Canteen{Name: "Mensa Schillerplatz"},
		Week:        mensafeed.WeekOf(time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)),
		GeneratedAt: time.Date(2025, 10, 13, 6, 0, 0, 0, time.UTC),
	}
}

// unfold joins folded content lines.
func unfold(s string) string {
	return strings.ReplaceAll(s, "\r\n ", "")
}

func TestFeedBuilder_Build(t *testing.T) {
	t.Parallel()

	records := []mensafeed.MealRecord{
		{Weekday: time.Monday, Category: mensafeed.Vegan, Description: "Linsendal"},
		{Weekday: time.Monday, Category: mensafeed.NonVegetarian, Description: "Schnitzel"},
		{Weekday: time.Wednesday, Category: mensafeed.Vegetarian, Description: "Spinatknödel"},
	}
	prices := mensafeed.StudentPrices(map[mensafeed.Category]mensafeed.Price{
		mensafeed.NonVegetarian: 500,
		mensafeed.Vegetarian:    400,
		mensafeed.Vegan:         420,
	})

	t.Run("creates one event per served day", func(t *testing.T) {
		t.Parallel()

		out, err := ical.NewFeedBuilder().Build(records, prices, testMeta())
		require.NoError(t, err)

		cal, err := ics.ParseCalendar(strings.NewReader(out))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "Mensa Schillerplatz: Montag", events[0].GetProperty(ics.ComponentPropertySummary).Value)
		assert.Equal(t, "Mensa Schillerplatz: Mittwoch", events[1].GetProperty(ics.ComponentPropertySummary).Value)
		assert.Equal(t, "20251013@mensa-schillerplatz", events[0].GetProperty(ics.ComponentPropertyUniqueId).Value)
	})

	t.Run("lists meals with prices", func(t *testing.T) {
		t.Parallel()

		out, err := ical.NewFeedBuilder().Build(records, prices, testMeta())
		require.NoError(t, err)

		out = unfold(out)
		assert.Contains(t, out, "Vegan: Linsendal (4.20)")
		assert.Contains(t, out, "Nicht Vegetarisch: Schnitzel (5.00)")
		assert.Contains(t, out, "DTSTART;VALUE=DATE:20251013")
		assert.Contains(t, out, "DTEND;VALUE=DATE:20251014")
	})

	t.Run("marks closed days", func(t *testing.T) {
		t.Parallel()

		meta := testMeta()
		meta.ClosedDays = []time.Weekday{time.Tuesday}

		out, err := ical.NewFeedBuilder().Build(records, prices, meta)
		require.NoError(t, err)

		cal, err := ics.ParseCalendar(strings.NewReader(out))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 3)
		assert.Equal(t, "Mensa Schillerplatz: geschlossen", events[1].GetProperty(ics.ComponentPropertySummary).Value)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := ical.NewFeedBuilder().Build(records, prices, testMeta())
		require.NoError(t, err)
		second, err := ical.NewFeedBuilder().Build(records, prices, testMeta())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("returns EPRICECONFIG for an unpriced category", func(t *testing.T) {
		t.Parallel()

		partial := mensafeed.StudentPrices(map[mensafeed.Category]mensafeed.Price{mensafeed.Vegan: 420})

		out, err := ical.NewFeedBuilder().Build(records, partial, testMeta())

		assert.Equal(t, mensafeed.EPRICECONFIG, mensafeed.ErrorCode(err))
		assert.Empty(t, out)
	})
}
