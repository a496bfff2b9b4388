package mensafeed_test

import (
	"testing"
	"time"

	"github.com/fwojciec/mensafeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrices() mensafeed.PriceTable {
	return mensafeed.PriceTable{
		Meals: map[mensafeed.Category]mensafeed.Prices{
			mensafeed.NonVegetarian: {mensafeed.RoleStudent: 500, mensafeed.RoleOther: 700},
			mensafeed.Vegetarian:    {mensafeed.RoleStudent: 400, mensafeed.RoleOther: 600},
			mensafeed.Vegan:         {mensafeed.RoleStudent: 400, mensafeed.RoleOther: 600},
		},
		Weekly: mensafeed.Prices{mensafeed.RoleOther: 800},
	}
}

func TestPlan(t *testing.T) {
	t.Parallel()

	t.Run("groups by weekday in canonical order", func(t *testing.T) {
		t.Parallel()

		records := []mensafeed.MealRecord{
			{Weekday: time.Wednesday, Category: mensafeed.Vegan, Description: "Tofu"},
			{Weekday: time.Monday, Category: mensafeed.Vegan, Description: "Linsendal"},
			{Weekday: time.Sunday, Category: mensafeed.Vegan, Description: "Brunch"},
		}

		days, err := mensafeed.Plan(records, testPrices())

		require.NoError(t, err)
		require.Len(t, days, 3)
		assert.Equal(t, time.Monday, days[0].Weekday)
		assert.Equal(t, time.Wednesday, days[1].Weekday)
		assert.Equal(t, time.Sunday, days[2].Weekday)
	})

	t.Run("keeps first-seen order of categories and meals within a day", func(t *testing.T) {
		t.Parallel()

		records := []mensafeed.MealRecord{
			{Weekday: time.Monday, Category: mensafeed.Vegetarian, Description: "Gemüsecurry"},
			{Weekday: time.Monday, Category: mensafeed.NonVegetarian, Description: "Schnitzel"},
			{Weekday: time.Monday, Category: mensafeed.Vegetarian, Description: "Käsespätzle"},
			{Weekday: time.Monday, Category: mensafeed.Vegetarian, Description: "Ofengemüse", Weekly: true},
		}

		days, err := mensafeed.Plan(records, testPrices())

		require.NoError(t, err)
		require.Len(t, days, 1)
		day := days[0]
		require.Len(t, day.Categories, 3)
		assert.Equal(t, "Vegetarisch", day.Categories[0].Name)
		assert.Equal(t, "Nicht Vegetarisch", day.Categories[1].Name)
		assert.Equal(t, "Wochenteller Vegetarisch", day.Categories[2].Name)
		require.Len(t, day.Categories[0].Meals, 2)
		assert.Equal(t, "Gemüsecurry", day.Categories[0].Meals[0].Description)
		assert.Equal(t, "Käsespätzle", day.Categories[0].Meals[1].Description)
		assert.Equal(t, 4, day.MealCount())
	})

	t.Run("attaches prices by category", func(t *testing.T) {
		t.Parallel()

		records := []mensafeed.MealRecord{
			{Weekday: time.Friday, Category: mensafeed.NonVegetarian, Description: "Fisch"},
			{Weekday: time.Friday, Category: mensafeed.Vegan, Description: "Ofengemüse", Weekly: true},
		}

		days, err := mensafeed.Plan(records, testPrices())

		require.NoError(t, err)
		assert.Equal(t, mensafeed.Prices{mensafeed.RoleStudent: 500, mensafeed.RoleOther: 700}, days[0].Categories[0].Meals[0].Prices)
		assert.Equal(t, mensafeed.Prices{mensafeed.RoleOther: 800}, days[0].Categories[1].Meals[0].Prices)
	})

	t.Run("returns EPRICECONFIG when a category has no price", func(t *testing.T) {
		t.Parallel()

		prices := mensafeed.StudentPrices(map[mensafeed.Category]mensafeed.Price{
			mensafeed.Vegetarian: 420,
		})
		records := []mensafeed.MealRecord{
			{Weekday: time.Monday, Category: mensafeed.Vegetarian, Description: "Gemüsecurry"},
			{Weekday: time.Monday, Category: mensafeed.Vegan, Description: "Linsendal"},
		}

		days, err := mensafeed.Plan(records, prices)

		assert.Nil(t, days)
		assert.Equal(t, mensafeed.EPRICECONFIG, mensafeed.ErrorCode(err))
	})

	t.Run("returns EPRICECONFIG for a negative price", func(t *testing.T) {
		t.Parallel()

		prices := mensafeed.StudentPrices(map[mensafeed.Category]mensafeed.Price{
			mensafeed.Vegan: -100,
		})
		records := []mensafeed.MealRecord{
			{Weekday: time.Monday, Category: mensafeed.Vegan, Description: "Linsendal"},
		}

		days, err := mensafeed.Plan(records, prices)

		assert.Nil(t, days)
		assert.Equal(t, mensafeed.EPRICECONFIG, mensafeed.ErrorCode(err))
		assert.Contains(t, mensafeed.ErrorMessage(err), "negative")
	})

	t.Run("returns EINVALID for an empty description", func(t *testing.T) {
		t.Parallel()

		records := []mensafeed.MealRecord{
			{Weekday: time.Monday, Category: mensafeed.Vegan, Description: ""},
		}

		_, err := mensafeed.Plan(records, testPrices())

		assert.Equal(t, mensafeed.EINVALID, mensafeed.ErrorCode(err))
	})

	t.Run("returns no days for no records", func(t *testing.T) {
		t.Parallel()

		days, err := mensafeed.Plan(nil, testPrices())

		require.NoError(t, err)
		assert.Empty(t, days)
	})
}

func TestWithClosedDays(t *testing.T) {
	t.Parallel()

	t.Run("adds closed days without meals in weekday order", func(t *testing.T) {
		t.Parallel()

		days := []mensafeed.DayMenu{{Weekday: time.Monday}, {Weekday: time.Friday}}

		got := mensafeed.WithClosedDays(days, []time.Weekday{time.Thursday, time.Monday})

		require.Len(t, got, 3)
		assert.Equal(t, time.Monday, got[0].Weekday)
		assert.False(t, got[0].Closed, "a day with meals stays open")
		assert.Equal(t, time.Thursday, got[1].Weekday)
		assert.True(t, got[1].Closed)
		assert.Equal(t, time.Friday, got[2].Weekday)
	})

	t.Run("returns days unchanged without closed days", func(t *testing.T) {
		t.Parallel()

		days := []mensafeed.DayMenu{{Weekday: time.Monday}}

		assert.Equal(t, days, mensafeed.WithClosedDays(days, nil))
	})
}
