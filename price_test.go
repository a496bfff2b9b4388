package mensafeed_test

import (
	"testing"

	"github.com/fwojciec/mensafeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want mensafeed.Price
	}{
		{in: "4.20", want: 420},
		{in: "4,20", want: 420},
		{in: "4.2", want: 420},
		{in: "7", want: 700},
		{in: " 0.05 ", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := mensafeed.ParsePrice(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"", "abc", "4.", "4.205", "-1", ".50"} {
		t.Run("rejects "+in, func(t *testing.T) {
			t.Parallel()

			_, err := mensafeed.ParsePrice(in)

			assert.Equal(t, mensafeed.EINVALID, mensafeed.ErrorCode(err))
		})
	}
}

func TestPrice_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4.20", mensafeed.Price(420).String())
	assert.Equal(t, "0.05", mensafeed.Price(5).String())
	assert.Equal(t, "8.00", mensafeed.Price(800).String())
}

func TestPriceTable_Lookup(t *testing.T) {
	t.Parallel()

	table := mensafeed.PriceTable{
		Meals: map[mensafeed.Category]mensafeed.Prices{
			mensafeed.Vegetarian: {mensafeed.RoleStudent: 400, mensafeed.RoleOther: 600},
		},
		Weekly: mensafeed.Prices{mensafeed.RoleOther: 800},
	}

	t.Run("returns the category prices", func(t *testing.T) {
		t.Parallel()

		p, err := table.Lookup(mensafeed.MealRecord{Category: mensafeed.Vegetarian})

		require.NoError(t, err)
		assert.Equal(t, mensafeed.Prices{mensafeed.RoleStudent: 400, mensafeed.RoleOther: 600}, p)
	})

	t.Run("returns the weekly prices for the weekly special", func(t *testing.T) {
		t.Parallel()

		p, err := table.Lookup(mensafeed.MealRecord{Category: mensafeed.Vegetarian, Weekly: true})

		require.NoError(t, err)
		assert.Equal(t, mensafeed.Prices{mensafeed.RoleOther: 800}, p)
	})

	t.Run("returns EPRICECONFIG for a missing category", func(t *testing.T) {
		t.Parallel()

		_, err := table.Lookup(mensafeed.MealRecord{Category: mensafeed.Vegan})

		assert.Equal(t, mensafeed.EPRICECONFIG, mensafeed.ErrorCode(err))
	})

	t.Run("returns EPRICECONFIG for a weekly special without weekly prices", func(t *testing.T) {
		t.Parallel()

		_, err := mensafeed.PriceTable{}.Lookup(mensafeed.MealRecord{Category: mensafeed.Vegan, Weekly: true})

		assert.Equal(t, mensafeed.EPRICECONFIG, mensafeed.ErrorCode(err))
	})
}

func TestPriceTable_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete table", func(t *testing.T) {
		t.Parallel()

		table := mensafeed.StudentPrices(map[mensafeed.Category]mensafeed.Price{
			mensafeed.NonVegetarian: 500,
			mensafeed.Vegetarian:    400,
			mensafeed.Vegan:         400,
		})

		assert.NoError(t, table.Validate())
	})

	t.Run("requires every category", func(t *testing.T) {
		t.Parallel()

		table := mensafeed.StudentPrices(map[mensafeed.Category]mensafeed.Price{
			mensafeed.NonVegetarian: 500,
			mensafeed.Vegetarian:    400,
		})

		err := table.Validate()

		assert.Equal(t, mensafeed.EPRICECONFIG, mensafeed.ErrorCode(err))
		assert.Contains(t, mensafeed.ErrorMessage(err), "vegan")
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		t.Parallel()

		table := mensafeed.StudentPrices(map[mensafeed.Category]mensafeed.Price{
			mensafeed.NonVegetarian: 500,
			mensafeed.Vegetarian:    400,
			mensafeed.Vegan:         400,
		})
		table.Weekly = mensafeed.Prices{"guest": 900}

		assert.Equal(t, mensafeed.EINVALID, mensafeed.ErrorCode(table.Validate()))
	})
}
