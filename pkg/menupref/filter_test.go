package menupref

import (
	"DineWise-Backend/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDishes() []*entities.Dish {
	return []*entities.Dish{
		{Name: "Garden Salad", IsLactoseFree: true, IsVegan: true, IsVegetarian: true, IsGlutenFree: true, IsJain: true},
		{Name: "Cheese Pizza", IsVegetarian: true, IsHalal: true},
		{Name: "Vegan Burger", IsLactoseFree: true, IsVegan: true, IsVegetarian: true, IsHalal: true},
		{Name: "Chicken Curry", IsHalal: true, IsLactoseFree: true, IsGlutenFree: true},
		{Name: "Fish and Chips"},
	}
}

func names(dishes []*entities.Dish) []string {
	out := make([]string, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d.Name)
	}
	return out
}

func TestFilterDishesNilPreferences(t *testing.T) {
	dishes := sampleDishes()
	assert.Equal(t, dishes, FilterDishes(nil, dishes), "a user without a preference row sees the full menu")
}

func TestFilterDishesNoFlags(t *testing.T) {
	dishes := sampleDishes()
	assert.Len(t, FilterDishes(&entities.Preferences{}, dishes), len(dishes))
}

func TestFilterDishesVegan(t *testing.T) {
	got := FilterDishes(&entities.Preferences{IsVegan: true}, sampleDishes())
	assert.Equal(t, []string{"Garden Salad", "Vegan Burger"}, names(got))
}

func TestFilterDishesEveryFlagMustMatch(t *testing.T) {
	// halal alone admits three dishes; halal+lactose keeps only the two
	// that satisfy both
	halal := FilterDishes(&entities.Preferences{IsHalal: true}, sampleDishes())
	assert.Equal(t, []string{"Cheese Pizza", "Vegan Burger", "Chicken Curry"}, names(halal))

	both := FilterDishes(&entities.Preferences{IsHalal: true, IsLactoseIntolerant: true}, sampleDishes())
	assert.Equal(t, []string{"Vegan Burger", "Chicken Curry"}, names(both))
}

func TestFilterDishesMonotonic(t *testing.T) {
	dishes := sampleDishes()
	prefs := []*entities.Preferences{
		{},
		{IsVegetarian: true},
		{IsVegetarian: true, IsVegan: true},
		{IsVegetarian: true, IsVegan: true, IsJain: true},
	}

	prev := len(dishes)
	for _, p := range prefs {
		got := FilterDishes(p, dishes)
		assert.LessOrEqual(t, len(got), prev, "setting another flag can only shrink the result")
		prev = len(got)
	}
}

func TestFilterDishesPreservesOrderAndInput(t *testing.T) {
	dishes := sampleDishes()
	before := names(dishes)

	got := FilterDishes(&entities.Preferences{IsGlutenAllergic: true}, dishes)
	assert.Equal(t, []string{"Garden Salad", "Chicken Curry"}, names(got))
	assert.Equal(t, before, names(dishes), "the input slice is never mutated")

	// running the filter on its own output changes nothing
	again := FilterDishes(&entities.Preferences{IsGlutenAllergic: true}, got)
	require.Equal(t, names(got), names(again))
}
