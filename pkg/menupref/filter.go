package menupref

import (
	"DineWise-Backend/entities"
)

// FilterDishes keeps a dish only when every preference flag the user has
// set is matched by the corresponding suitability flag on the dish. A user
// with no preference row sees the full menu. Input order is preserved and
// the input slice is never mutated.
func FilterDishes(prefs *entities.Preferences, dishes []*entities.Dish) []*entities.Dish {
	if prefs == nil {
		return dishes
	}

	filtered := make([]*entities.Dish, 0, len(dishes))
	for _, dish := range dishes {
		if prefs.IsLactoseIntolerant && !dish.IsLactoseFree {
			continue
		}
		if prefs.IsHalal && !dish.IsHalal {
			continue
		}
		if prefs.IsVegan && !dish.IsVegan {
			continue
		}
		if prefs.IsVegetarian && !dish.IsVegetarian {
			continue
		}
		if prefs.IsGlutenAllergic && !dish.IsGlutenFree {
			continue
		}
		if prefs.IsJain && !dish.IsJain {
			continue
		}
		filtered = append(filtered, dish)
	}
	return filtered
}
