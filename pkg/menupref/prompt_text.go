package menupref

import (
	"DineWise-Backend/entities"
	"fmt"
	"strings"
)

// Plain-text renderings of menus, restaurant details, and preferences,
// consumed verbatim as model context by the chat service.

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func attribute(v bool, name string) string {
	if v {
		return name
	}
	return "Not " + name
}

func writeDish(b *strings.Builder, dish *entities.Dish) {
	description := dish.Description
	if description == "" {
		description = "No description available"
	}
	fmt.Fprintf(b, "  Dish ID: %s\n", dish.ID)
	fmt.Fprintf(b, "  Dish Name: %s\n", dish.Name)
	fmt.Fprintf(b, "  Description: %s\n", description)
	fmt.Fprintf(b, "  Price: $%.2f\n", dish.Price)
	fmt.Fprintf(b, "  Protein: %gg, Fat: %gg, Carbs: %gg, Energy: %g kcal\n",
		dish.Protein, dish.Fat, dish.Carbs, dish.Energy)
	fmt.Fprintf(b, "  Special Attributes: %s, %s, %s, %s, %s, %s, %s\n",
		attribute(dish.IsLactoseFree, "Lactose-Free"),
		attribute(dish.IsHalal, "Halal"),
		attribute(dish.IsVegan, "Vegan"),
		attribute(dish.IsVegetarian, "Vegetarian"),
		attribute(dish.IsGlutenFree, "Gluten-Free"),
		attribute(dish.IsJain, "Jain"),
		attribute(dish.IsSoyFree, "Soy-Free"))
	fmt.Fprintf(b, "  Available: %s\n\n", yesNo(dish.IsAvailable))
}

func writeMenuHeader(b *strings.Builder, menu *entities.Menu) {
	menuType := menu.MenuType
	if menuType == "" {
		menuType = "Unnamed Menu"
	}
	fmt.Fprintf(b, "Menu ID: %s\n", menu.ID)
	fmt.Fprintf(b, "Menu Name: %s\n\n", menuType)
}

// MenuText renders every menu and dish of the restaurant.
func MenuText(menus []*entities.Menu) string {
	if len(menus) == 0 {
		return "No menus found for this restaurant."
	}

	var b strings.Builder
	b.WriteString("Here are all the menus and their dishes for this restaurant:\n\n")
	for _, menu := range menus {
		writeMenuHeader(&b, menu)
		if len(menu.Dishes) == 0 {
			b.WriteString("  No dishes available for this menu.\n\n")
			continue
		}
		for _, dish := range menu.Dishes {
			writeDish(&b, dish)
		}
	}
	return strings.TrimSpace(b.String())
}

// FilteredMenuText renders the same menus restricted to dishes compatible
// with the user's preferences.
func FilteredMenuText(menus []*entities.Menu, prefs *entities.Preferences) string {
	if len(menus) == 0 {
		return "No menus found for this restaurant."
	}

	var b strings.Builder
	b.WriteString("Here is the menu based on your preferences:\n\n")
	for _, menu := range menus {
		writeMenuHeader(&b, menu)
		dishes := FilterDishes(prefs, menu.Dishes)
		if len(dishes) == 0 {
			b.WriteString("No dishes available for this menu based on your preferences.\n\n")
			continue
		}
		for _, dish := range dishes {
			writeDish(&b, dish)
		}
	}
	return strings.TrimSpace(b.String())
}

func RestaurantDetailsText(restaurant *entities.Restaurant) string {
	if restaurant == nil {
		return "Restaurant not found."
	}

	var b strings.Builder
	b.WriteString("This is the restaurant's details:")
	fmt.Fprintf(&b, "\nname: %s", restaurant.Name)
	fmt.Fprintf(&b, "\naddress: %s", restaurant.Address)
	fmt.Fprintf(&b, "\ncuisine: %s", restaurant.Cuisine)
	fmt.Fprintf(&b, "\nrating: %g", restaurant.Rating)
	fmt.Fprintf(&b, "\nvegetarian: %s", yesNo(restaurant.IsVegetarian))
	fmt.Fprintf(&b, "\nvegan: %s", yesNo(restaurant.IsVegan))
	fmt.Fprintf(&b, "\nhalal: %s", yesNo(restaurant.IsHalal))
	if restaurant.Description != "" {
		fmt.Fprintf(&b, "\ndescription: %s", restaurant.Description)
	}
	return b.String()
}

func PreferencesText(prefs *entities.Preferences) string {
	if prefs == nil {
		return "No preferences found for this user."
	}

	var b strings.Builder
	b.WriteString("Here are the user's preferences:\n\n")
	fmt.Fprintf(&b, "Preference: %s\n", prefs.Note)
	fmt.Fprintf(&b, "Lactose Intolerant: %s\n", yesNo(prefs.IsLactoseIntolerant))
	fmt.Fprintf(&b, "Halal: %s\n", yesNo(prefs.IsHalal))
	fmt.Fprintf(&b, "Vegan: %s\n", yesNo(prefs.IsVegan))
	fmt.Fprintf(&b, "Vegetarian: %s\n", yesNo(prefs.IsVegetarian))
	fmt.Fprintf(&b, "Allergic to Gluten: %s\n", yesNo(prefs.IsGlutenAllergic))
	fmt.Fprintf(&b, "Jain: %s", yesNo(prefs.IsJain))
	return b.String()
}
