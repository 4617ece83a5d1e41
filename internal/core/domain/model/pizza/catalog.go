package pizza

import "pizzeria/internal/pkg/errs"

// MenuItem is a single entry of the standard pizza menu: a name and its
// catalog base cost in minor currency units.
type MenuItem struct {
	Name     string
	BaseCost int
}

// Menu returns the fixed standard pizza menu in display order.
func Menu() []MenuItem {
	return []MenuItem{
		{Name: "Pepperoni", BaseCost: 1500},
		{Name: "Chili Chicken", BaseCost: 1500},
		{Name: "Sausage Delight", BaseCost: 1600},
		{Name: "Chicken Bacon & Potato", BaseCost: 1700},
		{Name: "Veggie Supreme", BaseCost: 1200},
	}
}

// Crusts returns the crusts available for customized pizzas.
func Crusts() []string {
	return []string{"Thin Crust", "Thick Crust", "Sausage Stuffed Crust"}
}

// Sauces returns the sauces available for customized pizzas.
func Sauces() []string {
	return []string{"Tomato Sauce", "Pesto Sauce", "BBQ Sauce"}
}

// Toppings returns the toppings available for customized pizzas. The list
// mirrors the standard menu names.
func Toppings() []string {
	return []string{"Pepperoni", "Chili Chicken", "Sausage Delight", "Chicken Bacon & Potato", "Veggie Supreme"}
}

// MenuItemAt returns the menu entry for a one-based selection index, as
// presented by the console menu. Returns an ObjectNotFoundError for an index
// outside the menu.
func MenuItemAt(choice int) (MenuItem, error) {
	menu := Menu()
	if choice < 1 || choice > len(menu) {
		return MenuItem{}, errs.NewObjectNotFoundError("menu choice", choice)
	}
	return menu[choice-1], nil
}
