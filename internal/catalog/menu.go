package catalog

import "strings"

// MenuItem is one row of the static drink menu. Menu item ids are a
// generation-time index; persisted items carry their own UUIDs.
type MenuItem struct {
	ID        int
	Name      string
	Category  string
	BasePrice float64
	Active    bool
}

var menu = []MenuItem{
	{1, "Classic Milk Tea", "Milk Tea", 4.75, true},
	{2, "Taro Milk Tea", "Milk Tea", 5.25, true},
	{3, "Thai Tea", "Milk Tea", 5.00, true},
	{4, "Jasmine Green Tea", "Brewed Tea", 3.75, true},
	{5, "Oolong Tea", "Brewed Tea", 3.75, true},
	{6, "Wintermelon Tea", "Fruit Tea", 4.50, true},
	{7, "Mango Green Tea", "Fruit Tea", 5.25, true},
	{8, "Strawberry Tea", "Fruit Tea", 5.25, true},
	{9, "Passion Fruit Tea", "Fruit Tea", 5.00, true},
	{10, "Brown Sugar Boba Milk", "Specialty", 5.75, true},
	{11, "Matcha Latte", "Specialty", 5.75, true},
	{12, "Honey Lemon Tea", "Fruit Tea", 4.75, true},
	{13, "Lychee Tea", "Fruit Tea", 5.00, true},
	{14, "Peach Oolong Tea", "Fruit Tea", 5.25, true},
	{15, "Brown Sugar Milk Tea", "Milk Tea", 5.50, true},
	{16, "Mango Milk Tea", "Milk Tea", 5.50, true},
	{17, "Strawberry Milk Tea", "Milk Tea", 5.50, true},
	{18, "Honeydew Milk Tea", "Milk Tea", 5.50, true},
	{19, "Wintermelon Milk Tea", "Milk Tea", 5.50, true},
	{20, "Grape Chia", "Milk Tea", 5.50, true},
	{21, "Passion Fruit", "Milk Tea", 5.50, true},
	{22, "Oolong Milk Tea", "Milk Tea", 5.50, true},
	{23, "Honey Lemon Milk Tea", "Milk Tea", 5.50, true},
	{24, "Peach Milk Tea", "Milk Tea", 5.50, true},
}

// Items returns a copy of the menu in id order. Callers must not rely on
// mutating the result affecting later calls.
func Items() []MenuItem {
	out := make([]MenuItem, len(menu))
	copy(out, menu)
	return out
}

// Popularity returns the sampling weight multiplier for a menu category.
// Milk teas sell best, fruit teas a bit above baseline, plain brews a bit
// below.
func Popularity(category string) float64 {
	cat := strings.ToLower(category)
	w := 1.0
	if strings.Contains(cat, "milk") {
		w *= 1.25
	}
	if strings.Contains(cat, "fruit") {
		w *= 1.10
	}
	if strings.Contains(cat, "brew") {
		w *= 0.95
	}
	return w
}
