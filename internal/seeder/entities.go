package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rishiiv/team-62/internal/catalog"
	"github.com/rishiiv/team-62/internal/config"
)

var employeeRoles = []string{"Barista", "Shift Lead", "Manager"}

var (
	milkOptions    = []string{"Whole", "Oat", "Almond", "None"}
	toppingOptions = []string{"Boba", "Lychee Jelly", "Popping Boba", "Chia", "Aloe"}
)

// GenerateCustomers produces the customer pool. Points and history start
// empty; the aggregation pass derives them from the generated orders.
func GenerateCustomers(cfg *config.Config, rng *rand.Rand) []Customer {
	customers := make([]Customer, 0, cfg.Customers)
	for i := 1; i <= cfg.Customers; i++ {
		customers = append(customers, Customer{
			ID:    makeUUID(rng),
			Name:  fmt.Sprintf("Customer %d", i),
			Phone: fmt.Sprintf("(%03d) %03d-%04d", 100+i%900, 100+(i*7)%900, (i*97)%10000),
			Email: fmt.Sprintf("customer%d@example.com", i),
		})
	}
	return customers
}

// GenerateEmployees produces the staff pool. Start dates fan out from
// 2022-01-01 and roles cycle through the roster.
func GenerateEmployees(cfg *config.Config, rng *rand.Rand) []Employee {
	base := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

	employees := make([]Employee, 0, cfg.Employees)
	for i := 1; i <= cfg.Employees; i++ {
		employees = append(employees, Employee{
			ID:        makeUUID(rng),
			Name:      fmt.Sprintf("Employee %d", i),
			StartDate: base.AddDate(0, 0, (i*19)%700),
			WorkHistory: WorkHistory{
				Role:  employeeRoles[(i-1)%len(employeeRoles)],
				Notes: "Seeded employee record",
			},
		})
	}
	return employees
}

// GenerateItems builds one persisted Item, one Inventory bucket and one join
// row per menu item. It also returns the menu-id → item-id index and the
// item base prices the order synthesizer samples from.
func GenerateItems(cfg *config.Config, rng *rand.Rand) (items []Item, inventory []Inventory, joins []ItemInventory, menuToItem map[int]uuid.UUID, basePrice map[uuid.UUID]float64) {
	menuToItem = make(map[int]uuid.UUID)
	basePrice = make(map[uuid.UUID]float64)
	start := cfg.StartDate()

	for _, m := range catalog.Items() {
		itemID := makeUUID(rng)
		invID := makeUUID(rng)

		items = append(items, Item{
			ID:       itemID,
			Name:     m.Name,
			Category: m.Category,
			Price:    m.BasePrice,
			Active:   m.Active,
			Milk:     milkOptions[m.ID%len(milkOptions)],
			Ice:      (m.ID * 7) % 3,
			Sugar:    float64(50+(m.ID*13)%51) / 100,
			Toppings: []string{toppingOptions[m.ID%len(toppingOptions)]},
		})
		menuToItem[m.ID] = itemID
		basePrice[itemID] = m.BasePrice

		inventory = append(inventory, Inventory{
			ID:            invID,
			Quantity:      8000 + (m.ID*137)%2500,
			LastRestocked: start,
			LastQuantity:  start,
		})

		joins = append(joins, ItemInventory{
			ID:          makeUUID(rng),
			InventoryID: invID,
			ItemID:      itemID,
		})
	}

	return items, inventory, joins, menuToItem, basePrice
}
