package seeder

import (
	"math/rand"

	"github.com/rishiiv/team-62/internal/config"
)

// Generate runs the full pipeline: entities, demand curve, order synthesis,
// revenue normalization and the two derived-field passes. The pseudo-random
// stream is consumed in a fixed order, so the whole Dataset is a pure
// function of the config (including its seed). Generation never touches the
// database; persisting the result is the sink's job.
func Generate(cfg *config.Config) *Dataset {
	rng := rand.New(rand.NewSource(cfg.Seed))

	customers := GenerateCustomers(cfg, rng)
	employees := GenerateEmployees(cfg, rng)
	items, inventory, joins, menuToItem, basePrice := GenerateItems(cfg, rng)

	peaks := PickPeakDays(cfg, rng)
	days := DailyOrderCounts(cfg, rng, peaks)
	orders, lines := SynthesizeOrders(cfg, rng, days, customers, employees, menuToItem, basePrice)

	factor := NormalizeRevenue(cfg.TargetSales, orders, lines)

	return &Dataset{
		Customers:        customers,
		Employees:        employees,
		Items:            items,
		Inventory:        inventory,
		ItemInventory:    joins,
		Orders:           orders,
		OrderLines:       lines,
		InventoryUpdates: InventoryRemainder(inventory, joins, lines),
		CustomerUpdates:  CustomerAggregates(customers, orders),
		PeakDays:         peaks,
		Factor:           factor,
	}
}
