package seeder

import (
	"math"

	"github.com/google/uuid"
)

// CustomerAggregates derives loyalty points and purchase history from the
// normalized orders. Points are the floor of a customer's total spend;
// the history lists that customer's order ids in generation order. Every
// customer gets an update row, including those who never ordered.
func CustomerAggregates(customers []Customer, orders []Order) []CustomerUpdate {
	spend := make(map[uuid.UUID]float64, len(customers))
	history := make(map[uuid.UUID][]uuid.UUID, len(customers))
	for i := range orders {
		cid := orders[i].CustomerID
		spend[cid] += orders[i].Total
		history[cid] = append(history[cid], orders[i].ID)
	}

	updates := make([]CustomerUpdate, 0, len(customers))
	for i := range customers {
		cid := customers[i].ID
		updates = append(updates, CustomerUpdate{
			CustomerID:      cid,
			Points:          int(math.Floor(spend[cid])),
			PurchaseHistory: history[cid],
		})
	}
	return updates
}

// InventoryRemainder subtracts the quantities sold from each bucket's
// starting stock. Stock is clamped at zero: oversold demand is absorbed
// silently rather than reported as a stockout.
func InventoryRemainder(inventory []Inventory, joins []ItemInventory, lines []OrderLine) []InventoryUpdate {
	itemToInv := make(map[uuid.UUID]uuid.UUID, len(joins))
	for _, j := range joins {
		itemToInv[j.ItemID] = j.InventoryID
	}

	remaining := make(map[uuid.UUID]int, len(inventory))
	for i := range inventory {
		remaining[inventory[i].ID] = inventory[i].Quantity
	}

	for i := range lines {
		invID, ok := itemToInv[lines[i].ItemID]
		if !ok {
			continue
		}
		left := remaining[invID] - lines[i].Quantity
		if left < 0 {
			left = 0
		}
		remaining[invID] = left
	}

	updates := make([]InventoryUpdate, 0, len(inventory))
	for i := range inventory {
		updates = append(updates, InventoryUpdate{
			InventoryID: inventory[i].ID,
			Quantity:    remaining[inventory[i].ID],
		})
	}
	return updates
}
