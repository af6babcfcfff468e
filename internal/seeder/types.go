// Package seeder builds the synthetic point-of-sale dataset: entity pools,
// the seasonal demand curve, the order history, revenue normalization and
// the derived loyalty/inventory fields. Everything is drawn in a fixed order
// from one injected rand.Rand, so output is a pure function of the config.
package seeder

import (
	"time"

	"github.com/google/uuid"
)

// Customer row. Points and PurchaseHistory are inserted empty and filled by
// the aggregation update pass once all orders are known.
type Customer struct {
	ID              uuid.UUID
	Name            string
	Phone           string
	Email           string
	Points          int
	PurchaseHistory []uuid.UUID
}

type Employee struct {
	ID          uuid.UUID
	Name        string
	StartDate   time.Time
	WorkHistory WorkHistory
}

// WorkHistory is stored as a JSONB blob on the employee row.
type WorkHistory struct {
	Role  string `json:"role"`
	Notes string `json:"notes"`
}

// Item is the persisted drink record. It maps one-to-one to a menu item at
// generation time but has its own UUID identity.
type Item struct {
	ID       uuid.UUID
	Name     string
	Category string
	Price    float64
	Active   bool
	Milk     string
	Ice      int
	Sugar    float64
	Toppings []string
}

// Inventory is the stock bucket backing an item. LastQuantity carries the
// range start date, matching the historical seed data.
type Inventory struct {
	ID            uuid.UUID
	Quantity      int
	LastRestocked time.Time
	LastQuantity  time.Time
}

// ItemInventory joins an item to its inventory bucket.
type ItemInventory struct {
	ID          uuid.UUID
	InventoryID uuid.UUID
	ItemID      uuid.UUID
}

// Order keeps the per-item quantities twice: denormalized as a JSONB map on
// the order row and as one OrderLine row per distinct item.
type Order struct {
	ID           uuid.UUID
	ItemQuantity map[string]int
	EmployeeID   uuid.UUID
	CustomerID   uuid.UUID
	PlacedAt     time.Time
	Total        float64
}

type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice float64
}

// InventoryUpdate is the post-sale remainder written back to a bucket.
type InventoryUpdate struct {
	InventoryID uuid.UUID
	Quantity    int
}

// CustomerUpdate carries the derived loyalty points and purchase history.
type CustomerUpdate struct {
	CustomerID      uuid.UUID
	Points          int
	PurchaseHistory []uuid.UUID
}

// Dataset is everything one generation run produces, in insert order.
type Dataset struct {
	Customers     []Customer
	Employees     []Employee
	Items         []Item
	Inventory     []Inventory
	ItemInventory []ItemInventory
	Orders        []Order
	OrderLines    []OrderLine

	InventoryUpdates []InventoryUpdate
	CustomerUpdates  []CustomerUpdate

	PeakDays []time.Time
	// Factor is the revenue normalization factor that was applied (1 when
	// the pre-scale total was already within tolerance).
	Factor float64
}

// TotalSales sums the (normalized) order totals.
func (d *Dataset) TotalSales() float64 {
	total := 0.0
	for i := range d.Orders {
		total += d.Orders[i].Total
	}
	return total
}
