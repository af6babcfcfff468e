package seeder

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishiiv/team-62/internal/config"
)

func linesByOrder(lines []OrderLine) map[uuid.UUID][]OrderLine {
	grouped := make(map[uuid.UUID][]OrderLine)
	for _, l := range lines {
		grouped[l.OrderID] = append(grouped[l.OrderID], l)
	}
	return grouped
}

func TestOrderTotalsMatchLines(t *testing.T) {
	_, orders, lines := synthFixture(t, 42)
	grouped := linesByOrder(lines)

	for _, o := range orders {
		sum := 0.0
		for _, l := range grouped[o.ID] {
			sum += l.UnitPrice * float64(l.Quantity)
		}
		assert.Equal(t, round2(sum), o.Total)
	}
}

func TestOrderLinesAreDistinctPerItem(t *testing.T) {
	_, orders, lines := synthFixture(t, 42)
	grouped := linesByOrder(lines)

	for _, o := range orders {
		seen := make(map[uuid.UUID]bool)
		for _, l := range grouped[o.ID] {
			assert.False(t, seen[l.ItemID], "repeated draws of an item must fold into one line")
			seen[l.ItemID] = true
		}
		require.NotEmpty(t, grouped[o.ID])
		assert.LessOrEqual(t, len(grouped[o.ID]), 3)
	}
}

func TestOrderItemQuantityMirrorsLines(t *testing.T) {
	_, orders, lines := synthFixture(t, 7)
	grouped := linesByOrder(lines)

	for _, o := range orders {
		require.Len(t, o.ItemQuantity, len(grouped[o.ID]))
		for _, l := range grouped[o.ID] {
			assert.Equal(t, l.Quantity, o.ItemQuantity[l.ItemID.String()])
		}
	}
}

func TestOrderLineBounds(t *testing.T) {
	_, _, lines := synthFixture(t, 11)

	for _, l := range lines {
		// Up to three draws of up to three units can fold together.
		assert.GreaterOrEqual(t, l.Quantity, 1)
		assert.LessOrEqual(t, l.Quantity, 9)
		assert.GreaterOrEqual(t, l.UnitPrice, minUnitPrice)
	}
}

func TestOrderTimestamps(t *testing.T) {
	cfg, orders, _ := synthFixture(t, 42)

	validMinute := make(map[int]bool)
	for _, m := range orderMinutes {
		validMinute[m] = true
	}

	for _, o := range orders {
		assert.Equal(t, time.UTC, o.PlacedAt.Location())
		assert.GreaterOrEqual(t, o.PlacedAt.Hour(), cfg.OpenHour)
		assert.Less(t, o.PlacedAt.Hour(), cfg.CloseHour)
		assert.True(t, validMinute[o.PlacedAt.Minute()])
		sec := o.PlacedAt.Second()
		assert.True(t, sec == 0 || sec == 30)

		assert.False(t, o.PlacedAt.Before(cfg.StartDate()))
		assert.True(t, o.PlacedAt.Before(cfg.EndDate().AddDate(0, 0, 1)))
	}
}

func TestOrderForeignKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Start = "2024-01-01"
	cfg.Weeks = 1
	cfg.TargetSales = 2000
	cfg.AvgTicket = 10
	cfg.Customers = 5
	cfg.Employees = 2

	rng := rand.New(rand.NewSource(42))
	customers := GenerateCustomers(cfg, rng)
	employees := GenerateEmployees(cfg, rng)
	items, _, _, menuToItem, basePrice := GenerateItems(cfg, rng)
	days := DailyOrderCounts(cfg, rng, nil)
	orders, lines := SynthesizeOrders(cfg, rng, days, customers, employees, menuToItem, basePrice)

	customerIDs := make(map[uuid.UUID]bool)
	for _, c := range customers {
		customerIDs[c.ID] = true
	}
	employeeIDs := make(map[uuid.UUID]bool)
	for _, e := range employees {
		employeeIDs[e.ID] = true
	}
	itemIDs := make(map[uuid.UUID]bool)
	for _, it := range items {
		itemIDs[it.ID] = true
	}

	for _, o := range orders {
		assert.True(t, customerIDs[o.CustomerID])
		assert.True(t, employeeIDs[o.EmployeeID])
	}
	for _, l := range lines {
		assert.True(t, itemIDs[l.ItemID])
	}
}

func TestSynthesizeOrdersDeterministic(t *testing.T) {
	_, ordersA, linesA := synthFixture(t, 42)
	_, ordersB, linesB := synthFixture(t, 42)

	assert.Equal(t, ordersA, ordersB)
	assert.Equal(t, linesA, linesB)
}
