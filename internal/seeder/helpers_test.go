package seeder

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rishiiv/team-62/internal/config"
)

// fixtureData is one small but complete generation run, kept coherent so
// lines reference the fixture's own items and buckets.
type fixtureData struct {
	cfg       *config.Config
	customers []Customer
	employees []Employee
	items     []Item
	inventory []Inventory
	joins     []ItemInventory
	orders    []Order
	lines     []OrderLine

	menuToItem map[int]uuid.UUID
	basePrice  map[uuid.UUID]float64
}

func buildFixture(t *testing.T, seed int64) *fixtureData {
	t.Helper()

	cfg := config.Default()
	cfg.Start = "2024-01-01"
	cfg.Weeks = 1
	cfg.TargetSales = 5000
	cfg.AvgTicket = 10
	cfg.PeakDays = 0

	rng := rand.New(rand.NewSource(seed))
	f := &fixtureData{cfg: cfg}
	f.customers = GenerateCustomers(cfg, rng)
	f.employees = GenerateEmployees(cfg, rng)
	f.items, f.inventory, f.joins, f.menuToItem, f.basePrice = GenerateItems(cfg, rng)

	days := DailyOrderCounts(cfg, rng, nil)
	f.orders, f.lines = SynthesizeOrders(cfg, rng, days, f.customers, f.employees, f.menuToItem, f.basePrice)
	require.NotEmpty(t, f.orders)
	require.NotEmpty(t, f.lines)
	return f
}

func synthFixture(t *testing.T, seed int64) (*config.Config, []Order, []OrderLine) {
	t.Helper()
	f := buildFixture(t, seed)
	return f.cfg, f.orders, f.lines
}
