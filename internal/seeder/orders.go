package seeder

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rishiiv/team-62/internal/catalog"
	"github.com/rishiiv/team-62/internal/config"
)

// Timestamps snap to the register's habits: mostly round minutes, seconds
// almost always :00.
var (
	orderMinutes = []int{0, 5, 10, 12, 15, 18, 20, 25, 30, 35, 40, 45, 50, 55}
	orderSeconds = []int{0, 0, 0, 30}

	lineCountChoices = []weightedInt{{1, 0.55}, {2, 0.33}, {3, 0.12}}
	quantityChoices  = []weightedInt{{1, 0.78}, {2, 0.20}, {3, 0.02}}

	priceOffsets = []float64{0.00, 0.00, 0.25, 0.50, -0.25}
)

const minUnitPrice = 2.50

// orderLine accumulates one distinct item within an order, in draw order.
type orderLine struct {
	itemID    uuid.UUID
	quantity  int
	unitPrice float64
}

// SynthesizeOrders expands the daily counts into order and order-line rows.
// When the same item is drawn twice within one order its quantity folds into
// the existing line and the unit price of the first draw is kept.
func SynthesizeOrders(cfg *config.Config, rng *rand.Rand, days []DayCount, customers []Customer, employees []Employee, menuToItem map[int]uuid.UUID, basePrice map[uuid.UUID]float64) ([]Order, []OrderLine) {
	menuChoices := make([]weightedInt, 0, 24)
	for _, m := range catalog.Items() {
		menuChoices = append(menuChoices, weightedInt{Value: m.ID, Weight: catalog.Popularity(m.Category)})
	}

	var orders []Order
	var lines []OrderLine

	for _, day := range days {
		for n := 0; n < day.Count; n++ {
			orderID := makeUUID(rng)

			hour := randInt(rng, cfg.OpenHour, cfg.CloseHour-1)
			minute := orderMinutes[rng.Intn(len(orderMinutes))]
			second := orderSeconds[rng.Intn(len(orderSeconds))]
			placedAt := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), hour, minute, second, 0, time.UTC)

			customer := customers[rng.Intn(len(customers))]
			employee := employees[rng.Intn(len(employees))]

			nLines := weightedChoice(rng, lineCountChoices)

			// Distinct items in draw order; index tracks accumulation.
			var drawn []orderLine
			index := make(map[uuid.UUID]int)

			for i := 0; i < nLines; i++ {
				menuID := weightedChoice(rng, menuChoices)
				itemID := menuToItem[menuID]
				qty := weightedChoice(rng, quantityChoices)

				price := round2(basePrice[itemID] + priceOffsets[rng.Intn(len(priceOffsets))])
				if price < minUnitPrice {
					price = minUnitPrice
				}

				if at, ok := index[itemID]; ok {
					drawn[at].quantity += qty
				} else {
					index[itemID] = len(drawn)
					drawn = append(drawn, orderLine{itemID: itemID, quantity: qty, unitPrice: price})
				}
			}

			total := 0.0
			itemQty := make(map[string]int, len(drawn))
			for _, l := range drawn {
				total += l.unitPrice * float64(l.quantity)
				itemQty[l.itemID.String()] = l.quantity
				lines = append(lines, OrderLine{
					ID:        makeUUID(rng),
					OrderID:   orderID,
					ItemID:    l.itemID,
					Quantity:  l.quantity,
					UnitPrice: l.unitPrice,
				})
			}

			orders = append(orders, Order{
				ID:           orderID,
				ItemQuantity: itemQty,
				EmployeeID:   employee.ID,
				CustomerID:   customer.ID,
				PlacedAt:     placedAt,
				Total:        round2(total),
			})
		}
	}

	return orders, lines
}
