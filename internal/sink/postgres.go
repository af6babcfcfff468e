package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rishiiv/team-62/internal/seeder"
)

// Postgres writes the dataset into the quoted-identifier POS schema
// ("Customer", "Order", ...). Statements are built with squirrel using
// dollar placeholders; pgx handles the uuid[], text[] and jsonb encodings.
type Postgres struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

var truncateAll = `TRUNCATE TABLE
	"Order_Item",
	"Item_Inventory",
	"Order",
	"Inventory_Quantity",
	"Item",
	"Employee",
	"Customer"
CASCADE`

// Open connects and pings. The pool stays small: seeding is a single
// sequential writer.
func Open(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection URL: %w", err)
	}

	cfg.MaxConns = 2
	cfg.MinConns = 0
	cfg.MaxConnLifetime = 15 * time.Minute
	cfg.MaxConnIdleTime = 3 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{
		pool: pool,
		qb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

// Persist writes the whole dataset in one transaction. Any failure rolls
// everything back; there are no retries and no partial writes.
func (p *Postgres) Persist(ctx context.Context, ds *seeder.Dataset, truncate bool) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if truncate {
		color.Yellow("🗑️  Truncating tables...")
		if _, err := tx.Exec(ctx, truncateAll); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
	}

	steps := []struct {
		name string
		run  func(context.Context, pgx.Tx, *seeder.Dataset) error
	}{
		{"Customer", p.insertCustomers},
		{"Employee", p.insertEmployees},
		{"Item", p.insertItems},
		{"Inventory_Quantity", p.insertInventory},
		{"Item_Inventory", p.insertItemInventory},
		{"Order", p.insertOrders},
		{"Order_Item", p.insertOrderLines},
		{"inventory remainders", p.updateInventory},
		{"customer aggregates", p.updateCustomers},
	}

	for _, step := range steps {
		color.Cyan("  📝 Writing %s...", step.name)
		if err := step.run(ctx, tx, ds); err != nil {
			return fmt.Errorf("failed to write %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (p *Postgres) insertCustomers(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	for start := 0; start < len(ds.Customers); start += customerPageSize {
		b := p.qb.Insert(`"Customer"`).
			Columns("customer_id", "name", "phone_number", "email", "points", "purchase_history")
		for _, c := range page(ds.Customers, start, customerPageSize) {
			b = b.Values(c.ID, c.Name, c.Phone, c.Email, c.Points, emptyHistory(c.PurchaseHistory))
		}
		if err := execInsert(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) insertEmployees(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	for start := 0; start < len(ds.Employees); start += employeePageSize {
		b := p.qb.Insert(`"Employee"`).
			Columns("employee_id", "name", "start_date", "work_history")
		for _, e := range page(ds.Employees, start, employeePageSize) {
			b = b.Values(e.ID, e.Name, e.StartDate, e.WorkHistory)
		}
		if err := execInsert(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) insertItems(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	for start := 0; start < len(ds.Items); start += itemPageSize {
		b := p.qb.Insert(`"Item"`).
			Columns("item_id", "name", "category", "price", "is_active", "milk", "ice", "sugar", "toppings")
		for _, it := range page(ds.Items, start, itemPageSize) {
			b = b.Values(it.ID, it.Name, it.Category, it.Price, it.Active, it.Milk, it.Ice, it.Sugar, it.Toppings)
		}
		if err := execInsert(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) insertInventory(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	for start := 0; start < len(ds.Inventory); start += inventoryPageSize {
		b := p.qb.Insert(`"Inventory_Quantity"`).
			Columns("inventory_id", "quantity", "last_restocked", "last_quantity")
		for _, inv := range page(ds.Inventory, start, inventoryPageSize) {
			b = b.Values(inv.ID, inv.Quantity, inv.LastRestocked, inv.LastQuantity)
		}
		if err := execInsert(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) insertItemInventory(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	for start := 0; start < len(ds.ItemInventory); start += joinPageSize {
		b := p.qb.Insert(`"Item_Inventory"`).
			Columns("id", "inventory_id", "item_id")
		for _, j := range page(ds.ItemInventory, start, joinPageSize) {
			b = b.Values(j.ID, j.InventoryID, j.ItemID)
		}
		if err := execInsert(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) insertOrders(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	for start := 0; start < len(ds.Orders); start += orderPageSize {
		b := p.qb.Insert(`"Order"`).
			Columns("order_id", "item_quantity", "employee_id", "customer_id", "date", "total_price")
		for _, o := range page(ds.Orders, start, orderPageSize) {
			b = b.Values(o.ID, o.ItemQuantity, o.EmployeeID, o.CustomerID, o.PlacedAt, o.Total)
		}
		if err := execInsert(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) insertOrderLines(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	for start := 0; start < len(ds.OrderLines); start += linePageSize {
		b := p.qb.Insert(`"Order_Item"`).
			Columns("id", "order_id", "item_id", "quantity", "unit_price")
		for _, l := range page(ds.OrderLines, start, linePageSize) {
			b = b.Values(l.ID, l.OrderID, l.ItemID, l.Quantity, l.UnitPrice)
		}
		if err := execInsert(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) updateInventory(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	batch := &pgx.Batch{}
	for _, u := range ds.InventoryUpdates {
		batch.Queue(`UPDATE "Inventory_Quantity" SET quantity = $1 WHERE inventory_id = $2`, u.Quantity, u.InventoryID)
	}
	return sendBatch(ctx, tx, batch)
}

func (p *Postgres) updateCustomers(ctx context.Context, tx pgx.Tx, ds *seeder.Dataset) error {
	batch := &pgx.Batch{}
	for _, u := range ds.CustomerUpdates {
		batch.Queue(`UPDATE "Customer" SET points = $1, purchase_history = $2 WHERE customer_id = $3`,
			u.Points, emptyHistory(u.PurchaseHistory), u.CustomerID)
	}
	return sendBatch(ctx, tx, batch)
}

func execInsert(ctx context.Context, tx pgx.Tx, b squirrel.InsertBuilder) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}
	return nil
}

func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return err
		}
	}
	return br.Close()
}

func page[T any](rows []T, start, size int) []T {
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// emptyHistory keeps nil histories encoding as empty uuid[] rather than NULL.
func emptyHistory(h []uuid.UUID) []uuid.UUID {
	if h == nil {
		return []uuid.UUID{}
	}
	return h
}
