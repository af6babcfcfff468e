package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rishiiv/team-62/internal/config"
	"github.com/rishiiv/team-62/internal/seeder"
	"github.com/rishiiv/team-62/internal/sink"
)

var (
	seedExecute  bool
	seedDSN      string
	seedTruncate bool
	seedProfile  string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate the dataset and optionally load it into Postgres",
	Long: `Run the full generation pipeline: catalog, customers, employees,
inventory, the seasonal order history, revenue normalization and the derived
loyalty/inventory updates.

Without --execute this is a dry run: everything is generated and summarized
but nothing touches the database. With --execute the dataset is written in a
single transaction; any failure rolls the whole load back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if seedProfile != "" {
			if err := cfg.ApplyProfile(seedProfile); err != nil {
				return fmt.Errorf("failed to apply profile: %w", err)
			}
		}

		// Resolve the DSN before doing any generation work so a
		// misconfigured execute run fails fast.
		dsn := seedDSN
		if dsn == "" {
			dsn = viper.GetString("DATABASE_URL")
		}
		if seedExecute && dsn == "" {
			return fmt.Errorf("--execute requires --dsn (or set DATABASE_URL)")
		}

		color.Cyan("🌱 Generating dataset (seed %d, %d weeks)...", cfg.Seed, cfg.Weeks)
		ds := seeder.Generate(cfg)
		printSummary(cfg, ds)

		if !seedExecute {
			fmt.Println()
			color.White("Dry run only. Re-run with --execute --dsn '...' to load Postgres.")
			return nil
		}

		ctx := context.Background()
		pg, err := sink.Open(ctx, dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pg.Close()

		if err := pg.Persist(ctx, ds, seedTruncate); err != nil {
			return fmt.Errorf("seeding failed, transaction rolled back: %w", err)
		}

		color.Green("\n✅ Database seeding completed successfully!")
		return nil
	},
}

func printSummary(cfg *config.Config, ds *seeder.Dataset) {
	peaks := make([]string, 0, len(ds.PeakDays))
	for _, d := range ds.PeakDays {
		peaks = append(peaks, d.Format("2006-01-02"))
	}

	fmt.Println()
	color.Green("📊 Generation summary")
	fmt.Printf("  Range:      %s .. %s  (%d weeks)\n",
		cfg.StartDate().Format("2006-01-02"), cfg.EndDate().Format("2006-01-02"), cfg.Weeks)
	fmt.Printf("  Customers:  %d\n", len(ds.Customers))
	fmt.Printf("  Employees:  %d\n", len(ds.Employees))
	fmt.Printf("  Items:      %d\n", len(ds.Items))
	fmt.Printf("  Orders:     %d\n", len(ds.Orders))
	fmt.Printf("  Line rows:  %d\n", len(ds.OrderLines))
	fmt.Printf("  Peak days:  %d  (%s)\n", len(ds.PeakDays), strings.Join(peaks, ", "))
	fmt.Printf("  Scale:      %.4f\n", ds.Factor)
	fmt.Printf("  Sales ≈     $%.2f\n", ds.TotalSales())
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().String("start", "", "Start date (YYYY-MM-DD). Default: auto so the range ends today")
	seedCmd.Flags().Int("weeks", 65, "Weeks to generate")
	seedCmd.Flags().Int64("seed", 42, "Random seed")
	seedCmd.Flags().Float64("target-sales", 1_250_000, "Approximate total sales for the whole range")
	seedCmd.Flags().Float64("avg-ticket", 10.25, "Average ticket size (order volume estimate only)")
	seedCmd.Flags().Int("peak-days", 4, "Number of peak demand days")
	seedCmd.Flags().BoolVar(&seedExecute, "execute", false, "Insert into Postgres instead of dry-running")
	seedCmd.Flags().StringVar(&seedDSN, "dsn", "", "Postgres DSN (or set DATABASE_URL)")
	seedCmd.Flags().BoolVar(&seedTruncate, "truncate-first", false, "TRUNCATE tables before inserting (destructive)")
	seedCmd.Flags().StringVar(&seedProfile, "profile", "", "YAML demand profile overriding the built-in curve")

	viper.BindPFlag("start", seedCmd.Flags().Lookup("start"))
	viper.BindPFlag("weeks", seedCmd.Flags().Lookup("weeks"))
	viper.BindPFlag("seed", seedCmd.Flags().Lookup("seed"))
	viper.BindPFlag("target_sales", seedCmd.Flags().Lookup("target-sales"))
	viper.BindPFlag("avg_ticket", seedCmd.Flags().Lookup("avg-ticket"))
	viper.BindPFlag("peak_days", seedCmd.Flags().Lookup("peak-days"))
}
