// Command seed runs the database seed operations from the command line.
//
//	seed list                 show every registered operation
//	seed run [name ...]       execute operations (default: all, in order)
//	seed clear [name ...]     clear operations (default: all, in reverse order)
//	seed fresh                clear everything, then run everything
package main

import (
	"fmt"
	"os"

	"agencypro-backend/config"
	"agencypro-backend/models"
	"agencypro-backend/seed"
	"agencypro-backend/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed and clear the agency site database",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			fmt.Println("No .env file found")
		}
		utils.InitLogger()
		config.ConnectDB()
		if err := config.DB.AutoMigrate(models.All()...); err != nil {
			fmt.Fprintf(os.Stderr, "auto-migration failed: %v\n", err)
			os.Exit(1)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered seed operations",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range seed.Registry() {
			cfg := s.Config()
			fmt.Printf("%d. %-16s %s\n", cfg.Order, cfg.Name, cfg.Description)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [name ...]",
	Short: "Execute seed operations (all by default, in registry order)",
	RunE: func(cmd *cobra.Command, args []string) error {
		seeders, err := resolve(args)
		if err != nil {
			return err
		}
		for _, s := range seeders {
			count, err := s.Execute(config.DB)
			if err != nil {
				return fmt.Errorf("seed %s: %w", s.Config().Name, err)
			}
			fmt.Printf("seeded %-16s %d inserted\n", s.Config().Name, count)
		}
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear [name ...]",
	Short: "Clear seeded data (all by default, in reverse registry order)",
	RunE: func(cmd *cobra.Command, args []string) error {
		seeders, err := resolve(args)
		if err != nil {
			return err
		}
		// Reverse order so dependents go before their dependencies
		// (blog posts before taxonomy).
		for i := len(seeders) - 1; i >= 0; i-- {
			s := seeders[i]
			if err := s.Clear(config.DB); err != nil {
				return fmt.Errorf("clear %s: %w", s.Config().Name, err)
			}
			fmt.Printf("cleared %s\n", s.Config().Name)
		}
		return nil
	},
}

var freshCmd = &cobra.Command{
	Use:   "fresh",
	Short: "Clear everything, then run every seed operation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clearCmd.RunE(cmd, nil); err != nil {
			return err
		}
		return runCmd.RunE(cmd, nil)
	},
}

// resolve maps names to seeders, preserving registry order; no names
// means every operation.
func resolve(names []string) ([]seed.Seeder, error) {
	registry := seed.Registry()
	if len(names) == 0 {
		return registry, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := seed.Lookup(name); !ok {
			return nil, fmt.Errorf("unknown seed operation %q", name)
		}
		wanted[name] = true
	}
	var out []seed.Seeder
	for _, s := range registry {
		if wanted[s.Config().Name] {
			out = append(out, s)
		}
	}
	return out, nil
}

func main() {
	rootCmd.AddCommand(listCmd, runCmd, clearCmd, freshCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
