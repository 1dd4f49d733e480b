package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"orgseed/internal/catalog"
	"orgseed/internal/config"
	"orgseed/internal/database"
	"orgseed/internal/generator"
	"orgseed/internal/sample"
)

var rootCmd = &cobra.Command{
	Use:   "orgseed",
	Short: "Generate a realistic project-management workspace dataset",
	Long: `orgseed synthesizes one organization's complete workspace (users, teams,
projects, tasks, comments, tags, custom fields, dependencies) with realistic
statistical distributions and writes it to a relational database. Runs with
the same --seed produce byte-identical datasets.`,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	cobra.OnInitialize(initConfig)
	addFlags()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("ORGSEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addFlags() {
	rootCmd.Flags().Int("users", 500, "number of users to generate")
	rootCmd.Flags().Int("projects-per-team", 3, "target projects per team")
	rootCmd.Flags().Int("tasks-per-section", 15, "target tasks per section for active projects")
	rootCmd.Flags().String("output", "output/workspace_seed.sqlite", "sqlite database path")
	rootCmd.Flags().String("driver", config.DriverSQLite, "database driver (sqlite, mysql, postgres)")
	rootCmd.Flags().String("dsn", "", "database DSN for the mysql and postgres drivers")
	rootCmd.Flags().Int64("seed", 0, "random seed (0 derives one from the clock)")
	rootCmd.Flags().String("org-name", "TechSync Inc", "name of the generated organization")
	rootCmd.Flags().String("seed-password", "changeme", "password every generated user is given")
	for _, name := range []string{
		"users", "projects-per-team", "tasks-per-section",
		"output", "driver", "dsn", "seed", "org-name", "seed-password",
	} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	// The hash is computed once up front: bcrypt salts come from crypto/rand,
	// so hashing inside the pipeline would break seed reproducibility.
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	log.Printf("Generating dataset with seed %d", cfg.Seed)
	gen := generator.New(cfg, cat, sample.New(cfg.Seed), time.Now().UTC())
	ds, err := gen.Run(string(hash))
	if err != nil {
		return err
	}

	if err := database.NewWriter(db).WriteDataset(cmd.Context(), ds); err != nil {
		return err
	}

	printSummary(ds, cfg)
	return nil
}

func printSummary(ds *generator.Dataset, cfg *config.Config) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Entity", "Rows"})
	total := 0
	for _, c := range ds.Counts() {
		tw.AppendRow(table.Row{c.Entity, c.Count})
		total += c.Count
	}
	tw.AppendFooter(table.Row{"total", total})
	tw.Render()

	target := cfg.DSN
	if cfg.Driver == config.DriverSQLite {
		target = cfg.Output
	}
	log.Printf("Dataset written to %s (%s), seed %d", target, cfg.Driver, cfg.Seed)
}
