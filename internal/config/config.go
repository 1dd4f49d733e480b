package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds the run parameters for one generation run. Values come from
// flags and ORGSEED_* environment variables bound through viper.
type Config struct {
	Users           int
	ProjectsPerTeam int
	TasksPerSection int
	Output          string
	Driver          string
	DSN             string
	Seed            int64
	OrgName         string
	SeedPassword    string
}

// Load reads the bound viper keys into a Config.
func Load() *Config {
	return &Config{
		Users:           viper.GetInt("users"),
		ProjectsPerTeam: viper.GetInt("projects-per-team"),
		TasksPerSection: viper.GetInt("tasks-per-section"),
		Output:          viper.GetString("output"),
		Driver:          viper.GetString("driver"),
		DSN:             viper.GetString("dsn"),
		Seed:            viper.GetInt64("seed"),
		OrgName:         viper.GetString("org-name"),
		SeedPassword:    viper.GetString("seed-password"),
	}
}

// Validate rejects unusable parameter combinations before generation starts.
func (c *Config) Validate() error {
	if c.Users <= 0 {
		return errors.New("users must be positive")
	}
	if c.ProjectsPerTeam <= 0 {
		return errors.New("projects-per-team must be positive")
	}
	if c.TasksPerSection <= 0 {
		return errors.New("tasks-per-section must be positive")
	}
	if c.OrgName == "" {
		return errors.New("org-name must not be empty")
	}
	if c.SeedPassword == "" {
		return errors.New("seed-password must not be empty")
	}
	switch c.Driver {
	case DriverSQLite:
		if c.Output == "" {
			return errors.New("output path is required for the sqlite driver")
		}
	case DriverMySQL, DriverPostgres:
		if c.DSN == "" {
			return fmt.Errorf("dsn is required for the %s driver", c.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
	return nil
}
