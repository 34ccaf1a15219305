// Package config provides configuration management for the tenantforum
// migration tool. Settings come from TENANTFORUM_* environment variables,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coregx/tenantforum"
)

// EnvPrefix is the prefix of all environment variables read by Load.
const EnvPrefix = "TENANTFORUM_"

// Config holds all configuration for the migration tool.
type Config struct {
	Logger   Logger   `envPrefix:"LOGGER_"`
	Database Database `envPrefix:"DB_"`
}

// Logger holds logging configuration.
type Logger struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

// Database holds database connection configuration.
type Database struct {
	Driver   string `env:"DRIVER" envDefault:"mysql"` // mysql, postgres, sqlite3
	DSN      string `env:"DSN"`                       // Overrides the connection fields below
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT"`
	User     string `env:"USER" envDefault:"tenantforum"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"tenantforum"`

	Prefix         string `env:"PREFIX" envDefault:"tenantforum_"`
	UsersTable     string `env:"USERS_TABLE" envDefault:"users"`
	TenementsTable string `env:"TENEMENTS_TABLE" envDefault:"tenements"`

	// Mode selects how the schema is applied: "sql" runs the embedded
	// migrations, "gorm" runs GORM auto-migration.
	Mode string `env:"MODE" envDefault:"sql"`
}

// Load loads configuration from the environment.
//
// The given .env files are loaded first without overriding variables that
// are already set; each of them must exist. Without arguments ".env" is
// tried and may be missing.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, "could not load .env file")
		}
	}

	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: EnvPrefix,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite3":
	default:
		return errors.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Database.Mode {
	case "sql", "gorm":
	default:
		return errors.Errorf("unsupported migration mode %q", c.Database.Mode)
	}

	if c.Database.Driver != "sqlite3" && c.Database.DSN == "" && c.Database.Password == "" {
		return errors.New("TENANTFORUM_DB_PASSWORD environment variable is required")
	}

	if _, err := c.Logger.ZapLevel(); err != nil {
		return err
	}

	return errors.WithStack(c.Database.Tables().Validate())
}

// Tables returns the table layout to migrate.
func (c *Database) Tables() tenantforum.Tables {
	return tenantforum.Tables{
		Prefix:    c.Prefix,
		Users:     c.UsersTable,
		Tenements: c.TenementsTable,
	}
}

// GetDSN returns the database connection string based on driver.
func (c *Database) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}

	switch strings.ToLower(c.Driver) {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.User, c.Password, c.Host, c.portOr(3306), c.Name)
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.portOr(5432), c.User, c.Password, c.Name)
	case "sqlite3":
		return c.Name // SQLite uses file path as DSN
	default:
		return ""
	}
}

func (c *Database) portOr(def int) int {
	if c.Port != 0 {
		return c.Port
	}
	return def
}

// ZapLevel parses the configured log level.
func (c *Logger) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return level, errors.Wrapf(err, "invalid log level %q", c.Level)
	}
	return level, nil
}

// Build creates the zap logger described by the configuration.
func (c *Logger) Build() (*zap.Logger, error) {
	level, err := c.ZapLevel()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return logger, nil
}
