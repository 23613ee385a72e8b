package helper

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"tavola/config"
	"tavola/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	_ "github.com/golang-migrate/migrate/v4/source/file"       //nolint:revive
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// actions maps each direction onto migrate. Down and step-up move one version; drop
// reverts every migration.
var actions = map[string]func(*migrate.Migrate) error{
	ActionUp:     (*migrate.Migrate).Up,
	ActionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
	ActionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
	ActionDrop:   (*migrate.Migrate).Down,
}

func databaseURL(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	query := url.Values{"sslmode": {write.SSLMode}}
	if cfg.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     postgres.DatabaseName(cfg, write.Name),
		RawQuery: query.Encode(),
	}

	return u.String()
}

// Run applies one migration action against the write database. Having nothing to do
// is not an error.
func Run(cfg *config.Config, action string) error {
	apply, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := migrate.New(migrationsSource, databaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}
	defer mig.Close()

	if err = apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, ActionUp)
}
