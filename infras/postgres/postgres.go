package postgres

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"tavola/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" //nolint:revive
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection splits reads onto a replica. Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	host     string
	port     string
	username string
	password string
	database string
	sslMode  string
}

func (e endpoint) dsn() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     e.database,
		RawQuery: url.Values{"sslmode": {e.sslMode}}.Encode(),
	}

	return u.String()
}

// DatabaseName applies the configured prefix, used to isolate environments sharing a server.
func DatabaseName(cfg *config.Config, name string) string {
	return cfg.DB.Postgres.Prefix + name
}

func New(cfg *config.Config) (*Connection, error) {
	pg := cfg.DB.Postgres

	write, err := connect(endpoint{
		name: "write", host: pg.Write.Host, port: pg.Write.Port,
		username: pg.Write.Username, password: pg.Write.Password,
		database: DatabaseName(cfg, pg.Write.Name), sslMode: pg.Write.SSLMode,
	}, pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	read, err := connect(endpoint{
		name: "read", host: pg.Read.Host, port: pg.Read.Port,
		username: pg.Read.Username, password: pg.Read.Password,
		database: DatabaseName(cfg, pg.Read.Name), sslMode: pg.Read.SSLMode,
	}, pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, errors.Join(err, write.Close())
	}

	return &Connection{Read: read, Write: write}, nil
}

// Close closes both pools.
func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

func connect(e endpoint, maxRetry, waitSeconds int) (*sqlx.DB, error) {
	var err error

	for attempt := 1; attempt <= max(maxRetry, 1); attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect("postgres", e.dsn())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().Str("name", e.name).Str("host", e.host).Str("database", e.database).Msg("Connected to database")

			return db, nil
		}

		log.Error().Err(err).Str("name", e.name).Str("host", e.host).Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to %s database %s: %w", e.name, e.database, err)
}
