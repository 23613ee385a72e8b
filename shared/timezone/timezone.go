// Package timezone pins wall-clock handling to the restaurant's zone, configured by
// APP_TIMEZONE with an IANA name. Anything unset or unknown falls back to UTC.
package timezone

import (
	"sync"
	"time"

	"tavola/config"

	"github.com/rs/zerolog/log"
)

var (
	location *time.Location
	once     sync.Once
)

func load() {
	name := config.Get().App.Timezone
	if name == "" {
		location = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, falling back to UTC")

		location = time.UTC

		return
	}

	location = loc

	log.Info().Str("timezone", loc.String()).Msg("Application timezone loaded")
}

// Location returns the application zone, loading it on first use.
func Location() *time.Location {
	once.Do(load)

	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// Parse reads value as a wall-clock time in the application zone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location()) //nolint:wrapcheck
}
