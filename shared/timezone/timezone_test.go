package timezone_test

import (
	"testing"
	"time"

	"tavola/shared/constant"
	"tavola/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.Equal(t, timezone.Location(), now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestParseAndFormat(t *testing.T) {
	day, err := timezone.Parse(constant.DayFormat, "2025-03-15")
	require.NoError(t, err)

	assert.Equal(t, timezone.Location(), day.Location())
	assert.Equal(t, "2025-03-15", timezone.Format(day, constant.DayFormat))

	_, err = timezone.Parse(constant.DayFormat, "15/03/2025")
	assert.Error(t, err)
}
