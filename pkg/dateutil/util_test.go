package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSettlementCutoff(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-10-19 02:00 UTC is still 2026-10-18 in New York.
	now := time.Date(2026, 10, 19, 2, 0, 0, 0, time.UTC)

	require.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), SettlementCutoff(now, ny))
	require.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), SettlementCutoff(now, time.UTC))
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2026-10-17")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), d)
	require.Equal(t, d, Date(time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC), time.UTC))

	_, err = ParseDate("17/10/2026")
	require.Error(t, err)
}

func TestNextDay(t *testing.T) {
	now := time.Date(2026, 10, 19, 13, 45, 0, 0, time.UTC)
	require.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), NextDay(now))
}
