package pkg

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_UsesLocationOfInstant(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2026-10-14 20:00 UTC is already the 15th in Tokyo
	instant := time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-14", DateOf(instant).String())
	assert.Equal(t, "2026-10-15", DateOf(instant.In(tokyo)).String())
	assert.True(t, DateOf(instant.In(tokyo)).Equal(NewDate(2026, time.October, 15)))
}

func TestDate_MonthBounds(t *testing.T) {
	d := NewDate(2024, time.February, 17)
	assert.Equal(t, "2024-02-01", d.FirstOfMonth().String())
	assert.Equal(t, "2024-02-29", d.LastOfMonth().String())

	d = NewDate(2026, time.December, 31)
	assert.Equal(t, "2026-12-01", d.FirstOfMonth().String())
	assert.Equal(t, "2026-12-31", d.LastOfMonth().String())
	assert.Equal(t, "2027-01-01", d.AddDays(1).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-30)))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, time.October, 1)
	dJson, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-01"`, string(dJson))

	var parsed Date
	require.NoError(t, json.Unmarshal(dJson, &parsed))
	assert.True(t, d.Equal(parsed))

	assert.Error(t, json.Unmarshal([]byte(`"01.10.2026"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`20261001`), &parsed))
}
