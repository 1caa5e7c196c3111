package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestConvert(t *testing.T) {
	c := NewConverter()

	t.Run("UTC to IST", func(t *testing.T) {
		got, err := c.Convert(types.TimeString("09:00"), "UTC", "IST")
		require.NoError(t, err)
		assert.Equal(t, "14:30", got.String())
	})

	t.Run("UTC to EST", func(t *testing.T) {
		got, err := c.Convert(types.TimeString("14:00"), "UTC", "EST")
		require.NoError(t, err)
		assert.Equal(t, "09:00", got.String())
	})

	t.Run("same zone is identity", func(t *testing.T) {
		got, err := c.Convert(types.TimeString("12:15"), "PST", "PST")
		require.NoError(t, err)
		assert.Equal(t, "12:15", got.String())
	})

	t.Run("crossing midnight stays within the day", func(t *testing.T) {
		// 23:45 UTC is 18:45 EST the same calendar date: the converter
		// never rolls the date over.
		got, err := c.Convert(types.TimeString("23:45"), "UTC", "EST")
		require.NoError(t, err)
		assert.Equal(t, "18:45", got.String())

		// And forward past midnight wraps back into [00:00, 24:00).
		got, err = c.Convert(types.TimeString("23:00"), "UTC", "IST")
		require.NoError(t, err)
		assert.Equal(t, "04:30", got.String())
	})

	t.Run("round trip", func(t *testing.T) {
		original := types.TimeString("10:30")
		converted, err := c.Convert(original, "EST", "IST")
		require.NoError(t, err)
		back, err := c.Convert(converted, "IST", "EST")
		require.NoError(t, err)
		assert.Equal(t, original, back)
	})

	t.Run("unknown source zone", func(t *testing.T) {
		_, err := c.Convert(types.TimeString("09:00"), "CET", "UTC")
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	})

	t.Run("unknown target zone", func(t *testing.T) {
		_, err := c.Convert(types.TimeString("09:00"), "UTC", "Mars/Olympus")
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	})

	t.Run("invalid time", func(t *testing.T) {
		_, err := c.Convert(types.TimeString("25:99"), "UTC", "EST")
		assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
	})
}

func TestIsKnown(t *testing.T) {
	c := NewConverter()

	for _, zone := range []string{"UTC", "EST", "PST", "IST"} {
		assert.True(t, c.IsKnown(zone), "zone %s should be known", zone)
	}
	assert.False(t, c.IsKnown("CET"))
	assert.False(t, c.IsKnown(""))
}

func TestZones(t *testing.T) {
	c := NewConverter()

	zones := c.Zones()
	require.Len(t, zones, 4)

	codes := make([]string, 0, len(zones))
	for _, z := range zones {
		codes = append(codes, z.Code)
	}
	assert.Equal(t, []string{"EST", "IST", "PST", "UTC"}, codes)

	assert.Equal(t, "IST (GMT+5:30)", zones[1].Label)
	assert.Equal(t, "UTC (GMT+0)", zones[3].Label)
}
