package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("midnight", func(t *testing.T) {
		ts, err := NewTimeStringFromString("00:00")
		require.NoError(t, err)
		assert.Equal(t, "00:00", ts.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		for _, s := range []string{"9:30am", "25:00", "12:60", "noon", ""} {
			_, err := NewTimeStringFromString(s)
			assert.Error(t, err, "input %q should be rejected", s)
		}
	})
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 15, 14, 5, 59, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("08:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 510, minutes)
}

func TestFromMinutes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := FromMinutes(870)
		require.NoError(t, err)
		assert.Equal(t, "14:30", ts.String())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := FromMinutes(1440)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)

		_, err = FromMinutes(-1)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestAddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		ts, err := TimeString("16:30").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, "17:00", ts.String())
	})

	t.Run("crossing midnight is rejected", func(t *testing.T) {
		_, err := TimeString("23:45").AddMinutes(30)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestComparisons(t *testing.T) {
	early := TimeString("08:00")
	late := TimeString("17:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.True(t, early.Equal(TimeString("08:00")))
	assert.False(t, early.Equal(late))
}

func TestScan(t *testing.T) {
	t.Run("postgres TIME with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("08:30:00"))
		assert.Equal(t, "08:30", ts.String())
	})

	t.Run("time.Time value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(0, 1, 1, 9, 15, 0, 0, time.UTC)))
		assert.Equal(t, "09:15", ts.String())
	})

	t.Run("nil resets to zero", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}
