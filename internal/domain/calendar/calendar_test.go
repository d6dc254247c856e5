package calendar

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareTime(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"09:05", "09:30", -1},
		{"14:00", "09:00", 1},
		{"08:15", "08:15", 0},
		{"08:15:59", "08:15:00", 0},
		{"23:59", "00:00", 1},
		{"9:05", "09:05", 0},
	}

	for _, tc := range cases {
		t.Run(tc.a+"_vs_"+tc.b, func(t *testing.T) {
			got, err := CompareTime(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompareTime_Malformed(t *testing.T) {
	for _, s := range []string{"", "12", "ab:cd", "24:00", "12:60", "12:5x", "123:00", "1:2:3:4"} {
		_, err := CompareTime(s, "10:00")
		assert.ErrorIs(t, err, ErrMalformedTime, "input %q", s)
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "01:00", FormatTime(time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, "23:59", FormatTime(time.Date(2024, 5, 1, 23, 59, 30, 0, time.UTC)))
}

func TestFormatDate_MonthIsOneBased(t *testing.T) {
	assert.Equal(t, "2024-01-05", FormatDate(time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12-31", FormatDate(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, 45, got.Minute())
	assert.Equal(t, 1970, got.Year())

	_, err = ParseTime("7.45")
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestPolicy_DateRoundTrip(t *testing.T) {
	p := DefaultPolicy()

	d, err := p.ParseDate("03.11.2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.November, d.Month())
	assert.Equal(t, 3, d.Day())
	assert.Equal(t, "03.11.2025", p.FormatDate(d))

	_, err = p.ParseDate("2025-11-03")
	assert.ErrorIs(t, err, ErrMalformedDate)
	_, err = p.ParseDate("31.02.2025")
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestPolicy_TimeRoundTrip(t *testing.T) {
	p := DefaultPolicy()

	tm, err := p.ParseTime("18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30", p.FormatTime(tm))

	_, err = p.ParseTime("6 PM")
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestPolicy_FormatTimeKeepsClockOfParseTime(t *testing.T) {
	p := DefaultPolicy()

	utc, err := ParseTime("09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", p.FormatTime(utc))

	local, err := p.ParseTime("09:00")
	require.NoError(t, err)
	assert.Equal(t, p.FormatTime(utc), p.FormatTime(local))
}

func TestPolicy_ParseISODate(t *testing.T) {
	p := DefaultPolicy()

	d, err := p.ParseISODate("2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, "09.06.2025", p.FormatDate(d))

	_, err = p.ParseISODate("09.06.2025")
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("Wed")
	require.NoError(t, err)
	assert.Equal(t, Wed, d)

	_, err = ParseDay("wednesday")
	assert.ErrorIs(t, err, ErrInvalidDayToken)

	d, err = ParseLegacyDay("Wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wed, d)
}

func TestFromWeekday(t *testing.T) {
	assert.Equal(t, Mon, FromWeekday(time.Monday))
	assert.Equal(t, Sun, FromWeekday(time.Sunday))
	assert.Equal(t, Sat, FromWeekday(time.Saturday))
}

func TestSelectionFromTokens(t *testing.T) {
	s, err := SelectionFromTokens([]string{"Mon", "Fri"})
	require.NoError(t, err)

	for _, d := range Days {
		assert.Equal(t, d == Mon || d == Fri, s.Has(d), "day %s", d)
	}

	_, err = SelectionFromTokens([]string{"Mon", "Xyz"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDayToken))
}

func TestDaySelection_Days_CanonicalOrder(t *testing.T) {
	var s DaySelection
	s.Set(Sun, true)
	s.Set(Wed, true)
	s.Set(Mon, true)

	days := s.Days()
	assert.Len(t, days, 3)
	assert.Equal(t, []Day{Mon, Wed, Sun}, days)

	assert.Empty(t, DaySelection{}.Days())
}

func TestDaySelection_AllSubsets(t *testing.T) {
	// las 128 combinaciones posibles
	for mask := 0; mask < 1<<7; mask++ {
		var s DaySelection
		k := 0
		for i, d := range Days {
			if mask&(1<<i) != 0 {
				s.Set(d, true)
				k++
			}
		}

		days := s.Days()
		require.Len(t, days, k)
		for i := 1; i < len(days); i++ {
			require.Less(t, days[i-1], days[i])
		}
		require.Equal(t, s, SelectionFromDays(days))
	}
}

func TestDaySelection_JSON(t *testing.T) {
	s := SelectionFromDays([]Day{Tue, Sat})

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Mon":false,"Tue":true,"Wed":false,"Thu":false,"Fri":false,"Sat":true,"Sun":false}`, string(b))

	var back DaySelection
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)

	err = json.Unmarshal([]byte(`{"Mon":true,"Funday":true}`), &back)
	assert.ErrorIs(t, err, ErrInvalidDayToken)
}

func TestDay_TextMarshaling(t *testing.T) {
	b, err := json.Marshal([]Day{Mon, Sun})
	require.NoError(t, err)
	assert.Equal(t, `["Mon","Sun"]`, string(b))

	var days []Day
	require.NoError(t, json.Unmarshal(b, &days))
	assert.Equal(t, []Day{Mon, Sun}, days)

	assert.Error(t, json.Unmarshal([]byte(`["Mon","Xyz"]`), &days))
}
