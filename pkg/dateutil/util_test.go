package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func Test_BeginningOfWeek(t *testing.T) {
	// 2023-05-17 is a Wednesday, its ISO week starts on Monday 2023-05-15.
	monday := time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, monday, BeginningOfWeek(date(2023, time.May, 17)))
	require.Equal(t, monday, BeginningOfWeek(monday))

	// Sunday still belongs to the week starting the previous Monday.
	require.Equal(t, monday, BeginningOfWeek(date(2023, time.May, 21)))
}

func Test_SameISOWeek(t *testing.T) {
	require.True(t, SameISOWeek(date(2023, time.May, 15), date(2023, time.May, 21)))
	require.False(t, SameISOWeek(date(2023, time.May, 21), date(2023, time.May, 22)))

	// Jan 1st 2023 is a Sunday and belongs to ISO week 52 of 2022.
	require.True(t, SameISOWeek(date(2022, time.December, 26), date(2023, time.January, 1)))
}

func Test_IsPreviousISOWeek(t *testing.T) {
	require.True(t, IsPreviousISOWeek(date(2023, time.May, 8), date(2023, time.May, 15)))
	require.True(t, IsPreviousISOWeek(date(2023, time.May, 14), date(2023, time.May, 15)))
	require.False(t, IsPreviousISOWeek(date(2023, time.May, 1), date(2023, time.May, 15)))
	require.False(t, IsPreviousISOWeek(date(2023, time.May, 15), date(2023, time.May, 15)))

	// Year boundary: the week of 2022-12-26 precedes the week of 2023-01-02.
	require.True(t, IsPreviousISOWeek(date(2023, time.January, 1), date(2023, time.January, 2)))
}

func Test_MonthPeriod(t *testing.T) {
	require.Equal(t, "5/2023", MonthPeriod(date(2023, time.May, 17)))
	require.Equal(t, "12/2022", MonthPeriod(date(2022, time.December, 31)))
}
