package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 14}, d)
	assert.Equal(t, "2025-03-14", d.String())
	assert.Equal(t, time.Friday, d.Weekday())

	_, err = Parse("14.03.2025")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestDate_AddDays(t *testing.T) {
	d := Date{Year: 2024, Month: time.February, Day: 28}
	assert.Equal(t, "2024-02-29", d.AddDays(1).String()) // leap year
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2024-02-27", d.AddDays(-1).String())

	endOfYear := Date{Year: 2024, Month: time.December, Day: 31}
	assert.Equal(t, "2025-01-01", endOfYear.AddDays(1).String())
}

func TestDate_DaysBetween(t *testing.T) {
	d1 := Date{Year: 2025, Month: time.March, Day: 14}
	d2 := Date{Year: 2025, Month: time.March, Day: 15}

	assert.Equal(t, 1, d1.DaysBetween(d2))
	assert.Equal(t, -1, d2.DaysBetween(d1))
	assert.Equal(t, 0, d1.DaysBetween(d1))

	// across the DST switch there is still exactly one calendar day
	dst1 := Date{Year: 2025, Month: time.March, Day: 29}
	dst2 := Date{Year: 2025, Month: time.March, Day: 30}
	assert.Equal(t, 1, dst1.DaysBetween(dst2))

	newYear := Date{Year: 2025, Month: time.January, Day: 1}
	assert.Equal(t, 365, newYear.DaysBetween(Date{Year: 2026, Month: time.January, Day: 1}))
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Date{Year: 2025, Month: time.March, Day: 14}.IsZero())
}

func TestDate_JSON(t *testing.T) {
	d := Date{Year: 2025, Month: time.March, Day: 14}

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, d, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"March 14th"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`14`), &decoded))
}
