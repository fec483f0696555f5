package civil_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-payops/internal/shared/civil"
)

func TestDateFor_NormalizesOverflow(t *testing.T) {
	// Feb 30 in a leap year normalizes to Mar 1.
	assert.Equal(t, civil.DateFor(2024, time.March, 1), civil.DateFor(2024, time.February, 30))

	// Day 0 is the last day of the previous month.
	assert.Equal(t, civil.DateFor(2024, time.February, 29), civil.DateFor(2024, time.March, 0))

	// Month 13 rolls into the next year.
	assert.Equal(t, civil.DateFor(2025, time.January, 5), civil.DateFor(2024, time.Month(13), 5))
}

func TestParse(t *testing.T) {
	d, err := civil.Parse("2024-06-12")
	assert.NoError(t, err)
	assert.Equal(t, civil.DateFor(2024, time.June, 12), d)

	_, err = civil.Parse("12/06/2024")
	assert.Error(t, err)
}

func TestDateOf_UsesInstantLocation(t *testing.T) {
	manila := time.FixedZone("PHT", 8*3600)

	// 23:00 UTC on the 1st is already the 2nd in Manila.
	instant := time.Date(2024, time.May, 1, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, civil.DateFor(2024, time.May, 2), civil.DateOf(instant.In(manila)))
	assert.Equal(t, civil.DateFor(2024, time.May, 1), civil.DateOf(instant))
}

func TestOrdering(t *testing.T) {
	a := civil.DateFor(2024, time.January, 15)
	b := civil.DateFor(2024, time.February, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(civil.DateFor(2024, time.January, 15)))
}

func TestArithmetic(t *testing.T) {
	d := civil.DateFor(2024, time.January, 31)

	assert.Equal(t, civil.DateFor(2024, time.February, 1), d.AddDays(1))
	assert.Equal(t, civil.DateFor(2024, time.March, 2), d.AddMonths(1))
	assert.Equal(t, 1, d.DaysUntil(civil.DateFor(2024, time.February, 1)))
	assert.Equal(t, time.Wednesday, d.Weekday())
}

func TestJSONRoundTrip(t *testing.T) {
	d := civil.DateFor(2024, time.December, 25)

	raw, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-12-25"`, string(raw))

	var decoded civil.Date
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, d.Equal(decoded))
}
