package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	// Single day counts as 1, both endpoints inclusive.
	assert.Equal(t, 1, DayCount(date(2024, 1, 1), date(2024, 1, 1)))
	assert.Equal(t, 5, DayCount(date(2024, 1, 1), date(2024, 1, 5)))
	assert.Equal(t, 31, DayCount(date(2024, 1, 1), date(2024, 1, 31)))

	// Across a month boundary and a leap day.
	assert.Equal(t, 3, DayCount(date(2024, 2, 28), date(2024, 3, 1)))
}

func TestOverlaps(t *testing.T) {
	// Identical ranges.
	assert.True(t, Overlaps(date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 1), date(2024, 1, 5)))

	// Partial overlap either side.
	assert.True(t, Overlaps(date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 5), date(2024, 1, 10)))
	assert.True(t, Overlaps(date(2024, 1, 5), date(2024, 1, 10), date(2024, 1, 1), date(2024, 1, 5)))

	// One range contained in the other.
	assert.True(t, Overlaps(date(2024, 1, 1), date(2024, 1, 10), date(2024, 1, 3), date(2024, 1, 4)))

	// Adjacent ranges do not overlap: one ends the day before the other starts.
	assert.False(t, Overlaps(date(2024, 1, 1), date(2024, 1, 5), date(2024, 1, 6), date(2024, 1, 10)))
	assert.False(t, Overlaps(date(2024, 1, 6), date(2024, 1, 10), date(2024, 1, 1), date(2024, 1, 5)))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}
