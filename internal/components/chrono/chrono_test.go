package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToday(t *testing.T) {
	loc := time.FixedZone("CST", 8*60*60)

	cases := []struct {
		now      time.Time
		expected time.Time
	}{
		{
			now:      time.Date(2024, time.August, 26, 23, 59, 0, 0, loc),
			expected: time.Date(2024, time.August, 26, 0, 0, 0, 0, loc),
		},
		{
			now:      time.Date(2024, time.January, 1, 0, 0, 0, 0, loc),
			expected: time.Date(2024, time.January, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, Today(FixedImpl{At: test.now}))
	}
}
