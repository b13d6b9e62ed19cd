package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	mem := NewMemoryAPI()
	scoped := NewScopedAPI("fetch", mem)

	scoped.ReportBroken("fetcher.get", "boom")
	scoped.ReportWarning("fetcher.retry")
	scoped.ReportCount("fetcher.attempts", 3)
	scoped.ReportDebug("sent request")

	require.True(t, mem.Has(LevelBroken, "fetch: fetcher.get"))
	require.True(t, mem.Has(LevelWarning, "fetch: fetcher.retry"))
	require.True(t, mem.Has(LevelCount, "fetch: fetcher.attempts"))
	require.False(t, mem.Has(LevelBroken, "fetcher.retry"))

	reports := mem.Reports(LevelWarning)
	require.Len(t, reports, 2)
	require.Equal(t, []any{"boom"}, reports[0].Params)

	counts := mem.Reports(LevelCount)
	require.Len(t, counts, 3)
	require.Equal(t, LevelCount, counts[2].Level)
	require.EqualValues(t, 3, counts[2].Count)
}
