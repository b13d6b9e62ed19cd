package telemetry

import (
	"context"
	"matchdata-backend/internal/components/telemetry"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

const report_perf_stats = "perf_stats"

var meter = otel.Meter("go.perf_stats")
var cpuGauge, _ = meter.Float64Gauge("cpu_usage")
var memoryGauge, _ = meter.Int64Gauge("allocated_mb")
var liveObjectsGauge, _ = meter.Int64Gauge("live_objects")
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

// PerfSample is one reading of the process resource usage.
type PerfSample struct {
	CPUPercent  float64
	AllocatedMB int64
	LiveObjects int64
	Goroutines  int64
}

// SamplePerfStats reads the current resource usage, cpu usage is measured over `window`.
func SamplePerfStats(ctx context.Context, window time.Duration) (PerfSample, error) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	sample := PerfSample{
		AllocatedMB: int64(memStats.Alloc / 1_000_000),
		LiveObjects: int64(memStats.Mallocs) - int64(memStats.Frees),
		Goroutines:  int64(runtime.NumGoroutine()),
	}
	usage, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return sample, err
	}
	if len(usage) > 0 {
		sample.CPUPercent = usage[0]
	}
	return sample, nil
}

// InstrumentPerfStats records process gauges every `interval` until ctx is done.
func InstrumentPerfStats(ctx context.Context, interval time.Duration, tel telemetry.API) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sample, err := SamplePerfStats(ctx, time.Second)
				if err != nil {
					tel.ReportWarning(report_perf_stats, "failed to read cpu usage", err)
				} else {
					cpuGauge.Record(ctx, sample.CPUPercent)
				}
				memoryGauge.Record(ctx, sample.AllocatedMB)
				liveObjectsGauge.Record(ctx, sample.LiveObjects)
				goroutineGauge.Record(ctx, sample.Goroutines)
				tel.ReportCount(report_perf_stats+".goroutines", sample.Goroutines)
			case <-ctx.Done():
				return
			}
		}
	}()
}
