package debug

// Runtime stats logger, started only when config.Debug is true. Long
// sessions decode a full-resolution screenshot per jump, so heap and
// goroutine counts are logged to spot leaks in the capture path.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartRuntimeLogger logs goroutine and heap figures every interval until
// ctx is done.
func StartRuntimeLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Debug("runtime",
				slog.Uint64("goroutines", samples[0].Value.Uint64()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
