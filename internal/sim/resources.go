package sim

import (
	"os"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

var (
	procOnce sync.Once
	proc     *process.Process
)

// resourceFields samples process resource usage for progress logging.
// Sampling failures degrade to runtime-only fields; resource visibility is
// never worth failing a simulation over.
func resourceFields() []zap.Field {
	procOnce.Do(func() {
		proc, _ = process.NewProcess(int32(os.Getpid()))
	})

	fields := []zap.Field{
		zap.Int("goroutines", runtime.NumGoroutine()),
	}

	if proc == nil {
		return fields
	}

	if memInfo, err := proc.MemoryInfo(); err == nil {
		fields = append(fields, zap.Uint64("rss_mb", memInfo.RSS/1024/1024))
	}
	if cpuPercent, err := proc.CPUPercent(); err == nil {
		fields = append(fields, zap.Float64("cpu_percent", cpuPercent))
	}

	return fields
}
