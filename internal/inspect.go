package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/shirou/gopsutil/process"

	"social-sync/repositories"
)

// StatsProvider supplies live component stats (connection flags, counts)
// for the inspector page.
type StatsProvider func() map[string]any

// StartInspector serves a JSON diagnostics endpoint: the cached profiles,
// caller-provided stats, and this process's own resource usage.
func StartInspector(cache repositories.IProfileCache, port int, stats StatsProvider) {
	mux := http.NewServeMux()

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		page := map[string]any{}

		profiles, err := cache.All()
		if err != nil {
			page["profiles_error"] = err.Error()
		} else {
			page["profiles"] = profiles
		}

		if stats != nil {
			page["stats"] = stats()
		}
		page["self"] = selfStats()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("localhost:%d", port), mux)
	}()
}

// selfStats collects RAM, CPU and OS status for this process.
func selfStats() map[string]any {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	out := map[string]any{"pid": os.Getpid()}
	if memInfo, err := p.MemoryInfo(); err == nil {
		out["ram_bytes"] = memInfo.RSS
	}
	if cpu, err := p.CPUPercent(); err == nil {
		out["cpu_percent"] = cpu
	}
	if status, err := p.Status(); err == nil {
		out["status"] = status
	}
	return out
}
