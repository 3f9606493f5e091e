package bench

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jaypipes/ghw"
)

// DescribeHost returns a one-line description of the machine running the
// benchmark, such as "AMD Ryzen 7 5800X, 8 cores / 16 threads, 31.3 GiB, linux/amd64".
// Hardware discovery is best effort: when it fails, the description falls
// back to the CPU count reported by the Go runtime and err says why.
func DescribeHost() (desc string, err error) {
	platform := runtime.GOOS + "/" + runtime.GOARCH

	cpu, err := ghw.CPU()
	if err != nil {
		return fmt.Sprintf("%d CPUs, %s", runtime.NumCPU(), platform), fmt.Errorf("detect CPU: %w", err)
	}

	var parts []string
	if len(cpu.Processors) > 0 && cpu.Processors[0].Model != "" {
		parts = append(parts, strings.TrimSpace(cpu.Processors[0].Model))
	}
	parts = append(parts, fmt.Sprintf("%d cores / %d threads", cpu.TotalCores, cpu.TotalThreads))

	if mem, merr := ghw.Memory(); merr == nil && mem.TotalPhysicalBytes > 0 {
		parts = append(parts, fmt.Sprintf("%.1f GiB", float64(mem.TotalPhysicalBytes)/(1<<30)))
	}
	return strings.Join(append(parts, platform), ", "), nil
}
