// Package sysinfo reports coarse disk and memory usage for the report
// header. It is presentation data only; no scanner depends on it.
package sysinfo

import (
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is a snapshot of disk and memory usage
type Stats struct {
	DiskTotal   uint64
	DiskUsed    uint64
	DiskFree    uint64
	MemoryTotal uint64
	MemoryUsed  uint64
}

// DiskPercentage returns disk usage as a percentage.
func (s *Stats) DiskPercentage() float64 {
	if s.DiskTotal == 0 {
		return 0
	}
	return float64(s.DiskUsed) / float64(s.DiskTotal) * 100
}

// MemoryPercentage returns memory usage as a percentage.
func (s *Stats) MemoryPercentage() float64 {
	if s.MemoryTotal == 0 {
		return 0
	}
	return float64(s.MemoryUsed) / float64(s.MemoryTotal) * 100
}

// Collect gathers usage for the filesystem holding path.
func Collect(path string) (*Stats, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		DiskTotal: usage.Total,
		DiskUsed:  usage.Used,
		DiskFree:  usage.Free,
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryTotal = vm.Total
		stats.MemoryUsed = vm.Used
	}

	return stats, nil
}
