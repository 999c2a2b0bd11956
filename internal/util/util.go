// Package util provides small helper functions shared across the engine
// that are not available in the standard library.
package util

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer formats numbers with thousands separators, used when reporting
// search and transposition table statistics.
var Printer = message.NewPrinter(language.English)

// Abs is a non-branching absolute value function for int.
func Abs(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// Abs32 is a non-branching absolute value function for int32.
func Abs32(n int32) int32 {
	y := n >> 31
	return (n ^ y) - y
}

// Min returns the smaller of the given integers.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of the given integers.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TimeTrack is a convenient way to measure timings of a function.
// Usage: defer util.TimeTrack(time.Now(), "some text")
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	_, _ = Printer.Printf("%s took %d ns\n", name, elapsed.Nanoseconds())
}

// Nps calculates nodes per second, guarding against a zero duration.
func Nps(nodes uint64, duration time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (duration.Nanoseconds() + 1))
}

// MemStat returns a string with the application's memory usage and GC activity.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return Printer.Sprintf("Alloc: %d TotalAlloc: %d HeapAlloc: %d HeapObjects: %d NumGC: %d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats forces a garbage collection, reporting before/after memory stats.
func GcWithStats() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mem stats: %s ", MemStat()))
	start := time.Now()
	runtime.GC()
	sb.WriteString(fmt.Sprintf("GC took: %d ms ", time.Since(start).Milliseconds()))
	sb.WriteString(fmt.Sprintf("Mem stats: %s", MemStat()))
	return sb.String()
}

// IsDigit checks if the byte is an ASCII digit 0-9.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
