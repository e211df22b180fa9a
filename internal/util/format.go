// Package util provides small formatting helpers shared by the renderer and
// the command line.
package util

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize converts a byte count into a human-readable string using the
// largest unit (B, KB, MB, GB, TB) that keeps the value at or above one, with
// one decimal place. For example:
//
//   - 0 bytes -> "0.0 B"
//   - 1024 bytes -> "1.0 KB"
//   - 1234567 bytes -> "1.2 MB"
//
// Sizes beyond the terabyte range stay in TB.
func FormatSize(bytes int64) string {
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}

// Plural returns "<n> <singular>" or "<n> <plural>" depending on n.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
