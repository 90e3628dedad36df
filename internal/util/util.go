// Package util holds small formatting helpers for CLI and log output.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Checksum returns the hex SHA256 digest of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// FormatBytes renders a size with binary units, e.g. "1.5 KB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	const prefixes = "KMGTPE"
	div, exp := int64(unit), 0
	for rest := n / unit; rest >= unit && exp < len(prefixes)-1; rest /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), prefixes[exp])
}

// FormatDuration rounds to whole seconds and renders "45s", "2m30s" or "1h30m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
