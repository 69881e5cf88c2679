package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/bouncing-cube/internal/config"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// tickDuration converts a tick count to nominal running time.
func tickDuration(ticks uint64) time.Duration {
	return time.Duration(ticks) * time.Second / config.TPS
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
