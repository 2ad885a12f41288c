package game

import (
	"log"
	"time"
)

// FrameMonitor watches the measured tick rate and logs sustained drops.
// Warnings are rate limited and suppressed while the game warms up.
type FrameMonitor struct {
	threshold   float64
	startTime   time.Time
	warmup      time.Duration
	cooldown    time.Duration
	lastWarning time.Time

	// Drops counts warnings emitted
	Drops int
}

// NewFrameMonitor creates a monitor that warns when TPS falls below threshold
func NewFrameMonitor(threshold float64, now time.Time) *FrameMonitor {
	return &FrameMonitor{
		threshold: threshold,
		startTime: now,
		warmup:    3 * time.Second,  // Ignore drops during startup
		cooldown:  10 * time.Second, // Don't warn more than once every 10 seconds
	}
}

// Record checks one TPS sample and reports whether a drop was logged
func (m *FrameMonitor) Record(tps float64, now time.Time) bool {
	if tps >= m.threshold {
		return false
	}
	if now.Sub(m.startTime) < m.warmup {
		return false
	}
	if !m.lastWarning.IsZero() && now.Sub(m.lastWarning) < m.cooldown {
		return false
	}

	m.lastWarning = now
	m.Drops++
	log.Printf("Warning: tick rate dropped to %.0f TPS (threshold %.0f)", tps, m.threshold)
	return true
}
