package game

import (
	"sync"
	"time"
)

// ThinkClock accumulates how long a side has been on the move. Sensor
// sessions have no time control, so it counts up instead of down.
type ThinkClock struct {
	mu          sync.Mutex
	elapsed     time.Duration
	lastStarted time.Time
	running     bool
}

func NewThinkClock() *ThinkClock {
	return &ThinkClock{}
}

func (c *ThinkClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		c.lastStarted = time.Now()
		c.running = true
	}
}

func (c *ThinkClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.elapsed += time.Since(c.lastStarted)
		c.running = false
	}
}

func (c *ThinkClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return c.elapsed + time.Since(c.lastStarted)
	}
	return c.elapsed
}
