package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// ChannelID names one of the player's logical channels.
type ChannelID int

const (
	ExplosionChannel ChannelID = iota
	LiftoffChannel
	numChannels
)

// channel plays one streamer at a time. Playing on a busy channel cuts off
// what it was playing. It never drains, so a mixer keeps it forever and it
// streams silence while idle.
type channel struct {
	mu      sync.Mutex
	current beep.Streamer
}

func (c *channel) play(s beep.Streamer) {
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
}

func (c *channel) busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

func (c *channel) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filled := 0
	if c.current != nil {
		n, ok := c.current.Stream(samples)
		filled = n
		if !ok {
			c.current = nil
		}
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (c *channel) Err() error { return nil }
