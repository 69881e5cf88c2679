package game

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/bouncing-cube/internal/anim"
	"github.com/iburimskiy/bouncing-cube/internal/config"
)

// chime is an endless beep.Streamer that plays a short decaying tone each
// time the cube hits a wall and silence otherwise. The speaker pulls from it
// on its own goroutine, so ring and Stream share a mutex.
type chime struct {
	rate beep.SampleRate

	mu        sync.Mutex
	freq      float64
	phase     float64
	remaining int
	length    int
}

func newChime(rate beep.SampleRate) *chime {
	return &chime{
		rate:   rate,
		length: rate.N(time.Duration(config.ChimeDuration * float64(time.Second))),
	}
}

// startChime opens the audio device and keeps the chime playing on it.
func startChime() (*chime, error) {
	rate := beep.SampleRate(config.ChimeSampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	c := newChime(rate)
	speaker.Play(c)
	return c, nil
}

// ring restarts the tone, pitched by which walls were hit.
func (c *chime) ring(rep anim.CollisionReport) {
	if !rep.Any() {
		return
	}
	freq := config.ChimeFrequency
	switch {
	case rep.XHit && rep.YHit:
		freq *= 1.5
	case rep.YHit:
		freq *= 1.25
	}

	c.mu.Lock()
	c.freq = freq
	c.phase = 0
	c.remaining = c.length
	c.mu.Unlock()
}

func (c *chime) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	step := c.freq / float64(c.rate)
	for i := range samples {
		if c.remaining <= 0 {
			samples[i] = [2]float64{}
			continue
		}
		env := float64(c.remaining) / float64(c.length)
		v := math.Sin(2*math.Pi*c.phase) * env * config.ChimeVolume
		samples[i] = [2]float64{v, v}
		c.phase += step
		if c.phase >= 1 {
			c.phase--
		}
		c.remaining--
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }
