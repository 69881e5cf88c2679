package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/iburimskiy/bouncing-cube/internal/anim"
	"github.com/iburimskiy/bouncing-cube/internal/config"
)

// RunHeadless drives c from a ticker without opening a window. It stops after
// cfg.Ticks ticks (0 = never) or when ctx is done.
func RunHeadless(ctx context.Context, c *anim.Context, cfg config.Config) error {
	if cfg.Hz <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var hits uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			before := c.State()
			f := c.Dispatch(anim.Tick{}).Frame
			if f.Collision.Any() {
				hits++
				logCollision(*f, before, c.State())
			}
			if cfg.Ticks > 0 && f.Tick >= cfg.Ticks {
				s := c.State()
				log.Printf("headless run done: %d ticks, %d collisions, size %.3f", f.Tick, hits, s.Size)
				return nil
			}
		}
	}
}
