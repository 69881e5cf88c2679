package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/bouncing-cube/internal/anim"
	"github.com/iburimskiy/bouncing-cube/internal/config"
)

func testGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	return newGame(cfg, anim.NewContext(cfg.Width, cfg.Height, anim.NewRandom(1)), nil)
}

func TestStepAdvancesOneTick(t *testing.T) {
	g := testGame(t)
	for i := 1; i <= 3; i++ {
		if err := g.step(nil); err != nil {
			t.Fatalf("step: %v", err)
		}
		if g.frame.Tick != uint64(i) {
			t.Fatalf("frame tick = %d, want %d", g.frame.Tick, i)
		}
	}
}

func TestStepKeys(t *testing.T) {
	g := testGame(t)
	if err := g.step([]rune{'a', 'A', 'x'}); err != nil {
		t.Fatalf("step: %v", err)
	}
	want := config.InitialSize + 2*config.SizeStep
	if got := g.anim.State().Size; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("size = %v, want %v", got, want)
	}

	for _, quit := range []rune{'q', 'Q', 27} {
		g := testGame(t)
		if err := g.step([]rune{quit}); !errors.Is(err, ebiten.Termination) {
			t.Errorf("%q: err = %v, want ebiten.Termination", quit, err)
		}
		if g.anim.Ticks() != 0 {
			t.Errorf("%q: tick ran after quit", quit)
		}
	}
}

func TestLayoutResizeReachesNextTick(t *testing.T) {
	g := testGame(t)
	before := g.anim.Bounds()

	if w, h := g.Layout(400, 600); w != 400 || h != 600 {
		t.Fatalf("layout = %dx%d", w, h)
	}
	if g.anim.Bounds() != before {
		t.Fatal("bounds changed before the tick")
	}
	if err := g.step(nil); err != nil {
		t.Fatalf("step: %v", err)
	}
	if b := g.anim.Bounds(); b.Horizontal >= before.Horizontal {
		t.Errorf("horizontal bound %v not narrowed from %v", b.Horizontal, before.Horizontal)
	}
	if g.frame.Aspect != 400.0/600.0 {
		t.Errorf("frame aspect = %v", g.frame.Aspect)
	}
}

func TestLayoutIgnoresEmptyWindow(t *testing.T) {
	g := testGame(t)
	before := g.anim.Bounds()
	g.Layout(800, 0)
	if err := g.step(nil); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.anim.Bounds() != before {
		t.Errorf("bounds = %+v, want %+v", g.anim.Bounds(), before)
	}
}

func TestProjectDefaultFrame(t *testing.T) {
	c := anim.NewContext(config.WindowWidth, config.WindowHeight, anim.NewRandom(1))
	var r renderer
	// Stay clear of the walls, where the near corners may poke past the edge.
	for i := 0; i < 60; i++ {
		f := c.Step()
		tris := r.project(f, config.WindowWidth, config.WindowHeight)
		if len(tris) == 0 || len(tris) > 6 {
			t.Fatalf("tick %d: %d visible triangles, want 1..6", f.Tick, len(tris))
		}
		for j, tri := range tris {
			if j > 0 && tri.depth < tris[j-1].depth {
				t.Fatalf("tick %d: triangles not sorted far to near", f.Tick)
			}
			for _, v := range tri.v {
				if v.x < 0 || v.x > config.WindowWidth || v.y < 0 || v.y > config.WindowHeight {
					t.Fatalf("tick %d: vertex (%v,%v) off screen", f.Tick, v.x, v.y)
				}
			}
		}
	}
}

func TestProjectCentersCube(t *testing.T) {
	var r renderer
	f := anim.Frame{Model: mgl64.Scale3D(0.2, 0.2, 0.2), Aspect: 1}
	tris := r.project(f, 100, 100)
	// Only the front face looks at the camera.
	if len(tris) != 2 {
		t.Fatalf("visible triangles = %d, want 2", len(tris))
	}
	for _, tri := range tris {
		for _, v := range tri.v {
			if v.x < 40 || v.x > 60 || v.y < 40 || v.y > 60 {
				t.Errorf("vertex (%v,%v) not near the center", v.x, v.y)
			}
		}
	}
}

func TestShadeStaysInRange(t *testing.T) {
	normal := mgl64.Vec3{0, 0, 1}
	for _, pos := range []mgl64.Vec3{{0, 0, 0.5}, {1, 1, 0.5}, {-2, 0, 0}} {
		c := shade(anim.Color{R: 1, G: 1, B: 1}, pos, normal)
		for _, ch := range []float64{c.R, c.G, c.B} {
			if ch < config.AmbientStrength-1e-9 || ch > 1 {
				t.Errorf("pos %+v: channel %v outside [ambient, 1]", pos, ch)
			}
		}
	}
	if c := shade(anim.Color{}, mgl64.Vec3{0, 0, 0.5}, normal); c != (anim.Color{}) {
		t.Errorf("black corner lit to %+v", c)
	}
}

func TestChimeRingsThenFallsSilent(t *testing.T) {
	c := newChime(beep.SampleRate(8000))
	buf := make([][2]float64, 64)

	if n, ok := c.Stream(buf); n != len(buf) || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for _, s := range buf {
		if s != ([2]float64{}) {
			t.Fatal("idle chime is not silent")
		}
	}

	c.ring(anim.CollisionReport{XHit: true})
	c.Stream(buf)
	loud := false
	for _, s := range buf {
		if s[0] != 0 {
			loud = true
		}
		if s[0] > config.ChimeVolume || s[0] < -config.ChimeVolume {
			t.Fatalf("sample %v louder than volume", s[0])
		}
	}
	if !loud {
		t.Fatal("ringing chime produced silence")
	}

	rest := make([][2]float64, c.length)
	c.Stream(rest)
	c.Stream(buf)
	for _, s := range buf {
		if s != ([2]float64{}) {
			t.Fatal("chime did not stop")
		}
	}
}

func TestChimeIgnoresMiss(t *testing.T) {
	c := newChime(beep.SampleRate(8000))
	c.ring(anim.CollisionReport{})
	if c.remaining != 0 {
		t.Fatalf("remaining = %d after a miss", c.remaining)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	cfg := config.Default()
	cfg.Hz = 1000
	cfg.Ticks = 5
	c := anim.NewContext(cfg.Width, cfg.Height, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RunHeadless(ctx, c, cfg); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if c.Ticks() != 5 {
		t.Errorf("ticks = %d, want 5", c.Ticks())
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	cfg := config.Default()
	c := anim.NewContext(cfg.Width, cfg.Height, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RunHeadless(ctx, c, cfg); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(tickDuration(config.TPS * 75)); got != "01:15" {
		t.Errorf("formatDuration = %q, want 01:15", got)
	}
}
