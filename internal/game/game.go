package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/bouncing-cube/internal/anim"
	"github.com/iburimskiy/bouncing-cube/internal/config"
)

// Game adapts the animation context to ebiten's Update/Draw/Layout loop.
type Game struct {
	cfg   config.Config
	anim  *anim.Context
	chime *chime
	rend  renderer
	frame anim.Frame

	// window size reported by Layout, applied at the start of the next Update
	width, height int
	resized       bool

	chars []rune
}

// newGame wraps c. A nil chime keeps the game silent.
func newGame(cfg config.Config, c *anim.Context, ch *chime) *Game {
	return &Game{
		cfg:    cfg,
		anim:   c,
		chime:  ch,
		width:  cfg.Width,
		height: cfg.Height,
		frame:  anim.Frame{Model: c.State().Model(), Aspect: c.Aspect()},
	}
}

// Run opens the window and blocks until it is closed or the user quits.
func Run(cfg config.Config, c *anim.Context) error {
	var ch *chime
	if !cfg.Mute {
		var err error
		if ch, err = startChime(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(newGame(cfg, c, ch)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	log.Printf("window closed after %d ticks", c.Ticks())
	return nil
}

func (g *Game) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.chars = append(g.chars, 27)
	}
	return g.step(g.chars)
}

// step handles one tick's worth of input in delivery order: a pending resize,
// then keys, then the animation tick.
func (g *Game) step(keys []rune) error {
	if g.resized {
		g.resized = false
		if g.anim.Dispatch(anim.Resize{Width: g.width, Height: g.height}).Resized {
			b := g.anim.Bounds()
			log.Printf("resize %dx%d: bounds %.3f x %.3f", g.width, g.height, b.Horizontal, b.Vertical)
		}
	}

	for _, r := range keys {
		cmd, ok := anim.CommandForRune(r)
		if !ok {
			continue
		}
		if g.anim.Dispatch(anim.Key{Command: cmd}).Quit {
			log.Printf("quit requested at tick %d", g.anim.Ticks())
			return ebiten.Termination
		}
		log.Printf("%s: size %.3f", cmd, g.anim.State().Size)
	}

	before := g.anim.State()
	res := g.anim.Dispatch(anim.Tick{})
	g.frame = *res.Frame
	if g.frame.Collision.Any() {
		logCollision(g.frame, before, g.anim.State())
		if g.chime != nil {
			g.chime.ring(g.frame.Collision)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.rend.draw(screen, g.frame)

	if g.cfg.HUD {
		s := g.anim.State()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"tick %d  %s  size %.3f  growing %v",
			g.frame.Tick, formatDuration(tickDuration(g.frame.Tick)), s.Size, s.Growing,
		), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

func logCollision(f anim.Frame, before, after anim.State) {
	log.Printf("tick %d: hit x=%v y=%v size %.3f -> %.3f", f.Tick, f.Collision.XHit, f.Collision.YHit, before.Size, after.Size)
	if before.Growing != after.Growing {
		log.Printf("tick %d: oscillation turned, growing=%v", f.Tick, after.Growing)
	}
}
