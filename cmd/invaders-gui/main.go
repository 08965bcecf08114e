package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/logging"
	"github.com/lixenwraith/invaders/session"
	"github.com/lixenwraith/invaders/vmath"
)

var (
	configPath = flag.String("config", "", "YAML config file overlaying the defaults")
	debugFlag  = flag.Bool("debug", false, "Write debug logs and show FPS/TPS")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

var roleColors = map[component.Role]color.RGBA{
	component.RoleWall:             {0x70, 0x70, 0x70, 0xff},
	component.RoleEnemy:            {0x40, 0xd0, 0x40, 0xff},
	component.RolePlayer:           {0x40, 0xc0, 0xf0, 0xff},
	component.RolePlayerProjectile: {0xf0, 0xe0, 0x40, 0xff},
	component.RoleEnemyProjectile:  {0xf0, 0x50, 0x40, 0xff},
}

// ebiten keys per action; the terminal key names in config do not apply here
var actionKeys = map[input.Action][]ebiten.Key{
	input.ActionFire:      {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	input.ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// game adapts a session to ebiten; ebiten's fixed TPS drives one tick per Update
type game struct {
	sess   *session.Session
	logger *zap.Logger
	world  vmath.Rect
	paused bool
	debug  bool
	over   bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	applyKeys(g.sess.Input(), ebiten.IsKeyPressed, g.paused)

	if g.paused {
		return nil
	}
	if !g.sess.Tick() && !g.over {
		g.over = true
		g.logger.Info("game over", zap.Int64("score", g.sess.Score()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	snap := g.sess.Snapshot()

	for _, e := range snap.Entities {
		clr, ok := roleColors[e.Role]
		if !ok {
			continue
		}
		x, y, w, h := screenRect(e, g.world)
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}

	hud := fmt.Sprintf("SCORE %d  LIVES %d", snap.Score, snap.Lives)
	if g.debug {
		hud += fmt.Sprintf("  TICK %d  TPS %.0f  FPS %.0f", snap.Tick, ebiten.ActualTPS(), ebiten.ActualFPS())
	}
	ebitenutil.DebugPrintAt(screen, hud, 16, 16)

	switch {
	case g.over:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME OVER  score %d  (q to quit)", snap.Score),
			int(g.world.Size.X/2)-100, int(g.world.Size.Y/2))
	case g.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(g.world.Size.X/2)-20, int(g.world.Size.Y/2))
	}
}

// applyKeys sets every action from its keys; a paused game holds nothing
func applyKeys(in *input.State[input.Action], pressed func(ebiten.Key) bool, paused bool) {
	for action, keys := range actionKeys {
		down := false
		for _, k := range keys {
			if pressed(k) {
				down = true
				break
			}
		}
		in.Set(action, down && !paused)
	}
}

// screenRect projects an entity into window pixels: world top-left is the origin
// and y grows downward; sizes are at least one pixel so thin entities stay visible
func screenRect(e session.EntityView, world vmath.Rect) (x, y, w, h float32) {
	lo, hi := world.Min(), world.Max()
	x = float32(e.X - e.Width/2 - lo.X)
	y = float32(hi.Y - (e.Y + e.Height/2))
	w = float32(math.Max(e.Width, 1))
	h = float32(math.Max(e.Height, 1))
	return x, y, w, h
}

func (g *game) Layout(_, _ int) (int, int) {
	return int(math.Ceil(g.world.Size.X)), int(math.Ceil(g.world.Size.Y))
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	code := run(cfg, logger)
	closeLog()
	os.Exit(code)
}

func run(cfg *config.Config, logger *zap.Logger) int {
	sess, err := session.New(cfg, session.WithLogger(logger))
	if err != nil {
		logger.Error("session setup failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "invaders-gui: %v\n", err)
		return 1
	}

	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio)
		if err := player.Start(); err != nil {
			logger.Warn("continuing without audio", zap.Error(err))
		} else {
			defer player.Stop()
			sess.RegisterHandler(player)
		}
	}

	g := &game{
		sess:   sess,
		logger: logger,
		world:  sess.Layout().OuterRect(),
		debug:  cfg.Log.Debug,
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "invaders-gui: %v\n", err)
		return 1
	}
	return 0
}
