package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/feed"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/logging"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/session"
	"github.com/lixenwraith/invaders/status"
)

var (
	configPath = flag.String("config", "", "YAML config file overlaying the defaults")
	debugFlag  = flag.Bool("debug", false, "Write debug logs and show the metrics line")
	feedFlag   = flag.Bool("feed", false, "Serve the spectator websocket feed")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic Recovery: terminal is restored by the registered crash cleanup
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	logger, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return 1
	}
	defer closeLog()

	if err := play(cfg, logger); err != nil {
		logger.Error("invaders exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *feedFlag {
		cfg.Feed.Enabled = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

func play(cfg *config.Config, logger *zap.Logger) error {
	keymap, err := cfg.KeyMap()
	if err != nil {
		return err
	}

	sess, err := session.New(cfg, session.WithLogger(logger))
	if err != nil {
		return err
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

	var hub *feed.Hub
	if cfg.Feed.Enabled {
		hub = feed.NewHub(cfg.Feed, sess.ID().String(), logger)
		sess.RegisterHandler(hub)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen, sess.Layout().OuterRect())
	hold := input.NewHoldEmulator(sess.Input(), cfg.Input.HoldInitial, cfg.Input.HoldRepeat)

	scheduler, updateDone := engine.NewClockScheduler(engine.NewPausableClock(), cfg.TickInterval(), func() {
		hold.Expire(time.Now())
		sess.Tick()
	})

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// Input polling uses a raw goroutine: PollEvent only returns after Fini
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	if hub != nil {
		g.Go(core.Guard(func() error { return hub.ListenAndServe(ctx) }))
		g.Go(core.Guard(func() error {
			return hub.RunSnapshots(ctx, func() (uint64, any) {
				snap := sess.Snapshot()
				return snap.Tick, snap
			})
		}))
	}

	scheduler.Start()
	defer scheduler.Stop()

	ui := &frontend{
		sess:      sess,
		screen:    screen,
		renderer:  renderer,
		keymap:    keymap,
		hold:      hold,
		scheduler: scheduler,
		logger:    logger,
		debug:     cfg.Log.Debug,
	}
	g.Go(core.Guard(func() error {
		defer cancel()
		return ui.loop(ctx, events, updateDone)
	}))

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info("session closed",
		zap.String("session", sess.ID().String()),
		zap.Int64("score", sess.Score()),
		zap.Uint64("ticks", sess.Ticks()),
		zap.Stringer("phase", sess.Phase()),
	)
	return err
}

// frontend owns the screen: it translates keys into actions and draws frames
type frontend struct {
	sess      *session.Session
	screen    tcell.Screen
	renderer  *render.TerminalRenderer
	keymap    *input.KeyMap
	hold      *input.HoldEmulator[input.Action]
	scheduler *engine.ClockScheduler
	logger    *zap.Logger
	debug     bool
}

func (f *frontend) loop(ctx context.Context, events <-chan tcell.Event, updateDone <-chan struct{}) error {
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	dirty := true
	done := f.sess.Done()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !f.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				f.screen.Sync()
				f.renderer.Resize()
			}
			dirty = true

		case <-updateDone:
			dirty = true

		case <-done:
			f.logger.Info("game over", zap.Int64("score", f.sess.Score()))
			f.hold.ReleaseAll()
			done = nil
			dirty = true

		case <-frameTicker.C:
			if !dirty {
				continue
			}
			f.renderer.Draw(render.Frame{
				Snapshot: f.sess.Snapshot(),
				Paused:   f.scheduler.IsPaused(),
				Debug:    f.debugLine(),
			})
			dirty = false
		}
	}
}

// handleKey returns false when the player quits
func (f *frontend) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
		if f.scheduler.TogglePause() {
			f.hold.ReleaseAll()
		}
		return true
	}

	if action, ok := f.keymap.LookupEvent(ev); ok && !f.scheduler.IsPaused() {
		f.hold.Observe(action, time.Now())
	}
	return true
}

func (f *frontend) debugLine() string {
	if !f.debug {
		return ""
	}
	st := f.sess.Status()
	return fmt.Sprintf("shots %d/%d  hits %d  reversals %d  live %d  culled %d",
		metric(st, "weapon.player_shots"),
		metric(st, "weapon.enemy_shots"),
		metric(st, "collision.hits"),
		metric(st, "movement.reversals"),
		metric(st, "projectiles.live"),
		metric(st, "cull.projectiles"),
	)
}

func metric(st *status.Registry, key string) int64 {
	if !st.Ints.Has(key) {
		return 0
	}
	return st.Ints.Get(key).Load()
}
