package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/logging"
	"github.com/lixenwraith/invaders/parameter"
)

var runFor = flag.Duration("for", 0, "Exit after this long (0 runs until interrupted)")

type person struct{}

type age struct {
	Years uint8
}

// sayAgeSystem reports every person's age each time its repeating timer expires
type sayAgeSystem struct {
	world  *engine.World
	timer  *engine.Timer
	step   time.Duration
	people *engine.Store[person]
	ages   *engine.Store[age]
	say    func(years uint8)
}

func newSayAgeSystem(w *engine.World, interval, step time.Duration, say func(uint8)) *sayAgeSystem {
	return &sayAgeSystem{
		world:  w,
		timer:  engine.NewTimer(interval, engine.TimerRepeating),
		step:   step,
		people: engine.GetStore[person](w),
		ages:   engine.GetStore[age](w),
		say:    say,
	}
}

func (s *sayAgeSystem) Name() string  { return "say_age" }
func (s *sayAgeSystem) Priority() int { return 0 }

func (s *sayAgeSystem) Update() {
	if !s.timer.Tick(s.step).JustFinished() {
		return
	}
	for _, e := range s.world.Query().With(s.people).With(s.ages).Execute() {
		a, _ := s.ages.GetComponent(e)
		s.say(a.Years)
	}
}

// addPeople spawns the three demo people
func addPeople(w *engine.World) {
	people := engine.GetStore[person](w)
	ages := engine.GetStore[age](w)
	for _, years := range []uint8{18, 32, 7} {
		eb := w.NewEntity()
		engine.With(eb, people, person{})
		engine.With(eb, ages, age{Years: years})
		eb.Build()
	}
}

func main() {
	flag.Parse()

	logger, err := logging.Console()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	step := time.Second / parameter.TickRate
	world := engine.NewWorld()
	addPeople(world)
	world.AddSystem(newSayAgeSystem(world, 5*time.Second, step, func(years uint8) {
		logger.Info(fmt.Sprintf("My age is %d!", years))
	}))

	scheduler, _ := engine.NewClockScheduler(engine.NewPausableClock(), step, world.Update)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *runFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *runFor)
		defer cancel()
	}

	logger.Info("age demo running", zap.Int("people", world.EntityCount()), zap.Duration("interval", 5*time.Second))
	scheduler.Start()
	<-ctx.Done()
	scheduler.Stop()
	logger.Info("age demo stopped", zap.Uint64("ticks", scheduler.TickCount()))
}
