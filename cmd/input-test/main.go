package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/parameter"
)

// ctrlKey is the pseudo-key observed alongside any Ctrl chord
const ctrlKey = "ctrl"

// counter is the keyboard demo: w counts up, s counts down without going
// below zero, releasing space resets, ctrl and c/v report themselves
type counter struct {
	value uint
}

// step evaluates one latched frame and returns the lines to log
func (c *counter) step(in *input.State[string]) []string {
	var out []string
	if in.JustPressed("w") {
		c.value++
		out = append(out, fmt.Sprintf("w: counter %d", c.value))
	}
	if in.JustPressed("s") {
		if c.value > 0 {
			c.value--
		}
		out = append(out, fmt.Sprintf("s: counter %d", c.value))
	}
	if in.JustReleased("space") {
		c.value = 0
		out = append(out, "space released: counter reset")
	}
	if in.Pressed(ctrlKey) {
		out = append(out, "ctrl held")
	}
	if in.AnyJustPressed("c", "v") {
		out = append(out, "c or v pressed")
	}
	return out
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	state := input.NewState[string]()
	hold := input.NewHoldEmulator(state, parameter.KeyHoldInitialTimeout, parameter.KeyHoldRepeatTimeout)
	demo := &counter{}

	const maxLog = 12
	eventLog := make([]string, 0, maxLog)
	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
				now := time.Now()
				if input.IsCtrl(ev) {
					hold.Observe(ctrlKey, now)
				}
				hold.Observe(input.KeyName(ev), now)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			hold.Expire(time.Now())
			state.Latch()
			for _, line := range demo.step(state) {
				addLog(line)
			}
			state.Advance()
			draw(screen, demo.value, eventLog)
		}
	}
}

func draw(screen tcell.Screen, value uint, log []string) {
	screen.Clear()
	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	body := tcell.StyleDefault.Foreground(tcell.ColorSilver)

	put(screen, 0, 0, "Input Test - w/s count, space resets, ctrl and c/v report - q to quit", title)
	put(screen, 0, 1, fmt.Sprintf("counter: %d", value), title)
	for i, line := range log {
		put(screen, 1, 3+i, line, body)
	}
	screen.Show()
}

func put(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
