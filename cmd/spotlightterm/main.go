// Command spotlightterm previews the pulsing focus animation in a terminal.
//
// Each cell stands for a block of canvas pixels. Cells inside the focus are
// left clear, the rest are dimmed. Press Esc, q or Ctrl-C to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/spotlight"
	"github.com/gogpu/spotlight/internal/config"
	"github.com/gogpu/spotlight/internal/pulse"
)

var (
	dimStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	focusStyle   = tcell.StyleDefault.Background(tcell.ColorWhite)
	captionStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "spotlightterm:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("spotlightterm", flag.ContinueOnError)
	var (
		envFile = fs.String("env", ".env", "optional .env file with SPOTLIGHT_* settings")
		caption = fs.String("caption", "Tap here to start", "caption text")
		logFile = fs.String("log", "", "write logs to this file")
		fps     = fs.Int("fps", 20, "animation frames per second")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		spotlight.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	p := &preview{
		screen:  screen,
		calc:    cfg.Calculator(),
		driver:  pulse.New(cfg.AnimMax, 1),
		step:    cfg.AnimStep,
		caption: *caption,
	}
	p.resize()
	return p.loop(time.Second / time.Duration(max(*fps, 1)))
}

// preview owns the calculator and the screen; only loop touches them.
type preview struct {
	screen  tcell.Screen
	calc    *spotlight.Calculator
	driver  *pulse.Driver
	step    float64
	caption string
	grid    grid
}

func (p *preview) resize() {
	cols, rows := p.screen.Size()
	p.grid = newGrid(cols, rows, p.calc.Background())
}

func (p *preview) loop(interval time.Duration) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(p.screen, events, done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				p.screen.Sync()
				p.resize()
			}
		case <-ticker.C:
			p.draw(p.driver.Next())
		}
	}
}

// eventSource is the part of tcell.Screen the event pump reads from.
type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards events from src until src is finalized or done is
// closed. events is closed when src runs dry.
func pollEvents(src eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (p *preview) draw(tick int) {
	lit := p.grid.frame(p.calc, tick, p.step)
	for row, cells := range lit {
		for col, in := range cells {
			if in {
				p.screen.SetContent(col, row, ' ', nil, focusStyle)
			} else {
				p.screen.SetContent(col, row, '░', nil, dimStyle)
			}
		}
	}

	row := p.grid.captionRow(p.calc)
	runes := []rune(p.caption)
	start := max((p.grid.cols-len(runes))/2, 0)
	for i, r := range runes {
		if start+i >= p.grid.cols {
			break
		}
		p.screen.SetContent(start+i, row, r, nil, captionStyle)
	}
	p.screen.Show()
}
