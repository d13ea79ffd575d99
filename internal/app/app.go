package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/audio"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/input"
	"github.com/diegok/termpong/internal/store"
	"github.com/diegok/termpong/internal/ui"
)

// App is the main application controller that manages the game
// lifecycle: screen, audio, preferences, input routing and the frame
// loop driving the session.
type App struct {
	cfg      *config.Settings
	screen   *ui.Screen
	renderer *ui.Renderer
	router   *input.Router
	session  *game.Session
	logger   *log.Logger
	logFile  *os.File

	pendingStart bool

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Settings) *App {
	return &App{
		cfg:    cfg,
		router: input.NewRouter(),
		quit:   make(chan struct{}),
	}
}

// Run initializes all collaborators, builds the session and drives the
// frame loop until quit.
func (a *App) Run() error {
	if err := a.setupLogger(); err != nil {
		return err
	}
	defer a.closeLogger()

	// Persisted mute preference overrides the flag default.
	prefs, err := store.Load(a.cfg.Player1Name)
	if err != nil {
		a.logf("prefs load failed: %v", err)
	} else if prefs.Muted {
		a.cfg.Muted = true
	}

	// Audio is optional; the game works without sound.
	if err := audio.Init(); err != nil {
		a.logf("audio init failed: %v", err)
	}
	audio.SetMuted(a.cfg.Muted)

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, ui.NewTheme(a.cfg.Palette))

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	if err := a.buildSession(); err != nil {
		a.cleanup()
		return err
	}

	runErr := a.mainLoop()
	a.cleanup()
	return runErr
}

// buildSession creates a fresh session sized to the current terminal.
// The last screen row is a status bar outside the court.
func (a *App) buildSession() error {
	w, h := a.screen.Size()
	bounds := game.Bounds{
		Top:    1,
		Right:  float64(w),
		Bottom: float64(h - 1),
		Left:   0,
	}

	session, err := game.NewSession(a.cfg, bounds, a.logger)
	if err != nil {
		return err
	}
	a.session = session

	// Screen and audio are already up by the time the session exists.
	return a.session.FinishLoading()
}

// mainLoop runs one simulation tick per frame at the display cadence.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.tick(time.Now())
		}
	}
}

// tick advances the session one step and routes its events to the
// audio collaborator. While paused only the deferred timers run; the
// simulation itself is frozen.
func (a *App) tick(now time.Time) {
	a.router.Tick()

	var events []game.Event
	if a.session.State.Paused {
		events = a.session.FireDue(now)
	} else {
		events = a.session.Step(now, a.intents())
	}

	for _, ev := range events {
		switch ev {
		case game.EventStarted:
			audio.StartMusic()
			audio.ResumeMusic()
		case game.EventWallBounce, game.EventPaddleHit:
			audio.PlayBounce()
		case game.EventScore:
			audio.PlayScore()
		case game.EventWin:
			audio.PlayWin()
			audio.StopMusic()
		case game.EventReset:
			audio.StopMusic()
		}
	}

	a.renderer.Render(a.session.Snapshot())
}

// intents snapshots the router into the tick's normalized input.
func (a *App) intents() game.Intents {
	p1 := a.router.P1Intent(a.session.Player1.CenterY)
	in := game.Intents{
		P1Axis:       p1.Axis,
		P1Analog:     p1.Analog,
		P2Axis:       a.router.P2Axis(),
		SecondPlayer: a.router.SecondPlayerActive(),
		Start:        a.pendingStart,
		Relaunch:     a.router.TakeRelaunch(),
	}
	a.pendingStart = false
	return in
}

// handleEvent processes keyboard, mouse and resize events. Returns
// true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		_, y := ev.Position()
		a.router.PointerMoved(float64(y))

	case *tcell.EventResize:
		// A resize is a surface change: reload the session rather
		// than hot-patching entity bounds.
		a.screen.Clear()
		if err := a.buildSession(); err != nil {
			a.logf("resize rebuild failed: %v", err)
		}
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	key, r := ev.Key(), ev.Rune()

	switch {
	case ui.IsQuitKey(key, r):
		return true

	case ui.IsStartKey(key):
		a.pendingStart = true

	case ui.IsPauseKey(key, r):
		if a.session.TogglePause() {
			audio.StopMusic()
		} else if a.session.State.Current == game.PhasePlay {
			audio.ResumeMusic()
		}

	case ui.IsMuteKey(key, r):
		muted := a.session.ToggleMute()
		audio.SetMuted(muted)
		if err := store.Save(a.cfg.Player1Name, store.Prefs{Muted: muted}); err != nil {
			a.logf("prefs save failed: %v", err)
		}

	default:
		if code, ok := ui.KeyToCode(key, r); ok {
			a.router.KeyDown(code)
		}
	}
	return false
}

func (a *App) setupLogger() error {
	if a.cfg.LogPath == "" {
		return nil
	}
	f, err := os.OpenFile(a.cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f
	a.logger = log.New(f, "termpong ", log.LstdFlags)
	return nil
}

func (a *App) closeLogger() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func (a *App) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()
	if a.screen != nil {
		a.screen.Fini()
	}
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}
