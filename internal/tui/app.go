// apps/go-term/internal/tui/app.go
//
// Terminal front end built on tcell.
//
// Structure:
//   - One goroutine polls screen events into a channel; it exits when the
//     screen is finalised.
//   - Run owns all state: it selects over events and a frame ticker, drives
//     the session, replays reveal steps and redraws.
//   - App is the session.Listener; core events become toasts and reveals.
//
// Views: length picker -> game, with optional stats/settings overlays.

package tui

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/prefs"
	"github.com/robalobadob/wordle/apps/go-term/internal/session"
	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

const (
	praiseToast     = 3 * time.Second
	newMaxDelay     = 3500 * time.Millisecond
	newMaxToast     = 3 * time.Second
	gameOverToast   = 5 * time.Second
	streakEndDelay  = 5500 * time.Millisecond
	streakEndToast  = 4 * time.Second
	hintToast       = 2500 * time.Millisecond
	shakeDuration   = 300 * time.Millisecond
	shakeHalfPeriod = 50 * time.Millisecond
)

// Dictionary is what the UI needs from the word lists.
type Dictionary interface {
	game.Dictionary
	Lengths() []int
}

// Options configure the app.
type Options struct {
	Length int       // start straight in this mode; 0 shows the picker
	Rand   game.Rand // nil = global
}

type view int

const (
	viewPicker view = iota
	viewGame
)

type overlay int

const (
	overlayNone overlay = iota
	overlayStats
	overlaySettings
)

// App is the terminal game.
type App struct {
	screen tcell.Screen
	kv     store.KV
	dict   Dictionary
	opts   Options
	now    func() time.Time

	sess    *session.Session
	prefs   prefs.Prefs
	palette Palette
	view    view
	overlay overlay
	pick    int // index into dict.Lengths()

	reveal     *reveal
	shownKeys  map[byte]game.LetterState // keyboard frozen while a row reveals
	toasts     toasts
	shakeStart time.Time
	lastStats  stats.Stats
	result     string // end-of-game line, shown once the reveal is over
}

// New builds an app on an initialised screen.
func New(ctx context.Context, screen tcell.Screen, kv store.KV, dict Dictionary, opts Options) (*App, error) {
	p, err := prefs.Load(ctx, kv)
	if err != nil {
		return nil, fmt.Errorf("load prefs: %w", err)
	}
	a := &App{
		screen:  screen,
		kv:      kv,
		dict:    dict,
		opts:    opts,
		now:     time.Now,
		prefs:   p,
		palette: PaletteFor(p),
		view:    viewPicker,
	}
	lengths := dict.Lengths()
	for i, n := range lengths {
		if n == 5 {
			a.pick = i
		}
	}
	if opts.Length != 0 {
		if err := a.start(ctx, opts.Length); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Run drives the app until quit or ctx is done. It finalises the screen
// before returning.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		poll(a.screen, events, done)
	}()
	defer func() {
		close(done)
		a.screen.Fini()
		wg.Wait()
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			cont, err := a.handleEvent(ctx, ev)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
			a.draw()
		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

// poll forwards screen events until the screen is finalised or done closes.
func poll(s tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (a *App) handleEvent(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ctx, ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true, nil
}

// handleKey applies one key press. It returns false to quit.
func (a *App) handleKey(ctx context.Context, key tcell.Key, r rune, mod tcell.ModMask) (bool, error) {
	action, r := Lookup(key, r, mod)
	if action == ActionQuit {
		return false, nil
	}
	if a.view == viewPicker {
		return true, a.handlePicker(ctx, action, r)
	}

	switch action {
	case ActionToggleStats:
		a.toggleOverlay(ctx, overlayStats)
		return true, nil
	case ActionToggleSettings:
		a.toggleOverlay(ctx, overlaySettings)
		return true, nil
	case ActionToggleDark:
		a.setPrefs(ctx, prefs.Prefs{DarkMode: !a.prefs.DarkMode, HighContrast: a.prefs.HighContrast})
		return true, nil
	case ActionToggleContrast:
		a.setPrefs(ctx, prefs.Prefs{DarkMode: a.prefs.DarkMode, HighContrast: !a.prefs.HighContrast})
		return true, nil
	}
	if a.overlay != overlayNone {
		// Overlays swallow game input; Enter closes them.
		if action == ActionEnter {
			a.overlay = overlayNone
		}
		return true, nil
	}

	switch action {
	case ActionLetter:
		a.sess.Type(r)
	case ActionErase:
		a.sess.Erase()
	case ActionEnter:
		if a.reveal != nil {
			break
		}
		keys := maps.Clone(a.sess.Game().Keys)
		if _, err := a.sess.Enter(ctx); err == nil {
			a.shownKeys = keys
		}
	case ActionHint:
		a.sess.UseHint()
	case ActionNewGame:
		if err := a.sess.Reset(); err != nil {
			return false, fmt.Errorf("new game: %w", err)
		}
	case ActionChangeLength:
		a.clearTransient()
		a.view = viewPicker
	}
	return true, nil
}

func (a *App) handlePicker(ctx context.Context, action Action, r rune) error {
	lengths := a.dict.Lengths()
	switch action {
	case ActionLeft:
		if a.pick > 0 {
			a.pick--
		}
	case ActionRight:
		if a.pick < len(lengths)-1 {
			a.pick++
		}
	case ActionEnter:
		return a.start(ctx, lengths[a.pick])
	case ActionNone:
		if r >= '1' && r <= '9' {
			n := int(r - '0')
			for i, l := range lengths {
				if l == n {
					a.pick = i
					return a.start(ctx, n)
				}
			}
		}
	}
	return nil
}

// start opens a fresh session in mode n and switches to the game view.
func (a *App) start(ctx context.Context, n int) error {
	s, err := session.New(ctx, a.kv, a.dict, session.Options{
		Length:   n,
		Rand:     a.opts.Rand,
		Listener: a,
	})
	if err != nil {
		return err
	}
	a.sess = s
	a.clearTransient()
	a.view = viewGame
	log.Info().Int("mode", n).Str("gameId", s.Game().ID).Msg("game started")
	return nil
}

func (a *App) clearTransient() {
	a.reveal = nil
	a.shownKeys = nil
	a.toasts.clear()
	a.overlay = overlayNone
	a.result = ""
	a.shakeStart = time.Time{}
}

func (a *App) toggleOverlay(ctx context.Context, o overlay) {
	if a.overlay == o {
		a.overlay = overlayNone
		return
	}
	if o == overlayStats {
		a.lastStats = a.sess.Stats(ctx)
	}
	a.overlay = o
}

func (a *App) setPrefs(ctx context.Context, p prefs.Prefs) {
	if err := a.sess.SetPrefs(ctx, p); err != nil {
		log.Warn().Err(err).Msg("save prefs")
		a.toasts.show(a.now(), "Could not save settings.", 0, defaultToast)
		return
	}
	a.prefs = p
	a.palette = PaletteFor(p)
}

// tick advances time-driven state: reveal steps and toast expiry.
func (a *App) tick() {
	now := a.now()
	if a.reveal != nil && a.reveal.advance(now) {
		a.reveal = nil
		a.shownKeys = nil
	}
	a.toasts.prune(now)
}

// keys is the keyboard state to draw.
func (a *App) keys() map[byte]game.LetterState {
	if a.shownKeys != nil {
		return a.shownKeys
	}
	return a.sess.Game().Keys
}

// revealRemaining is how long until the running reveal ends.
func (a *App) revealRemaining() time.Duration {
	if a.reveal == nil {
		return 0
	}
	left := a.reveal.end - a.now().Sub(a.reveal.start)
	if left < 0 {
		return 0
	}
	return left
}

// session.Listener

func (a *App) GuessRejected(err error) {
	a.shakeStart = a.now()
	a.toasts.show(a.now(), rejectionText(err), 0, defaultToast)
}

func (a *App) VerdictComputed(row int, guess string, v game.Verdict) {
	a.reveal = newReveal(row, v, v.Solved(), a.now())
}

func (a *App) GameWon(attempts int, word string, st stats.Stats, newMax bool) {
	delay := a.revealRemaining()
	msg := praise(attempts)
	a.toasts.show(a.now(), msg, delay, praiseToast)
	if newMax {
		a.toasts.show(a.now(), fmt.Sprintf("New max streak: %d", st.MaxStreak), delay+newMaxDelay, newMaxToast)
	}
	a.lastStats = st
	a.result = fmt.Sprintf("%s  The word was: %s", msg, word)
}

func (a *App) GameLost(word string, st stats.Stats, endedStreak int) {
	delay := a.revealRemaining()
	a.toasts.show(a.now(), "Game Over! The word was: "+word, delay, gameOverToast)
	if endedStreak > 0 {
		a.toasts.show(a.now(), fmt.Sprintf("Streak ended at: %d", endedStreak), delay+streakEndDelay, streakEndToast)
	}
	a.lastStats = st
	a.result = "Game Over! The word was: " + word
}

func (a *App) HintRevealed(letter byte) {
	if a.shownKeys != nil {
		a.shownKeys[letter] = game.LetterHinted
	}
	a.toasts.show(a.now(), hintText(letter), 0, hintToast)
}

func (a *App) HintRejected(err error) {
	a.toasts.show(a.now(), rejectionText(err), 0, defaultToast)
}

func (a *App) GameReset() {
	a.clearTransient()
}

var _ session.Listener = (*App)(nil)
