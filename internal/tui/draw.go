// apps/go-term/internal/tui/draw.go
//
// Rendering. Layout on a 24-row screen:
//
//	y=0        title
//	y=1        mode line
//	y=3..13    guess grid, one tile row every other line
//	y=15       toast / result line
//	y=17..21   keyboard, one key row every other line
//	y=23       help line

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
)

const (
	tileWidth   = 3
	tileGap     = 1
	gridTop     = 3
	rowStride   = 2
	toastLine   = 15
	keyboardTop = 17
	barWidth    = 24
	shareGap    = 4
)

// tileOrigin is the top-left cell of a grid tile.
func tileOrigin(screenWidth, length, row, col int) (int, int) {
	gridWidth := length*(tileWidth+tileGap) - tileGap
	x0 := (screenWidth - gridWidth) / 2
	return x0 + col*(tileWidth+tileGap), gridTop + row*rowStride
}

// shareOrigin is the first cell of the share grid, right of the board.
func shareOrigin(screenWidth, length int) (int, int) {
	x, y := tileOrigin(screenWidth, length, 0, length-1)
	return x + tileWidth + shareGap, y
}

// keyOrigin is the top-left cell of an on-screen keyboard key.
func keyOrigin(screenWidth, row, col int) (int, int) {
	n := len(keyboardRows[row])
	rowWidth := n*(tileWidth+tileGap) - tileGap
	x0 := (screenWidth - rowWidth) / 2
	return x0 + col*(tileWidth+tileGap), keyboardTop + row*rowStride
}

func (a *App) draw() {
	s := a.screen
	base := a.palette.Base()
	s.SetStyle(base)
	s.Clear()
	s.Fill(' ', base)

	switch a.view {
	case viewPicker:
		a.drawPicker()
	case viewGame:
		a.drawGame()
		switch a.overlay {
		case overlayStats:
			a.drawStats()
		case overlaySettings:
			a.drawSettings()
		}
	}
	s.Show()
}

func (a *App) drawPicker() {
	w, h := a.screen.Size()
	base := a.palette.Base()
	mid := h / 2
	a.centered(mid-3, "WORDLE", base.Bold(true))
	a.centered(mid-1, "Choose a word length", base)

	lengths := a.dict.Lengths()
	labels := make([]string, len(lengths))
	for i, n := range lengths {
		labels[i] = fmt.Sprintf(" %d letters ", n)
	}
	total := 0
	for _, l := range labels {
		total += len(l) + 2
	}
	x := (w - total) / 2
	for i, l := range labels {
		st := tcell.StyleDefault.Foreground(a.palette.KeyText).Background(a.palette.Key)
		if i == a.pick {
			st = a.palette.Mark(game.MarkCorrect)
		}
		a.put(x, mid+1, l, st)
		x += len(l) + 2
	}
	a.centered(mid+3, "←/→ select  enter start  4/5/6 pick  esc quit", base.Foreground(a.palette.Muted))
}

func (a *App) drawGame() {
	w, h := a.screen.Size()
	g := a.sess.Game()
	base := a.palette.Base()
	now := a.now()

	a.centered(0, "WORDLE", base.Bold(true))
	mode := fmt.Sprintf("%d letters", g.Length)
	if g.HintUsed {
		mode += fmt.Sprintf("  hint: %c", g.HintLetter)
	}
	a.centered(1, mode, base.Foreground(a.palette.Muted))

	for row := 0; row < g.MaxAttempts; row++ {
		for col := 0; col < g.Length; col++ {
			x, y := tileOrigin(w, g.Length, row, col)
			letter, st := a.tile(g, row, col)
			if row == len(g.Guesses) && !g.Over() {
				x += a.shakeOffset(now)
			}
			if a.reveal != nil && a.reveal.row == row && a.reveal.bouncing(col, now) {
				y--
			}
			a.put(x, y, " "+string(letter)+" ", st)
		}
	}

	if a.reveal == nil {
		sx, sy := shareOrigin(w, g.Length)
		for i, line := range g.Share() {
			a.put(sx, sy+i, line, base)
		}
	}

	if text, ok := a.toasts.current(now); ok {
		a.centered(toastLine, text, base.Bold(true))
	} else if a.result != "" && a.reveal == nil {
		a.centered(toastLine, a.result, base)
	}

	keys := a.keys()
	for r, letters := range keyboardRows {
		for c := 0; c < len(letters); c++ {
			x, y := keyOrigin(w, r, c)
			a.put(x, y, " "+letters[c:c+1]+" ", a.palette.KeyStyle(keys[letters[c]]))
		}
	}

	a.centered(h-1, helpLine, base.Foreground(a.palette.Muted))
}

// tile picks the letter and style for one grid cell.
func (a *App) tile(g *game.Game, row, col int) (rune, tcell.Style) {
	empty := tcell.StyleDefault.Foreground(a.palette.Text).Background(a.palette.Empty)
	pending := tcell.StyleDefault.Foreground(a.palette.Painted).Background(a.palette.Pending).Bold(true)

	switch {
	case row < len(g.Guesses):
		letter := rune(g.Guesses[row][col])
		mark := g.Verdicts[row][col]
		if a.reveal != nil && a.reveal.row == row {
			switch a.reveal.phase[col] {
			case tileHidden:
				return letter, pending
			case tileFlipping:
				return ' ', empty
			}
		}
		return letter, a.palette.Mark(mark)
	case row == len(g.Guesses) && col < len(g.Pending):
		return rune(g.Pending[col]), pending
	}
	return ' ', empty
}

// shakeOffset jitters the active row after a rejected guess.
func (a *App) shakeOffset(now time.Time) int {
	if a.shakeStart.IsZero() {
		return 0
	}
	el := now.Sub(a.shakeStart)
	if el < 0 || el >= shakeDuration {
		return 0
	}
	if (el/shakeHalfPeriod)%2 == 0 {
		return 1
	}
	return -1
}

func (a *App) drawStats() {
	st := a.lastStats
	lines := []string{
		fmt.Sprintf("STATISTICS  %d letters", a.sess.Length()),
		"",
		fmt.Sprintf("%6d %6d %8d %6d", st.GamesPlayed, st.WinPercent(), st.CurrentStreak, st.MaxStreak),
		fmt.Sprintf("%6s %6s %8s %6s", "Played", "Win %", "Current", "Max"),
		"",
		"GUESS DISTRIBUTION",
	}
	top := a.box(len(lines)+stats.MaxGuesses+2, barWidth+8)
	base := a.palette.Base()
	for i, l := range lines {
		a.centered(top+i, l, base)
	}

	w, _ := a.screen.Size()
	x0 := (w - (barWidth + 4)) / 2
	maxCount := st.MaxBucket()
	for n := 1; n <= stats.MaxGuesses; n++ {
		y := top + len(lines) + n - 1
		count := st.Distribution[n]
		a.put(x0, y, fmt.Sprintf("%d ", n), base)
		width := barWidth * 7 / 100
		if count > 0 {
			width = max(barWidth*count/maxCount, width)
		}
		label := fmt.Sprintf("%d", count)
		width = max(width, len(label)+1)
		bar := strings.Repeat(" ", width-len(label)) + label
		bg := a.palette.Absent
		if st.LastWinGuesses == n && count > 0 {
			bg = a.palette.Correct
		}
		a.put(x0+2, y, bar, tcell.StyleDefault.Foreground(a.palette.Painted).Background(bg).Bold(true))
	}
	a.centered(top+len(lines)+stats.MaxGuesses+1, "^S close", base.Foreground(a.palette.Muted))
}

func (a *App) drawSettings() {
	onOff := func(b bool) string {
		if b {
			return "on "
		}
		return "off"
	}
	lines := []string{
		"SETTINGS",
		"",
		fmt.Sprintf("Dark mode       %s  ^D", onOff(a.prefs.DarkMode)),
		fmt.Sprintf("High contrast   %s  ^T", onOff(a.prefs.HighContrast)),
		"",
		"^O close",
	}
	top := a.box(len(lines), 32)
	for i, l := range lines {
		a.centered(top+i, l, a.palette.Base())
	}
}

// box clears a centered rectangle with a frame and returns its first
// content row.
func (a *App) box(rows, cols int) int {
	w, h := a.screen.Size()
	x0 := (w - cols - 4) / 2
	y0 := (h - rows - 2) / 2
	frame := a.palette.Base().Foreground(a.palette.Muted)
	for y := y0; y < y0+rows+2; y++ {
		for x := x0; x < x0+cols+4; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+rows+1) && (x == x0 || x == x0+cols+3):
				ch = '+'
			case y == y0 || y == y0+rows+1:
				ch = '-'
			case x == x0 || x == x0+cols+3:
				ch = '|'
			}
			a.screen.SetContent(x, y, ch, nil, frame)
		}
	}
	return y0 + 1
}

// put writes s starting at (x, y); wide runes take two cells.
func (a *App) put(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, st)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

func (a *App) centered(y int, s string, st tcell.Style) {
	w, _ := a.screen.Size()
	a.put((w-runewidth.StringWidth(s))/2, y, s, st)
}
