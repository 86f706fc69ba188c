// apps/go-term/internal/tui/theme.go

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/prefs"
)

// Palette is the full set of colors for one dark/contrast combination.
type Palette struct {
	Background tcell.Color
	Text       tcell.Color
	Muted      tcell.Color
	Empty      tcell.Color // unused tile
	Pending    tcell.Color // typed, not yet submitted
	Key        tcell.Color // keyboard key with no known state
	KeyText    tcell.Color
	Correct    tcell.Color
	Present    tcell.Color
	Absent     tcell.Color
	Hint       tcell.Color
	Painted    tcell.Color // text on colored tiles
}

var (
	colorCorrect         = tcell.NewHexColor(0x6aaa64)
	colorPresent         = tcell.NewHexColor(0xc9b458)
	colorCorrectContrast = tcell.NewHexColor(0xf5793a)
	colorPresentContrast = tcell.NewHexColor(0x85c0f9)
	colorAbsent          = tcell.NewHexColor(0x787c7e)
	colorHint            = tcell.NewHexColor(0xe85d9a)
	colorHintContrast    = tcell.NewHexColor(0x9d4edd)
)

// PaletteFor derives the palette from the display toggles.
func PaletteFor(p prefs.Prefs) Palette {
	pal := Palette{
		Correct: colorCorrect,
		Present: colorPresent,
		Absent:  colorAbsent,
		Hint:    colorHint,
		Painted: tcell.NewHexColor(0xffffff),
	}
	if p.HighContrast {
		pal.Correct = colorCorrectContrast
		pal.Present = colorPresentContrast
		pal.Hint = colorHintContrast
	}
	if p.DarkMode {
		pal.Background = tcell.NewHexColor(0x121213)
		pal.Text = tcell.NewHexColor(0xffffff)
		pal.Muted = tcell.NewHexColor(0x818384)
		pal.Empty = tcell.NewHexColor(0x3a3a3c)
		pal.Pending = tcell.NewHexColor(0x565758)
		pal.Key = tcell.NewHexColor(0x3a3a3c)
		pal.KeyText = tcell.NewHexColor(0xffffff)
	} else {
		pal.Background = tcell.NewHexColor(0xffffff)
		pal.Text = tcell.NewHexColor(0x000000)
		pal.Muted = tcell.NewHexColor(0x787c7e)
		pal.Empty = tcell.NewHexColor(0xd3d6da)
		pal.Pending = tcell.NewHexColor(0x878a8c)
		pal.Key = tcell.NewHexColor(0xd3d6da)
		pal.KeyText = tcell.NewHexColor(0x000000)
	}
	return pal
}

// Base is the screen's default style.
func (p Palette) Base() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Text).Background(p.Background)
}

// Mark returns the tile style for a scored letter.
func (p Palette) Mark(m game.Mark) tcell.Style {
	bg := p.Absent
	switch m {
	case game.MarkCorrect:
		bg = p.Correct
	case game.MarkPresent:
		bg = p.Present
	}
	return tcell.StyleDefault.Foreground(p.Painted).Background(bg).Bold(true)
}

// KeyStyle returns the on-screen keyboard style for a letter state.
func (p Palette) KeyStyle(s game.LetterState) tcell.Style {
	switch s {
	case game.LetterCorrect:
		return tcell.StyleDefault.Foreground(p.Painted).Background(p.Correct)
	case game.LetterPresent:
		return tcell.StyleDefault.Foreground(p.Painted).Background(p.Present)
	case game.LetterAbsent:
		return tcell.StyleDefault.Foreground(p.Painted).Background(p.Absent)
	case game.LetterHinted:
		return tcell.StyleDefault.Foreground(p.Painted).Background(p.Hint)
	}
	return tcell.StyleDefault.Foreground(p.KeyText).Background(p.Key)
}
