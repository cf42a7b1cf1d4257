// Package ui draws the game in a terminal with tcell and turns key presses
// into game commands.
package ui

import "github.com/gdamore/tcell/v2"

var styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the terminal the game draws on. Each frame is built between
// Begin and Flush.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(term)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(styleBackground)
	term.HideCursor()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.term.Fini()
}

// Poll blocks for the next terminal event. It returns nil once the screen
// has been closed.
func (s *Screen) Poll() tcell.Event {
	return s.term.PollEvent()
}

// Begin starts a new frame on a blank buffer.
func (s *Screen) Begin() {
	s.term.Clear()
}

// Put draws one glyph.
func (s *Screen) Put(x, y int, ch rune, style tcell.Style) {
	s.term.SetContent(x, y, ch, nil, style)
}

// Text draws a string left to right from (x, y).
func (s *Screen) Text(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.Put(x, y, ch, style)
		x++
	}
}

// Flush sends the frame to the terminal.
func (s *Screen) Flush() {
	s.term.Show()
}

// Resync redraws everything after the terminal was resized.
func (s *Screen) Resync() {
	s.term.Sync()
}
