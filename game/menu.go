package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// menuOption is one selectable entry on the main menu
type menuOption struct {
	label  string
	action func() error
}

// MenuState is the main menu screen
type MenuState struct {
	cfg      Config
	options  []menuOption
	selected int
}

// NewMenuState builds the menu. startGame launches a match (AI opponent
// or two players); selecting Exit terminates the run loop.
func NewMenuState(cfg Config, startGame func(aiOpponent bool)) *MenuState {
	m := &MenuState{cfg: cfg}
	m.options = []menuOption{
		{label: "Single Player", action: func() error {
			startGame(true)
			return nil
		}},
		{label: "Two Players", action: func() error {
			startGame(false)
			return nil
		}},
		{label: "Exit", action: func() error {
			return ebiten.Termination
		}},
	}
	return m
}

func (m *MenuState) Enter() {
	m.selected = 0
}

func (m *MenuState) Exit() {}

func (m *MenuState) Update(dt float64) error {
	n := len(m.options)
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		m.selected = (m.selected - 1 + n) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		m.selected = (m.selected + 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return m.options[m.selected].action()
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	centerX := float64(m.cfg.ScreenWidth) / 2
	titleY := float64(m.cfg.ScreenHeight) / 4

	drawCenteredText(screen, "P A D D L E C L A S H", centerX, titleY, colorForeground)

	optionsY := float64(m.cfg.ScreenHeight) / 2
	for i, opt := range m.options {
		clr := colorForeground
		label := opt.label
		if i == m.selected {
			clr = colorAccent
			label = "> " + label + " <"
		}
		drawCenteredText(screen, label, centerX, optionsY+float64(i)*40, clr)
	}

	hintY := float64(m.cfg.ScreenHeight) * 0.8
	drawCenteredText(screen, "Use UP/DOWN arrows and ENTER to select", centerX, hintY, colorCenterLine)
}
