package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayState is the gameplay screen. It polls input, drives the session,
// and delegates drawing to the renderer.
type PlayState struct {
	cfg      Config
	machine  *StateMachine
	renderer *Renderer
	sounds   SoundEmitter
	rng      *rand.Rand

	aiOpponent bool
	session    *Session
}

// NewPlayState builds the gameplay screen. The opponent mode is chosen
// with SetMode before the state is entered.
func NewPlayState(cfg Config, machine *StateMachine, sounds SoundEmitter, rng *rand.Rand) *PlayState {
	return &PlayState{
		cfg:        cfg,
		machine:    machine,
		renderer:   NewRenderer(cfg),
		sounds:     sounds,
		rng:        rng,
		aiOpponent: true,
	}
}

// SetMode selects whether the right paddle is AI-controlled. Takes
// effect on the next Enter.
func (p *PlayState) SetMode(aiOpponent bool) {
	p.aiOpponent = aiOpponent
}

// Enter starts a fresh match
func (p *PlayState) Enter() {
	p.session = NewSession(p.cfg, p.aiOpponent, p.sounds, p.rng)
}

// Exit drops the finished session; returning to the menu discards the match
func (p *PlayState) Exit() {
	p.session = nil
}

func (p *PlayState) Update(dt float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.machine.Change(StateMenu)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.session.Reset()
	}

	p.pollPaddleKeys()
	p.session.Update(dt)
	return nil
}

// pollPaddleKeys samples held movement keys into paddle velocities.
// W/S drive the left paddle; the arrow keys drive the right one in
// two-player mode.
func (p *PlayState) pollPaddleKeys() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyW):
		p.session.LeftPaddle.MoveUp()
	case ebiten.IsKeyPressed(ebiten.KeyS):
		p.session.LeftPaddle.MoveDown()
	default:
		p.session.LeftPaddle.Stop()
	}

	if p.session.AIOpponent() {
		return
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		p.session.RightPaddle.MoveUp()
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		p.session.RightPaddle.MoveDown()
	default:
		p.session.RightPaddle.Stop()
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	if p.session != nil {
		p.renderer.DrawSession(screen, p.session)
	}
}

// Session exposes the running match for the debug HUD
func (p *PlayState) Session() *Session {
	return p.session
}
