package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game is the top-level ebiten.Game: it computes the frame time step,
// dispatches to the active screen, and draws the optional debug HUD.
type Game struct {
	cfg     Config
	machine *StateMachine
	play    *PlayState

	lastUpdateTime time.Time

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	showDebug bool
}

// NewGame creates the game with its screens registered and the menu active
func NewGame(cfg Config) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var sounds SoundEmitter = NopSounds{}
	if speaker := NewSpeaker(cfg); speaker != nil {
		sounds = speaker
	}

	machine := &StateMachine{}
	play := NewPlayState(cfg, machine, sounds, rng)
	menu := NewMenuState(cfg, func(aiOpponent bool) {
		play.SetMode(aiOpponent)
		machine.Change(StatePlay)
	})

	machine.Register(StateMenu, menu)
	machine.Register(StatePlay, play)
	machine.Change(StateMenu)

	return &Game{
		cfg:            cfg,
		machine:        machine,
		play:           play,
		lastUpdateTime: time.Now(),
		fps:            60.0,
	}
}

// Update advances the game by one frame
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	dt := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if dt > maxFrameDT {
		dt = maxFrameDT
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}

	// Update FPS calculation (refresh every 0.5 seconds)
	g.fpsUpdateTimer += dt
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer >= 0.5 {
		if g.fpsUpdateCounter > 0 {
			g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
		}
		g.fpsUpdateCounter = 0
		g.fpsUpdateTimer = 0.0
	}

	return g.machine.Update(dt)
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.machine.Draw(screen)

	if g.showDebug {
		hud := fmt.Sprintf("FPS: %.0f", g.fps)
		if s := g.play.Session(); s != nil {
			hud += fmt.Sprintf("\nBall pos: (%.1f, %.1f)\nBall vel: (%.2f, %.2f)",
				s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Vel.X, s.Ball.Vel.Y)
		}
		ebitenutil.DebugPrint(screen, hud)
	}
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
