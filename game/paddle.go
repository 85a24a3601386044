package game

import "math/rand"

// AI tuning constants
const (
	// aiPredictionSteps is the trajectory simulation horizon
	aiPredictionSteps = 30

	// aiReactionTime is the minimum interval between AI target updates,
	// in seconds. Models reaction latency so the AI doesn't track the
	// ball perfectly every frame.
	aiReactionTime = 0.5

	// aiErrorMargin bounds the random offset added to the predicted
	// target, in pixels, keeping the AI beatable
	aiErrorMargin = 20.0

	// aiSeekSpeedRatio is the fraction of full paddle speed the AI uses
	// when approaching its target
	aiSeekSpeedRatio = 0.8

	// aiDeadZone is the target tolerance in pixels: inside it the paddle
	// stops instead of oscillating around the target
	aiDeadZone = 5.0
)

// Paddle owns one paddle's position, velocity, and bounding box. The X
// coordinate is fixed at construction; only Y moves. A paddle is either
// human-controlled (velocity set directly by input) or AI-controlled
// (internal target seeking); the mode never changes after construction.
type Paddle struct {
	X        float64
	Y        float64
	Velocity float64
	Speed    float64
	Width    float64
	Height   float64
	Box      Rect

	isAI       bool
	thinkTimer float64
	targetY    float64

	cfg     Config
	physics *Physics
	rng     *rand.Rand
}

// NewPaddle creates a paddle at the given X, vertically centered.
// rng is only used by AI paddles and may be nil for human ones.
func NewPaddle(cfg Config, x float64, isAI bool, physics *Physics, rng *rand.Rand) *Paddle {
	p := &Paddle{
		X:       x,
		Y:       float64(cfg.ScreenHeight) / 2,
		Speed:   cfg.PaddleSpeed,
		Width:   cfg.PaddleWidth,
		Height:  cfg.PaddleHeight,
		isAI:    isAI,
		cfg:     cfg,
		physics: physics,
		rng:     rng,
	}
	p.targetY = p.Y
	p.syncBox()
	return p
}

// IsAI reports whether this paddle is computer-controlled
func (p *Paddle) IsAI() bool { return p.isAI }

func (p *Paddle) syncBox() {
	p.Box = RectAround(p.X, p.Y, p.Width, p.Height)
}

// MoveUp sets the velocity to move the paddle up
func (p *Paddle) MoveUp() {
	p.Velocity = -p.Speed
}

// MoveDown sets the velocity to move the paddle down
func (p *Paddle) MoveDown() {
	p.Velocity = p.Speed
}

// Stop halts paddle movement
func (p *Paddle) Stop() {
	p.Velocity = 0
}

// updateAI runs the AI decision loop: retarget at most once per reaction
// interval, then seek the target every frame with a small dead zone.
func (p *Paddle) updateAI(dt float64, ball *Ball) {
	p.thinkTimer += dt
	if p.thinkTimer >= aiReactionTime {
		p.thinkTimer = 0

		midline := float64(p.cfg.ScreenWidth) / 2
		approaching := (p.X < midline && ball.Vel.X < 0) ||
			(p.X > midline && ball.Vel.X > 0)

		if approaching {
			predicted := p.physics.PredictBallY(ball.Pos, ball.Vel, aiPredictionSteps)
			errOffset := (p.rng.Float64()*2 - 1) * aiErrorMargin
			p.targetY = predicted + errOffset
		} else {
			// Ball moving away: drift back to center
			p.targetY = float64(p.cfg.ScreenHeight) / 2
		}
	}

	switch {
	case p.Y < p.targetY-aiDeadZone:
		p.Velocity = p.Speed * aiSeekSpeedRatio
	case p.Y > p.targetY+aiDeadZone:
		p.Velocity = -p.Speed * aiSeekSpeedRatio
	default:
		p.Velocity = 0
	}
}

// Update advances the paddle one frame. AI paddles decide their own
// velocity from the ball state first; both modes then integrate and
// clamp to the field.
func (p *Paddle) Update(dt float64, ball *Ball) {
	if p.isAI && ball != nil {
		p.updateAI(dt, ball)
	}

	p.Y += p.Velocity * dt * 60

	// Clamp to the field, stopping at the edge rather than passing it
	half := p.Height / 2
	height := float64(p.cfg.ScreenHeight)
	if p.Y < half {
		p.Y = half
		p.Velocity = 0
	} else if p.Y > height-half {
		p.Y = height - half
		p.Velocity = 0
	}

	p.syncBox()
}
