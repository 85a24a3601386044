package game

import (
	"math"
	"math/rand"
)

const (
	// maxBounceAngle is the steepest angle off a paddle edge (45 degrees)
	maxBounceAngle = math.Pi / 4

	// spinFactor converts paddle velocity into vertical spin on contact
	spinFactor = 0.2

	// spinCapRatio caps |vy| relative to |vx| so spin cannot produce
	// near-vertical trajectories
	spinCapRatio = 0.75

	// wallBounceFloor is the minimum fraction of BallSpeedY the ball keeps
	// after a wall hit, so it never grazes along a wall
	wallBounceFloor = 0.5

	// maxPredictionSteps bounds the AI trajectory simulation horizon
	maxPredictionSteps = 30
)

// Physics computes ball velocities and trajectories. All methods are
// side-effect-free over their inputs; the only state is the injected
// random source. Arithmetic failure (NaN/Inf) is recovered locally with
// an in-range fallback, never surfaced to the caller.
type Physics struct {
	cfg Config
	rng *rand.Rand
}

// NewPhysics creates a physics engine with the given random source
func NewPhysics(cfg Config, rng *rand.Rand) *Physics {
	return &Physics{cfg: cfg, rng: rng}
}

// fallbackVelocity is the safe velocity used whenever a calculation
// degenerates: base horizontal speed plus a small random vertical drift.
func (p *Physics) fallbackVelocity(dir float64) Vec2 {
	return Vec2{
		X: dir * p.cfg.BallSpeedX,
		Y: (p.rng.Float64() - 0.5) * p.cfg.BallSpeedY,
	}
}

// InitialVelocity generates a random serve velocity: a random angle
// within 45 degrees of horizontal, in a random horizontal direction.
func (p *Physics) InitialVelocity() Vec2 {
	angle := (p.rng.Float64()*2 - 1) * maxBounceAngle
	dir := 1.0
	if p.rng.Intn(2) == 0 {
		dir = -1.0
	}

	v := Vec2{
		X: dir * p.cfg.BallSpeedX * math.Cos(angle),
		Y: p.cfg.BallSpeedY * math.Sin(angle),
	}
	if !isFinite(v.X) || !isFinite(v.Y) {
		return p.fallbackVelocity(dir)
	}
	return v
}

// WallBounce reflects a vertical velocity off the top or bottom wall with
// slight randomization. The result keeps at least half the base vertical
// speed so the ball cannot stick to a wall at near-zero vertical velocity.
func (p *Physics) WallBounce(vy float64) float64 {
	jitter := 0.95 + p.rng.Float64()*0.1
	result := -vy * jitter
	if !isFinite(result) {
		return -vy
	}

	floor := p.cfg.BallSpeedY * wallBounceFloor
	if math.Abs(result) < floor {
		result = math.Copysign(floor, result)
	}
	return result
}

// PaddleBounce computes the velocity after a paddle hit. The bounce angle
// depends on where the ball struck the paddle (center hit leaves straight,
// edge hit leaves at 45 degrees), and each hit speeds the ball up until
// MaxBallSpeed.
func (p *Physics) PaddleBounce(ballCenter, ballVel Vec2, paddleCenterY, paddleHeight float64, isLeft bool) Vec2 {
	dir := -1.0
	if isLeft {
		dir = 1.0
	}

	// Normalized hit offset: -1 at the paddle top, +1 at the bottom
	t := (paddleCenterY - ballCenter.Y) / (paddleHeight / 2)
	t = clamp(t, -1, 1)

	bounceAngle := t * maxBounceAngle

	speed := math.Hypot(ballVel.X, ballVel.Y)
	speed = math.Min(speed+p.cfg.BallSpeedIncrease, p.cfg.MaxBallSpeed)

	v := Vec2{
		X: dir * speed * math.Cos(bounceAngle),
		Y: -speed * math.Sin(bounceAngle),
	}
	if !isFinite(v.X) || !isFinite(v.Y) {
		return p.fallbackVelocity(dir)
	}
	return v
}

// ApplySpin transfers a fraction of the paddle's movement into the ball's
// vertical velocity. The horizontal component is unchanged.
func (p *Physics) ApplySpin(vx, vy, paddleVelocity float64) Vec2 {
	newVY := vy + paddleVelocity*spinFactor
	if !isFinite(newVY) {
		return Vec2{X: vx, Y: vy}
	}

	maxVY := math.Abs(vx) * spinCapRatio
	if math.Abs(newVY) > maxVY {
		newVY = math.Copysign(maxVY, newVY)
	}
	return Vec2{X: vx, Y: newVY}
}

// PredictBallY simulates the ball trajectory for up to 30 unit-time steps,
// reflecting off the top and bottom walls and ignoring paddles, and returns
// the final vertical position. Used by the AI to pick a target.
func (p *Physics) PredictBallY(pos, vel Vec2, steps int) float64 {
	height := float64(p.cfg.ScreenHeight)
	if !isFinite(pos.Y) || !isFinite(vel.Y) {
		return height / 2
	}

	if steps > maxPredictionSteps {
		steps = maxPredictionSteps
	}

	y := pos.Y
	vy := vel.Y
	for i := 0; i < steps; i++ {
		y += vy
		if y <= 0 || y >= height {
			vy = -vy
			y = clamp(y, 0, height)
		}
	}
	return y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
