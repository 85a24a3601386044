package game

import (
	"math"
	"math/rand"
	"testing"
)

// soundRecorder captures emitted sound events for assertions
type soundRecorder struct {
	events []SoundEvent
}

func (r *soundRecorder) Play(ev SoundEvent) {
	r.events = append(r.events, ev)
}

func (r *soundRecorder) count(ev SoundEvent) int {
	n := 0
	for _, e := range r.events {
		if e == ev {
			n++
		}
	}
	return n
}

func newTestBall(seed int64, rec SoundEmitter) *Ball {
	cfg := DefaultConfig()
	if rec == nil {
		rec = NopSounds{}
	}
	physics := NewPhysics(cfg, rand.New(rand.NewSource(seed)))
	return NewBall(cfg, physics, rec)
}

// TestBallReset verifies the reset round-trip: centered position, fresh
// velocity, empty trail.
func TestBallReset(t *testing.T) {
	b := newTestBall(1, nil)

	// Dirty the state first
	b.Pos = Vec2{X: 10, Y: 10}
	b.Trail = append(b.Trail, Vec2{X: 1, Y: 1}, Vec2{X: 2, Y: 2})

	b.Reset()

	if b.Pos.X != 400 || b.Pos.Y != 300 {
		t.Errorf("reset position = (%.1f, %.1f), want (400, 300)", b.Pos.X, b.Pos.Y)
	}
	if len(b.Trail) != 0 {
		t.Errorf("reset trail length = %d, want 0", len(b.Trail))
	}
	if b.Vel.X == 0 && b.Vel.Y == 0 {
		t.Error("reset left the ball with zero velocity")
	}
	if b.Box.Center().X != 400 || b.Box.Center().Y != 300 {
		t.Errorf("reset box center = (%v, %v), want (400, 300)",
			b.Box.Center().X, b.Box.Center().Y)
	}
}

// TestBallGoalRightEdge reproduces the scoring scenario: a ball at
// (790, 300) moving right crosses the right edge in one tick, the left
// player scores, and the ball resets to center.
func TestBallGoalRightEdge(t *testing.T) {
	rec := &soundRecorder{}
	b := newTestBall(1, rec)
	b.Pos = Vec2{X: 790, Y: 300}
	b.Vel = Vec2{X: 6, Y: 0}
	b.syncBox()

	result := b.Update(1.0/60, nil)

	if result != GoalLeft {
		t.Errorf("goal result = %d, want %d (left player scores)", result, GoalLeft)
	}
	if b.Pos.X != 400 || b.Pos.Y != 300 {
		t.Errorf("post-goal position = (%.1f, %.1f), want (400, 300)", b.Pos.X, b.Pos.Y)
	}
	if rec.count(SoundScore) != 1 {
		t.Errorf("score sound count = %d, want 1", rec.count(SoundScore))
	}
}

// TestBallGoalLeftEdge is the mirror scenario: the right player scores
func TestBallGoalLeftEdge(t *testing.T) {
	b := newTestBall(1, nil)
	b.Pos = Vec2{X: 10, Y: 300}
	b.Vel = Vec2{X: -6, Y: 0}
	b.syncBox()

	if result := b.Update(1.0/60, nil); result != GoalRight {
		t.Errorf("goal result = %d, want %d (right player scores)", result, GoalRight)
	}
}

// TestBallWallClamp verifies a top-wall hit flips the vertical velocity
// and clamps the box flush with the wall.
func TestBallWallClamp(t *testing.T) {
	rec := &soundRecorder{}
	b := newTestBall(1, rec)
	b.Pos = Vec2{X: 400, Y: 9}
	b.Vel = Vec2{X: 2, Y: -6}
	b.syncBox()

	b.Update(1.0/60, nil)

	if b.Vel.Y <= 0 {
		t.Errorf("post-wall vy = %.3f, want > 0", b.Vel.Y)
	}
	if b.Vel.Y < DefaultConfig().BallSpeedY*0.5 {
		t.Errorf("post-wall vy = %.3f, below minimum vertical speed", b.Vel.Y)
	}
	if b.Box.Top() != 0 {
		t.Errorf("post-wall box top = %.3f, want 0", b.Box.Top())
	}
	if b.Pos.Y != b.Box.Center().Y {
		t.Errorf("position %.3f out of sync with box center %.3f", b.Pos.Y, b.Box.Center().Y)
	}
	if rec.count(SoundWallHit) != 1 {
		t.Errorf("wall sound count = %d, want 1", rec.count(SoundWallHit))
	}
}

// TestBallPaddleBounce verifies a paddle hit reverses the ball, pushes
// it clear of the paddle, speeds it up, and emits the paddle sound.
func TestBallPaddleBounce(t *testing.T) {
	cfg := DefaultConfig()
	rec := &soundRecorder{}
	b := newTestBall(1, rec)
	physics := b.physics

	paddle := NewPaddle(cfg, cfg.PaddleMargin, false, physics, nil)
	b.Pos = Vec2{X: paddle.Box.Right() + 5, Y: paddle.Y}
	b.Vel = Vec2{X: -6, Y: 0}
	b.syncBox()

	b.Update(1.0/60, []*Paddle{paddle})

	if b.Vel.X <= 0 {
		t.Errorf("post-bounce vx = %.3f, want > 0", b.Vel.X)
	}
	if BoxesOverlap(b.Box, paddle.Box) {
		t.Error("ball still overlaps paddle after bounce resolution")
	}
	if b.Box.Left() != paddle.Box.Right() {
		t.Errorf("ball pushed to %.3f, want flush with paddle right %.3f",
			b.Box.Left(), paddle.Box.Right())
	}
	speed := math.Hypot(b.Vel.X, b.Vel.Y)
	if speed <= 6-1e-9 {
		t.Errorf("post-bounce speed = %.3f, want > 6", speed)
	}
	if rec.count(SoundPaddleHit) != 1 {
		t.Errorf("paddle sound count = %d, want 1", rec.count(SoundPaddleHit))
	}
}

// TestBallSpeedCapAfterRally verifies repeated paddle hits never push
// the speed past the cap.
func TestBallSpeedCapAfterRally(t *testing.T) {
	cfg := DefaultConfig()
	b := newTestBall(3, nil)
	paddle := NewPaddle(cfg, cfg.PaddleMargin, false, b.physics, nil)

	for i := 0; i < 100; i++ {
		b.Pos = Vec2{X: paddle.Box.Right() + 5, Y: paddle.Y}
		b.Vel = Vec2{X: -math.Hypot(b.Vel.X, b.Vel.Y), Y: 0}
		b.syncBox()
		b.Update(1.0/60, []*Paddle{paddle})

		speed := math.Hypot(b.Vel.X, b.Vel.Y)
		if speed > cfg.MaxBallSpeed+1e-9 {
			t.Fatalf("hit %d: speed %.3f exceeds cap %.1f", i, speed, cfg.MaxBallSpeed)
		}
	}
}

// TestBallTrailBounded verifies the trail never grows past its capacity
// and keeps the most recent positions.
func TestBallTrailBounded(t *testing.T) {
	b := newTestBall(1, nil)
	b.Vel = Vec2{X: 1, Y: 0}

	for i := 0; i < 10; i++ {
		b.Update(1.0/60, nil)
	}

	if len(b.Trail) != maxTrailLength {
		t.Errorf("trail length = %d, want %d", len(b.Trail), maxTrailLength)
	}
	last := b.Trail[len(b.Trail)-1]
	if last != b.Pos {
		t.Errorf("newest trail entry = %+v, want current position %+v", last, b.Pos)
	}
}

// TestBallDTClamp verifies oversized frame times are capped so the ball
// cannot tunnel across the field in one update.
func TestBallDTClamp(t *testing.T) {
	b := newTestBall(1, nil)
	b.Pos = Vec2{X: 400, Y: 300}
	b.Vel = Vec2{X: 5, Y: 0}
	b.syncBox()

	b.Update(10.0, nil)

	// With dt clamped to 0.1 the ball moves 5 * 0.1 * 60 = 30 pixels
	if b.Pos.X != 430 {
		t.Errorf("position after clamped update = %.1f, want 430", b.Pos.X)
	}
}
