package game

// maxTrailLength bounds the cosmetic trail behind the ball
const maxTrailLength = 3

// maxFrameDT caps the per-frame time step to avoid tunneling on slow frames
const maxFrameDT = 0.1

// Ball owns the ball's position, velocity, bounding box, and motion
// trail, and orchestrates per-frame integration and collision response.
type Ball struct {
	Pos  Vec2
	Vel  Vec2
	Size float64
	Box  Rect

	// Trail holds the most recent positions, oldest first. Cosmetic only.
	Trail []Vec2

	cfg     Config
	physics *Physics
	sounds  SoundEmitter
}

// NewBall creates the ball centered in the window with a random serve
func NewBall(cfg Config, physics *Physics, sounds SoundEmitter) *Ball {
	b := &Ball{
		Size:    cfg.BallSize,
		cfg:     cfg,
		physics: physics,
		sounds:  sounds,
	}
	b.Reset()
	return b
}

// Reset recenters the ball and serves it in a new random direction
func (b *Ball) Reset() {
	b.Pos = Vec2{
		X: float64(b.cfg.ScreenWidth) / 2,
		Y: float64(b.cfg.ScreenHeight) / 2,
	}
	b.Vel = b.physics.InitialVelocity()
	b.syncBox()
	b.Trail = b.Trail[:0]
}

// syncBox recomputes the bounding box from the current center position
func (b *Ball) syncBox() {
	b.Box = RectAround(b.Pos.X, b.Pos.Y, b.Size, b.Size)
}

// Update advances the ball one frame and resolves wall, paddle and goal
// contact. Returns GoalRight or GoalLeft when a point was scored this
// frame (the ball has already been reset), GoalNone otherwise.
func (b *Ball) Update(dt float64, paddles []*Paddle) int {
	if dt > maxFrameDT {
		dt = maxFrameDT
	}

	prevPos := b.Pos

	b.Pos.X += b.Vel.X * dt * 60
	b.Pos.Y += b.Vel.Y * dt * 60
	b.syncBox()

	height := float64(b.cfg.ScreenHeight)
	if WallContact(b.Box, height) {
		b.Vel.Y = b.physics.WallBounce(b.Vel.Y)

		// Clamp the box back inside the field and resync the center so
		// sub-pixel penetration cannot accumulate
		if b.Box.Top() < 0 {
			b.Box.Y = 0
		} else if b.Box.Bottom() > height {
			b.Box.Y = height - b.Box.H
		}
		b.Pos.Y = b.Box.Center().Y

		b.sounds.Play(SoundWallHit)
	}

	midline := float64(b.cfg.ScreenWidth) / 2
	for _, paddle := range paddles {
		if !BoxesOverlap(b.Box, paddle.Box) {
			continue
		}

		isLeft := paddle.X < midline
		b.Vel = b.physics.PaddleBounce(b.Pos, b.Vel, paddle.Y, paddle.Height, isLeft)
		b.Vel = b.physics.ApplySpin(b.Vel.X, b.Vel.Y, paddle.Velocity)

		// Push the ball out of the paddle horizontally so the boxes no
		// longer overlap
		if isLeft {
			b.Box.X = paddle.Box.Right()
		} else {
			b.Box.X = paddle.Box.Left() - b.Box.W
		}
		b.Pos.X = b.Box.Center().X

		b.sounds.Play(SoundPaddleHit)
		b.appendTrail(prevPos)
	}

	if result := GoalContact(b.Box, float64(b.cfg.ScreenWidth)); result != GoalNone {
		b.sounds.Play(SoundScore)
		b.Reset()
		return result
	}

	b.appendTrail(b.Pos)
	return GoalNone
}

// appendTrail records a position, evicting the oldest past capacity
func (b *Ball) appendTrail(pos Vec2) {
	b.Trail = append(b.Trail, pos)
	for len(b.Trail) > maxTrailLength {
		b.Trail = b.Trail[1:]
	}
}
