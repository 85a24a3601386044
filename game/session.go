package game

import "math/rand"

// Session owns one match: the ball, both paddles, and the scoreboard,
// plus the pause and game-over flags. All entity mutation happens here
// during Update; nothing else touches the entities.
type Session struct {
	Ball        *Ball
	LeftPaddle  *Paddle
	RightPaddle *Paddle
	Scoreboard  *Scoreboard

	Paused   bool
	GameOver bool
	Winner   Side

	aiOpponent bool
	cfg        Config
	physics    *Physics
	sounds     SoundEmitter
	rng        *rand.Rand
}

// NewSession builds a match. With aiOpponent the right paddle runs the
// built-in AI; otherwise both paddles take player input.
func NewSession(cfg Config, aiOpponent bool, sounds SoundEmitter, rng *rand.Rand) *Session {
	s := &Session{
		aiOpponent: aiOpponent,
		cfg:        cfg,
		physics:    NewPhysics(cfg, rng),
		sounds:     sounds,
		rng:        rng,
	}
	s.Reset()
	return s
}

// Reset rebuilds all owned entities and clears the match state
func (s *Session) Reset() {
	s.Ball = NewBall(s.cfg, s.physics, s.sounds)
	s.LeftPaddle = NewPaddle(s.cfg, s.cfg.PaddleMargin, false, s.physics, nil)
	s.RightPaddle = NewPaddle(s.cfg, float64(s.cfg.ScreenWidth)-s.cfg.PaddleMargin,
		s.aiOpponent, s.physics, s.rng)
	s.Scoreboard = NewScoreboard(s.cfg)

	s.Paused = false
	s.GameOver = false
	s.Winner = SideNone
}

// TogglePause flips the pause flag
func (s *Session) TogglePause() {
	s.Paused = !s.Paused
}

// AIOpponent reports whether the right paddle is computer-controlled
func (s *Session) AIOpponent() bool { return s.aiOpponent }

// Update advances the simulation one frame: paddles, then the ball, then
// scoring. Does nothing while paused, and stops applying score updates
// once a winner is latched.
func (s *Session) Update(dt float64) {
	if s.Paused || s.GameOver {
		return
	}

	s.LeftPaddle.Update(dt, nil)
	var aiBall *Ball
	if s.aiOpponent {
		aiBall = s.Ball
	}
	s.RightPaddle.Update(dt, aiBall)

	paddles := []*Paddle{s.LeftPaddle, s.RightPaddle}
	if result := s.Ball.Update(dt, paddles); result != GoalNone {
		s.Scoreboard.Apply(result)
		if winner := s.Scoreboard.Winner(); winner != SideNone {
			s.GameOver = true
			s.Winner = winner
		}
	}
}
