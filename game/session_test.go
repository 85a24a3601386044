package game

import (
	"math/rand"
	"testing"
)

func newTestSession(aiOpponent bool) *Session {
	return NewSession(DefaultConfig(), aiOpponent, NopSounds{}, rand.New(rand.NewSource(9)))
}

// placeBallForGoal aims the ball straight at the right edge, past the
// right paddle, so the next update scores for the left player.
func placeBallForGoal(s *Session) {
	s.Ball.Pos = Vec2{X: 795, Y: 100}
	s.Ball.Vel = Vec2{X: 6, Y: 0}
	s.Ball.syncBox()
}

func TestSessionLayout(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(true)

	if s.LeftPaddle.X != cfg.PaddleMargin {
		t.Errorf("left paddle x = %.1f, want %.1f", s.LeftPaddle.X, cfg.PaddleMargin)
	}
	if s.RightPaddle.X != float64(cfg.ScreenWidth)-cfg.PaddleMargin {
		t.Errorf("right paddle x = %.1f, want %.1f",
			s.RightPaddle.X, float64(cfg.ScreenWidth)-cfg.PaddleMargin)
	}
	if s.LeftPaddle.IsAI() {
		t.Error("left paddle must be human-controlled")
	}
	if !s.RightPaddle.IsAI() {
		t.Error("right paddle must be AI-controlled in single-player mode")
	}

	s2 := newTestSession(false)
	if s2.RightPaddle.IsAI() {
		t.Error("right paddle must be human-controlled in two-player mode")
	}
}

// TestSessionScoring verifies a goal updates the scoreboard through the
// session.
func TestSessionScoring(t *testing.T) {
	s := newTestSession(false)
	placeBallForGoal(s)

	s.Update(1.0 / 60)

	if s.Scoreboard.LeftScore != 1 {
		t.Errorf("left score after right-edge goal = %d, want 1", s.Scoreboard.LeftScore)
	}
	if s.GameOver {
		t.Error("game over latched after a single point")
	}
}

// TestSessionPause verifies nothing moves while paused
func TestSessionPause(t *testing.T) {
	s := newTestSession(false)
	s.TogglePause()

	ballPos := s.Ball.Pos
	s.Update(1.0 / 60)

	if s.Ball.Pos != ballPos {
		t.Errorf("ball moved while paused: %+v -> %+v", ballPos, s.Ball.Pos)
	}

	s.TogglePause()
	s.Update(1.0 / 60)
	if s.Ball.Pos == ballPos {
		t.Error("ball did not move after unpausing")
	}
}

// TestSessionWinnerLatch verifies the session latches game over at the
// winning score and stops applying further score updates.
func TestSessionWinnerLatch(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSession(false)

	s.Scoreboard.LeftScore = cfg.WinningScore - 1
	placeBallForGoal(s)
	s.Update(1.0 / 60)

	if !s.GameOver {
		t.Fatal("game over not latched at winning score")
	}
	if s.Winner != SideLeft {
		t.Errorf("winner = %v, want left", s.Winner)
	}

	// Further goals must not change anything once latched
	placeBallForGoal(s)
	s.Update(1.0 / 60)
	if s.Scoreboard.LeftScore != cfg.WinningScore {
		t.Errorf("score changed after game over: %d", s.Scoreboard.LeftScore)
	}
}

// TestSessionReset verifies reset rebuilds a clean match
func TestSessionReset(t *testing.T) {
	s := newTestSession(true)
	s.Scoreboard.LeftScore = DefaultConfig().WinningScore
	s.GameOver = true
	s.Winner = SideLeft
	s.Paused = true

	s.Reset()

	if s.GameOver || s.Paused || s.Winner != SideNone {
		t.Errorf("reset flags = (over=%v, paused=%v, winner=%v), want all cleared",
			s.GameOver, s.Paused, s.Winner)
	}
	if s.Scoreboard.LeftScore != 0 || s.Scoreboard.RightScore != 0 {
		t.Error("reset did not zero the scoreboard")
	}
	if s.Ball.Pos.X != 400 || s.Ball.Pos.Y != 300 {
		t.Errorf("reset ball position = %+v, want center", s.Ball.Pos)
	}
}
