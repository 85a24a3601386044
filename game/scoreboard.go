package game

// Side identifies a player side
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Scoreboard tracks both players' scores
type Scoreboard struct {
	LeftScore  int
	RightScore int

	cfg Config
}

// NewScoreboard creates a zeroed scoreboard
func NewScoreboard(cfg Config) *Scoreboard {
	return &Scoreboard{cfg: cfg}
}

// Apply records a goal result as returned by Ball.Update. GoalNone is
// ignored.
func (s *Scoreboard) Apply(result int) {
	switch result {
	case GoalRight:
		s.RightScore++
	case GoalLeft:
		s.LeftScore++
	}
}

// Winner returns the side that reached the winning score, or SideNone.
// The game-over latch is the session's job, not the scoreboard's.
func (s *Scoreboard) Winner() Side {
	if s.LeftScore >= s.cfg.WinningScore {
		return SideLeft
	}
	if s.RightScore >= s.cfg.WinningScore {
		return SideRight
	}
	return SideNone
}

// Reset zeroes both scores
func (s *Scoreboard) Reset() {
	s.LeftScore = 0
	s.RightScore = 0
}
