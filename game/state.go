package game

import "github.com/hajimehoshi/ebiten/v2"

// StateID identifies a screen
type StateID int

const (
	StateMenu StateID = iota
	StatePlay
	stateCount
)

// State is one screen of the game. Enter and Exit run on transitions;
// Update and Draw run every frame while the state is active.
type State interface {
	Enter()
	Exit()
	Update(dt float64) error
	Draw(screen *ebiten.Image)
}

// StateMachine dispatches the frame loop to the active screen. States
// are held in an enum-indexed table; transitions run Exit on the old
// state and Enter on the new one.
type StateMachine struct {
	states  [stateCount]State
	current State
}

// Register installs a state under its ID
func (m *StateMachine) Register(id StateID, s State) {
	m.states[id] = s
}

// Change transitions to the state with the given ID
func (m *StateMachine) Change(id StateID) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = m.states[id]
	m.current.Enter()
}

// Update advances the active state
func (m *StateMachine) Update(dt float64) error {
	if m.current == nil {
		return nil
	}
	return m.current.Update(dt)
}

// Draw renders the active state
func (m *StateMachine) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}
