package game

import "image/color"

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// WindowTitle is the OS window caption
	WindowTitle string

	// PaddleWidth is the paddle width in pixels
	PaddleWidth float64

	// PaddleHeight is the paddle height in pixels
	PaddleHeight float64

	// PaddleSpeed is the paddle movement speed in pixels per tick
	PaddleSpeed float64

	// PaddleMargin is the distance from a paddle's center to its goal edge
	PaddleMargin float64

	// BallSize is the ball diameter in pixels
	BallSize float64

	// BallSpeedX is the base horizontal ball speed in pixels per tick
	BallSpeedX float64

	// BallSpeedY is the base vertical ball speed in pixels per tick
	BallSpeedY float64

	// BallSpeedIncrease is added to the ball speed on every paddle hit
	BallSpeedIncrease float64

	// MaxBallSpeed caps the ball speed after paddle hits
	MaxBallSpeed float64

	// WinningScore ends the game when either side reaches it
	WinningScore int

	// SoundEnabled toggles audio output
	SoundEnabled bool

	// SoundVolume is the master volume in [0, 1]
	SoundVolume float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       800,
		ScreenHeight:      600,
		WindowTitle:       "PaddleClash",
		PaddleWidth:       10,
		PaddleHeight:      100,
		PaddleSpeed:       7.0,
		PaddleMargin:      20,
		BallSize:          15,
		BallSpeedX:        5.0,
		BallSpeedY:        5.0,
		BallSpeedIncrease: 0.2,
		MaxBallSpeed:      15.0,
		WinningScore:      10,
		SoundEnabled:      true,
		SoundVolume:       0.7,
	}
}

// Color constants
var (
	colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorForeground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorHighlight  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	colorAccent     = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	colorCenterLine = color.NRGBA{R: 120, G: 130, B: 160, A: 255}
)
