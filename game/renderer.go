package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws the gameplay scene. It only reads entity state; all
// mutation stays in the session's update phase.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a renderer for the given configuration
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// DrawSession renders one frame of gameplay: field, entities, scores,
// and any pause or game-over overlay.
func (r *Renderer) DrawSession(screen *ebiten.Image, s *Session) {
	r.drawCenterLine(screen)
	r.drawPaddle(screen, s.LeftPaddle)
	r.drawPaddle(screen, s.RightPaddle)
	r.drawBall(screen, s.Ball)
	r.drawScores(screen, s.Scoreboard)

	centerX := float64(r.cfg.ScreenWidth) / 2
	centerY := float64(r.cfg.ScreenHeight) / 2

	if s.Paused {
		drawCenteredText(screen, "PAUSED", centerX, centerY, colorAccent)
		drawCenteredText(screen, "Press P to resume, ESC for menu", centerX, centerY+30, colorForeground)
	}

	if s.GameOver {
		winnerText := "Player 1 Wins!"
		if s.Winner == SideRight {
			winnerText = "Player 2 Wins!"
			if s.AIOpponent() {
				winnerText = "AI Wins!"
			}
		}
		drawCenteredText(screen, winnerText, centerX, centerY, colorAccent)
		drawCenteredText(screen, "Press R to restart, ESC for menu", centerX, centerY+30, colorForeground)
	}
}

// drawCenterLine draws the dashed midline dividing the two courts
func (r *Renderer) drawCenterLine(screen *ebiten.Image) {
	const dashLen, gapLen = 12.0, 10.0
	x := float32(r.cfg.ScreenWidth)/2 - 1
	for y := 0.0; y < float64(r.cfg.ScreenHeight); y += dashLen + gapLen {
		vector.DrawFilledRect(screen, x, float32(y), 2, dashLen, colorCenterLine, false)
	}
}

func (r *Renderer) drawPaddle(screen *ebiten.Image, p *Paddle) {
	box := p.Box
	vector.DrawFilledRect(screen,
		float32(box.X), float32(box.Y), float32(box.W), float32(box.H),
		colorForeground, false)

	// Highlight strip along the left third for a bit of depth
	vector.DrawFilledRect(screen,
		float32(box.X), float32(box.Y), float32(box.W/3), float32(box.H),
		colorHighlight, false)
}

func (r *Renderer) drawBall(screen *ebiten.Image, b *Ball) {
	// Fading trail, oldest first. The last entry duplicates the current
	// position, so skip it.
	n := len(b.Trail)
	for i := 0; i < n-1; i++ {
		pos := b.Trail[i]
		alpha := uint8(100 * (i + 1) / n)
		size := b.Size/2 - float64(n-i)
		if size < 2 {
			size = 2
		}
		vector.DrawFilledCircle(screen,
			float32(pos.X), float32(pos.Y), float32(size),
			color.NRGBA{R: 255, G: 255, B: 255, A: alpha}, true)
	}

	vector.DrawFilledCircle(screen,
		float32(b.Pos.X), float32(b.Pos.Y), float32(b.Size/2),
		colorForeground, true)
}

// Seven-segment digit geometry
const (
	digitWidth   = 26.0
	digitHeight  = 44.0
	digitStroke  = 5.0
	digitSpacing = 8.0
)

// digitSegments maps each digit to its lit segments, ordered: top,
// top-right, bottom-right, bottom, bottom-left, top-left, middle.
var digitSegments = [10][7]bool{
	{true, true, true, true, true, true, false},     // 0
	{false, true, true, false, false, false, false}, // 1
	{true, true, false, true, true, false, true},    // 2
	{true, true, true, true, false, false, true},    // 3
	{false, true, true, false, false, true, true},   // 4
	{true, false, true, true, false, true, true},    // 5
	{true, false, true, true, true, true, true},     // 6
	{true, true, true, false, false, false, false},  // 7
	{true, true, true, true, true, true, true},      // 8
	{true, true, true, true, false, true, true},     // 9
}

// drawScores renders both scores as seven-segment digits, left score at
// a quarter width and right score at three quarters, as the classic
// arcade layout does.
func (r *Renderer) drawScores(screen *ebiten.Image, sb *Scoreboard) {
	r.drawNumber(screen, sb.LeftScore, float64(r.cfg.ScreenWidth)/4, 50)
	r.drawNumber(screen, sb.RightScore, 3*float64(r.cfg.ScreenWidth)/4, 50)
}

// drawNumber draws a non-negative integer centered on (cx, cy)
func (r *Renderer) drawNumber(screen *ebiten.Image, value int, cx, cy float64) {
	digits := fmt.Sprintf("%d", value)
	total := float64(len(digits))*digitWidth + float64(len(digits)-1)*digitSpacing
	x := cx - total/2
	for _, d := range digits {
		r.drawDigit(screen, int(d-'0'), x, cy-digitHeight/2)
		x += digitWidth + digitSpacing
	}
}

// drawDigit draws one seven-segment digit with its top-left at (x, y)
func (r *Renderer) drawDigit(screen *ebiten.Image, digit int, x, y float64) {
	if digit < 0 || digit > 9 {
		return
	}

	w, h, t := digitWidth, digitHeight, digitStroke
	half := h / 2

	// Each segment as a filled rect: {x, y, w, h} offsets from the origin
	segs := [7][4]float64{
		{0, 0, w, t},                       // top
		{w - t, 0, t, half + t/2},          // top-right
		{w - t, half - t/2, t, half + t/2}, // bottom-right
		{0, h - t, w, t},                   // bottom
		{0, half - t/2, t, half + t/2},     // bottom-left
		{0, 0, t, half + t/2},              // top-left
		{0, half - t/2, w, t},              // middle
	}

	for i, on := range digitSegments[digit] {
		if !on {
			continue
		}
		s := segs[i]
		vector.DrawFilledRect(screen,
			float32(x+s[0]), float32(y+s[1]), float32(s[2]), float32(s[3]),
			colorForeground, false)
	}
}

var textFace = basicfont.Face7x13

// drawCenteredText draws a one-line string centered on (cx, cy)
func drawCenteredText(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	width := font.MeasureString(textFace, s).Ceil()
	x := int(cx) - width/2
	y := int(cy) + textFace.Metrics().Ascent.Ceil()/2
	text.Draw(screen, s, textFace, x, y, clr)
}
