package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundEvent identifies a gameplay sound cue
type SoundEvent int

const (
	SoundPaddleHit SoundEvent = iota
	SoundWallHit
	SoundScore
	soundEventCount
)

// SoundEmitter receives fire-and-forget sound cues from the simulation.
// Playback must never block and must never fail the caller.
type SoundEmitter interface {
	Play(SoundEvent)
}

// NopSounds discards all sound events
type NopSounds struct{}

func (NopSounds) Play(SoundEvent) {}

const sampleRate = 44100

// Waveform types
const (
	waveSine = iota
	waveSquare
)

// Speaker synthesizes one short PCM clip per sound event and plays them
// through the ebiten audio context on demand.
type Speaker struct {
	ctx    *audio.Context
	volume float64
	clips  [soundEventCount][]byte
}

// NewSpeaker builds the speaker and pre-renders all clips. If the audio
// context cannot be created the speaker degrades to a silent one; sound
// is never allowed to break the game.
func NewSpeaker(cfg Config) (s *Speaker) {
	if !cfg.SoundEnabled {
		return nil
	}

	defer func() {
		if recover() != nil {
			s = nil
		}
	}()

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	s = &Speaker{ctx: ctx, volume: cfg.SoundVolume}
	s.clips[SoundPaddleHit] = pcmStereo16(synthTone(waveSquare, 440, 0.06))
	s.clips[SoundWallHit] = pcmStereo16(synthTone(waveSquare, 220, 0.05))
	s.clips[SoundScore] = pcmStereo16(append(
		synthTone(waveSine, 660, 0.09),
		synthTone(waveSine, 880, 0.12)...))
	return s
}

// Play starts the clip for the given event and returns immediately.
// Safe to call on a nil speaker.
func (s *Speaker) Play(ev SoundEvent) {
	if s == nil || ev < 0 || ev >= soundEventCount {
		return
	}
	p := s.ctx.NewPlayerFromBytes(s.clips[ev])
	p.SetVolume(s.volume)
	p.Play()
}

// synthTone generates mono float64 samples for a tone of the given
// waveform, frequency, and duration, with a short attack/release
// envelope to avoid clicks.
func synthTone(waveType int, freq, durationSec float64) []float64 {
	n := int(durationSec * sampleRate)
	buf := make([]float64, n)

	phase := 0.0
	phaseInc := freq / sampleRate
	for i := 0; i < n; i++ {
		switch waveType {
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		default:
			buf[i] = math.Sin(2 * math.Pi * phase)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}

	applyEnvelope(buf, 0.005, 0.02)
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * sampleRate)
	releaseSamples := int(releaseSec * sampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// pcmStereo16 converts mono float samples to the 16-bit little-endian
// interleaved stereo format the audio context consumes
func pcmStereo16(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, v := range samples {
		v = clamp(v, -1, 1)
		s := int16(v * math.MaxInt16)
		lo := byte(s)
		hi := byte(s >> 8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}
