package audio

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// Cue is a synthesized sound effect.
type Cue int

const (
	// CueScore is a short rising blip when a row is passed.
	CueScore Cue = iota
	// CueCrash is a decaying noise burst.
	CueCrash
	// CueRestart is a two-note chime.
	CueRestart
)

// Cues lists every sound effect.
var Cues = []Cue{CueScore, CueCrash, CueRestart}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueScore:
		return "score"
	case CueCrash:
		return "crash"
	case CueRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Duration returns how long the cue plays.
func (c Cue) Duration() time.Duration {
	switch c {
	case CueScore:
		return 80 * time.Millisecond
	case CueCrash:
		return 600 * time.Millisecond
	case CueRestart:
		return 240 * time.Millisecond
	default:
		return 0
	}
}

// Streamer returns a finite streamer that renders the cue at sample rate sr.
func (c Cue) Streamer(sr beep.SampleRate) beep.Streamer {
	n := sr.N(c.Duration())
	switch c {
	case CueScore:
		return envelope(n, newOscillator(sr, 880, squareWave))
	case CueCrash:
		return envelope(n, noise(rand.New(rand.NewPCG(uint64(n), 0x5eed))))
	case CueRestart:
		half := n / 2
		return beep.Seq(
			envelope(half, newOscillator(sr, 660, sineWave)),
			envelope(n-half, newOscillator(sr, 990, sineWave)),
		)
	default:
		return beep.Silence(0)
	}
}

// WriteWAV renders the cue as 16-bit stereo WAV.
func (c Cue) WriteWAV(w io.WriteSeeker, sr beep.SampleRate) error {
	return wav.Encode(w, c.Streamer(sr), beep.Format{
		SampleRate:  sr,
		NumChannels: 2,
		Precision:   2,
	})
}

// ExportCues writes every cue to dir as <name>.wav and returns the paths.
func ExportCues(dir string, sr beep.SampleRate) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cue dir: %w", err)
	}

	paths := make([]string, 0, len(Cues))
	for _, c := range Cues {
		path := filepath.Join(dir, c.String()+".wav")
		if err := writeCueFile(path, c, sr); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCueFile(path string, c Cue, sr beep.SampleRate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.WriteWAV(f, sr); err != nil {
		f.Close()
		return fmt.Errorf("writing %s cue: %w", c, err)
	}
	return f.Close()
}

type waveform func(phase float64) float64

func sineWave(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func squareWave(phase float64) float64 {
	if phase < 0.5 {
		return 0.5
	}
	return -0.5
}

// oscillator is an endless periodic streamer. Its frequency may change while
// it plays; the phase stays continuous.
type oscillator struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
	wave  waveform
}

func newOscillator(sr beep.SampleRate, freq float64, wave waveform) *oscillator {
	return &oscillator{sr: sr, freq: freq, wave: wave}
}

func (o *oscillator) setFrequency(hz float64) {
	o.freq = hz
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	step := o.freq / float64(o.sr)
	for i := range samples {
		v := o.wave(o.phase)
		samples[i] = [2]float64{v, v}
		o.phase += step
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error {
	return nil
}

// noise returns endless white noise at half amplitude.
func noise(rng *rand.Rand) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := (rng.Float64()*2 - 1) * 0.5
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

// envelope takes n samples from s and fades them out linearly.
func envelope(n int, s beep.Streamer) beep.Streamer {
	src := beep.Take(n, s)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		got, ok := src.Stream(samples)
		for i := 0; i < got; i++ {
			gain := 1 - float64(pos)/float64(n)
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return got, ok
	})
}
