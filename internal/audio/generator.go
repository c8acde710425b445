package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// laserGenerator is a square wave sweeping down from 1.6kHz.
type laserGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newLaserGenerator(sr beep.SampleRate) *laserGenerator {
	return &laserGenerator{sr: sr}
}

func (g *laserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 1600 * math.Exp(-t*12)
		sample := 0.25 * math.Copysign(1, math.Sin(2*math.Pi*freq*t))

		// Short fade out to avoid a click
		sample *= math.Exp(-t * 10)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *laserGenerator) Err() error {
	return nil
}

// explosionGenerator is decaying noise over a low rumble.
type explosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newExplosionGenerator(sr beep.SampleRate, seed int64) *explosionGenerator {
	return &explosionGenerator{sr: sr, seed: seed}
}

func (g *explosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 5)

		// LCG noise
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.4*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *explosionGenerator) Err() error {
	return nil
}

// Melodies as note frequencies in Hz; 0 is a rest.
var (
	menuMelody = []float64{220.00, 261.63, 329.63, 261.63, 196.00, 246.94, 293.66, 246.94}
	gameMelody = []float64{110.00, 0, 110.00, 130.81, 110.00, 0, 98.00, 123.47}
)

// themeGenerator loops a melody forever, one plucked triangle note per step.
type themeGenerator struct {
	sr    beep.SampleRate
	notes []float64
	step  int // Samples per note
	pos   int
}

func newThemeGenerator(sr beep.SampleRate, notes []float64, noteLen time.Duration) *themeGenerator {
	return &themeGenerator{
		sr:    sr,
		notes: notes,
		step:  sr.N(noteLen),
	}
}

func (g *themeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	cycle := g.step * len(g.notes)
	for i := range samples {
		p := g.pos % cycle
		freq := g.notes[p/g.step]
		t := float64(p%g.step) / float64(g.sr)

		sample := 0.0
		if freq > 0 {
			// Triangle wave with a pluck envelope
			phase := math.Mod(freq*t, 1)
			tri := 4*math.Abs(phase-0.5) - 1
			sample = 0.3 * tri * math.Exp(-t*6)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *themeGenerator) Err() error {
	return nil
}
