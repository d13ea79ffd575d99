// Package audio provides the game's sound collaborator: generated
// square-wave cues for bounces and scores plus a looping background
// pattern, all gated by a mute flag so cues fired from deferred timers
// respect a mid-flight toggle.
package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
	muted       atomic.Bool
	music       *beep.Ctrl
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// SetMuted gates every cue and pauses the background music.
func SetMuted(m bool) {
	muted.Store(m)
	if initialized && music != nil {
		speaker.Lock()
		music.Paused = m
		speaker.Unlock()
	}
}

// squareWave generates a square wave tone (retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// bassLoop is an endless two-note ostinato used as background music.
func bassLoop() beep.Streamer {
	notes := []float64{110, 0, 138.59, 0}
	noteLen := sampleRate.N(300 * time.Millisecond)
	idx, left := 0, 0
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if left <= 0 {
				idx = (idx + 1) % len(notes)
				left = noteLen
			}
			val := 0.0
			if freq := notes[idx]; freq > 0 {
				val = 0.06
				if math.Mod(phase, 1.0) > 0.5 {
					val = -val
				}
				phase += freq / float64(sampleRate)
			}
			samples[i][0] = val
			samples[i][1] = val
			left--
		}
		return len(samples), true
	})
}

// StartMusic begins the background loop, paused when muted. Calling it
// again is a no-op.
func StartMusic() {
	if !initialized || music != nil {
		return
	}
	music = &beep.Ctrl{Streamer: bassLoop(), Paused: muted.Load()}
	speaker.Play(music)
}

// StopMusic pauses the background loop without tearing it down.
func StopMusic() {
	if !initialized || music == nil {
		return
	}
	speaker.Lock()
	music.Paused = true
	speaker.Unlock()
}

// ResumeMusic unpauses the background loop unless muted.
func ResumeMusic() {
	if !initialized || music == nil || muted.Load() {
		return
	}
	speaker.Lock()
	music.Paused = false
	speaker.Unlock()
}

// PlayBounce plays the cue for the ball hitting a paddle or wall.
func PlayBounce() {
	if !initialized || muted.Load() {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayScore plays the cue when a player scores.
func PlayScore() {
	if !initialized || muted.Load() {
		return
	}
	go func() {
		speaker.Play(squareWave(660, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(440, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(330, 150*time.Millisecond))
	}()
}

// PlayWin plays an ascending jingle when the match ends.
func PlayWin() {
	if !initialized || muted.Load() {
		return
	}
	go func() {
		for _, freq := range []float64{440, 554, 659, 880} {
			speaker.Play(squareWave(freq, 120*time.Millisecond))
			time.Sleep(120 * time.Millisecond)
		}
	}()
}
