package platform

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeNote       = 180 * time.Millisecond
	chimeGap        = 60 * time.Millisecond
)

// Note frequencies in Hz.
var (
	breakMelody = []float64{784.0, 659.3}
	studyMelody = []float64{523.3, 659.3, 784.0}
	overMelody  = []float64{523.3, 659.3, 784.0, 1046.5}
)

var speakerInit struct {
	once sync.Once
	err  error
}

// Chime decorates a Notifier with a short melody for each notification.
type Chime struct {
	next Notifier
	play func(beep.Streamer)
	mu   sync.Mutex
}

// NewChime initialises the speaker and wraps next. When no audio device is
// available the error is returned and the caller should fall back to next.
func NewChime(next Notifier) (*Chime, error) {
	speakerInit.once.Do(func() {
		speakerInit.err = speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	})
	if speakerInit.err != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerInit.err)
	}
	return newChime(next, func(streamer beep.Streamer) {
		speaker.Play(streamer)
	}), nil
}

func newChime(next Notifier, play func(beep.Streamer)) *Chime {
	return &Chime{next: next, play: play}
}

func (chime *Chime) TimeToBreak() error {
	return chime.ring(breakMelody, chime.next.TimeToBreak)
}

func (chime *Chime) TimeToStudy() error {
	return chime.ring(studyMelody, chime.next.TimeToStudy)
}

func (chime *Chime) StudyIsOver() error {
	return chime.ring(overMelody, chime.next.StudyIsOver)
}

// ring plays the melody even if the wrapped notifier fails.
func (chime *Chime) ring(melody []float64, notify func() error) error {
	notifyErr := notify()

	streamer, err := melodyStreamer(chimeSampleRate, melody)
	if err != nil {
		if notifyErr != nil {
			return notifyErr
		}
		return fmt.Errorf("build chime: %w", err)
	}

	chime.mu.Lock()
	chime.play(streamer)
	chime.mu.Unlock()
	return notifyErr
}

func melodyStreamer(sampleRate beep.SampleRate, melody []float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(melody)*2)
	for i, frequency := range melody {
		tone, err := generators.SineTone(sampleRate, frequency)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.1f Hz: %w", frequency, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(chimeNote), tone))
		if i < len(melody)-1 {
			parts = append(parts, beep.Silence(sampleRate.N(chimeGap)))
		}
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	}, nil
}
