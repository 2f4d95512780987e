// Package audio loads the show's sound cues and plays them on fire-and-forget
// channels through the beep speaker.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// SampleRate is the speaker rate; every sound is resampled to it on load.
const SampleRate = beep.SampleRate(44100)

// ErrUnsupported is returned for files whose extension has no decoder.
var ErrUnsupported = errors.New("unsupported audio file")

// Sound is a fully decoded clip held in memory.
type Sound struct {
	buf *beep.Buffer
}

// Len returns the clip length in samples at SampleRate.
func (s *Sound) Len() int { return s.buf.Len() }

func (s *Sound) streamer() beep.StreamSeeker {
	return s.buf.Streamer(0, s.buf.Len())
}

// NewSound buffers src, resampling from format's rate to SampleRate.
func NewSound(format beep.Format, src beep.Streamer) *Sound {
	if format.SampleRate != SampleRate {
		src = beep.Resample(4, format.SampleRate, SampleRate, src)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return &Sound{buf: buf}
}

// Load decodes a wav, mp3 or flac file chosen by extension.
func Load(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sound: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("load sound %s: %w: %q", path, ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	return NewSound(format, streamer), nil
}
