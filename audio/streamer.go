package audio

import "github.com/gopxl/beep"

// ToneStreamer plays a rendered tone once as a stereo beep.Streamer
type ToneStreamer struct {
	buf floatBuffer
	pos int
}

// NewToneStreamer renders t at sr
func NewToneStreamer(t Tone, sr beep.SampleRate) *ToneStreamer {
	return &ToneStreamer{buf: Render(t, int(sr))}
}

func (s *ToneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *ToneStreamer) Err() error {
	return nil
}

// Len returns the total sample count
func (s *ToneStreamer) Len() int {
	return len(s.buf)
}
