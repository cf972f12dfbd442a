package audio

import (
	"math"
	"sync"
)

// floatBuffer is mono float64 samples
type floatBuffer []float64

// sweep returns start*(end/start)^frac, the exponential ramp shape
// Non-positive endpoints fall back to a linear ramp
func sweep(start, end, frac float64) float64 {
	if start <= 0 || end <= 0 {
		return start + (end-start)*frac
	}
	return start * math.Pow(end/start, frac)
}

// oscillator renders a unity-gain waveform whose frequency sweeps start->end
// Phase is accumulated per sample so the sweep stays continuous
func oscillator(wave Waveform, startFreq, endFreq float64, samples, sampleRate int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		switch wave {
		case WaveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case WaveTriangle:
			buf[i] = 1 - 4*math.Abs(phase-0.5)
		case WaveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		}

		freq := sweep(startFreq, endFreq, float64(i)/float64(samples))
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)
	}
	return buf
}

// applyGainSweep scales buf in place by the exponential gain envelope
func applyGainSweep(buf floatBuffer, peak, end float64) {
	n := len(buf)
	for i := range buf {
		buf[i] *= sweep(peak, end, float64(i)/float64(n))
	}
}

// toneShape keys the unity-gain cache; gain never affects the waveform
type toneShape struct {
	wave       Waveform
	startFreq  float64
	endFreq    float64
	samples    int
	sampleRate int
}

// shapeCache stores rendered unity-gain oscillator buffers
type shapeCache struct {
	mu    sync.RWMutex
	store map[toneShape]floatBuffer
}

func newShapeCache() *shapeCache {
	return &shapeCache{store: make(map[toneShape]floatBuffer)}
}

// get returns a cached buffer or renders on demand; callers must not mutate it
func (c *shapeCache) get(key toneShape) floatBuffer {
	c.mu.RLock()
	buf, ok := c.store[key]
	c.mu.RUnlock()
	if ok {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf, ok := c.store[key]; ok {
		return buf
	}
	buf = oscillator(key.wave, key.startFreq, key.endFreq, key.samples, key.sampleRate)
	c.store[key] = buf
	return buf
}

var shapes = newShapeCache()

// Render produces mono PCM for a tone at the given sample rate
func Render(t Tone, sampleRate int) []float64 {
	samples := int(math.Round(t.Duration.Seconds() * float64(sampleRate)))
	if samples <= 0 || sampleRate <= 0 {
		return nil
	}

	shape := shapes.get(toneShape{
		wave:       t.Waveform,
		startFreq:  t.StartFreq,
		endFreq:    t.EndFreq,
		samples:    samples,
		sampleRate: sampleRate,
	})

	out := make(floatBuffer, samples)
	copy(out, shape)
	applyGainSweep(out, t.PeakGain, t.EndGain)
	return out
}
