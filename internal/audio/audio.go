package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/Saramando/263F/internal/dynamics"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Sonifier plays a finished trajectory through the default output
// device. The rod rings near a kilohertz, inside the audible band, so
// the displacement history maps directly onto the waveform.
type Sonifier struct {
	stream *portaudio.Stream

	mu      sync.Mutex
	samples []float64
	pos     int
	active  bool
}

// NewSonifier resamples the displacement history from the simulation
// rate to the output rate and normalizes it for playback.
func NewSonifier(tr *dynamics.Trajectory, dt float64) *Sonifier {
	var samples []float64
	if tr != nil && dt > 0 {
		samples = resample(tr.Displacement, 1.0/dt, SampleRate)
		normalize(samples, 0.8)
		fadeEdges(samples, SampleRate/200)
	}
	return &Sonifier{samples: samples}
}

// LoopSeconds is the playback length of one pass over the waveform.
func (s *Sonifier) LoopSeconds() float64 {
	return float64(len(s.samples)) / SampleRate
}

func (s *Sonifier) Start() error {
	if len(s.samples) == 0 {
		return fmt.Errorf("nothing to play")
	}
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	s.stream = stream
	s.mu.Lock()
	s.active = true
	s.mu.Unlock()
	return nil
}

func (s *Sonifier) Stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
		s.stream = nil
	}
	portaudio.Terminate()

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

func (s *Sonifier) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// process loops the waveform into both output channels.
func (s *Sonifier) process(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range out[0] {
		if len(s.samples) == 0 {
			out[0][i] = 0
			out[1][i] = 0
			continue
		}
		v := float32(s.samples[s.pos])
		out[0][i] = v
		out[1][i] = v
		s.pos = (s.pos + 1) % len(s.samples)
	}
}

// resample converts src from srcRate to dstRate by linear
// interpolation.
func resample(src []float64, srcRate, dstRate float64) []float64 {
	if len(src) == 0 || srcRate <= 0 || dstRate <= 0 {
		return nil
	}

	n := int(math.Round(float64(len(src)) * dstRate / srcRate))
	if n < 1 {
		n = 1
	}

	dst := make([]float64, n)
	step := srcRate / dstRate
	for i := range dst {
		pos := float64(i) * step
		j := int(pos)
		if j >= len(src)-1 {
			dst[i] = src[len(src)-1]
			continue
		}
		frac := pos - float64(j)
		dst[i] = src[j]*(1-frac) + src[j+1]*frac
	}
	return dst
}

// normalize scales samples in place so the absolute peak hits peak.
func normalize(samples []float64, peak float64) {
	maxAbs := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return
	}

	scale := peak / maxAbs
	for i := range samples {
		samples[i] *= scale
	}
}

// fadeEdges ramps the first and last n samples to zero so the loop
// seam does not click.
func fadeEdges(samples []float64, n int) {
	if n > len(samples)/2 {
		n = len(samples) / 2
	}
	for i := 0; i < n; i++ {
		g := float64(i) / float64(n)
		samples[i] *= g
		samples[len(samples)-1-i] *= g
	}
}
