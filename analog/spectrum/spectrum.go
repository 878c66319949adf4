// Package spectrum provides the frequency-domain container produced by
// discretizing an analog filter, together with magnitude, power, phase
// and impulse-response views of its channels.
package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Spectrum holds equidistantly sampled complex frequency data: one
// complex array per channel, the frequency resolution in Hz between
// consecutive samples, and a label per channel. Sample k of a channel
// corresponds to the frequency k*resolution.
type Spectrum struct {
	channels   [][]complex128
	resolution float64
	labels     []string
}

// New creates a spectrum from per-channel complex samples. All channels
// must have the same length; missing labels are padded with empty
// strings.
func New(channels [][]complex128, resolution float64, labels []string) (*Spectrum, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("spectrum: at least one channel is required")
	}
	if resolution <= 0 {
		return nil, fmt.Errorf("spectrum: resolution must be > 0: %v", resolution)
	}
	length := len(channels[0])
	for i, c := range channels[1:] {
		if len(c) != length {
			return nil, fmt.Errorf("spectrum: channel %d has length %d, want %d", i+1, len(c), length)
		}
	}

	padded := make([]string, len(channels))
	copy(padded, labels)

	return &Spectrum{channels: channels, resolution: resolution, labels: padded}, nil
}

// Channels returns the number of channels.
func (s *Spectrum) Channels() int {
	return len(s.channels)
}

// Length returns the number of samples per channel.
func (s *Spectrum) Length() int {
	return len(s.channels[0])
}

// Resolution returns the frequency spacing between samples in Hz.
func (s *Spectrum) Resolution() float64 {
	return s.resolution
}

// Labels returns the per-channel labels.
func (s *Spectrum) Labels() []string {
	return s.labels
}

// Channel returns the complex samples of one channel. The returned slice
// must not be modified.
func (s *Spectrum) Channel(channel int) []complex128 {
	return s.channels[channel]
}

// BinAt returns the index of the sample nearest to the given frequency,
// clamped to the valid range.
func (s *Spectrum) BinAt(frequency float64) int {
	bin := int(math.Round(frequency / s.resolution))
	if bin < 0 {
		return 0
	}
	if bin >= s.Length() {
		return s.Length() - 1
	}
	return bin
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for every sample of one channel.
//
// The computation uses SIMD-optimized kernels where available. Scratch
// buffers are pooled internally, so in steady state this allocates only
// the output slice.
func (s *Spectrum) Magnitude(channel int) []float64 {
	in := s.channels[channel]
	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for every sample of one channel.
func (s *Spectrum) Power(channel int) []float64 {
	in := s.channels[channel]
	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for every sample of one channel, in radians.
func (s *Spectrum) Phase(channel int) []float64 {
	in := s.channels[channel]
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// MagnitudeDB returns 20*log10(|X[k]|) for every sample of one channel.
// Zero-magnitude samples map to -Inf.
func (s *Spectrum) MagnitudeDB(channel int) []float64 {
	out := s.Magnitude(channel)
	for i, v := range out {
		out[i] = 20 * math.Log10(v)
	}
	return out
}
