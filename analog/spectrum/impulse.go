package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ImpulseResponse computes the time-domain impulse response of one
// channel by inverse Fourier transform.
//
// The channel is interpreted as the one-sided spectrum of a real signal
// of length 2*(Length()-1): the missing upper half is reconstructed by
// conjugate symmetry before the inverse transform. The sample rate of the
// result is 2*(Length()-1)*Resolution(). Spectra whose full length is a
// power of two transform fastest; a spectrum length of 2^k + 1 satisfies
// this.
func (s *Spectrum) ImpulseResponse(channel int) ([]float64, error) {
	bins := s.channels[channel]
	if len(bins) < 2 {
		return nil, fmt.Errorf("spectrum: at least 2 samples are required for an impulse response, have %d", len(bins))
	}

	n := 2 * (len(bins) - 1)
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	full := make([]complex128, n)
	copy(full, bins)
	for i := 1; i < len(bins)-1; i++ {
		c := bins[i]
		full[n-i] = complex(real(c), -imag(c))
	}

	timeDomain := make([]complex128, n)
	err = plan.Inverse(timeDomain, full)
	if err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i, c := range timeDomain {
		out[i] = real(c)
	}
	return out, nil
}
