package algonuft

// Spectrum is a complex frequency-domain tensor with row-major spatial axes
// and a trailing channel axis. Spectra produced by SimplexFT store the last
// spatial axis Hermitian-halved (res[last]/2 entries), because the input
// signal is assumed real.
type Spectrum struct {
	dims  []int
	nchan int
	data  []complex128
}

// NewSpectrum allocates a zeroed spectrum with the given spatial axis lengths
// and channel count.
func NewSpectrum(dims []int, channels int) *Spectrum {
	n := channels
	for _, d := range dims {
		n *= d
	}
	return &Spectrum{
		dims:  append([]int(nil), dims...),
		nchan: channels,
		data:  make([]complex128, n),
	}
}

// Dims returns a copy of the spatial axis lengths.
func (s *Spectrum) Dims() []int {
	return append([]int(nil), s.dims...)
}

// Channels returns the number of signal channels.
func (s *Spectrum) Channels() int {
	return s.nchan
}

// Data returns the backing slice, row-major with the channel axis fastest.
func (s *Spectrum) Data() []complex128 {
	return s.data
}

func (s *Spectrum) offset(idx []int, ch int) int {
	off := 0
	for d, i := range idx {
		off = off*s.dims[d] + i
	}
	return off*s.nchan + ch
}

// At returns the value at the given spatial index and channel.
func (s *Spectrum) At(idx []int, ch int) complex128 {
	return s.data[s.offset(idx, ch)]
}

// Set stores v at the given spatial index and channel.
func (s *Spectrum) Set(idx []int, ch int, v complex128) {
	s.data[s.offset(idx, ch)] = v
}

// AddAt accumulates v into the given spatial index and channel.
func (s *Spectrum) AddAt(idx []int, ch int, v complex128) {
	s.data[s.offset(idx, ch)] += v
}

// Clone returns a deep copy.
func (s *Spectrum) Clone() *Spectrum {
	out := NewSpectrum(s.dims, s.nchan)
	copy(out.data, s.data)
	return out
}

// Scale multiplies every entry by v in place.
func (s *Spectrum) Scale(v complex128) {
	for i := range s.data {
		s.data[i] *= v
	}
}

// incIndex advances a row-major odometer over dims. It reports false once
// the index wraps past the final cell.
func incIndex(idx, dims []int) bool {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < dims[d] {
			return true
		}
		idx[d] = 0
	}
	return false
}

// FFTPad zero-pads a full-grid spectrum symmetrically on every spatial axis
// to the target resolution. Each pad amount must be even and non-negative.
// With norm set, amplitude is rescaled by the resolution ratio so the padded
// spectrum represents the same physical density as the original.
func FFTPad(s *Spectrum, res []int, norm bool) (*Spectrum, error) {
	if len(res) != len(s.dims) {
		return nil, ErrDimensionMismatch
	}
	scale := 1.0
	for d, r := range res {
		if r < s.dims[d] || (r-s.dims[d])%2 != 0 {
			return nil, ErrInvalidPad
		}
		scale *= float64(r) / float64(s.dims[d])
	}

	out := NewSpectrum(res, s.nchan)
	idx := make([]int, len(s.dims))
	dst := make([]int, len(res))
	for ok := true; ok; ok = incIndex(idx, s.dims) {
		for d := range idx {
			dst[d] = idx[d] + (res[d]-s.dims[d])/2
		}
		for ch := 0; ch < s.nchan; ch++ {
			out.Set(dst, ch, s.At(idx, ch))
		}
	}
	if norm {
		out.Scale(complex(scale, 0))
	}
	return out, nil
}

// RFFTPad zero-pads a Hermitian-half spectrum to the target full resolution.
// All axes but the last are padded symmetrically in frequency (equivalent to
// a shift, pad, inverse-shift round trip); the Hermitian axis is padded at
// its high end only and must satisfy res[last]/2 >= current length. With norm
// set, amplitude is rescaled to preserve physical density.
func RFFTPad(s *Spectrum, res []int, norm bool) (*Spectrum, error) {
	if len(res) != len(s.dims) {
		return nil, ErrDimensionMismatch
	}
	last := len(res) - 1
	scale := 1.0
	for d := 0; d < last; d++ {
		if res[d] < s.dims[d] || (res[d]-s.dims[d])%2 != 0 {
			return nil, ErrInvalidPad
		}
		scale *= float64(res[d]) / float64(s.dims[d])
	}
	if res[last]/2 < s.dims[last] {
		return nil, ErrInvalidPad
	}
	scale *= float64(res[last]) / 2 / float64(s.dims[last])

	outDims := append([]int(nil), res...)
	outDims[last] = res[last] / 2
	out := NewSpectrum(outDims, s.nchan)
	idx := make([]int, len(s.dims))
	dst := make([]int, len(res))
	for ok := true; ok; ok = incIndex(idx, s.dims) {
		for d := 0; d < last; d++ {
			// Map the standard-order index through frequency space so the
			// symmetric pad lands around the centered spectrum.
			f := idx[d]
			if f >= (s.dims[d]+1)/2 {
				f -= s.dims[d]
			}
			if f < 0 {
				dst[d] = f + res[d]
			} else {
				dst[d] = f
			}
		}
		dst[last] = idx[last]
		for ch := 0; ch < s.nchan; ch++ {
			out.Set(dst, ch, s.At(idx, ch))
		}
	}
	if norm {
		out.Scale(complex(scale, 0))
	}
	return out, nil
}
